package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/barberpro/dashboard/internal/bootstrap"
	"github.com/barberpro/dashboard/internal/domain/guard"
)

type checkSessionOptions struct {
	Token string
	Path  string
}

func parseCheckSessionFlags(args []string, out io.Writer) (checkSessionOptions, error) {
	fs := flag.NewFlagSet("check-session", flag.ContinueOnError)
	fs.SetOutput(out)

	var opts checkSessionOptions
	fs.StringVar(&opts.Token, "token", "", "Session credential to validate (required)")
	fs.StringVar(&opts.Path, "path", "/dashboard", "Path the guard should evaluate")

	if err := fs.Parse(args); err != nil {
		return checkSessionOptions{}, err
	}

	opts.Token = strings.TrimSpace(opts.Token)
	opts.Path = strings.TrimSpace(opts.Path)
	if opts.Token == "" {
		return checkSessionOptions{}, errors.New("--token is required")
	}
	if !strings.HasPrefix(opts.Path, "/") {
		return checkSessionOptions{}, fmt.Errorf("--path must start with /: %q", opts.Path)
	}
	return opts, nil
}

// runCheckSession runs the session guard exactly as the server would for one request.
func runCheckSession(cmdCtx *commandContext, args []string) error {
	opts, err := parseCheckSessionFlags(args, cmdCtx.Out)
	if err != nil {
		return err
	}

	services, err := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config: &cmdCtx.Config,
		Logger: cmdCtx.Logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := services.Observability.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("metrics close failed", "error", closeErr)
		}
	}()

	decision := services.Guard.Evaluate(cmdCtx.Ctx, opts.Path, opts.Token)
	return printDecision(cmdCtx.Out, opts.Path, decision)
}

func printDecision(w io.Writer, path string, d guard.Decision) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	location := d.Location
	if location == "" {
		location = "-"
	}
	rows := [][2]string{
		{"path", path},
		{"action", string(d.Action)},
		{"location", location},
		{"credential_cleared", strconv.FormatBool(d.ClearCredential)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("write decision row: %w", err)
		}
	}
	return tw.Flush()
}
