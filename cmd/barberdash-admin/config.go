package main

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/barberpro/dashboard/config"
)

const redacted = "[redacted]"

func runShowConfig(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("show-config", flag.ContinueOnError)
	fs.SetOutput(cmdCtx.Out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return printConfig(cmdCtx.Out, &cmdCtx.Config)
}

func printConfig(w io.Writer, cfg *config.AppConfig) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"dev", strconv.FormatBool(cfg.IsDev)},
		{"http.addr", cfg.HTTP.Addr},
		{"http.cookie_domain", cfg.HTTP.CookieDomain},
		{"http.cookie_secure", strconv.FormatBool(cfg.HTTP.CookieSecure)},
		{"backend.url", cfg.Backend.URL},
		{"backend.timeout", cfg.Backend.Timeout.String()},
		{"backend.validate_timeout", cfg.Backend.ValidateTimeout.String()},
		{"backend.plan_status_expr", cfg.Backend.PlanStatusExpr},
		{"session.cookie_name", cfg.Session.CookieName},
		{"session.max_age", cfg.Session.MaxAge.String()},
		{"cache.enabled", strconv.FormatBool(cfg.IsCacheEnabled())},
		{"cache.query_ttl", cfg.Cache.QueryTTL.String()},
		{"redis.uri", redactURI(cfg.Redis.URI)},
		{"redis.password", redactSecret(cfg.Redis.Password)},
		{"redis.mode", redisMode(cfg.Redis)},
		{"metrics.enabled", strconv.FormatBool(cfg.Observability.Metrics.IsEnabled())},
		{"metrics.statsd_address", cfg.Observability.Metrics.StatsdAddress},
		{"metrics.prefix", cfg.Observability.Metrics.Prefix},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("write config row: %w", err)
		}
	}
	return tw.Flush()
}

func redisMode(cfg config.RedisConfig) string {
	switch {
	case cfg.UseCluster:
		return "cluster"
	case cfg.UseSentinel:
		return "sentinel:" + cfg.SentinelMasterName
	default:
		return "direct"
	}
}

func redactSecret(v string) string {
	if v == "" {
		return ""
	}
	return redacted
}

func redactURI(v string) string {
	u, err := url.Parse(strings.TrimSpace(v))
	if err != nil || u.User == nil {
		return v
	}
	return u.Redacted()
}
