package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/barberpro/dashboard/internal/bootstrap"
	"github.com/barberpro/dashboard/internal/core"
)

const (
	cacheCommandTimeout = 2 * time.Minute
	scanBatch           = 1000
)

type listCacheOptions struct {
	Token string
	Limit int
}

type clearCacheOptions struct {
	Token  string
	All    bool
	DryRun bool
	Yes    bool
}

// pattern returns the Redis glob for the selected entries.
func (o clearCacheOptions) pattern() string {
	if o.All {
		return core.QueryKeyPattern
	}
	return core.CredentialKeyPrefix(o.Token) + "*"
}

func parseListCacheFlags(args []string, out io.Writer) (listCacheOptions, error) {
	fs := flag.NewFlagSet("list-cache-keys", flag.ContinueOnError)
	fs.SetOutput(out)

	var opts listCacheOptions
	fs.StringVar(&opts.Token, "token", "", "Only show entries cached for this credential")
	fs.IntVar(&opts.Limit, "limit", 100, "Maximum number of keys to print (0 = all)")

	if err := fs.Parse(args); err != nil {
		return listCacheOptions{}, err
	}
	opts.Token = strings.TrimSpace(opts.Token)
	if opts.Limit < 0 {
		return listCacheOptions{}, errors.New("--limit must be >= 0")
	}
	return opts, nil
}

func parseClearCacheFlags(args []string, out io.Writer) (clearCacheOptions, error) {
	fs := flag.NewFlagSet("clear-cache", flag.ContinueOnError)
	fs.SetOutput(out)

	var opts clearCacheOptions
	fs.StringVar(&opts.Token, "token", "", "Credential whose entries are deleted (required unless --all)")
	fs.BoolVar(&opts.All, "all", false, "Delete every query cache entry")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Count matching keys without deleting")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")

	if err := fs.Parse(args); err != nil {
		return clearCacheOptions{}, err
	}
	opts.Token = strings.TrimSpace(opts.Token)
	switch {
	case opts.All && opts.Token != "":
		return clearCacheOptions{}, errors.New("--token cannot be combined with --all")
	case !opts.All && opts.Token == "":
		return clearCacheOptions{}, errors.New("either --token or --all is required")
	}
	return opts, nil
}

func runListCacheKeys(cmdCtx *commandContext, args []string) error {
	opts, err := parseListCacheFlags(args, cmdCtx.Out)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, cacheCommandTimeout)
	defer cancel()

	client, err := connectCache(ctx, cmdCtx)
	if err != nil {
		return err
	}
	defer closeCache(cmdCtx, client)

	pattern := core.QueryKeyPattern
	if opts.Token != "" {
		pattern = core.CredentialKeyPrefix(opts.Token) + "*"
	}
	keys, err := scanKeys(ctx, client, pattern)
	if err != nil {
		return err
	}
	return printCacheKeys(ctx, cmdCtx.Out, client, keys, opts.Limit)
}

func runClearCache(cmdCtx *commandContext, args []string) error {
	opts, err := parseClearCacheFlags(args, cmdCtx.Out)
	if err != nil {
		return err
	}
	if confirmErr := confirmClearCache(cmdCtx.Out, cmdCtx.In, opts); confirmErr != nil {
		return confirmErr
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, cacheCommandTimeout)
	defer cancel()

	client, err := connectCache(ctx, cmdCtx)
	if err != nil {
		return err
	}
	defer closeCache(cmdCtx, client)

	deleted, err := clearCacheKeys(ctx, client, opts)
	if err != nil {
		return err
	}
	if opts.DryRun {
		cmdCtx.Logger.Info("query cache keys matched", "count", deleted, "dry_run", true)
		return nil
	}
	cmdCtx.Logger.Info("query cache keys deleted", "count", deleted)
	return nil
}

//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func connectCache(ctx context.Context, cmdCtx *commandContext) (redis.UniversalClient, error) {
	if strings.TrimSpace(cmdCtx.Config.Redis.URI) == "" && !cmdCtx.Config.Redis.UseCluster && !cmdCtx.Config.Redis.UseSentinel {
		return nil, errors.New("redis is not configured")
	}
	client, err := bootstrap.ConnectRedis(ctx, bootstrap.RedisConnectConfig{
		Redis:  cmdCtx.Config.Redis,
		Logger: cmdCtx.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

func closeCache(cmdCtx *commandContext, client redis.UniversalClient) {
	if err := client.Close(); err != nil {
		cmdCtx.Logger.Warn("redis close failed", "error", err)
	}
}

func scanKeys(ctx context.Context, client redis.UniversalClient, pattern string) ([]string, error) {
	iter := client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan redis: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// clearCacheKeys deletes the matched keys and returns how many matched.
func clearCacheKeys(ctx context.Context, client redis.UniversalClient, opts clearCacheOptions) (int, error) {
	keys, err := scanKeys(ctx, client, opts.pattern())
	if err != nil {
		return 0, err
	}
	if opts.DryRun || len(keys) == 0 {
		return len(keys), nil
	}

	// One DEL per key; a cluster rejects multi-key DEL across slots.
	for i, key := range keys {
		if err := client.Del(ctx, key).Err(); err != nil {
			return i, fmt.Errorf("delete redis key: %w", err)
		}
	}
	return len(keys), nil
}

func printCacheKeys(ctx context.Context, w io.Writer, client redis.UniversalClient, keys []string, limit int) error {
	shown := keys
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "KEY\tTTL"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, key := range shown {
		ttl, err := client.TTL(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("ttl %s: %w", key, err)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", key, formatTTL(ttl)); err != nil {
			return fmt.Errorf("write key row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return writef(w, "%d of %d keys shown\n", len(shown), len(keys))
}

func formatTTL(ttl time.Duration) string {
	switch {
	case ttl == -1:
		return "none"
	case ttl < 0:
		return "expired"
	default:
		return ttl.Truncate(time.Second).String()
	}
}

func confirmClearCache(out io.Writer, in io.Reader, opts clearCacheOptions) error {
	if opts.DryRun || opts.Yes {
		return nil
	}

	target := "one credential"
	if opts.All {
		target = "ALL credentials"
	}
	if err := writef(out, "About to clear query cache entries for %s.\nContinue? [y/N]: ", target); err != nil {
		return fmt.Errorf("print confirmation prompt: %w", err)
	}

	resp, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	if resp == "y" || resp == "yes" {
		return nil
	}
	if writeErr := writeln(out); writeErr != nil {
		return writeErr
	}
	return errors.New("aborted by user")
}
