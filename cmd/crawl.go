package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/headgrade/headgrade/internal/collector"
)

const defaultPagesFilename = "pages.json"

var crawlCmd = &cobra.Command{
	Use:   "crawl [url ...]",
	Short: "Crawl seed URLs and capture response headers for grading",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		depth, _ := cmd.Flags().GetInt("depth")
		maxPages, _ := cmd.Flags().GetInt("max-pages")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		rateLimit, _ := cmd.Flags().GetInt("rate-limit")
		timeoutSecs, _ := cmd.Flags().GetInt("timeout")
		output, _ := cmd.Flags().GetString("output")
		allHosts, _ := cmd.Flags().GetBool("all-hosts")

		applyCrawlConfigDefaults(cmd, &depth, &maxPages, &concurrency, &rateLimit, &timeoutSecs)

		if output == "" {
			output = filepath.Join(resultsDir, defaultPagesFilename)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c := collector.New(collector.Options{
			Concurrency:  concurrency,
			RateLimit:    rateLimit,
			Timeout:      time.Duration(timeoutSecs) * time.Second,
			MaxDepth:     depth,
			MaxPages:     maxPages,
			SameHostOnly: !allHosts,
			UserAgent:    "headgrade/" + Version,
		}, logger)

		startAt := time.Now().UTC()
		logger.Infow("crawl started", "seeds", args, "depth", depth, "max_pages", maxPages)

		pages, err := c.Collect(ctx, args)
		if err != nil {
			return fmt.Errorf("crawl failed: %w", err)
		}

		out := CrawlOutput{
			Metadata: RunMetadata{
				RunID:      uuid.NewString(),
				StartAt:    startAt,
				CompleteAt: time.Now().UTC(),
				Seeds:      args,
				TotalPages: len(pages),
			},
			Pages: pages,
		}

		data, err := json.MarshalIndent(out, jsonPrefix, jsonIndent)
		if err != nil {
			return fmt.Errorf("marshal crawl output: %w", err)
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write crawl output: %w", err)
		}

		logger.Infow("crawl complete", "run_id", out.Metadata.RunID, "pages", len(pages))
		fmt.Println(colorSuccess("Crawl complete."))
		fmt.Printf("%s %d\n", colorInfo("Pages:"), len(pages))
		fmt.Printf("%s %s\n", colorInfo("Output:"), output)
		return nil
	},
}

// applyCrawlConfigDefaults merges crawl defaults from the config file
// into flags the user did not set explicitly.
func applyCrawlConfigDefaults(cmd *cobra.Command, depth, maxPages, concurrency, rateLimit, timeoutSecs *int) {
	merge := func(name, key string, dst *int) {
		flag := cmd.Flags().Lookup(name)
		if flag != nil && flag.Changed {
			return
		}
		if viper.IsSet(key) {
			*dst = viper.GetInt(key)
		}
	}
	merge("depth", "crawl.depth", depth)
	merge("max-pages", "crawl.max_pages", maxPages)
	merge("concurrency", "crawl.concurrency", concurrency)
	merge("rate-limit", "crawl.rate_limit", rateLimit)
	merge("timeout", "crawl.timeout_secs", timeoutSecs)
}

func init() {
	crawlCmd.Flags().Int("depth", 2, "maximum link depth from each seed")
	crawlCmd.Flags().Int("max-pages", 50, "maximum number of pages to fetch")
	crawlCmd.Flags().Int("concurrency", 4, "concurrent fetches")
	crawlCmd.Flags().Int("rate-limit", 5, "requests per second")
	crawlCmd.Flags().Int("timeout", 10, "per-request timeout in seconds")
	crawlCmd.Flags().Bool("all-hosts", false, "follow links to other hosts")
	crawlCmd.Flags().StringP("output", "o", "", "output file (default <results-dir>/pages.json)")
}
