package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"saints/internal/catalog"
	"saints/internal/config"
	"saints/internal/logging"
	"saints/internal/pipeline"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var destFlag string
	var booksFlag bool
	var podcastsFlag bool
	var dryRunFlag bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download audiobook chapters and podcast episodes",
		Long: `Fetch discovers chapter and episode pages for each configured volume and
podcast season, resolves their audio URLs, and downloads the files. Files
already present on disk are skipped, so re-running only picks up what a
previous run missed.

With neither --books nor --podcasts, both are processed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if destFlag != "" {
				expanded, err := configExpand(destFlag)
				if err != nil {
					return err
				}
				cfg.Paths.DestDir = expanded
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			// Nothing selected means everything.
			if !booksFlag && !podcastsFlag {
				booksFlag = true
				podcastsFlag = true
			}

			lock := flock.New(filepath.Join(cfg.Paths.DestDir, ".saints.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another saints run is already writing to %s", cfg.Paths.DestDir)
			}
			defer lock.Unlock()

			p, err := pipeline.New(cfg, logger,
				pipeline.WithOutput(cmd.OutOrStdout()),
				pipeline.WithDryRun(dryRunFlag),
				pipeline.WithProgressBar(isTerminal(os.Stdout)),
			)
			if err != nil {
				return err
			}

			var collections []catalog.Collection
			if booksFlag {
				collections = append(collections, catalog.Volumes(cfg)...)
			}
			if podcastsFlag {
				collections = append(collections, catalog.Podcasts(cfg)...)
			}

			summaries := make([]pipeline.Summary, 0, len(collections))
			for _, col := range collections {
				summary, err := p.Run(cmd.Context(), col)
				if err != nil {
					logger.Error("collection failed",
						logging.String("collection", col.Name),
						logging.Error(err),
					)
					return err
				}
				summaries = append(summaries, summary)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSummaries(summaries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&destFlag, "dest", "d", "", "Output directory (default from config, ./saints_audio)")
	cmd.Flags().BoolVar(&booksFlag, "books", false, "Download book volumes")
	cmd.Flags().BoolVar(&podcastsFlag, "podcasts", false, "Download podcast seasons")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Resolve and report audio URLs without downloading")

	return cmd
}

func renderSummaries(summaries []pipeline.Summary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Collection,
			strconv.Itoa(s.Links),
			strconv.Itoa(s.Downloaded),
			strconv.Itoa(s.Skipped),
			strconv.Itoa(s.Missing),
		})
	}
	return renderTable(
		[]string{"Collection", "Links", "Downloaded", "Skipped", "Missing"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
	)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func configExpand(path string) (string, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve dest directory: %w", err)
	}
	if expanded == "" {
		return "", errors.New("dest directory must not be empty")
	}
	return expanded, nil
}
