package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"saints/internal/catalog"
	"saints/internal/config"
	"saints/internal/download"
	"saints/internal/extract"
	"saints/internal/fetch"
	"saints/internal/logging"
	"saints/internal/resolve"
)

// Summary reports what one collection run did.
type Summary struct {
	Collection string
	Links      int
	Downloaded int
	Skipped    int
	Missing    int
}

// task is the unit of work built per discovered link: where the audio lives
// (possibly nowhere) and where it should land.
type task struct {
	link       string
	resolution resolve.Resolution
	dest       string
}

// Pipeline drives extraction, resolution, and download for one collection at
// a time. The flow is strictly batched: extract all links, resolve all
// metadata, report misses, then download in one pass.
type Pipeline struct {
	client     *fetch.Client
	extractor  extract.Extractor
	resolver   *resolve.Resolver
	downloader *download.Downloader
	logger     *slog.Logger
	out        io.Writer

	baseURL  string
	language string
	destDir  string

	dryRun      bool
	progressBar bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithOutput redirects the operator-facing console lines (URL dump and
// per-item progress). Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) {
		if w != nil {
			p.out = w
		}
	}
}

// WithDryRun extracts and resolves but downloads nothing.
func WithDryRun(on bool) Option {
	return func(p *Pipeline) { p.dryRun = on }
}

// WithProgressBar enables the interactive progress bar. Callers should gate
// this on stdout being a terminal.
func WithProgressBar(on bool) Option {
	return func(p *Pipeline) { p.progressBar = on }
}

// New builds a Pipeline from configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Pipeline, error) {
	extractor, err := extract.New(cfg.Site.Extractor)
	if err != nil {
		return nil, err
	}

	client := fetch.New(cfg.Site.UserAgent, time.Duration(cfg.Site.TimeoutSeconds)*time.Second)
	p := &Pipeline{
		client:     client,
		extractor:  extractor,
		resolver:   resolve.New(client, cfg.Site.BaseURL),
		downloader: download.New(client),
		logger:     logging.WithComponent(logger, "pipeline"),
		out:        os.Stdout,
		baseURL:    cfg.Site.BaseURL,
		language:   cfg.Site.Language,
		destDir:    cfg.Paths.DestDir,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run processes one collection: a volume's chapters or a podcast season's
// episodes. Soft misses (pages without audio) are reported and skipped; any
// network or decode failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, col catalog.Collection) (Summary, error) {
	summary := Summary{Collection: col.Name}

	links, err := p.discoverLinks(ctx, col)
	if err != nil {
		return summary, err
	}
	summary.Links = len(links)
	p.logger.Info("discovered links",
		logging.String("collection", col.Name),
		logging.Int("links", len(links)),
	)

	tasks, err := p.resolveTasks(ctx, col, links)
	if err != nil {
		return summary, err
	}

	p.reportResolved(col, tasks)
	summary.Missing = p.reportMisses(col, tasks)

	if p.dryRun {
		p.logger.Info("dry run, skipping downloads", logging.String("collection", col.Name))
		return summary, nil
	}

	if err := p.downloadTasks(ctx, col, tasks, &summary); err != nil {
		return summary, err
	}

	p.logger.Info("collection complete",
		logging.String("collection", col.Name),
		logging.Int("downloaded", summary.Downloaded),
		logging.Int("skipped", summary.Skipped),
		logging.Int("missing", summary.Missing),
	)
	return summary, nil
}

func (p *Pipeline) discoverLinks(ctx context.Context, col catalog.Collection) ([]string, error) {
	listing := fmt.Sprintf("%s/study/history/%s?lang=%s", p.baseURL, col.Slug, p.language)
	body, err := p.client.Text(ctx, listing)
	if err != nil {
		return nil, err
	}

	links, err := p.extractor.Links(body, col.Slug)
	if err != nil {
		return nil, err
	}
	if col.Kind == catalog.KindPodcast {
		return extract.Episodes(links), nil
	}
	return extract.Chapters(links), nil
}

func (p *Pipeline) resolveTasks(ctx context.Context, col catalog.Collection, links []string) ([]task, error) {
	dir := filepath.Join(p.destDir, col.Name)
	tasks := make([]task, 0, len(links))
	for _, link := range links {
		res, err := p.resolver.Resolve(ctx, link)
		if err != nil {
			return nil, err
		}
		name := Filename(Prefix(col.Kind, link), res.Title)
		tasks = append(tasks, task{
			link:       link,
			resolution: res,
			dest:       filepath.Join(dir, name),
		})
	}
	return tasks, nil
}

// reportResolved prints every resolved audio URL before any download starts,
// so an operator can see the full batch up front.
func (p *Pipeline) reportResolved(col catalog.Collection, tasks []task) {
	fmt.Fprintf(p.out, "Found audio URLs for %s:\n", col.Name)
	for _, t := range tasks {
		if t.resolution.AudioURL != "" {
			fmt.Fprintln(p.out, t.resolution.AudioURL)
		}
	}
}

func (p *Pipeline) reportMisses(col catalog.Collection, tasks []task) int {
	missing := 0
	for _, t := range tasks {
		if t.resolution.AudioURL != "" {
			continue
		}
		missing++
		identifier := t.resolution.Title
		if identifier == "" {
			identifier = t.link
		}
		p.logger.Warn("missing audio",
			logging.String("collection", col.Name),
			logging.String(string(col.Kind), identifier),
		)
	}
	return missing
}

func (p *Pipeline) downloadTasks(ctx context.Context, col catalog.Collection, tasks []task, summary *Summary) error {
	var bar *progressbar.ProgressBar
	if p.progressBar {
		bar = progressbar.NewOptions(len(tasks),
			progressbar.OptionSetDescription(col.Name),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
	}

	for i, t := range tasks {
		outcome, err := p.downloader.Download(ctx, t.resolution.AudioURL, t.dest)
		if err != nil {
			return err
		}
		switch outcome {
		case download.OutcomeDownloaded:
			summary.Downloaded++
		case download.OutcomeSkipped:
			summary.Skipped++
		}
		if bar != nil {
			bar.Add(1)
		} else {
			fmt.Fprintf(p.out, "[%d/%d] %s\n", i+1, len(tasks), filepath.Base(t.dest))
		}
	}
	return nil
}
