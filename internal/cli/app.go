package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"factcloud/config"
	"factcloud/internal/adapter/analyzer"
	"factcloud/internal/adapter/fs"
	"factcloud/internal/adapter/render"
	"factcloud/internal/domain"
	"factcloud/internal/port"
	"factcloud/internal/usecase"
)

// newAnalyzeUseCase wires the analyzer and cloud options from cfg.
func newAnalyzeUseCase(cfg *config.Config) (*usecase.AnalyzeUseCase, error) {
	a, err := analyzer.New(analyzer.Options{
		Lowercase:      cfg.Text.Lowercase,
		MinWordLength:  cfg.Text.MinWordLength,
		ExtraStopwords: cfg.Text.ExtraStopwords,
		Stemming:       cfg.Text.Stemming,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}
	return usecase.NewAnalyzeUseCase(a, cloudOptions(cfg))
}

func cloudOptions(cfg *config.Config) render.CloudOptions {
	return render.CloudOptions{
		Width:           cfg.Cloud.Width,
		Height:          cfg.Cloud.Height,
		BackgroundColor: cfg.Cloud.BackgroundColor,
		MaxWords:        cfg.Cloud.MaxWords,
		Collocations:    cfg.Cloud.Collocations,
	}
}

// loadFacts reads facts named by args, in argument order. "-" reads stdin,
// directories are walked with the configured patterns and glob patterns are
// expanded with doublestar. Without args the root directory is walked.
func loadFacts(ctx context.Context, args []string, stdin io.Reader, progressOut io.Writer) ([]string, error) {
	cfg := GetConfig()
	walker := fs.NewWalker(cfg.Facts.Includes, cfg.Facts.Excludes)

	var sources []port.FactSource
	if len(args) == 0 {
		src, err := fs.NewWalkedSource(walker, GetRootDir(), newProgress(progressOut))
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	var pending []string
	flush := func() {
		if len(pending) > 0 {
			sources = append(sources, fs.NewFileSource(pending, newProgress(progressOut)))
			pending = nil
		}
	}
	for _, arg := range args {
		if arg == "-" {
			if stdin == nil {
				return nil, fmt.Errorf("reading facts from stdin is not available here")
			}
			flush()
			sources = append(sources, fs.NewReaderSource(stdin))
			continue
		}

		expanded, err := expandArg(walker, arg)
		if err != nil {
			return nil, err
		}
		pending = append(pending, expanded...)
	}
	flush()

	var facts []string
	for _, src := range sources {
		lines, err := src.Facts(ctx)
		if err != nil {
			return nil, err
		}
		facts = append(facts, lines...)
	}

	logger.Info("facts loaded", zap.Int("sources", len(sources)), zap.Int("facts", len(facts)))
	return facts, nil
}

func expandArg(walker port.FileWalker, arg string) ([]string, error) {
	if strings.ContainsAny(arg, "*?[{") {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		return matches, nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}

	files, err := walker.Walk(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", arg, err)
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	logger.Debug("walked directory", zap.String("dir", filepath.Clean(arg)), zap.Int("files", len(paths)))
	return paths, nil
}

// newRenderer picks the renderer for format. The returned finish func must be
// called with the render result; a file output is removed when rendering failed.
func newRenderer(format, output string, stdout io.Writer) (port.Renderer, func(renderErr error) error, error) {
	noop := func(error) error { return nil }
	switch format {
	case "text":
		return render.NewTextRenderer(stdout), noop, nil
	case "json":
		if output == "" || output == "-" {
			return render.NewJSONRenderer(stdout), noop, nil
		}
		f, err := os.Create(output)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create %s: %w", output, err)
		}
		finish := func(renderErr error) error {
			cerr := f.Close()
			if renderErr != nil {
				if rerr := os.Remove(output); rerr != nil {
					logger.Warn("failed to remove partial output", zap.String("output", output), zap.Error(rerr))
				}
				return nil
			}
			if cerr != nil {
				return fmt.Errorf("failed to close %s: %w", output, cerr)
			}
			return nil
		}
		return render.NewJSONRenderer(f), finish, nil
	default:
		return nil, nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// renderCloud builds the request for facts and only then opens the output.
func renderCloud(uc *usecase.AnalyzeUseCase, facts []string, format, output string, stdout io.Writer) (domain.CloudRequest, error) {
	req, err := uc.CloudRequest(facts)
	if err != nil {
		return domain.CloudRequest{}, err
	}

	renderer, finish, err := newRenderer(format, output, stdout)
	if err != nil {
		return domain.CloudRequest{}, err
	}

	err = uc.Render(req, renderer)
	if ferr := finish(err); ferr != nil {
		return domain.CloudRequest{}, ferr
	}
	if err != nil {
		return domain.CloudRequest{}, err
	}
	return req, nil
}
