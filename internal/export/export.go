// Package export writes episode pages to a directory ahead of time.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/killallgit/podcastr/internal/render"
	"github.com/killallgit/podcastr/internal/services/episodes"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// PathsFile is the manifest of exported slugs, written at the output root
const PathsFile = "paths.json"

// Result summarizes one export
type Result struct {
	OutDir   string
	Pages    []string // files written, relative to OutDir
	Fallback episodes.FallbackMode
}

// Exporter renders pages into a filesystem
type Exporter struct {
	fs       afero.Afero
	service  episodes.EpisodeService
	renderer *render.Renderer
}

// New creates an exporter writing through fsys
func New(fsys afero.Fs, service episodes.EpisodeService, renderer *render.Renderer) *Exporter {
	return &Exporter{
		fs:       afero.Afero{Fs: fsys},
		service:  service,
		renderer: renderer,
	}
}

// Export renders the precomputed paths plus any extra slugs into
// outDir/episodes/{slug}/index.html and writes the paths manifest.
// The first failure aborts the export.
func (e *Exporter) Export(ctx context.Context, outDir string, extra ...string) (*Result, error) {
	paths, err := e.service.StaticPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing static paths: %w", err)
	}

	slugs := lo.Uniq(append(paths.Slugs(), extra...))
	for _, slug := range slugs {
		if _, err := pagePath(outDir, slug); err != nil {
			return nil, err
		}
	}
	result := &Result{OutDir: outDir, Fallback: paths.Fallback}

	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel, err := e.exportPage(ctx, outDir, slug)
		if err != nil {
			return nil, err
		}
		result.Pages = append(result.Pages, rel)

		logrus.WithFields(logrus.Fields{
			"slug": slug,
			"file": rel,
		}).Info("page exported")
	}

	if err := e.writeAssets(outDir); err != nil {
		return nil, err
	}

	manifest := &episodes.StaticPaths{
		Paths: lo.Map(slugs, func(slug string, _ int) episodes.Path {
			return episodes.Path{Params: episodes.PathParams{Slug: slug}}
		}),
		Fallback: paths.Fallback,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", PathsFile, err)
	}
	if err := e.fs.WriteFile(filepath.Join(outDir, PathsFile), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", PathsFile, err)
	}

	return result, nil
}

func (e *Exporter) exportPage(ctx context.Context, outDir, slug string) (string, error) {
	episode, err := e.service.LoadEpisode(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("loading episode %q: %w", slug, err)
	}

	var buf bytes.Buffer
	if err := e.renderer.RenderEpisode(&buf, episode); err != nil {
		return "", err
	}

	rel, err := pagePath(outDir, slug)
	if err != nil {
		return "", err
	}
	target := filepath.Join(outDir, rel)
	if err := e.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %q: %w", slug, err)
	}
	if err := e.fs.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing page %q: %w", slug, err)
	}

	return rel, nil
}

// pagePath returns the page file of slug relative to outDir. Slugs must be
// a single path segment so every page stays inside outDir.
func pagePath(outDir, slug string) (string, error) {
	if slug == "" || slug == "." || slug == ".." ||
		strings.ContainsAny(slug, `/\`) || filepath.Base(slug) != slug {
		return "", episodes.NewValidationError("slug", fmt.Sprintf("%q is not a single path segment", slug))
	}

	rel := filepath.Join("episodes", slug, "index.html")
	inside, err := filepath.Rel(filepath.Clean(outDir), filepath.Join(outDir, rel))
	if err != nil || inside != rel {
		return "", episodes.NewValidationError("slug", fmt.Sprintf("%q escapes the output directory", slug))
	}
	return rel, nil
}

func (e *Exporter) writeAssets(outDir string) error {
	if err := e.fs.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	return fs.WalkDir(render.Assets(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(render.Assets(), path)
		if err != nil {
			return err
		}
		if err := e.fs.WriteFile(filepath.Join(outDir, path), data, 0o644); err != nil {
			return fmt.Errorf("writing asset %s: %w", path, err)
		}
		return nil
	})
}
