// Package preview renders PDF pages into PNG preview images by shelling out
// to poppler's pdftoppm.
package preview

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"docverify/internal/config"
	"docverify/internal/domain"
)

// Runner lets us stub the external command in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	return out.Bytes(), errb.Bytes(), err
}

// Renderer implements port.PreviewRenderer using pdftoppm.
type Renderer struct {
	cfg    *config.PreviewConfig
	runner Runner
}

// NewRenderer creates a pdftoppm-backed preview renderer.
func NewRenderer(cfg *config.PreviewConfig) *Renderer {
	return &Renderer{cfg: cfg, runner: execRunner{}}
}

// NewRendererWithRunner creates a renderer with a custom command runner (for testing).
func NewRendererWithRunner(cfg *config.PreviewConfig, runner Runner) *Renderer {
	return &Renderer{cfg: cfg, runner: runner}
}

// RenderPreviews writes the PDF to a temp dir, renders one PNG per page, and
// returns the page images in order. No pages rendered is a hard failure.
func (r *Renderer) RenderPreviews(ctx context.Context, pdfBytes []byte) ([][]byte, error) {
	tmpDir, err := os.MkdirTemp("", "docverify-preview-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			log.Printf("preview.Renderer: failed to remove temp dir %q: %v", tmpDir, rmErr)
		}
	}()

	pdfPath := filepath.Join(tmpDir, "document.pdf")
	if err := os.WriteFile(pdfPath, pdfBytes, 0o600); err != nil {
		return nil, fmt.Errorf("writing temp pdf: %w", err)
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, stderr, err := r.runner.Run(ctx, r.cfg.PdftoppmPath, "-r", fmt.Sprintf("%d", r.cfg.DPI), "-png", pdfPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: pdftoppm: %v (%s)", domain.ErrPreviewRender, err, truncate(string(stderr), 512))
	}

	// Collect generated pngs (prefix-1.png, prefix-2.png, ...). Sorted by the
	// numeric page suffix: pdftoppm zero-pads page numbers, but the ordering
	// must not depend on that.
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Slice(matches, func(i, j int) bool {
		return pageNumber(matches[i]) < pageNumber(matches[j])
	})
	if r.cfg.MaxPages > 0 && len(matches) > r.cfg.MaxPages {
		matches = matches[:r.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: pdftoppm produced no images", domain.ErrPreviewRender)
	}

	pages := make([][]byte, 0, len(matches))
	for _, img := range matches {
		data, err := os.ReadFile(img)
		if err != nil {
			return nil, fmt.Errorf("reading rendered page %s: %w", filepath.Base(img), err)
		}
		pages = append(pages, data)
	}

	return pages, nil
}

// pageNumber extracts the numeric page suffix from "<prefix>-<n>.png".
func pageNumber(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), ".png")
	idx := strings.LastIndex(base, "-")
	if idx == -1 {
		return 0
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
