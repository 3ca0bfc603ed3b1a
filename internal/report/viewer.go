// ABOUTME: Validation report viewer: fetches the backend's markdown report and renders it
// ABOUTME: Refreshes are generation-checked so only the newest response is kept

package report

import (
	"context"
	"errors"
	"sync"

	"github.com/mauromedda/sda-go/internal/log"
)

// Placeholder is rendered while no report is available.
const Placeholder = "_No validation report yet._"

// ErrStale is returned by Refresh when a newer refresh superseded it.
var ErrStale = errors.New("report: stale report discarded")

// Source fetches the validation report markdown.
type Source interface {
	ValidationReport(ctx context.Context) (string, error)
}

// Viewer holds the latest validation report.
type Viewer struct {
	src      Source
	renderer *Renderer

	mu  sync.Mutex
	gen uint64
	md  string
	err error
}

// NewViewer creates a viewer that renders with renderer.
func NewViewer(src Source, renderer *Renderer) *Viewer {
	if renderer == nil {
		renderer = NewRenderer(StyleAuto)
	}
	return &Viewer{src: src, renderer: renderer}
}

// Refresh fetches the report. A failed refresh keeps the previous markdown
// and records the error.
func (v *Viewer) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.mu.Unlock()

	md, err := v.src.ValidationReport(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		log.Debug("report: dropping stale report (gen %d, current %d)", gen, v.gen)
		return ErrStale
	}
	v.err = err
	if err != nil {
		return err
	}
	v.md = md
	return nil
}

// Markdown returns the raw report.
func (v *Viewer) Markdown() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.md
}

// Err returns the error of the last applied refresh.
func (v *Viewer) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Render returns the report rendered at width, or the placeholder.
func (v *Viewer) Render(width int) string {
	md := v.Markdown()
	if md == "" {
		md = Placeholder
	}
	return v.renderer.Render(md, width)
}
