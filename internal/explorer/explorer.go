// ABOUTME: Directory explorer controller: browser-style history over a lazily fetched remote tree
// ABOUTME: Every dispatch carries a generation token; results for superseded dispatches are dropped

package explorer

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/mauromedda/sda-go/internal/log"
	"github.com/mauromedda/sda-go/pkg/api"
)

// ErrStale is returned by Fetch.Run when a newer dispatch superseded it.
// The result was not applied; callers drop it silently.
var ErrStale = errors.New("explorer: stale listing discarded")

// Lister fetches one directory listing.
type Lister interface {
	ListDirectory(ctx context.Context, path string) (api.Listing, error)
}

// Status is the load state of the current view.
type Status int

const (
	StatusPending Status = iota
	StatusReady
	StatusFailed
)

// View is the listing for the path at the history cursor.
type View struct {
	// Path is the history entry being shown.
	Path string
	// Cwd is the canonical path reported by the backend once ready.
	Cwd     string
	Entries []api.DirEntry
	Status  Status
	Err     error
}

// Controller owns the navigation history and the current listing.
// All methods are safe for concurrent use.
type Controller struct {
	lister Lister

	mu      sync.Mutex
	history []string
	cursor  int
	gen     uint64
	view    View
}

// NewController creates a controller positioned at the root. Nothing is
// fetched until Refresh (or a navigation) is run.
func NewController(lister Lister) *Controller {
	return &Controller{
		lister:  lister,
		history: []string{""},
		view:    View{Status: StatusPending},
	}
}

// View returns a copy of the current view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.view
	v.Entries = slices.Clone(v.Entries)
	return v
}

// History returns a copy of the history and the cursor index.
func (c *Controller) History() ([]string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.history), c.cursor
}

// Current returns the path at the cursor.
func (c *Controller) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history[c.cursor]
}

// CanGoBack reports whether Back would move the cursor.
func (c *Controller) CanGoBack() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor > 0
}

// CanGoForward reports whether Forward would move the cursor.
func (c *Controller) CanGoForward() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor < len(c.history)-1
}

// Breadcrumb returns the trail for the current view: the canonical cwd once
// a listing is applied, the requested path before that.
func (c *Controller) Breadcrumb() []Crumb {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view.Status == StatusReady {
		return Breadcrumb(c.view.Cwd)
	}
	return Breadcrumb(c.history[c.cursor])
}

// NavigateTo pushes path onto the history, discarding forward entries, and
// returns the fetch for it.
func (c *Controller) NavigateTo(path string) *Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigateLocked(Normalize(path))
}

// Back moves the cursor one entry back. Returns nil at the oldest entry.
func (c *Controller) Back() *Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cursor == 0 {
		return nil
	}
	c.cursor--
	return c.dispatchLocked()
}

// Forward moves the cursor one entry forward. Returns nil at the newest entry.
func (c *Controller) Forward() *Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cursor == len(c.history)-1 {
		return nil
	}
	c.cursor++
	return c.dispatchLocked()
}

// Up navigates to the parent of the current path, pushing a new history
// entry. Returns nil at the root.
func (c *Controller) Up() *Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur := c.history[c.cursor]
	if cur == "" {
		return nil
	}
	return c.navigateLocked(Parent(cur))
}

// Refresh refetches the current path without touching the history.
func (c *Controller) Refresh() *Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked()
}

func (c *Controller) navigateLocked(p string) *Fetch {
	c.history = append(c.history[:c.cursor+1], p)
	c.cursor = len(c.history) - 1
	return c.dispatchLocked()
}

// dispatchLocked supersedes any outstanding fetch and marks the view pending.
func (c *Controller) dispatchLocked() *Fetch {
	c.gen++
	p := c.history[c.cursor]
	c.view = View{Path: p, Status: StatusPending}
	return &Fetch{c: c, path: p, gen: c.gen}
}

// resolve applies a finished fetch unless it was superseded.
func (c *Controller) resolve(f *Fetch, listing api.Listing, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f.gen != c.gen {
		log.Debug("explorer: dropping stale listing for %q (gen %d, current %d)", f.path, f.gen, c.gen)
		return ErrStale
	}

	if err != nil {
		c.view = View{Path: f.path, Status: StatusFailed, Err: err}
		return err
	}

	cwd := f.path
	if listing.Cwd != "" {
		cwd = Normalize(listing.Cwd)
	}
	// The backend's canonical path replaces the requested one so that the
	// history entry and the rendered listing agree.
	c.history[c.cursor] = cwd
	c.view = View{
		Path:    cwd,
		Cwd:     cwd,
		Entries: slices.Clone(listing.Entries),
		Status:  StatusReady,
	}
	return nil
}

// Fetch is one dispatched listing request.
type Fetch struct {
	c    *Controller
	path string
	gen  uint64
}

// Path returns the requested path.
func (f *Fetch) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Run lists the path and applies the result if still current. A nil Fetch
// (a no-op navigation) returns nil.
func (f *Fetch) Run(ctx context.Context) error {
	if f == nil {
		return nil
	}
	listing, err := f.c.lister.ListDirectory(ctx, f.path)
	return f.c.resolve(f, listing, err)
}
