// ABOUTME: Tests for the explorer controller: history truncation, cursor bounds, stale discard
// ABOUTME: A fake lister echoes the requested path as cwd unless a canonical override is set

package explorer

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"github.com/mauromedda/sda-go/pkg/api"
)

var errList = errors.New("list failed")

type fakeLister struct {
	mu    sync.Mutex
	calls []string
	cwd   map[string]string
	fail  map[string]bool
	gates map[string]chan struct{}
}

func newFakeLister() *fakeLister {
	return &fakeLister{
		cwd:   map[string]string{},
		fail:  map[string]bool{},
		gates: map[string]chan struct{}{},
	}
}

func (f *fakeLister) ListDirectory(_ context.Context, path string) (api.Listing, error) {
	f.mu.Lock()
	f.calls = append(f.calls, path)
	gate := f.gates[path]
	fail := f.fail[path]
	cwd, ok := f.cwd[path]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if fail {
		return api.Listing{}, errList
	}
	if !ok {
		cwd = path
	}
	return api.Listing{
		OK:  true,
		Cwd: cwd,
		Entries: []api.DirEntry{
			{Name: "z.csv", Path: joinPath(cwd, "z.csv"), Type: api.EntryFile},
			{Name: "a", Path: joinPath(cwd, "a"), Type: api.EntryDir},
		},
	}, nil
}

func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

func run(t *testing.T, f *Fetch) {
	t.Helper()
	if err := f.Run(context.Background()); err != nil {
		t.Fatalf("Run(%q): %v", f.Path(), err)
	}
}

func assertHistory(t *testing.T, c *Controller, want []string, wantCursor int) {
	t.Helper()
	got, cursor := c.History()
	if !slices.Equal(got, want) || cursor != wantCursor {
		t.Fatalf("history = %q @%d, want %q @%d", got, cursor, want, wantCursor)
	}
}

func TestController_StartsAtRoot(t *testing.T) {
	t.Parallel()

	c := NewController(newFakeLister())
	assertHistory(t, c, []string{""}, 0)
	if v := c.View(); v.Status != StatusPending {
		t.Errorf("initial status = %v, want pending", v.Status)
	}
	run(t, c.Refresh())
	v := c.View()
	if v.Status != StatusReady || v.Cwd != "" || len(v.Entries) != 2 {
		t.Errorf("view after refresh = %+v", v)
	}
}

func TestController_BackForwardNoOpAtEnds(t *testing.T) {
	t.Parallel()

	fl := newFakeLister()
	c := NewController(fl)
	if f := c.Back(); f != nil {
		t.Error("Back at oldest entry returned a fetch")
	}
	if f := c.Forward(); f != nil {
		t.Error("Forward at newest entry returned a fetch")
	}
	if err := c.Back().Run(context.Background()); err != nil {
		t.Errorf("nil fetch Run = %v", err)
	}
	assertHistory(t, c, []string{""}, 0)
	if len(fl.calls) != 0 {
		t.Errorf("no-op navigation issued %d requests", len(fl.calls))
	}
}

func TestController_NavigateTruncatesForwardHistory(t *testing.T) {
	t.Parallel()

	c := NewController(newFakeLister())
	run(t, c.NavigateTo("a"))
	run(t, c.NavigateTo("a/b"))
	run(t, c.Back())
	run(t, c.Back())
	assertHistory(t, c, []string{"", "a", "a/b"}, 0)

	run(t, c.NavigateTo("x"))
	assertHistory(t, c, []string{"", "x"}, 1)
	if c.CanGoForward() {
		t.Error("forward history survived navigation")
	}
}

func TestController_UpPushesAndDiscardsForward(t *testing.T) {
	t.Parallel()

	c := NewController(newFakeLister())
	run(t, c.NavigateTo("a"))
	run(t, c.NavigateTo("a/b"))
	run(t, c.Back())
	assertHistory(t, c, []string{"", "a", "a/b"}, 1)

	run(t, c.Up())
	assertHistory(t, c, []string{"", "a", ""}, 2)
	if f := c.Up(); f != nil {
		t.Error("Up at root returned a fetch")
	}
	assertHistory(t, c, []string{"", "a", ""}, 2)
}

func TestController_StaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	fl := newFakeLister()
	slow := make(chan struct{})
	fl.gates["a"] = slow
	c := NewController(fl)

	first := c.NavigateTo("a")
	errc := make(chan error, 1)
	go func() { errc <- first.Run(context.Background()) }()

	second := c.NavigateTo("b")
	run(t, second)

	close(slow)
	if err := <-errc; !errors.Is(err, ErrStale) {
		t.Fatalf("late fetch error = %v, want ErrStale", err)
	}
	v := c.View()
	if v.Cwd != "b" || v.Status != StatusReady {
		t.Errorf("view = %+v, want listing of b", v)
	}
	assertHistory(t, c, []string{"", "a", "b"}, 2)
}

func TestController_RefreshSupersedesOutstandingFetch(t *testing.T) {
	t.Parallel()

	c := NewController(newFakeLister())
	old := c.NavigateTo("a")
	run(t, c.Refresh())
	if err := old.Run(context.Background()); !errors.Is(err, ErrStale) {
		t.Errorf("superseded fetch error = %v, want ErrStale", err)
	}
}

func TestController_FailureKeepsHistory(t *testing.T) {
	t.Parallel()

	fl := newFakeLister()
	fl.fail["broken"] = true
	c := NewController(fl)

	err := c.NavigateTo("broken").Run(context.Background())
	if !errors.Is(err, errList) {
		t.Fatalf("Run = %v, want errList", err)
	}
	v := c.View()
	if v.Status != StatusFailed || !errors.Is(v.Err, errList) || v.Path != "broken" {
		t.Errorf("view = %+v", v)
	}
	assertHistory(t, c, []string{"", "broken"}, 1)

	run(t, c.Back())
	if v := c.View(); v.Status != StatusReady || v.Cwd != "" {
		t.Errorf("view after back = %+v", v)
	}
}

func TestController_CanonicalCwdRewritesHistory(t *testing.T) {
	t.Parallel()

	fl := newFakeLister()
	fl.cwd["runs/latest"] = "runs/2024-01-01"
	c := NewController(fl)

	run(t, c.NavigateTo("/runs/./latest/"))
	assertHistory(t, c, []string{"", "runs/2024-01-01"}, 1)
	if got := c.View().Cwd; got != "runs/2024-01-01" {
		t.Errorf("Cwd = %q", got)
	}
	crumbs := c.Breadcrumb()
	if len(crumbs) != 3 || crumbs[2].Path != "runs/2024-01-01" {
		t.Errorf("Breadcrumb = %+v", crumbs)
	}
}

func TestController_ViewIsACopy(t *testing.T) {
	t.Parallel()

	c := NewController(newFakeLister())
	run(t, c.Refresh())
	v := c.View()
	v.Entries[0].Name = "mutated"
	if c.View().Entries[0].Name == "mutated" {
		t.Error("View exposed internal entries")
	}
}

// TestController_RandomWalkMatchesModel drives random navigation and checks
// the history and cursor against a plain slice model after every step.
func TestController_RandomWalkMatchesModel(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	paths := []string{"a", "a/b", "c", "c/d/e"}
	c := NewController(newFakeLister())
	model, cursor := []string{""}, 0

	for step := range 500 {
		switch rng.IntN(4) {
		case 0:
			p := paths[rng.IntN(len(paths))]
			run(t, c.NavigateTo(p))
			model = append(model[:cursor+1], p)
			cursor++
		case 1:
			f := c.Back()
			if (f == nil) != (cursor == 0) {
				t.Fatalf("step %d: Back nil=%v at cursor %d", step, f == nil, cursor)
			}
			if f != nil {
				run(t, f)
				cursor--
			}
		case 2:
			f := c.Forward()
			if (f == nil) != (cursor == len(model)-1) {
				t.Fatalf("step %d: Forward nil=%v at cursor %d/%d", step, f == nil, cursor, len(model))
			}
			if f != nil {
				run(t, f)
				cursor++
			}
		case 3:
			f := c.Up()
			if (f == nil) != (model[cursor] == "") {
				t.Fatalf("step %d: Up nil=%v at %q", step, f == nil, model[cursor])
			}
			if f != nil {
				run(t, f)
				model = append(model[:cursor+1], Parent(model[cursor]))
				cursor++
			}
		}

		got, gotCursor := c.History()
		if gotCursor < 0 || gotCursor >= len(got) {
			t.Fatalf("step %d: cursor %d out of bounds for %d entries", step, gotCursor, len(got))
		}
		if !slices.Equal(got, model) || gotCursor != cursor {
			t.Fatalf("step %d: history %q @%d, model %q @%d", step, got, gotCursor, model, cursor)
		}
		if v := c.View(); v.Cwd != got[gotCursor] {
			t.Fatalf("step %d: view cwd %q != history %q", step, v.Cwd, got[gotCursor])
		}
	}
}
