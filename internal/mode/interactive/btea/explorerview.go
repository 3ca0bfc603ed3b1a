// ABOUTME: Explorer pane: breadcrumb trail, history arrows and the filtered listing
// ABOUTME: Selection and filter are view state; navigation state lives in explorer.Controller

package btea

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mauromedda/sda-go/internal/explorer"
	"github.com/mauromedda/sda-go/pkg/api"
	"github.com/mauromedda/sda-go/pkg/tui/width"
)

// Texts shown in the explorer pane.
const (
	explorerFailedText  = "Could not load folder."
	explorerLoadingText = "Loading..."
	explorerEmptyText   = "(empty folder)"
	explorerNoMatchText = "No entries match the filter."
)

// ExplorerPane holds view state for the listing.
type ExplorerPane struct {
	selected int
	filter   string
	shown    string // cwd the selection refers to
	width    int
	height   int
}

// entries returns the listing after filtering.
func (p ExplorerPane) entries(v explorer.View) []api.DirEntry {
	return explorer.Filter(v.Entries, p.filter)
}

// current returns the selected entry, if any.
func (p ExplorerPane) current(v explorer.View) (api.DirEntry, bool) {
	list := p.entries(v)
	if v.Status != explorer.StatusReady || p.selected < 0 || p.selected >= len(list) {
		return api.DirEntry{}, false
	}
	return list[p.selected], true
}

// move shifts the selection by delta, clamped to the listing.
func (p ExplorerPane) move(v explorer.View, delta int) ExplorerPane {
	n := len(p.entries(v))
	p.selected = max(0, min(p.selected+delta, n-1))
	return p
}

// sync resets the selection when a different folder is shown.
func (p ExplorerPane) sync(v explorer.View) ExplorerPane {
	if v.Status == explorer.StatusReady && v.Cwd != p.shown {
		p.shown = v.Cwd
		p.selected = 0
	}
	return p.move(v, 0)
}

// withFilter sets the filter and resets the selection.
func (p ExplorerPane) withFilter(f string) ExplorerPane {
	p.filter = strings.TrimSpace(f)
	p.selected = 0
	return p
}

// View renders the pane content for the controller state.
func (p ExplorerPane) View(c *explorer.Controller, spinner string) string {
	st := Styles()
	v := c.View()
	cols := max(p.width, 10)

	var b strings.Builder
	b.WriteString(renderCrumbs(c.Breadcrumb(), cols))
	b.WriteString("\n")

	back, fwd := st.Dim.Render("◀"), st.Dim.Render("▶")
	if c.CanGoBack() {
		back = "◀"
	}
	if c.CanGoForward() {
		fwd = "▶"
	}
	status := back + " " + fwd
	if p.filter != "" {
		status += "  " + st.Notice.Render("filter: "+p.filter)
	}
	b.WriteString(status)
	b.WriteString("\n")

	switch v.Status {
	case explorer.StatusPending:
		b.WriteString(spinner + " " + explorerLoadingText)
		return b.String()
	case explorer.StatusFailed:
		b.WriteString(st.Failed.Render(explorerFailedText))
		b.WriteString("\n")
		b.WriteString(st.Dim.Render("press r to retry"))
		return b.String()
	}

	list := p.entries(v)
	if len(list) == 0 {
		if len(v.Entries) == 0 {
			b.WriteString(st.Dim.Render(explorerEmptyText))
		} else {
			b.WriteString(st.Dim.Render(explorerNoMatchText))
		}
		return b.String()
	}

	rows := max(p.height-2, 1)
	start := 0
	if p.selected >= rows {
		start = p.selected - rows + 1
	}
	end := min(start+rows, len(list))
	for i := start; i < end; i++ {
		line := formatEntry(list[i], cols)
		switch {
		case i == p.selected:
			line = st.Selected.Render(line)
		case list[i].IsDir():
			line = st.Dir.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderCrumbs renders the trail with the index used by the crumb keys.
func renderCrumbs(crumbs []explorer.Crumb, cols int) string {
	st := Styles()
	parts := make([]string, len(crumbs))
	for i, c := range crumbs {
		label := c.Label
		if i < 10 {
			label = strconv.Itoa(i) + ":" + label
		}
		if i == len(crumbs)-1 {
			parts[i] = st.CrumbActive.Render(label)
		} else {
			parts[i] = st.Crumb.Render(label)
		}
	}
	line := strings.Join(parts, st.Dim.Render(" › "))
	if width.VisibleWidth(line) > cols {
		// Keep the deepest crumbs visible.
		for len(parts) > 1 && width.VisibleWidth(line) > cols {
			parts = parts[1:]
			line = "… " + strings.Join(parts, st.Dim.Render(" › "))
		}
	}
	return line
}

// formatEntry lays out name, size and mtime in cols columns.
func formatEntry(e api.DirEntry, cols int) string {
	name := e.Name
	if e.IsDir() {
		name += "/"
	}
	meta := fmt.Sprintf("%8s  %s", formatSize(e), formatMtime(e.Mtime))
	nameCols := cols - width.VisibleWidth(meta) - 1
	if nameCols < 8 {
		return width.Fit(name, cols)
	}
	return width.Fit(name, nameCols) + " " + meta
}

// formatSize renders a byte count with binary units. Directories and
// unknown sizes render as "-".
func formatSize(e api.DirEntry) string {
	if e.IsDir() || e.Size == nil {
		return "-"
	}
	n := *e.Size
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// formatMtime renders a unix timestamp in local time; empty when unknown.
func formatMtime(mtime *float64) string {
	if mtime == nil {
		return "                "
	}
	sec := int64(*mtime)
	nsec := int64((*mtime - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).Local().Format("2006-01-02 15:04")
}
