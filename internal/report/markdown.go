// ABOUTME: Markdown renderer wrapper around glamour for terminal output
// ABOUTME: Caches rendered results in a bounded LRU keyed by content hash and width

package report

import (
	"container/list"
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// StyleAuto picks a dark or light style from the terminal background.
const StyleAuto = "auto"

// cacheSize bounds the renderings kept; a transcript re-rendered at a few
// widths fits comfortably.
const cacheSize = 256

// Renderer renders markdown with glamour and caches the result. Safe for
// concurrent use.
type Renderer struct {
	style string

	mu    sync.Mutex
	cache *lru // "hash:width" -> rendered
}

// NewRenderer creates a Renderer for a glamour standard style name
// ("dark", "light", "notty", "ascii") or StyleAuto. Empty means auto.
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = StyleAuto
	}
	return &Renderer{
		style: style,
		cache: newLRU(cacheSize),
	}
}

// Render returns the terminal-styled rendering of md wrapped at width.
// On renderer failure the raw markdown is returned.
func (r *Renderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}

	key := cacheKey(md, width)
	r.mu.Lock()
	cached, ok := r.cache.get(key)
	r.mu.Unlock()
	if ok {
		return cached
	}

	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == StyleAuto {
		styleOpt = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}

	// Trim trailing whitespace that glamour adds
	rendered = strings.TrimRight(rendered, "\n ")

	r.mu.Lock()
	r.cache.put(key, rendered)
	r.mu.Unlock()
	return rendered
}

func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}

type lruEntry struct {
	key, value string
}

// lru is a fixed-size least-recently-used map. Callers hold Renderer.mu.
type lru struct {
	items map[string]*list.Element
	order *list.List
	size  int
}

func newLRU(size int) *lru {
	return &lru{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *lru) get(key string) (string, bool) {
	elem, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry).value, true
}

func (c *lru) put(key, value string) {
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return
	}
	if c.order.Len() >= c.size {
		// Evict least recently used (back of list)
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}

func (c *lru) len() int { return c.order.Len() }
