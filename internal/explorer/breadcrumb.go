// ABOUTME: Breadcrumb trail reconstruction from a canonical directory path
// ABOUTME: A synthetic root crumb always leads; crumb i resolves to segments 0..i joined

package explorer

import "strings"

// RootLabel is the label of the leading synthetic crumb.
const RootLabel = "root"

// Crumb is one clickable segment of the trail.
type Crumb struct {
	Label string
	Path  string
}

// Breadcrumb splits cwd on '/', ignoring empty segments, and returns the
// trail from the root down to cwd.
func Breadcrumb(cwd string) []Crumb {
	crumbs := []Crumb{{Label: RootLabel, Path: ""}}
	var segs []string
	for _, s := range strings.Split(cwd, "/") {
		if s == "" {
			continue
		}
		segs = append(segs, s)
		crumbs = append(crumbs, Crumb{Label: s, Path: strings.Join(segs, "/")})
	}
	return crumbs
}
