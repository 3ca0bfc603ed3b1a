// ABOUTME: Path normalization for remote run paths: NFC, forward slashes, no dot segments
// ABOUTME: The root of the runs directory is the empty string

package explorer

import (
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical form of a remote path: NFC-normalized,
// '/'-separated, cleaned, without leading or trailing slashes. Dot-dot
// segments cannot climb above the root. The root is "".
func Normalize(p string) string {
	p = norm.NFC.String(strings.TrimSpace(p))
	p = strings.ReplaceAll(p, `\`, "/")
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// Parent drops the last segment of a normalized path. The parent of a
// top-level entry is the root.
func Parent(p string) string {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return ""
	}
	return p[:i]
}
