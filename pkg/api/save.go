// ABOUTME: Saves a downloaded run file into a local directory
// ABOUTME: The server-supplied filename is reduced to its base name before use

package api

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SaveFile downloads the file at remotePath into dir and returns the local path.
// A partially written file is removed on error.
func (c *Client) SaveFile(ctx context.Context, remotePath, dir string) (string, error) {
	dl, err := c.Download(ctx, remotePath)
	if err != nil {
		return "", err
	}
	defer dl.Body.Close()

	name := filepath.Base(filepath.Clean("/" + dl.Filename))
	if name == "/" || name == "." {
		return "", fmt.Errorf("download-file: unusable file name %q", dl.Filename)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating download dir: %w", err)
	}

	dest := filepath.Join(dir, name)
	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dest, err)
	}

	if _, err := io.Copy(f, dl.Body); err != nil {
		f.Close()
		os.Remove(dest)
		return "", &NetworkError{Op: "download-file", Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("closing %s: %w", dest, err)
	}
	return dest, nil
}
