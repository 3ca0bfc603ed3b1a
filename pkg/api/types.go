// ABOUTME: Wire types for the agent service JSON contract
// ABOUTME: Separated for easyjson codegen (zero-reflection decoding on every response)

//go:generate easyjson -all types.go

package api

// EntryType distinguishes files from directories in a listing.
type EntryType string

const (
	EntryFile EntryType = "file"
	EntryDir  EntryType = "dir"
)

// ChatRequest is the body of every message-carrying chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply is returned by the four chat endpoints.
type ChatReply struct {
	OK    bool   `json:"ok"`
	Reply string `json:"reply,omitempty"`
}

// DirEntry is one row of a directory listing.
// Size is in bytes; Mtime is epoch seconds. Both are optional.
type DirEntry struct {
	Name  string    `json:"name"`
	Path  string    `json:"path"`
	Type  EntryType `json:"type"`
	Size  *int64    `json:"size,omitempty"`
	Mtime *float64  `json:"mtime,omitempty"`
}

// IsDir reports whether the entry can be opened as a folder.
func (e DirEntry) IsDir() bool { return e.Type == EntryDir }

// Listing is the list-directory response. Cwd is the canonical path the
// backend actually listed, which may differ from the requested one.
type Listing struct {
	OK      bool       `json:"ok"`
	Cwd     string     `json:"cwd"`
	Entries []DirEntry `json:"entries"`
}

// Report carries the validation report markdown of the active run.
type Report struct {
	MD string `json:"md"`
}

// RunFiles lists the CSV outputs of the active run.
type RunFiles struct {
	OK        bool     `json:"ok"`
	Files     []string `json:"files"`
	ActiveRun string   `json:"active_run,omitempty"`
}

// Health is the backend liveness payload.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}
