// ABOUTME: Request paths of the agent service contract with per-path overrides
// ABOUTME: Blank fields fall back to the defaults served by the FastAPI backend

package api

// Endpoints maps each contract operation to a request path.
type Endpoints struct {
	StartConversational string
	ChatConversational  string
	StartFullPrompt     string
	ContinueFullPrompt  string
	ListDirectory       string
	DownloadFile        string
	ValidationReport    string
	RunFiles            string
	Health              string
}

// DefaultEndpoints returns the paths served by the reference backend.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		StartConversational: "/api/start_convo",
		ChatConversational:  "/api/chat_convo",
		StartFullPrompt:     "/api/start_full",
		ContinueFullPrompt:  "/api/continue_full",
		ListDirectory:       "/api/list_dir",
		DownloadFile:        "/api/download",
		ValidationReport:    "/api/validation",
		RunFiles:            "/api/files",
		Health:              "/healthz",
	}
}

// withDefaults fills blank fields from DefaultEndpoints.
func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Endpoints{
		StartConversational: pick(e.StartConversational, d.StartConversational),
		ChatConversational:  pick(e.ChatConversational, d.ChatConversational),
		StartFullPrompt:     pick(e.StartFullPrompt, d.StartFullPrompt),
		ContinueFullPrompt:  pick(e.ContinueFullPrompt, d.ContinueFullPrompt),
		ListDirectory:       pick(e.ListDirectory, d.ListDirectory),
		DownloadFile:        pick(e.DownloadFile, d.DownloadFile),
		ValidationReport:    pick(e.ValidationReport, d.ValidationReport),
		RunFiles:            pick(e.RunFiles, d.RunFiles),
		Health:              pick(e.Health, d.Health),
	}
}
