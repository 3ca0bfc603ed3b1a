// ABOUTME: Dependency injection struct for the Bubble Tea interactive app
// ABOUTME: Controllers are built once by the caller and shared with the wiring layer

package btea

import (
	"context"

	"github.com/mauromedda/sda-go/internal/eventbus"
	"github.com/mauromedda/sda-go/internal/explorer"
	"github.com/mauromedda/sda-go/internal/report"
	"github.com/mauromedda/sda-go/internal/session"
	"github.com/mauromedda/sda-go/pkg/api"
)

// Remote is the part of the service client used directly by the TUI.
type Remote interface {
	Health(ctx context.Context) (api.Health, error)
	RunFiles(ctx context.Context) (api.RunFiles, error)
	SaveFile(ctx context.Context, remotePath, dir string) (string, error)
}

// AppDeps bundles all dependencies for the Bubble Tea interactive app.
type AppDeps struct {
	Session  *session.Controller
	Explorer *explorer.Controller
	Report   *report.Viewer
	Markdown *report.Renderer
	Rounds   *eventbus.Bus[session.RoundSettled]
	Remote   Remote

	BaseURL     string
	DownloadDir string
	Version     string
}
