package tui

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/highscore"
	"github.com/vovakirdan/mini-arcade/internal/logging"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

// Deps are the collaborators a mounted game shares with the rest of the host.
type Deps struct {
	Store         *storage.Store // Score history; nil disables it
	KV            highscore.KV   // High scores; nil keeps them in memory
	Logger        *log.Logger
	Config        core.RuntimeConfig
	ScreenshotDir string // Defaults to ~/.arcade/screenshots
	NoScreenshots bool   // Ignore Ctrl+S, e.g. for remote players
	Now           func() time.Time
}

// withDefaults fills every unset collaborator.
func (d Deps) withDefaults() Deps {
	if d.KV == nil {
		d.KV = highscore.NewMemoryKV()
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Config.TickRate <= 0 {
		d.Config.TickRate = core.DefaultConfig().TickRate
	}
	if d.NoScreenshots {
		d.ScreenshotDir = ""
	} else if d.ScreenshotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			d.ScreenshotDir = filepath.Join(home, ".arcade", "screenshots")
		}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}
