// Package initializer builds the process-wide dependencies of the demo binary.
package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/patterns/pkg/config"
	"golang.org/x/term"
)

// Deps holds what a scenario run needs from the process
type Deps struct {
	Logger *slog.Logger
	Out    io.Writer
	Color  bool
}

// InitializeDependencies sets up logging on logOut and decides whether
// output written to out should be colored.
func InitializeDependencies(cfg *config.App, out, logOut io.Writer) *Deps {
	return &Deps{
		Logger: setupLogger(cfg.Log, logOut),
		Out:    out,
		Color:  useColor(cfg.Demo.Color, out),
	}
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
