package common

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"gitlab.com/greyxor/slogor"

	"github.com/datahubtools/payplan/internal/plan"
	"github.com/datahubtools/payplan/internal/ui"
)

// NewLogger builds the stderr logger the commands carry. No default
// logger is installed; whoever needs diagnostics receives this explicitly.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slogor.NewHandler(os.Stderr,
		slogor.SetLevel(level),
		slogor.SetTimeFormat(time.DateTime)))
}

// InitService opens the plan store configured by the persistent flags and
// builds the command logger.
// Returns an error that is suitable for use in PreRunE hooks.
func InitService(flags *pflag.FlagSet) (plan.Service, *slog.Logger, error) {
	verbose, _ := flags.GetBool("verbose")
	logger := NewLogger(verbose)

	path, _ := flags.GetString("storage")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot resolve default storage path: %w", err)
		}
		path = filepath.Join(home, ".payplan.db")
	}

	svc, err := plan.Open(path)
	if err != nil {
		ui.Error("Cannot open the payment plan database")
		return nil, nil, fmt.Errorf("plan service initialization failed: %w", err)
	}
	logger.Debug("opened plan database", "path", path)
	return svc, logger, nil
}
