package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/datahubtools/payplan/internal/model"
)

func init() {
	// Force lipgloss to initialize and detect terminal before fuzzy finder starts
	// This prevents ANSI escape sequences from leaking into the finder input
	_ = lipgloss.NewStyle().Render("")
	// Ensure color profile is detected early
	_ = lipgloss.HasDarkBackground()
}

// SelectPlan presents a fuzzy finder to select one of the given plans.
// Returns the selected plan, or nil if the user cancelled the selection.
// Returns an error only if the fuzzy finder encounters an unexpected error.
func SelectPlan(plans []*model.Plan) (*model.Plan, error) {
	// Flush stdout/stderr before starting fuzzy finder to clear any ANSI sequences
	os.Stdout.Sync()
	os.Stderr.Sync()

	idx, err := fuzzyfinder.Find(
		plans,
		func(i int) string {
			return FormatPlanFinderLine(plans[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return FormatPlanPreview(plans[i])
		}),
	)

	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		return nil, nil
	}

	return plans[idx], nil
}
