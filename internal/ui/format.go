package ui

import (
	"fmt"
	"strings"

	"github.com/datahubtools/payplan/internal/model"
)

// FormatPlanFinderLine formats a plan for display in the fuzzy finder.
// Fuzzy finder doesn't support ANSI codes, so we use plain text.
func FormatPlanFinderLine(plan *model.Plan) string {
	displayName := plan.Name
	if len(displayName) > Display.MaxPlanNameLength {
		if Display.MaxPlanNameLength > 3 {
			displayName = displayName[:Display.MaxPlanNameLength-3] + "..."
		} else {
			displayName = displayName[:Display.MaxPlanNameLength]
		}
	}

	// Pad to fixed width for alignment
	line := fmt.Sprintf("%-*s", Display.MaxPlanNameLength, displayName)

	switch n := len(plan.Users); n {
	case 0:
		line += "  (no users)"
	case 1:
		line += "  (1 user)"
	default:
		line += fmt.Sprintf("  (%d users)", n)
	}

	return line
}

// FormatPlanPreview formats a plan for the fuzzy finder preview window.
// Preview pane supports ANSI codes, so we can use styling.
func FormatPlanPreview(plan *model.Plan) string {
	lines := []string{
		RenderKeyValue("Plan", Bold(plan.Name)),
		RenderKeyValue("ID", Highlight(plan.ID)),
		RenderKeyValue("Users", fmt.Sprintf("%d", len(plan.Users))),
	}

	if len(plan.Users) > 0 {
		lines = append(lines, "", Bold("Users on this plan:"))

		maxPreview := Display.MaxPreviewLines
		if len(plan.Users) < maxPreview {
			maxPreview = len(plan.Users)
		}

		for i := 0; i < maxPreview; i++ {
			lines = append(lines, "  "+plan.Users[i].Name)
		}

		if len(plan.Users) > maxPreview {
			lines = append(lines, Dim(fmt.Sprintf("  ... and %d more", len(plan.Users)-maxPreview)))
		}
	}

	return strings.Join(lines, "\n")
}

// RenderKeyValue renders a dimmed "key:" label followed by the value.
func RenderKeyValue(key string, value string) string {
	keyStyled := DimStyle.Render(key + ":")
	return fmt.Sprintf("%s %s", keyStyled, value)
}
