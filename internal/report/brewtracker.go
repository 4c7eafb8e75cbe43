package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"brewfather-mcp/internal/model"
)

// ProgressState is the display state of a brewtracker stage or step.
type ProgressState int

const (
	Pending ProgressState = iota
	InProgress
	Completed
)

func (s ProgressState) String() string {
	switch s {
	case Completed:
		return "COMPLETED"
	case InProgress:
		return "IN PROGRESS"
	default:
		return "PENDING"
	}
}

func (s ProgressState) label() string {
	return "[" + s.String() + "]"
}

// StageState places stage i relative to the tracker position. The current stage is in
// progress only while the tracker is active; a paused stage is not treated specially.
func StageState(t *model.BrewTracker, i int) ProgressState {
	switch {
	case i < t.Stage:
		return Completed
	case i == t.Stage && t.Active:
		return InProgress
	default:
		return Pending
	}
}

// StepState places step j of stage i. Steps before the stage's current step, and every
// step of a completed stage, are completed.
func StepState(t *model.BrewTracker, i, j int) ProgressState {
	stage := t.Stages[i]
	switch {
	case i == t.Stage && j == stage.Step && t.Active:
		return InProgress
	case j < stage.Step || i < t.Stage:
		return Completed
	default:
		return Pending
	}
}

// BrewTracker renders the step-by-step process state of a batch.
func (r *Renderer) BrewTracker(batchID string, t *model.BrewTracker) string {
	if t == nil || t.Name == "" || len(t.Stages) == 0 {
		return fmt.Sprintf("No brewtracker data available for batch %s. This batch may not have brewing process tracking enabled.", batchID)
	}

	status := "INACTIVE"
	if t.Active {
		status = "ACTIVE"
	}
	notify := "Off"
	if t.Notify {
		notify = "On"
	}
	title := cases.Title(language.English)

	var sb strings.Builder
	fmt.Fprintf(&sb, "BREWING PROCESS TRACKER: %s\n%s\n\n", t.Name, strings.Repeat("=", 60))
	fmt.Fprintf(&sb, "Status: %s | Stage %d of %d\n", status, t.Stage+1, len(t.Stages))
	fmt.Fprintf(&sb, "Completed: %s | Notifications: %s\n\n", yesNo(t.Completed), notify)

	for i, stage := range t.Stages {
		fmt.Fprintf(&sb, "%s STAGE %d: %s\n", StageState(t, i).label(), i+1, strings.ToUpper(stage.Name))
		fmt.Fprintf(&sb, "Duration: %d min | Current Step: %d/%d\n", stage.Duration/60, stage.Step+1, len(stage.Steps))
		paused := ""
		if stage.Paused {
			paused = " (PAUSED)"
		}
		fmt.Fprintf(&sb, "Position: %d min%s\n\n", stage.Position/60, paused)

		for j, step := range stage.Steps {
			name := step.Name
			if name == "" {
				name = title.String(step.Type) + " Step"
			}
			fmt.Fprintf(&sb, "  %s %s", StepState(t, i, j).label(), name)
			if step.Time > 0 {
				fmt.Fprintf(&sb, " @ %d min", step.Time/60)
			}
			if step.Value != nil {
				fmt.Fprintf(&sb, " (%s°C)", num(*step.Value))
			}
			sb.WriteByte('\n')

			if step.Description != "" {
				fmt.Fprintf(&sb, "     Note: %s\n", step.Description)
			}
			if step.Tooltip != "" && step.Tooltip != step.Description {
				fmt.Fprintf(&sb, "     Tip: %s\n", step.Tooltip)
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
