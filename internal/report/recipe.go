package report

import (
	"fmt"
	"strings"

	"brewfather-mcp/internal/model"
)

// RecipeList renders one block per recipe.
func (r *Renderer) RecipeList(recipes []model.Recipe) string {
	blocks := make([]string, 0, len(recipes))
	for _, rec := range recipes {
		style := NotAvailable
		if rec.Style != nil {
			style = orNA(rec.Style.Name)
		}
		blocks = append(blocks, block([]field{
			{"ID", rec.ID},
			{"Name", rec.Name},
			{"Author", optStr(rec.Author)},
			{"Style", style},
			{"Type", orNA(rec.Type)},
		}))
	}
	return joinBlocks(blocks, "No recipes found.")
}

func heading(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, "\n%s:\n%s\n", title, strings.Repeat("-", len(title)+1))
}

// RecipeDetail renders a recipe with its specifications, ingredients and schedules.
func (r *Renderer) RecipeDetail(rec *model.Recipe) string {
	var sb strings.Builder

	style := NotAvailable
	if rec.Style != nil {
		style = orNA(rec.Style.Name)
		if rec.Style.Category != nil && *rec.Style.Category != "" {
			style += " (" + *rec.Style.Category + ")"
		}
	}

	fmt.Fprintf(&sb, "Recipe: %s\n%s\n", rec.Name, strings.Repeat("=", len("Recipe: ")+len(rec.Name)))
	writeFields(&sb, []field{
		{"ID", rec.ID},
		{"Author", optStr(rec.Author)},
		{"Type", orNA(rec.Type)},
		{"Style", style},
	})

	heading(&sb, "Specifications")
	writeFields(&sb, []field{
		{"Batch Size", withUnit(rec.BatchSize, " L")},
		{"Boil Size", withUnit(rec.BoilSize, " L")},
		{"Boil Time", optIntUnit(rec.BoilTime, " min")},
		{"Efficiency", withUnit(rec.Efficiency, "%")},
		{"Mash Efficiency", withUnit(rec.MashEfficiency, "%")},
		{"Pre-Boil Gravity", optNum(rec.PreBoilGravity)},
		{"Post-Boil Gravity", optNum(rec.PostBoilGravity)},
		{"Original Gravity (OG)", optNum(rec.OG)},
		{"Final Gravity (FG)", optNum(rec.FG)},
		{"ABV", withUnit(rec.ABV, "%")},
		{"IBU", optNum(rec.IBU)},
		{"Color", withUnit(rec.Color, " EBC")},
		{"Attenuation", withUnit(rec.Attenuation, "%")},
		{"BU:GU Ratio", optNum(rec.BuGuRatio)},
		{"Carbonation", withUnit(rec.Carbonation, " volumes")},
	})

	if len(rec.Fermentables) > 0 {
		heading(&sb, "Fermentables")
		for _, f := range rec.Fermentables {
			extra := []string{orNA(f.Type)}
			if f.Color != nil {
				extra = append(extra, num(*f.Color)+" EBC")
			}
			if f.Percentage != nil {
				extra = append(extra, num(*f.Percentage)+"%")
			}
			fmt.Fprintf(&sb, "- %s: %s kg (%s)\n", f.Name, num(f.Amount), strings.Join(extra, ", "))
		}
	}

	if len(rec.Hops) > 0 {
		heading(&sb, "Hops")
		for _, h := range rec.Hops {
			fmt.Fprintf(&sb, "- %s: %s g @ %d min (%s, %s%% AA, %s)\n",
				h.Name, num(h.Amount), h.Time, orNA(h.Use), num(h.Alpha), orNA(h.Type))
		}
	}

	if len(rec.Yeasts) > 0 {
		heading(&sb, "Yeasts")
		for _, y := range rec.Yeasts {
			line := fmt.Sprintf("- %s: %s %s (%s, %s)", y.Name, num(y.Amount), unitOr(y.Unit, "pkg"), orNA(y.Type), orNA(y.Form))
			if y.Attenuation != nil {
				line += fmt.Sprintf(", attenuation %s%%", num(*y.Attenuation))
			}
			sb.WriteString(line + "\n")
		}
	}

	if len(rec.Miscs) > 0 {
		heading(&sb, "Miscellaneous")
		for _, m := range rec.Miscs {
			amount := num(m.Amount)
			if unit := unitOr(m.Unit, ""); unit != "" {
				amount += " " + unit
			}
			line := fmt.Sprintf("- %s: %s (%s)", m.Name, amount, orNA(m.Use))
			if m.Time != nil {
				line += fmt.Sprintf(" @ %d min", *m.Time)
			}
			sb.WriteString(line + "\n")
		}
	}

	if rec.Mash != nil && len(rec.Mash.Steps) > 0 {
		heading(&sb, "Mash Schedule")
		if rec.Mash.Name != "" {
			sb.WriteString("Name: " + rec.Mash.Name + "\n")
		}
		if rec.Mash.PH != nil {
			sb.WriteString("Target pH: " + num(*rec.Mash.PH) + "\n")
		}
		for i, s := range rec.Mash.Steps {
			name := s.Name
			if name == "" {
				name = fmt.Sprintf("Step %d", i+1)
			}
			fmt.Fprintf(&sb, "- %s: %s°C for %d min (%s)\n", name, num(s.StepTemp), s.StepTime, orNA(s.Type))
		}
	}

	if rec.Fermentation != nil && len(rec.Fermentation.Steps) > 0 {
		heading(&sb, "Fermentation Schedule")
		if rec.Fermentation.Name != "" {
			sb.WriteString("Name: " + rec.Fermentation.Name + "\n")
		}
		for _, s := range rec.Fermentation.Steps {
			fmt.Fprintf(&sb, "- %s: %s°C for %d days\n", orNA(s.Type), num(s.StepTemp), s.StepTime)
		}
	}

	if rec.Notes != nil && *rec.Notes != "" {
		heading(&sb, "Notes")
		sb.WriteString(*rec.Notes + "\n")
	}

	return sb.String()
}

func optIntUnit(v *int, unit string) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d%s", *v, unit)
}

func enumSection[T ~string](sb *strings.Builder, title string, values []T) {
	sb.WriteString("\n" + title + ":\n")
	for _, v := range model.Names(values) {
		sb.WriteString("- " + v + "\n")
	}
}

// RecipeEnums lists the values accepted when building a recipe.
func RecipeEnums() string {
	var sb strings.Builder
	sb.WriteString("RECIPE ENUM VALUES\n=====================================\n\n")
	sb.WriteString("These are the valid enum values you can use when creating recipes.\n")

	enumSection(&sb, "Recipe Types", model.AllRecipeTypes())
	enumSection(&sb, "Hop Uses", model.AllHopUses())
	enumSection(&sb, "Hop Forms", model.AllHopForms())
	enumSection(&sb, "Hop Usage (purpose)", model.AllHopUsages())
	enumSection(&sb, "Yeast Forms", model.AllYeastForms())
	enumSection(&sb, "Yeast Types", model.AllYeastTypes())
	enumSection(&sb, "Flocculation Types", model.AllFlocculations())
	enumSection(&sb, "Misc Uses", model.AllMiscUses())
	enumSection(&sb, "Misc Types", model.AllMiscTypes())
	enumSection(&sb, "Fermentable Types", model.AllFermentableTypes())
	enumSection(&sb, "Fermentable Grain Groups", model.AllGrainGroups())
	enumSection(&sb, "Mash Step Types", model.AllMashStepTypes())
	enumSection(&sb, "Fermentation Step Types", model.AllFermentationStepTypes())
	enumSection(&sb, "Batch Statuses", model.AllBatchStatuses())

	return sb.String()
}
