package report

import (
	"fmt"
	"strings"

	"brewfather-mcp/internal/model"
)

const (
	gravityPlaces int32 = 3
	defaultPlaces int32 = 2
)

// BatchList renders one block per batch.
func (r *Renderer) BatchList(batches []model.Batch) string {
	blocks := make([]string, 0, len(batches))
	for _, b := range batches {
		blocks = append(blocks, block([]field{
			{"ID", b.ID},
			{"Name", b.Name},
			{"Batch Number", optInt(b.BatchNo)},
			{"Status", orNA(b.Status)},
			{"Brewer", optStr(b.Brewer)},
			{"Brew Date", r.Timestamp(b.BrewDate)},
			{"Recipe Name", orNA(b.RecipeName())},
		}))
	}
	return joinBlocks(blocks, "No batches found.")
}

// measured is one measured batch value, optionally compared with its recipe target.
type measured struct {
	label  string
	value  *float64
	target *float64
	places int32
	unit   string
}

// line renders the measurement. The delta is shown only when a target exists.
func (m measured) line() (string, bool) {
	if m.value == nil {
		return "", false
	}
	s := fmt.Sprintf("%s: %s%s", m.label, fixed(*m.value, m.places), m.unit)
	if m.target != nil {
		s += fmt.Sprintf(" (%s%s)", signedDelta(*m.value, *m.target, m.places), m.unit)
	}
	return s, true
}

// recipeTarget reads a target off the batch recipe, tolerating a missing recipe.
func recipeTarget(rec *model.Recipe, get func(*model.Recipe) *float64) *float64 {
	if rec == nil {
		return nil
	}
	return get(rec)
}

func mashPH(rec *model.Recipe) *float64 {
	if rec.Mash == nil {
		return nil
	}
	return rec.Mash.PH
}

func brewDayMeasurements(b *model.Batch) []measured {
	rec := b.Recipe
	return []measured{
		{label: "Mash pH", value: b.MeasuredMashPH, target: recipeTarget(rec, mashPH), places: defaultPlaces},
		{label: "First Wort Gravity", value: b.MeasuredFirstWortGravity, places: gravityPlaces},
		{label: "Pre-Boil Gravity", value: b.MeasuredPreBoilGravity, target: recipeTarget(rec, func(r *model.Recipe) *float64 { return r.PreBoilGravity }), places: gravityPlaces},
		{label: "Boil Size", value: b.MeasuredBoilSize, target: recipeTarget(rec, func(r *model.Recipe) *float64 { return r.BoilSize }), places: defaultPlaces, unit: "L"},
		{label: "Post-Boil Gravity", value: b.MeasuredPostBoilGravity, target: recipeTarget(rec, func(r *model.Recipe) *float64 { return r.PostBoilGravity }), places: gravityPlaces},
		{label: "Kettle Size", value: b.MeasuredKettleSize, places: defaultPlaces, unit: "L"},
		{label: "Measured OG", value: b.MeasuredOG, target: recipeTarget(rec, func(r *model.Recipe) *float64 { return r.OG }), places: gravityPlaces},
		{label: "Batch Size", value: b.MeasuredBatchSize, target: recipeTarget(rec, func(r *model.Recipe) *float64 { return r.BatchSize }), places: defaultPlaces, unit: "L"},
		{label: "Fermenter Top-Up", value: b.MeasuredFermenterTopUp, places: defaultPlaces, unit: "L"},
	}
}

func fermentationMeasurements(b *model.Batch) []measured {
	rec := b.Recipe
	return []measured{
		{label: "Measured FG", value: b.MeasuredFG, target: recipeTarget(rec, func(r *model.Recipe) *float64 { return r.FG }), places: gravityPlaces},
		{label: "Measured ABV", value: b.MeasuredABV, target: recipeTarget(rec, func(r *model.Recipe) *float64 { return r.ABV }), places: defaultPlaces, unit: "%"},
		{label: "Measured Attenuation", value: b.MeasuredAttenuation, target: recipeTarget(rec, func(r *model.Recipe) *float64 { return r.Attenuation }), places: defaultPlaces, unit: "%"},
		{label: "Bottling Size", value: b.MeasuredBottlingSize, places: defaultPlaces, unit: "L"},
		{label: "Overall Efficiency", value: b.MeasuredEfficiency, target: recipeTarget(rec, func(r *model.Recipe) *float64 { return r.Efficiency }), places: defaultPlaces, unit: "%"},
		{label: "Mash Efficiency", value: b.MeasuredMashEfficiency, target: recipeTarget(rec, func(r *model.Recipe) *float64 { return r.MashEfficiency }), places: defaultPlaces, unit: "%"},
		{label: "Kettle Efficiency", value: b.MeasuredKettleEfficiency, places: defaultPlaces, unit: "%"},
		{label: "Conversion Efficiency", value: b.MeasuredConversionEfficiency, places: defaultPlaces, unit: "%"},
	}
}

func writeMeasurements(sb *strings.Builder, title string, ms []measured) {
	var lines []string
	for _, m := range ms {
		if l, ok := m.line(); ok {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s:\n%s\n", title, strings.Repeat("-", len(title)+1))
	for _, l := range lines {
		sb.WriteString("- " + l + "\n")
	}
}

// firstPresent returns the first non-nil value.
func firstPresent(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// BatchDetail renders a batch with its schedule, measurements compared with the recipe
// targets, notes and the full recipe.
func (r *Renderer) BatchDetail(b *model.Batch) string {
	var sb strings.Builder

	recipeName, recipeID := NotAvailable, NotAvailable
	var recipeCarbonation *float64
	if b.Recipe != nil {
		recipeName = orNA(b.Recipe.Name)
		recipeID = orNA(b.Recipe.ID)
		recipeCarbonation = b.Recipe.Carbonation
	}

	tags := "None"
	if len(b.Tags) > 0 {
		tags = strings.Join(b.Tags, ", ")
	}

	sb.WriteString("Batch Details:\n==============\n")
	writeFields(&sb, []field{
		{"ID", b.ID},
		{"Name", b.Name},
		{"Batch Number", optInt(b.BatchNo)},
		{"Status", orNA(b.Status)},
		{"Brewer", optStr(b.Brewer)},
		{"Brewed", yesNo(b.Brewed != nil && *b.Brewed)},
	})

	sb.WriteString("\nRecipe Information:\n------------------\n")
	writeFields(&sb, []field{
		{"Recipe Name", recipeName},
		{"Recipe ID", recipeID},
	})

	sb.WriteString("\nSchedule:\n---------\n")
	writeFields(&sb, []field{
		{"Brew Date", r.Timestamp(b.BrewDate)},
		{"Fermentation Start", r.Timestamp(b.FermentationStartDate)},
		{"Fermentation End", r.Timestamp(b.FermentationEndDate)},
		{"Bottling Date", r.Timestamp(b.BottlingDate)},
	})

	sb.WriteString("\nGravity & Alcohol:\n-----------------\n")
	writeFields(&sb, []field{
		{"Original Gravity (OG)", optNum(firstPresent(b.MeasuredOG, b.OG))},
		{"Final Gravity (FG)", optNum(firstPresent(b.MeasuredFG, b.FG))},
		{"ABV", withUnit(firstPresent(b.MeasuredABV, b.ABV), "%")},
	})

	sb.WriteString("\nCarbonation:\n-----------\n")
	writeFields(&sb, []field{
		{"Type", optStr(b.CarbonationType)},
		{"Level", withUnit(firstPresent(b.CarbonationLevel, recipeCarbonation), " volumes")},
	})

	sb.WriteString("\nTags: " + tags + "\n")

	writeMeasurements(&sb, "Brew Day Measurements", brewDayMeasurements(b))
	writeMeasurements(&sb, "Fermentation Measurements", fermentationMeasurements(b))

	if len(b.Notes) > 0 {
		sb.WriteString("\nNotes:\n")
		for _, n := range b.Notes {
			fmt.Fprintf(&sb, "- [%s] %s (%s)\n", n.Type, n.Note, r.Timestamp(n.Timestamp))
		}
	}

	if len(b.Measurements) > 0 {
		sb.WriteString("\nMeasurements:\n-------------\n")
		for _, m := range b.Measurements {
			comment := ""
			if m.Comment != nil && *m.Comment != "" {
				comment = " (" + *m.Comment + ")"
			}
			fmt.Fprintf(&sb, "- %s: %s %s [%s]%s\n", m.Type, optNum(m.Value), m.Unit, r.Timestamp(m.Time), comment)
		}
	}

	if len(b.MeasurementDevices) > 0 {
		sb.WriteString("\nMeasurement Devices:\n------------------\n")
		for _, d := range b.MeasurementDevices {
			name := "Unknown Device"
			if d.Name != nil && *d.Name != "" {
				name = *d.Name
			}
			fmt.Fprintf(&sb, "- %s (%s)\n", name, optStr(d.Type))
		}
	}

	if b.Recipe != nil {
		rule := strings.Repeat("=", 50)
		sb.WriteString("\n\n" + rule + "\nRECIPE DETAILS\n" + rule + "\n\n")
		sb.WriteString(r.RecipeDetail(b.Recipe))
	}

	sb.WriteString("\n\nBatch Metadata:\n--------------\n")
	sb.WriteString("Batch ID: " + b.ID + "\n")

	return sb.String()
}
