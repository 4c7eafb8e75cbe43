// Package recipe builds Brewfather import payloads from loosely typed tool input.
package recipe

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"brewfather-mcp/internal/model"
)

// Defaults applied when the caller leaves a field out.
const (
	DefaultAuthor    = "MCP Generated"
	DefaultStyle     = "Custom Recipe"
	DefaultBatchSize = 21.0
	DefaultBoilTime  = 60

	mashScheduleName         = "Custom Mash Schedule"
	fermentationScheduleName = "Custom Fermentation Schedule"
	primaryDays              = 14
	idLength                 = 22
)

// FermentableInput is one fermentable entry. Amount is in kg, color in EBC.
type FermentableInput struct {
	Name   *string `json:"name" validate:"required,min=1"`
	Amount *Number `json:"amount" validate:"required,gt=0"`
	Color  *Number `json:"color"`
}

// HopInput is one hop addition. Amount is in grams, time in minutes.
type HopInput struct {
	Name   *string `json:"name" validate:"required"`
	Amount *Number `json:"amount" validate:"required"`
	Alpha  *Number `json:"alpha" validate:"required"`
	Use    *string `json:"use" validate:"required"`
	Time   *Number `json:"time" validate:"required"`
}

type YeastInput struct {
	Name   *string `json:"name" validate:"required"`
	Amount *Number `json:"amount" validate:"required"`
	Form   *string `json:"form" validate:"required"`
}

type MiscInput struct {
	Name   *string `json:"name" validate:"required"`
	Amount *Number `json:"amount" validate:"required"`
	Use    *string `json:"use" validate:"required"`
	Time   *Number `json:"time"`
}

// MashStepInput is one mash rest. Temperature is in °C, time in minutes.
type MashStepInput struct {
	Name     *string `json:"name"`
	StepTemp *Number `json:"stepTemp" validate:"required"`
	StepTime *Number `json:"stepTime" validate:"required"`
}

// Input is the caller's description of a recipe. Ingredient and mash step entries are
// raw JSON objects so a malformed entry can be dropped on its own.
type Input struct {
	Name             string
	Author           *string
	RecipeType       string
	StyleName        *string
	BatchSize        *float64
	BoilTime         *int
	Fermentables     []json.RawMessage
	Hops             []json.RawMessage
	Yeasts           []json.RawMessage
	Miscs            []json.RawMessage
	MashSteps        []json.RawMessage
	FermentationTemp *float64
}

// Builder turns Input into a recipe. It is safe for concurrent use.
type Builder struct {
	logger   logrus.FieldLogger
	validate *validator.Validate
	newID    func() string
}

// NewBuilder creates a Builder that reports skipped entries to logger.
func NewBuilder(logger logrus.FieldLogger) *Builder {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Builder{logger: logger, validate: v, newID: NewID}
}

// NewID returns a 22 character uppercase alphanumeric identifier.
func NewID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:idLength]
}

// Build validates in and assembles the recipe. Entries missing a required field are
// skipped with a warning; an unknown enumeration value fails the whole build.
func (b *Builder) Build(in Input) (*model.Recipe, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "recipe name"}
	}

	recipeType := model.RecipeType(in.RecipeType)
	if recipeType == "" {
		recipeType = model.RecipeTypeAllGrain
	}
	if !recipeType.Valid() {
		return nil, &ValidationError{Field: "recipe type", Value: in.RecipeType, Valid: model.Names(model.AllRecipeTypes())}
	}

	author := DefaultAuthor
	if in.Author != nil && strings.TrimSpace(*in.Author) != "" {
		author = strings.TrimSpace(*in.Author)
	}
	style := DefaultStyle
	if in.StyleName != nil && *in.StyleName != "" {
		style = *in.StyleName
	}
	batchSize := DefaultBatchSize
	if in.BatchSize != nil {
		batchSize = *in.BatchSize
	}
	boilTime := DefaultBoilTime
	if in.BoilTime != nil {
		boilTime = *in.BoilTime
	}

	rec := &model.Recipe{
		ID:           b.newID(),
		Name:         name,
		Author:       &author,
		Type:         recipeType,
		Style:        &model.RecipeStyle{Name: style},
		BatchSize:    &batchSize,
		BoilTime:     &boilTime,
		Fermentables: []model.RecipeFermentable{},
		Hops:         []model.RecipeHop{},
		Yeasts:       []model.RecipeYeast{},
		Miscs:        []model.RecipeMisc{},
	}

	for _, f := range decodeEntries[FermentableInput](b, "fermentable", in.Fermentables) {
		rec.Fermentables = append(rec.Fermentables, model.RecipeFermentable{
			Name:   *f.Name,
			Type:   model.FermentableTypeGrain,
			Amount: f.Amount.float(),
			Color:  floatPtr(f.Color),
		})
	}

	for _, h := range decodeEntries[HopInput](b, "hop", in.Hops) {
		use := model.HopUse(*h.Use)
		if !use.Valid() {
			return nil, &ValidationError{Field: "hop use", Value: *h.Use, Valid: model.Names(model.AllHopUses())}
		}
		rec.Hops = append(rec.Hops, model.RecipeHop{
			Name:   *h.Name,
			Type:   model.HopFormPellet,
			Amount: h.Amount.float(),
			Alpha:  h.Alpha.float(),
			Use:    use,
			Time:   int(h.Time.float()),
		})
	}

	for _, y := range decodeEntries[YeastInput](b, "yeast", in.Yeasts) {
		form := model.YeastForm(*y.Form)
		if !form.Valid() {
			return nil, &ValidationError{Field: "yeast form", Value: *y.Form, Valid: model.Names(model.AllYeastForms())}
		}
		rec.Yeasts = append(rec.Yeasts, model.RecipeYeast{
			Name:   *y.Name,
			Type:   model.YeastTypeAle,
			Form:   form,
			Amount: y.Amount.float(),
		})
	}

	for _, m := range decodeEntries[MiscInput](b, "misc", in.Miscs) {
		use := model.MiscUse(*m.Use)
		if !use.Valid() {
			return nil, &ValidationError{Field: "misc use", Value: *m.Use, Valid: model.Names(model.AllMiscUses())}
		}
		misc := model.RecipeMisc{Name: *m.Name, Amount: m.Amount.float(), Use: use}
		if m.Time != nil {
			t := int(m.Time.float())
			misc.Time = &t
		}
		rec.Miscs = append(rec.Miscs, misc)
	}

	var mashSteps []model.MashStep
	for _, s := range decodeEntries[MashStepInput](b, "mash step", in.MashSteps) {
		step := model.MashStep{
			Type:     model.MashStepTypeTemperature,
			StepTemp: s.StepTemp.float(),
			StepTime: int(s.StepTime.float()),
		}
		if s.Name != nil {
			step.Name = *s.Name
		}
		mashSteps = append(mashSteps, step)
	}
	if len(mashSteps) > 0 {
		rec.Mash = &model.MashSchedule{Name: mashScheduleName, Steps: mashSteps}
	}

	if in.FermentationTemp != nil {
		rec.Fermentation = &model.FermentationSchedule{
			Name: fermentationScheduleName,
			Steps: []model.FermentationStep{{
				Type:     model.FermentationStepTypePrimary,
				StepTemp: *in.FermentationTemp,
				StepTime: primaryDays,
			}},
		}
	}

	b.logger.WithFields(logrus.Fields{
		"recipe":       rec.Name,
		"fermentables": len(rec.Fermentables),
		"hops":         len(rec.Hops),
		"yeasts":       len(rec.Yeasts),
		"miscs":        len(rec.Miscs),
	}).Info("built recipe")

	return rec, nil
}

// decodeEntries decodes and validates each raw entry, dropping the ones that are not
// objects of the expected shape or that miss a required field.
func decodeEntries[T any](b *Builder, kind string, raw []json.RawMessage) []T {
	out := make([]T, 0, len(raw))
	for i, msg := range raw {
		var entry T
		if err := json.Unmarshal(msg, &entry); err != nil {
			b.logger.WithError(err).WithFields(logrus.Fields{"kind": kind, "index": i}).Warn("skipping malformed entry")
			continue
		}
		if err := b.validate.Struct(&entry); err != nil {
			b.logger.WithFields(logrus.Fields{
				"kind":   kind,
				"index":  i,
				"fields": failedFields(err),
			}).Warn("skipping entry with missing required fields")
			continue
		}
		out = append(out, entry)
	}
	return out
}

func failedFields(err error) map[string]string {
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, ve := range verrs {
			fields[ve.Field()] = ve.Tag()
		}
	}
	return fields
}

// ImportJSON renders rec as the indented JSON Brewfather imports, without any of the
// fields Brewfather calculates itself.
func ImportJSON(rec *model.Recipe) ([]byte, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for _, key := range model.CalculatedRecipeFields {
		delete(doc, key)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
