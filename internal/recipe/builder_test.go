package recipe

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewfather-mcp/internal/model"
)

func raw(entries ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(entries))
	for _, e := range entries {
		out = append(out, json.RawMessage(e))
	}
	return out
}

func newTestBuilder() (*Builder, *test.Hook) {
	logger, hook := test.NewNullLogger()
	b := NewBuilder(logger)
	b.newID = func() string { return "ABCDEFGHIJKLMNOPQRSTUV" }
	return b, hook
}

func warnings(hook *test.Hook) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			n++
		}
	}
	return n
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{22}$`), id)
	assert.NotEqual(t, id, NewID())
}

func TestBuild_Defaults(t *testing.T) {
	b, _ := newTestBuilder()

	rec, err := b.Build(Input{Name: "  SMaSH  "})
	require.NoError(t, err)

	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUV", rec.ID)
	assert.Equal(t, "SMaSH", rec.Name)
	assert.Equal(t, DefaultAuthor, *rec.Author)
	assert.Equal(t, model.RecipeTypeAllGrain, rec.Type)
	assert.Equal(t, DefaultStyle, rec.Style.Name)
	assert.Equal(t, DefaultBatchSize, *rec.BatchSize)
	assert.Equal(t, DefaultBoilTime, *rec.BoilTime)
	assert.Empty(t, rec.Fermentables)
	assert.Nil(t, rec.Mash)
	assert.Nil(t, rec.Fermentation)
}

func TestBuild_Validation(t *testing.T) {
	testCases := []struct {
		name       string
		input      Input
		field      string
		validCount int
	}{
		{name: "blank name", input: Input{Name: "   "}, field: "recipe name"},
		{name: "unknown recipe type", input: Input{Name: "X", RecipeType: "BIAB"}, field: "recipe type", validCount: 3},
		{
			name:       "unknown hop use",
			input:      Input{Name: "X", Hops: raw(`{"name":"Cascade","amount":20,"alpha":5.5,"use":"Whirlpool","time":10}`)},
			field:      "hop use",
			validCount: len(model.AllHopUses()),
		},
		{
			name:       "unknown yeast form",
			input:      Input{Name: "X", Yeasts: raw(`{"name":"US-05","amount":1,"form":"Powder"}`)},
			field:      "yeast form",
			validCount: len(model.AllYeastForms()),
		},
		{
			name:       "unknown misc use",
			input:      Input{Name: "X", Miscs: raw(`{"name":"Gypsum","amount":5,"use":"Fermenter"}`)},
			field:      "misc use",
			validCount: len(model.AllMiscUses()),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := newTestBuilder()
			rec, err := b.Build(tc.input)
			assert.Nil(t, rec)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
			assert.Len(t, vErr.Valid, tc.validCount)
		})
	}
}

func TestValidationError_NamesValidSet(t *testing.T) {
	b, _ := newTestBuilder()
	_, err := b.Build(Input{Name: "X", RecipeType: "BIAB"})
	assert.EqualError(t, err, "invalid recipe type 'BIAB'. Valid values: All Grain, Extract, Partial Mash")
}

func TestBuild_DropsIncompleteEntries(t *testing.T) {
	b, hook := newTestBuilder()

	rec, err := b.Build(Input{
		Name: "Pale Ale",
		Fermentables: raw(
			`{"name":"Pale Malt","amount":4.5,"color":6}`,
			`{"name":"","amount":1}`,
			`{"name":"Crystal"}`,
		),
		Hops: raw(
			`{"name":"Cascade","amount":30,"alpha":5.5,"use":"Boil","time":60}`,
			`{"name":"Citra","amount":50,"alpha":12,"use":"Dry Hop"}`,
		),
		Yeasts: raw(`{"name":"US-05","amount":1,"form":"Dry"}`, `"not an object"`),
		Miscs:  raw(`{"name":"Irish Moss","amount":5,"use":"Boil","time":15}`, `{"amount":5,"use":"Boil"}`),
	})
	require.NoError(t, err)

	require.Len(t, rec.Fermentables, 1)
	assert.Equal(t, model.RecipeFermentable{Name: "Pale Malt", Type: model.FermentableTypeGrain, Amount: 4.5, Color: ptr(6.0)}, rec.Fermentables[0])

	require.Len(t, rec.Hops, 1, "hop without time is dropped")
	assert.Equal(t, model.RecipeHop{Name: "Cascade", Type: model.HopFormPellet, Amount: 30, Alpha: 5.5, Use: model.HopUseBoil, Time: 60}, rec.Hops[0])

	require.Len(t, rec.Yeasts, 1)
	assert.Equal(t, model.YeastTypeAle, rec.Yeasts[0].Type)
	assert.Equal(t, model.YeastFormDry, rec.Yeasts[0].Form)

	require.Len(t, rec.Miscs, 1)
	assert.Equal(t, 15, *rec.Miscs[0].Time)

	assert.Equal(t, 5, warnings(hook))
}

func TestBuild_AcceptsNumericStrings(t *testing.T) {
	b, hook := newTestBuilder()

	rec, err := b.Build(Input{
		Name:         "String Numbers",
		Fermentables: raw(`{"name":"Pale","amount":"4.5","color":" 7 "}`),
		Hops: raw(
			`{"name":"Zero","amount":10,"alpha":4,"use":"Aroma","time":0}`,
			`{"name":"Str","amount":"30","alpha":"5","use":"Boil","time":"60"}`,
		),
		Miscs:     raw(`{"name":"Salt","amount":"2","use":"Mash","time":"60"}`),
		MashSteps: raw(`{"stepTemp":"67","stepTime":"45"}`),
	})
	require.NoError(t, err)

	require.Len(t, rec.Fermentables, 1)
	assert.Equal(t, model.RecipeFermentable{Name: "Pale", Type: model.FermentableTypeGrain, Amount: 4.5, Color: ptr(7.0)}, rec.Fermentables[0])

	require.Len(t, rec.Hops, 2)
	assert.Equal(t, model.RecipeHop{Name: "Str", Type: model.HopFormPellet, Amount: 30, Alpha: 5, Use: model.HopUseBoil, Time: 60}, rec.Hops[1])

	require.Len(t, rec.Miscs, 1)
	assert.Equal(t, 60, *rec.Miscs[0].Time)

	require.NotNil(t, rec.Mash)
	assert.Equal(t, 67.0, rec.Mash.Steps[0].StepTemp)
	assert.Equal(t, 45, rec.Mash.Steps[0].StepTime)
	assert.Zero(t, warnings(hook))
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{name: "number", input: `12.5`, expected: 12.5},
		{name: "integer", input: `60`, expected: 60},
		{name: "numeric string", input: `"30"`, expected: 30},
		{name: "padded string", input: `" 1.25 "`, expected: 1.25},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "word", input: `"lots"`, wantErr: true},
		{name: "not a number", input: `"NaN"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tc.input), &n)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, float64(n))
		})
	}
}

func TestBuild_Schedules(t *testing.T) {
	b, hook := newTestBuilder()

	rec, err := b.Build(Input{
		Name:             "Helles",
		MashSteps:        raw(`{"name":"Sacch","stepTemp":66,"stepTime":60}`, `{"stepTemp":76}`),
		FermentationTemp: ptr(10.0),
	})
	require.NoError(t, err)

	require.NotNil(t, rec.Mash)
	assert.Equal(t, "Custom Mash Schedule", rec.Mash.Name)
	assert.Equal(t, []model.MashStep{{Name: "Sacch", Type: model.MashStepTypeTemperature, StepTemp: 66, StepTime: 60}}, rec.Mash.Steps)

	require.NotNil(t, rec.Fermentation)
	assert.Equal(t, []model.FermentationStep{{Type: model.FermentationStepTypePrimary, StepTemp: 10, StepTime: 14}}, rec.Fermentation.Steps)
	assert.Equal(t, 1, warnings(hook))

	rec, err = b.Build(Input{Name: "Helles", MashSteps: raw(`{"stepTime":60}`)})
	require.NoError(t, err)
	assert.Nil(t, rec.Mash, "no valid step means no mash schedule")
}

func TestImportJSON_OmitsCalculatedFields(t *testing.T) {
	b, _ := newTestBuilder()

	inputs := []Input{
		{Name: "Minimal"},
		{
			Name:             "Full",
			Author:           ptr("Brewer"),
			RecipeType:       "Extract",
			StyleName:        ptr("Blonde Ale"),
			BatchSize:        ptr(19.0),
			BoilTime:         ptr(30),
			Fermentables:     raw(`{"name":"Light DME","amount":3,"color":8}`),
			Hops:             raw(`{"name":"Saaz","amount":28,"alpha":3.5,"use":"Boil","time":30}`),
			Yeasts:           raw(`{"name":"S-04","amount":1,"form":"Dry"}`),
			FermentationTemp: ptr(18.0),
		},
	}

	for _, in := range inputs {
		t.Run(in.Name, func(t *testing.T) {
			rec, err := b.Build(in)
			require.NoError(t, err)

			// Even a recipe carrying server values must not leak them.
			rec.OG = ptr(1.05)
			rec.IBU = ptr(30.0)

			payload, err := ImportJSON(rec)
			require.NoError(t, err)

			var doc map[string]any
			require.NoError(t, json.Unmarshal(payload, &doc))
			for _, key := range model.CalculatedRecipeFields {
				assert.NotContains(t, doc, key)
			}
			assert.Equal(t, in.Name, doc["name"])
			assert.Contains(t, doc, "fermentables")
			assert.NotContains(t, string(payload), "null")
		})
	}
}

func TestImportText(t *testing.T) {
	b, _ := newTestBuilder()
	rec, err := b.Build(Input{Name: "Stout", Hops: raw(`{"name":"EKG","amount":40,"alpha":5,"use":"Boil","time":60}`)})
	require.NoError(t, err)

	payload, err := ImportJSON(rec)
	require.NoError(t, err)

	out := ImportText(rec, payload)
	assert.Contains(t, out, "Recipe Name: Stout\n")
	assert.Contains(t, out, "Batch Size: 21L\n")
	assert.Contains(t, out, "- Hops: 1\n")
	assert.Contains(t, out, string(payload))
}

func ptr[T any](v T) *T { return &v }

