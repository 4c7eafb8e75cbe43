package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewfather-mcp/internal/model"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }
func str(v string) *string   { return &v }

func TestRenderer_Timestamp(t *testing.T) {
	r := New(time.UTC)

	assert.Equal(t, NotAvailable, r.Timestamp(nil))
	assert.Equal(t, "1970-01-01 00:00:00", r.Timestamp(i64(0)))
	assert.Equal(t, "2024-03-01 12:30:00", r.Timestamp(i64(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC).UnixMilli())))

	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 13:30:00", New(berlin).Timestamp(i64(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC).UnixMilli())))
}

func TestSignedDelta(t *testing.T) {
	testCases := []struct {
		measured, target float64
		places           int32
		expected         string
	}{
		{1.050, 1.045, 3, "+0.005"},
		{1.040, 1.045, 3, "-0.005"},
		{1.045, 1.045, 3, "+0.000"},
		{20, 21, 2, "-1.00"},
		{5.4, 0, 2, "+5.40"},
		{1.0504, 1.0505, 3, "+0.000"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, signedDelta(tc.measured, tc.target, tc.places))
		})
	}
}

func TestBatchDetail_Deltas(t *testing.T) {
	r := New(time.UTC)

	testCases := []struct {
		name     string
		batch    model.Batch
		contains []string
		absent   []string
	}{
		{
			name: "delta against recipe target",
			batch: model.Batch{
				ID: "b1", Name: "IPA",
				MeasuredOG: f64(1.050),
				Recipe:     &model.Recipe{ID: "r1", Name: "IPA Recipe", OG: f64(1.045)},
			},
			contains: []string{"- Measured OG: 1.050 (+0.005)\n"},
		},
		{
			name:     "no recipe means no delta",
			batch:    model.Batch{ID: "b1", Name: "IPA", MeasuredOG: f64(1.050)},
			contains: []string{"- Measured OG: 1.050\n", "Recipe Name: N/A"},
			absent:   []string{"RECIPE DETAILS"},
		},
		{
			name: "recipe without target means no delta",
			batch: model.Batch{
				ID: "b1", Name: "IPA",
				MeasuredFG: f64(1.012),
				Recipe:     &model.Recipe{ID: "r1", Name: "IPA Recipe"},
			},
			contains: []string{"- Measured FG: 1.012\n"},
		},
		{
			name: "volume and percentage precision",
			batch: model.Batch{
				ID: "b1", Name: "Stout",
				MeasuredBatchSize:  f64(20),
				MeasuredEfficiency: f64(72.5),
				MeasuredKettleSize: f64(30),
				Recipe:             &model.Recipe{ID: "r1", Name: "Stout", BatchSize: f64(21), Efficiency: f64(75)},
			},
			contains: []string{
				"- Batch Size: 20.00L (-1.00L)\n",
				"- Overall Efficiency: 72.50% (-2.50%)\n",
				"- Kettle Size: 30.00L\n",
			},
		},
		{
			name: "mash pH against mash schedule",
			batch: model.Batch{
				ID: "b1", Name: "Pils",
				MeasuredMashPH: f64(5.4),
				Recipe:         &model.Recipe{ID: "r1", Name: "Pils", Mash: &model.MashSchedule{PH: f64(5.2)}},
			},
			contains: []string{"- Mash pH: 5.40 (+0.20)\n"},
		},
		{
			name: "explicit zero measurement is shown",
			batch: model.Batch{
				ID: "b1", Name: "Test",
				MeasuredFermenterTopUp: f64(0),
			},
			contains: []string{"- Fermenter Top-Up: 0.00L\n"},
		},
		{
			name:   "absent measurements hide the section",
			batch:  model.Batch{ID: "b1", Name: "Test"},
			absent: []string{"Brew Day Measurements", "Fermentation Measurements"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := r.BatchDetail(&tc.batch)
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestBatchDetail_Sections(t *testing.T) {
	r := New(time.UTC)
	batch := &model.Batch{
		ID:       "b1",
		Name:     "Porter",
		Status:   model.BatchStatusFermenting,
		BrewDate: i64(0),
		Tags:     []string{"dark", "winter"},
		Notes: []model.BatchNote{
			{Note: "Pitched yeast", Type: "statusChanged", Timestamp: i64(60_000)},
			{Note: "Dry hopped", Type: "statusChanged"},
		},
		Measurements: []model.Measurement{
			{Type: "gravity", Value: f64(1.02), Unit: "SG", Comment: str("after dry hop")},
		},
		MeasurementDevices: []model.MeasurementDevice{{Type: str("iSpindel")}},
		Recipe:             &model.Recipe{ID: "r1", Name: "Robust Porter", Carbonation: f64(2.3)},
	}

	out := r.BatchDetail(batch)
	assert.Contains(t, out, "Status: Fermenting\n")
	assert.Contains(t, out, "Brew Date: 1970-01-01 00:00:00\n")
	assert.Contains(t, out, "Fermentation Start: N/A\n")
	assert.Contains(t, out, "Tags: dark, winter\n")
	assert.Contains(t, out, "Level: 2.3 volumes\n")
	assert.Contains(t, out, "- [statusChanged] Pitched yeast (1970-01-01 00:01:00)\n")
	assert.Contains(t, out, "- [statusChanged] Dry hopped (N/A)\n")
	assert.Contains(t, out, "- gravity: 1.02 SG [N/A] (after dry hop)\n")
	assert.Contains(t, out, "- Unknown Device (iSpindel)\n")
	assert.Contains(t, out, "RECIPE DETAILS")
	assert.Contains(t, out, "Recipe: Robust Porter")
	assert.True(t, strings.HasSuffix(out, "Batch ID: b1\n"))
}

func TestInventoryLists_OnlyInStock(t *testing.T) {
	r := New(time.UTC)
	fermentables := []model.Fermentable{
		{ID: "f1", Name: "Pilsner", Inventory: f64(4)},
		{ID: "f2", Name: "Munich", Inventory: f64(0)},
		{ID: "f3", Name: "Carapils"},
		{ID: "f4", Name: "Wheat", Inventory: f64(-1)},
		{ID: "f5", Name: "Vienna", Inventory: f64(0.5)},
	}

	out := r.FermentableList(fermentables)
	assert.Contains(t, out, "Name: Pilsner\n")
	assert.Contains(t, out, "Quantity: 0.5 kg\n")
	assert.NotContains(t, out, "Munich")
	assert.NotContains(t, out, "Carapils")
	assert.NotContains(t, out, "Wheat")
	assert.Equal(t, 1, strings.Count(out, "---\n"))

	assert.Equal(t, "No hops in stock.", r.HopList([]model.Hop{{ID: "h1", Name: "Saaz", Inventory: f64(0)}}))
}

func TestSummary_IncludesEveryItem(t *testing.T) {
	r := New(time.UTC)
	out := r.Summary(InventorySummary{
		Fermentables: []model.Fermentable{{ID: "f1", Name: "Pilsner", Inventory: f64(0)}},
		Hops:         []model.Hop{{ID: "h1", Name: "Saaz", Alpha: f64(3.5), Inventory: f64(100)}},
		Yeasts:       []model.Yeast{{ID: "y1", Name: "US-05", Attenuation: f64(81)}},
		Miscs:        []model.Misc{{ID: "m1", Name: "Gypsum", Inventory: f64(12)}},
	})

	assert.Contains(t, out, "Fermentables:\n\nName: Pilsner\n")
	assert.Contains(t, out, "Inventory Amount: 0 kg\n")
	assert.Contains(t, out, "Alpha Acid: 3.5\n")
	assert.Contains(t, out, "Attenuation: 81%\n")
	assert.Contains(t, out, "Inventory Amount: N/A\n")
	assert.Contains(t, out, "Miscellaneous Items:\n\nName: Gypsum\n")
}

func TestYeastDetail_FirestoreTimestamp(t *testing.T) {
	r := New(time.UTC)
	out := r.YeastDetail(&model.Yeast{
		ID:      "y1",
		Name:    "US-05",
		Created: &model.Timestamp{Seconds: 86400},
	})
	assert.Contains(t, out, "Created: 1970-01-02 00:00:00\n")
	assert.Contains(t, out, "Timestamp: N/A\n")
	assert.Contains(t, out, "Flocculation: N/A\n")
}

func threeStageTracker(stage int, active bool) *model.BrewTracker {
	steps := func() []model.BrewTrackerStep {
		return []model.BrewTrackerStep{{Name: "Heat", Type: "temp"}, {Type: "timer"}}
	}
	return &model.BrewTracker{
		Name:   "Brew Day",
		Active: active,
		Stage:  stage,
		Stages: []model.BrewTrackerStage{
			{Name: "Mash", Steps: steps()},
			{Name: "Boil", Steps: steps()},
			{Name: "Chill", Steps: steps()},
		},
	}
}

func TestStageState(t *testing.T) {
	testCases := []struct {
		name     string
		active   bool
		expected []ProgressState
	}{
		{name: "active", active: true, expected: []ProgressState{Completed, InProgress, Pending}},
		{name: "inactive", active: false, expected: []ProgressState{Completed, Pending, Pending}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tracker := threeStageTracker(1, tc.active)
			for i, want := range tc.expected {
				assert.Equal(t, want, StageState(tracker, i), "stage %d", i)
			}
		})
	}
}

func TestStepState(t *testing.T) {
	tracker := threeStageTracker(1, true)
	tracker.Stages[1].Step = 1

	assert.Equal(t, Completed, StepState(tracker, 0, 1))
	assert.Equal(t, Completed, StepState(tracker, 1, 0))
	assert.Equal(t, InProgress, StepState(tracker, 1, 1))
	assert.Equal(t, Pending, StepState(tracker, 2, 0))

	tracker.Active = false
	assert.Equal(t, Pending, StepState(tracker, 1, 1))
}

func TestBrewTracker_Render(t *testing.T) {
	r := New(time.UTC)
	tracker := threeStageTracker(1, true)
	tracker.Stages[0].Paused = true
	tracker.Stages[1].Steps[0].Value = f64(66)
	tracker.Stages[1].Steps[0].Time = 600

	out := r.BrewTracker("b1", tracker)
	assert.Contains(t, out, "Status: ACTIVE | Stage 2 of 3\n")
	assert.Contains(t, out, "[COMPLETED] STAGE 1: MASH\n")
	assert.Contains(t, out, "Position: 0 min (PAUSED)\n")
	assert.Contains(t, out, "[IN PROGRESS] STAGE 2: BOIL\n")
	assert.Contains(t, out, "[PENDING] STAGE 3: CHILL\n")
	assert.Contains(t, out, "  [IN PROGRESS] Heat @ 10 min (66°C)\n")
	assert.Contains(t, out, "Timer Step")
}

func TestBrewTracker_Empty(t *testing.T) {
	r := New(time.UTC)
	assert.Contains(t, r.BrewTracker("b1", &model.BrewTracker{}), "No brewtracker data available for batch b1")
	assert.Contains(t, r.BrewTracker("b1", &model.BrewTracker{Name: "x"}), "No brewtracker data available")
}

func readingsWithTemps(temps ...float64) []model.Reading {
	readings := make([]model.Reading, 0, len(temps))
	for i, temp := range temps {
		readings = append(readings, model.Reading{Time: i64(int64(i) * 60_000), Temp: f64(temp)})
	}
	return readings
}

func TestAnalyzeTrend(t *testing.T) {
	testCases := []struct {
		name     string
		temps    []float64
		expected Direction
	}{
		{name: "rising compares first and last only", temps: []float64{18.0, 18.2, 18.7}, expected: Rising},
		{name: "falling", temps: []float64{20.0, 25.0, 19.4}, expected: Falling},
		{name: "exactly at threshold is stable", temps: []float64{18.0, 30.0, 18.5}, expected: Stable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			trend, ok := AnalyzeTrend(readingsWithTemps(tc.temps...))
			require.True(t, ok)
			require.NotNil(t, trend.Temp)
			assert.Equal(t, tc.expected, trend.Temp.Direction)
			assert.Nil(t, trend.SG)
		})
	}

	trend, ok := AnalyzeTrend(readingsWithTemps(18.0, 18.2, 18.7))
	require.True(t, ok)
	assert.InDelta(t, 0.7, trend.Temp.Change, 1e-9)

	_, ok = AnalyzeTrend(readingsWithTemps(18.0, 25.0))
	assert.False(t, ok)
}

func TestAnalyzeTrend_Gravity(t *testing.T) {
	readings := []model.Reading{
		{SG: f64(1.050), Temp: f64(18)},
		{SG: f64(1.049)},
		{SG: f64(1.048)},
	}
	trend, ok := AnalyzeTrend(readings)
	require.True(t, ok)
	require.NotNil(t, trend.SG)
	assert.Equal(t, Stable, trend.SG.Direction)
	assert.Nil(t, trend.Temp, "temperature missing on the last reading disables only that trend")

	readings[2].SG = f64(1.040)
	trend, _ = AnalyzeTrend(readings)
	assert.Equal(t, Falling, trend.SG.Direction)
}

func TestReadingsSummary(t *testing.T) {
	r := New(time.UTC)

	assert.Equal(t, "No sensor readings found for this batch.", r.ReadingsSummary(nil, 10))

	temps := make([]float64, 12)
	for i := range temps {
		temps[i] = 18 + float64(i)*0.1
	}
	readings := readingsWithTemps(temps...)
	readings[11].Name = "Tilt Red"

	out := r.ReadingsSummary(readings, 10)
	assert.Contains(t, out, "Total readings available: 12\n")
	assert.Contains(t, out, "Showing latest 10 readings:\n")
	assert.NotContains(t, out, "01-01 00:00 |")
	assert.Contains(t, out, "01-01 00:11 | Tilt Red | 19.1°C\n")
	assert.Contains(t, out, "Temperature: Rising (+0.9°C)\n")
	assert.NotContains(t, out, "Specific Gravity:")

	short := r.ReadingsSummary(readings[:2], 10)
	assert.NotContains(t, short, "TREND ANALYSIS")
}

func TestLastReading(t *testing.T) {
	r := New(time.UTC)
	out := r.LastReading(&model.Reading{Name: "Tilt", DeviceType: "tilt", Temp: f64(19.5), SG: f64(1.0123)})

	assert.Contains(t, out, "Device: Tilt (tilt)\n")
	assert.Contains(t, out, "Reading Time: N/A\n")
	assert.Contains(t, out, "Temperature: 19.5°C")
	assert.Contains(t, out, "Specific Gravity: 1.0123")
	assert.NotContains(t, out, "Battery")
}

func TestRecipeEnums(t *testing.T) {
	out := RecipeEnums()
	assert.Contains(t, out, "Recipe Types:\n- All Grain\n- Extract\n- Partial Mash\n")
	assert.Contains(t, out, "- Dry Hop\n")
	assert.Contains(t, out, "Batch Statuses:\n")
}

func TestRecipeDetail(t *testing.T) {
	r := New(time.UTC)
	out := r.RecipeDetail(&model.Recipe{
		ID:           "r1",
		Name:         "Pale Ale",
		Type:         model.RecipeTypeAllGrain,
		Style:        &model.RecipeStyle{Name: "American Pale Ale"},
		BatchSize:    f64(21),
		Fermentables: []model.RecipeFermentable{{Name: "Pale Malt", Type: model.FermentableTypeGrain, Amount: 4.5, Color: f64(6)}},
		Hops:         []model.RecipeHop{{Name: "Cascade", Type: model.HopFormPellet, Amount: 30, Alpha: 5.5, Use: model.HopUseBoil, Time: 60}},
		Miscs:        []model.RecipeMisc{{Name: "Irish Moss", Amount: 5, Use: model.MiscUseBoil}},
		Mash:         &model.MashSchedule{Steps: []model.MashStep{{StepTemp: 66, StepTime: 60, Type: model.MashStepTypeTemperature}}},
	})

	assert.Contains(t, out, "Style: American Pale Ale\n")
	assert.Contains(t, out, "Batch Size: 21 L\n")
	assert.Contains(t, out, "Original Gravity (OG): N/A\n")
	assert.Contains(t, out, "- Pale Malt: 4.5 kg (Grain, 6 EBC)\n")
	assert.Contains(t, out, "- Cascade: 30 g @ 60 min (Boil, 5.5% AA, Pellet)\n")
	assert.Contains(t, out, "- Irish Moss: 5 (Boil)\n")
	assert.Contains(t, out, "- Step 1: 66°C for 60 min (Temperature)\n")
	assert.NotContains(t, out, "Fermentation Schedule")
}
