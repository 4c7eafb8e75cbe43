package model

// CalculatedRecipeFields are the recipe keys owned by Brewfather. They are never part of an
// import payload produced by this service.
var CalculatedRecipeFields = []string{
	"og", "fg", "ibu", "color", "abv", "attenuation",
	"buGuRatio", "rbRatio", "styleConformity",
	"fermentableIbu", "extraGravity", "diastaticPower",
	"sumDryHopPerLiter", "avgWeightedHopstandTemp",
	"yeastToleranceExceededBy", "manualFg",
	"hopStandMinutes", "carbonationStyle",
}

// RecipeStyle is the beer style a recipe targets.
type RecipeStyle struct {
	Name         string  `json:"name"`
	Category     *string `json:"category,omitempty"`
	StyleGuide   *string `json:"styleGuide,omitempty"`
	CategoryCode *string `json:"categoryNumber,omitempty"`
}

// RecipeFermentable is a fermentable as used by a recipe (amount in kg).
type RecipeFermentable struct {
	ID            *string         `json:"_id,omitempty"`
	Name          string          `json:"name"`
	Type          FermentableType `json:"type,omitempty"`
	Amount        float64         `json:"amount"`
	Color         *float64        `json:"color,omitempty"`
	Percentage    *float64        `json:"percentage,omitempty"`
	Supplier      *string         `json:"supplier,omitempty"`
	GrainCategory *string         `json:"grainCategory,omitempty"`
}

// RecipeHop is a hop addition (amount in grams, time in minutes).
type RecipeHop struct {
	ID     *string  `json:"_id,omitempty"`
	Name   string   `json:"name"`
	Type   HopForm  `json:"type,omitempty"`
	Amount float64  `json:"amount"`
	Alpha  float64  `json:"alpha"`
	Use    HopUse   `json:"use"`
	Time   int      `json:"time"`
	Usage  HopUsage `json:"usage,omitempty"`
	IBU    *float64 `json:"ibu,omitempty"`
}

type RecipeYeast struct {
	ID          *string   `json:"_id,omitempty"`
	Name        string    `json:"name"`
	Type        YeastType `json:"type,omitempty"`
	Form        YeastForm `json:"form,omitempty"`
	Amount      float64   `json:"amount"`
	Unit        *string   `json:"unit,omitempty"`
	Laboratory  *string   `json:"laboratory,omitempty"`
	ProductID   *string   `json:"productId,omitempty"`
	Attenuation *float64  `json:"attenuation,omitempty"`
}

type RecipeMisc struct {
	ID     *string  `json:"_id,omitempty"`
	Name   string   `json:"name"`
	Type   MiscType `json:"type,omitempty"`
	Use    MiscUse  `json:"use,omitempty"`
	Amount float64  `json:"amount"`
	Unit   *string  `json:"unit,omitempty"`
	Time   *int     `json:"time,omitempty"`
}

// MashStep is one rest of a mash schedule (temperature in °C, time in minutes).
type MashStep struct {
	Name     string       `json:"name,omitempty"`
	Type     MashStepType `json:"type,omitempty"`
	StepTemp float64      `json:"stepTemp"`
	StepTime int          `json:"stepTime"`
	RampTime *int         `json:"rampTime,omitempty"`
}

type MashSchedule struct {
	Name  string     `json:"name,omitempty"`
	PH    *float64   `json:"ph,omitempty"`
	Steps []MashStep `json:"steps,omitempty"`
}

// FermentationStep is one phase of a fermentation schedule (temperature in °C, time in days).
type FermentationStep struct {
	Name     string               `json:"name,omitempty"`
	Type     FermentationStepType `json:"type,omitempty"`
	StepTemp float64              `json:"stepTemp"`
	StepTime int                  `json:"stepTime"`
}

type FermentationSchedule struct {
	Name  string             `json:"name,omitempty"`
	Steps []FermentationStep `json:"steps,omitempty"`
}

// Recipe is both the decoded recipe record and the import payload built locally.
// Calculated metrics are pointers so a locally built recipe omits them entirely.
type Recipe struct {
	ID              string       `json:"_id"`
	Name            string       `json:"name"`
	Author          *string      `json:"author,omitempty"`
	Type            RecipeType   `json:"type,omitempty"`
	Style           *RecipeStyle `json:"style,omitempty"`
	BatchSize       *float64     `json:"batchSize,omitempty"`
	BoilSize        *float64     `json:"boilSize,omitempty"`
	BoilTime        *int         `json:"boilTime,omitempty"`
	Efficiency      *float64     `json:"efficiency,omitempty"`
	MashEfficiency  *float64     `json:"mashEfficiency,omitempty"`
	PreBoilGravity  *float64     `json:"preBoilGravity,omitempty"`
	PostBoilGravity *float64     `json:"postBoilGravity,omitempty"`
	Carbonation     *float64     `json:"carbonation,omitempty"`
	Notes           *string      `json:"notes,omitempty"`

	OG          *float64 `json:"og,omitempty"`
	FG          *float64 `json:"fg,omitempty"`
	ABV         *float64 `json:"abv,omitempty"`
	IBU         *float64 `json:"ibu,omitempty"`
	Color       *float64 `json:"color,omitempty"`
	Attenuation *float64 `json:"attenuation,omitempty"`
	BuGuRatio   *float64 `json:"buGuRatio,omitempty"`
	RbRatio     *float64 `json:"rbRatio,omitempty"`

	Fermentables []RecipeFermentable   `json:"fermentables"`
	Hops         []RecipeHop           `json:"hops"`
	Yeasts       []RecipeYeast         `json:"yeasts"`
	Miscs        []RecipeMisc          `json:"miscs"`
	Mash         *MashSchedule         `json:"mash,omitempty"`
	Fermentation *FermentationSchedule `json:"fermentation,omitempty"`
}

func (r Recipe) GetID() string { return r.ID }
