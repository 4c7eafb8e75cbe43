package model

// BatchNote is a free-text note attached to a batch.
type BatchNote struct {
	Note      string `json:"note"`
	Type      string `json:"type"`
	Timestamp *int64 `json:"timestamp,omitempty"`
}

// Measurement is a manually logged value on a batch.
type Measurement struct {
	Type    string   `json:"type"`
	Value   *float64 `json:"value,omitempty"`
	Unit    string   `json:"unit,omitempty"`
	Time    *int64   `json:"time,omitempty"`
	Comment *string  `json:"comment,omitempty"`
}

type MeasurementDevice struct {
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// Batch is a single brew of a recipe. Targets come from the embedded recipe,
// measured values are recorded on brew day and during fermentation.
type Batch struct {
	ID                    string      `json:"_id"`
	Name                  string      `json:"name"`
	BatchNo               *int        `json:"batchNo,omitempty"`
	Status                BatchStatus `json:"status,omitempty"`
	Brewer                *string     `json:"brewer,omitempty"`
	BrewDate              *int64      `json:"brewDate,omitempty"`
	Brewed                *bool       `json:"brewed,omitempty"`
	FermentationStartDate *int64      `json:"fermentationStartDate,omitempty"`
	FermentationEndDate   *int64      `json:"fermentationEndDate,omitempty"`
	BottlingDate          *int64      `json:"bottlingDate,omitempty"`
	Recipe                *Recipe     `json:"recipe,omitempty"`

	OG               *float64 `json:"estimatedOg,omitempty"`
	FG               *float64 `json:"estimatedFg,omitempty"`
	ABV              *float64 `json:"measuredAbvEstimate,omitempty"`
	CarbonationType  *string  `json:"carbonationType,omitempty"`
	CarbonationLevel *float64 `json:"carbonationForce,omitempty"`
	CarbonationTemp  *float64 `json:"carbonationTemp,omitempty"`

	MeasuredMashPH               *float64 `json:"measuredMashPh,omitempty"`
	MeasuredFirstWortGravity     *float64 `json:"measuredFirstWortGravity,omitempty"`
	MeasuredPreBoilGravity       *float64 `json:"measuredPreBoilGravity,omitempty"`
	MeasuredPostBoilGravity      *float64 `json:"measuredPostBoilGravity,omitempty"`
	MeasuredBoilSize             *float64 `json:"measuredBoilSize,omitempty"`
	MeasuredKettleSize           *float64 `json:"measuredKettleSize,omitempty"`
	MeasuredBatchSize            *float64 `json:"measuredBatchSize,omitempty"`
	MeasuredFermenterTopUp       *float64 `json:"measuredFermenterTopUp,omitempty"`
	MeasuredOG                   *float64 `json:"measuredOg,omitempty"`
	MeasuredFG                   *float64 `json:"measuredFg,omitempty"`
	MeasuredABV                  *float64 `json:"measuredAbv,omitempty"`
	MeasuredAttenuation          *float64 `json:"measuredAttenuation,omitempty"`
	MeasuredBottlingSize         *float64 `json:"measuredBottlingSize,omitempty"`
	MeasuredEfficiency           *float64 `json:"measuredEfficiency,omitempty"`
	MeasuredMashEfficiency       *float64 `json:"measuredMashEfficiency,omitempty"`
	MeasuredKettleEfficiency     *float64 `json:"measuredKettleEfficiency,omitempty"`
	MeasuredConversionEfficiency *float64 `json:"measuredConversionEfficiency,omitempty"`

	Tags               []string            `json:"tags,omitempty"`
	Notes              []BatchNote         `json:"notes,omitempty"`
	Measurements       []Measurement       `json:"measurements,omitempty"`
	MeasurementDevices []MeasurementDevice `json:"devices,omitempty"`
}

func (b Batch) GetID() string { return b.ID }

// RecipeName returns the name of the embedded recipe, or "" when there is none.
func (b Batch) RecipeName() string {
	if b.Recipe == nil {
		return ""
	}
	return b.Recipe.Name
}
