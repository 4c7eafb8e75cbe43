package model

// BrewTrackerStep is one step inside a brewtracker stage. Time and Duration are seconds.
type BrewTrackerStep struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Value       *float64 `json:"value,omitempty"`
	Time        int      `json:"time"`
	Duration    int      `json:"duration"`
	Description string   `json:"description,omitempty"`
	Tooltip     string   `json:"tooltip,omitempty"`
}

// BrewTrackerStage groups steps; Step indexes the current step inside Steps.
type BrewTrackerStage struct {
	Name     string            `json:"name"`
	Duration int               `json:"duration"`
	Step     int               `json:"step"`
	Position int               `json:"position"`
	Paused   bool              `json:"paused"`
	Steps    []BrewTrackerStep `json:"steps"`
}

// BrewTracker is the live process guidance state of a batch; Stage indexes Stages.
type BrewTracker struct {
	Name      string             `json:"name"`
	Active    bool               `json:"active"`
	Completed bool               `json:"completed"`
	Notify    bool               `json:"notify"`
	Stage     int                `json:"stage"`
	Stages    []BrewTrackerStage `json:"stages"`
}

// Reading is one sensor sample. Time is epoch milliseconds.
type Reading struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name,omitempty"`
	DeviceType string   `json:"type,omitempty"`
	Time       *int64   `json:"time,omitempty"`
	Temp       *float64 `json:"temp,omitempty"`
	SG         *float64 `json:"sg,omitempty"`
	Battery    *float64 `json:"battery,omitempty"`
	RSSI       *float64 `json:"rssi,omitempty"`
	TargetTemp *float64 `json:"targetTemp,omitempty"`
	PH         *float64 `json:"ph,omitempty"`
	Pressure   *float64 `json:"pressure,omitempty"`
	Comment    *string  `json:"comment,omitempty"`
}
