package model

// Record is implemented by every list-endpoint record; the id is the pagination cursor.
type Record interface {
	GetID() string
}

// Timestamp is the Firestore-style timestamp object Brewfather attaches to some records.
type Timestamp struct {
	Seconds     int64 `json:"_seconds"`
	Nanoseconds int64 `json:"_nanoseconds"`
}

// Fermentable is a fermentable inventory item. Inventory is in kg.
type Fermentable struct {
	ID                  string          `json:"_id"`
	Name                string          `json:"name"`
	Type                FermentableType `json:"type,omitempty"`
	Supplier            *string         `json:"supplier,omitempty"`
	Inventory           *float64        `json:"inventory,omitempty"`
	Origin              *string         `json:"origin,omitempty"`
	GrainCategory       *string         `json:"grainCategory,omitempty"`
	Potential           *float64        `json:"potential,omitempty"`
	PotentialPercentage *float64        `json:"potentialPercentage,omitempty"`
	Color               *float64        `json:"color,omitempty"`
	Moisture            *float64        `json:"moisture,omitempty"`
	Protein             *float64        `json:"protein,omitempty"`
	DiastaticPower      *float64        `json:"diastaticPower,omitempty"`
	Friability          *float64        `json:"friability,omitempty"`
	NotFermentable      *bool           `json:"notFermentable,omitempty"`
	MaxInBatch          *float64        `json:"maxInBatch,omitempty"`
	CoarseFineDiff      *float64        `json:"coarseFineDiff,omitempty"`
	FGDB                *float64        `json:"fgdb,omitempty"`
	CGDB                *float64        `json:"cgdb,omitempty"`
	FAN                 *float64        `json:"fan,omitempty"`
	Acid                *float64        `json:"acid,omitempty"`
	Hidden              *bool           `json:"hidden,omitempty"`
	Notes               *string         `json:"notes,omitempty"`
	UserNotes           *string         `json:"userNotes,omitempty"`
	UsedIn              *string         `json:"usedIn,omitempty"`
	Substitutes         *string         `json:"substitutes,omitempty"`
	CostPerAmount       *float64        `json:"costPerAmount,omitempty"`
	BestBeforeDate      *int64          `json:"bestBeforeDate,omitempty"`
	ManufacturingDate   *int64          `json:"manufacturingDate,omitempty"`
}

func (f Fermentable) GetID() string { return f.ID }

// Hop is a hop inventory item. Inventory is in grams.
type Hop struct {
	ID                string   `json:"_id"`
	Name              string   `json:"name"`
	Type              HopForm  `json:"type,omitempty"`
	Origin            *string  `json:"origin,omitempty"`
	Use               HopUse   `json:"use,omitempty"`
	Usage             HopUsage `json:"usage,omitempty"`
	Alpha             *float64 `json:"alpha,omitempty"`
	Beta              *float64 `json:"beta,omitempty"`
	Inventory         *float64 `json:"inventory,omitempty"`
	Time              *float64 `json:"time,omitempty"`
	IBU               *float64 `json:"ibu,omitempty"`
	Oil               *float64 `json:"oil,omitempty"`
	Myrcene           *float64 `json:"myrcene,omitempty"`
	Caryophyllene     *float64 `json:"caryophyllene,omitempty"`
	Humulene          *float64 `json:"humulene,omitempty"`
	Cohumulone        *float64 `json:"cohumulone,omitempty"`
	Farnesene         *float64 `json:"farnesene,omitempty"`
	HSI               *float64 `json:"hsi,omitempty"`
	Year              *int     `json:"year,omitempty"`
	Temp              *float64 `json:"temp,omitempty"`
	Amount            *float64 `json:"amount,omitempty"`
	Substitutes       *string  `json:"substitutes,omitempty"`
	UsedIn            *string  `json:"usedIn,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	UserNotes         *string  `json:"userNotes,omitempty"`
	Hidden            *bool    `json:"hidden,omitempty"`
	BestBeforeDate    *int64   `json:"bestBeforeDate,omitempty"`
	ManufacturingDate *int64   `json:"manufacturingDate,omitempty"`
	Version           *string  `json:"_version,omitempty"`
}

func (h Hop) GetID() string { return h.ID }

// Yeast is a yeast inventory item. Inventory is a package count in Unit.
type Yeast struct {
	ID                string        `json:"_id"`
	Name              string        `json:"name"`
	Type              YeastType     `json:"type,omitempty"`
	Form              YeastForm     `json:"form,omitempty"`
	Laboratory        *string       `json:"laboratory,omitempty"`
	ProductID         *string       `json:"productId,omitempty"`
	Inventory         *float64      `json:"inventory,omitempty"`
	Amount            *float64      `json:"amount,omitempty"`
	Unit              *string       `json:"unit,omitempty"`
	Attenuation       *float64      `json:"attenuation,omitempty"`
	MinAttenuation    *float64      `json:"minAttenuation,omitempty"`
	MaxAttenuation    *float64      `json:"maxAttenuation,omitempty"`
	Flocculation      *Flocculation `json:"flocculation,omitempty"`
	MinTemp           *float64      `json:"minTemp,omitempty"`
	MaxTemp           *float64      `json:"maxTemp,omitempty"`
	MaxABV            *float64      `json:"maxAbv,omitempty"`
	CellsPerPkg       *float64      `json:"cellsPerPkg,omitempty"`
	AgeRate           *float64      `json:"ageRate,omitempty"`
	FermentsAll       *bool         `json:"fermentsAll,omitempty"`
	Description       *string       `json:"description,omitempty"`
	UserNotes         *string       `json:"userNotes,omitempty"`
	Hidden            *bool         `json:"hidden,omitempty"`
	BestBeforeDate    *int64        `json:"bestBeforeDate,omitempty"`
	ManufacturingDate *int64        `json:"manufacturingDate,omitempty"`
	Timestamp         *Timestamp    `json:"_timestamp,omitempty"`
	Created           *Timestamp    `json:"_created,omitempty"`
	Version           *string       `json:"_version,omitempty"`
	Rev               *string       `json:"_rev,omitempty"`
}

func (y Yeast) GetID() string { return y.ID }

// Misc is a miscellaneous inventory item (salts, finings, spices). Units vary per item.
type Misc struct {
	ID        string   `json:"_id"`
	Name      string   `json:"name"`
	Type      MiscType `json:"type,omitempty"`
	Use       MiscUse  `json:"use,omitempty"`
	Inventory *float64 `json:"inventory,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	Time      *float64 `json:"time,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

func (m Misc) GetID() string { return m.ID }

// InStock reports whether an inventory quantity is tracked and strictly positive.
func InStock(inventory *float64) bool {
	return inventory != nil && *inventory > 0
}
