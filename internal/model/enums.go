package model

// RecipeType is the brewing method of a recipe.
type RecipeType string

const (
	RecipeTypeAllGrain    RecipeType = "All Grain"
	RecipeTypeExtract     RecipeType = "Extract"
	RecipeTypePartialMash RecipeType = "Partial Mash"
)

// HopUse is the point in the process where a hop addition happens.
type HopUse string

const (
	HopUseBoil      HopUse = "Boil"
	HopUseFirstWort HopUse = "First Wort"
	HopUseDryHop    HopUse = "Dry Hop"
	HopUseAroma     HopUse = "Aroma"
	HopUseMash      HopUse = "Mash"
)

// HopForm is the physical form of a hop.
type HopForm string

const (
	HopFormPellet HopForm = "Pellet"
	HopFormLeaf   HopForm = "Leaf"
	HopFormPlug   HopForm = "Plug"
	HopFormCryo   HopForm = "Cryo"
)

// HopUsage is the purpose a hop variety is usually chosen for.
type HopUsage string

const (
	HopUsageBittering HopUsage = "Bittering"
	HopUsageAroma     HopUsage = "Aroma"
	HopUsageBoth      HopUsage = "Both"
)

type YeastForm string

const (
	YeastFormDry     YeastForm = "Dry"
	YeastFormLiquid  YeastForm = "Liquid"
	YeastFormCulture YeastForm = "Culture"
	YeastFormSlurry  YeastForm = "Slurry"
)

type YeastType string

const (
	YeastTypeAle       YeastType = "Ale"
	YeastTypeLager     YeastType = "Lager"
	YeastTypeHybrid    YeastType = "Hybrid"
	YeastTypeWheat     YeastType = "Wheat"
	YeastTypeWine      YeastType = "Wine"
	YeastTypeChampagne YeastType = "Champagne"
	YeastTypeKveik     YeastType = "Kveik"
)

type Flocculation string

const (
	FlocculationLow      Flocculation = "Low"
	FlocculationMedium   Flocculation = "Medium"
	FlocculationHigh     Flocculation = "High"
	FlocculationVeryHigh Flocculation = "Very High"
)

type MiscUse string

const (
	MiscUseBoil      MiscUse = "Boil"
	MiscUseMash      MiscUse = "Mash"
	MiscUsePrimary   MiscUse = "Primary"
	MiscUseSecondary MiscUse = "Secondary"
	MiscUseBottling  MiscUse = "Bottling"
	MiscUseSparge    MiscUse = "Sparge"
	MiscUseFlameout  MiscUse = "Flameout"
)

type MiscType string

const (
	MiscTypeSpice      MiscType = "Spice"
	MiscTypeFining     MiscType = "Fining"
	MiscTypeWaterAgent MiscType = "Water Agent"
	MiscTypeHerb       MiscType = "Herb"
	MiscTypeFlavor     MiscType = "Flavor"
	MiscTypeOther      MiscType = "Other"
)

type FermentableType string

const (
	FermentableTypeGrain      FermentableType = "Grain"
	FermentableTypeSugar      FermentableType = "Sugar"
	FermentableTypeExtract    FermentableType = "Extract"
	FermentableTypeDryExtract FermentableType = "Dry Extract"
	FermentableTypeAdjunct    FermentableType = "Adjunct"
	FermentableTypeFruit      FermentableType = "Fruit"
	FermentableTypeJuice      FermentableType = "Juice"
	FermentableTypeHoney      FermentableType = "Honey"
)

// GrainGroup is the malt category of a grain fermentable.
type GrainGroup string

const (
	GrainGroupBase      GrainGroup = "Base"
	GrainGroupCaramel   GrainGroup = "Caramel"
	GrainGroupCrystal   GrainGroup = "Crystal"
	GrainGroupRoasted   GrainGroup = "Roasted"
	GrainGroupSmoked    GrainGroup = "Smoked"
	GrainGroupAdjunct   GrainGroup = "Adjunct"
	GrainGroupSpecialty GrainGroup = "Specialty"
)

type MashStepType string

const (
	MashStepTypeTemperature MashStepType = "Temperature"
	MashStepTypeInfusion    MashStepType = "Infusion"
	MashStepTypeDecoction   MashStepType = "Decoction"
)

type FermentationStepType string

const (
	FermentationStepTypePrimary      FermentationStepType = "Primary"
	FermentationStepTypeSecondary    FermentationStepType = "Secondary"
	FermentationStepTypeConditioning FermentationStepType = "Conditioning"
	FermentationStepTypeColdCrash    FermentationStepType = "Cold Crash"
	FermentationStepTypeDiacetylRest FermentationStepType = "Diacetyl Rest"
	FermentationStepTypeCarbonation  FermentationStepType = "Carbonation"
	FermentationStepTypeAging        FermentationStepType = "Aging"
)

// BatchStatus is the lifecycle state of a batch.
type BatchStatus string

const (
	BatchStatusPlanning     BatchStatus = "Planning"
	BatchStatusBrewing      BatchStatus = "Brewing"
	BatchStatusFermenting   BatchStatus = "Fermenting"
	BatchStatusConditioning BatchStatus = "Conditioning"
	BatchStatusCompleted    BatchStatus = "Completed"
	BatchStatusArchived     BatchStatus = "Archived"
)

func AllRecipeTypes() []RecipeType {
	return []RecipeType{RecipeTypeAllGrain, RecipeTypeExtract, RecipeTypePartialMash}
}

func AllHopUses() []HopUse {
	return []HopUse{HopUseBoil, HopUseFirstWort, HopUseDryHop, HopUseAroma, HopUseMash}
}

func AllHopForms() []HopForm {
	return []HopForm{HopFormPellet, HopFormLeaf, HopFormPlug, HopFormCryo}
}

func AllHopUsages() []HopUsage {
	return []HopUsage{HopUsageBittering, HopUsageAroma, HopUsageBoth}
}

func AllYeastForms() []YeastForm {
	return []YeastForm{YeastFormDry, YeastFormLiquid, YeastFormCulture, YeastFormSlurry}
}

func AllYeastTypes() []YeastType {
	return []YeastType{YeastTypeAle, YeastTypeLager, YeastTypeHybrid, YeastTypeWheat, YeastTypeWine, YeastTypeChampagne, YeastTypeKveik}
}

func AllFlocculations() []Flocculation {
	return []Flocculation{FlocculationLow, FlocculationMedium, FlocculationHigh, FlocculationVeryHigh}
}

func AllMiscUses() []MiscUse {
	return []MiscUse{MiscUseBoil, MiscUseMash, MiscUsePrimary, MiscUseSecondary, MiscUseBottling, MiscUseSparge, MiscUseFlameout}
}

func AllMiscTypes() []MiscType {
	return []MiscType{MiscTypeSpice, MiscTypeFining, MiscTypeWaterAgent, MiscTypeHerb, MiscTypeFlavor, MiscTypeOther}
}

func AllFermentableTypes() []FermentableType {
	return []FermentableType{
		FermentableTypeGrain, FermentableTypeSugar, FermentableTypeExtract, FermentableTypeDryExtract,
		FermentableTypeAdjunct, FermentableTypeFruit, FermentableTypeJuice, FermentableTypeHoney,
	}
}

func AllGrainGroups() []GrainGroup {
	return []GrainGroup{GrainGroupBase, GrainGroupCaramel, GrainGroupCrystal, GrainGroupRoasted, GrainGroupSmoked, GrainGroupAdjunct, GrainGroupSpecialty}
}

func AllMashStepTypes() []MashStepType {
	return []MashStepType{MashStepTypeTemperature, MashStepTypeInfusion, MashStepTypeDecoction}
}

func AllFermentationStepTypes() []FermentationStepType {
	return []FermentationStepType{
		FermentationStepTypePrimary, FermentationStepTypeSecondary, FermentationStepTypeConditioning,
		FermentationStepTypeColdCrash, FermentationStepTypeDiacetylRest, FermentationStepTypeCarbonation,
		FermentationStepTypeAging,
	}
}

func AllBatchStatuses() []BatchStatus {
	return []BatchStatus{BatchStatusPlanning, BatchStatusBrewing, BatchStatusFermenting, BatchStatusConditioning, BatchStatusCompleted, BatchStatusArchived}
}

// Valid reports whether t is one of the known recipe types.
func (t RecipeType) Valid() bool { return contains(AllRecipeTypes(), t) }

func (u HopUse) Valid() bool { return contains(AllHopUses(), u) }

func (f YeastForm) Valid() bool { return contains(AllYeastForms(), f) }

func (u MiscUse) Valid() bool { return contains(AllMiscUses(), u) }

func (s BatchStatus) Valid() bool { return contains(AllBatchStatuses(), s) }

// Names converts a list of enum values into their string form.
func Names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
