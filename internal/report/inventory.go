package report

import (
	"strings"

	"brewfather-mcp/internal/model"
)

const blockSeparator = "---\n"

func joinBlocks(blocks []string, empty string) string {
	if len(blocks) == 0 {
		return empty
	}
	return strings.Join(blocks, blockSeparator)
}

func block(fields []field) string {
	var b strings.Builder
	writeFields(&b, fields)
	return b.String()
}

// FermentableList lists the fermentables that are in stock.
func (r *Renderer) FermentableList(items []model.Fermentable) string {
	var blocks []string
	for _, item := range items {
		if !model.InStock(item.Inventory) {
			continue
		}
		blocks = append(blocks, block([]field{
			{"Name", item.Name},
			{"Type", orNA(item.Type)},
			{"Supplier", optStr(item.Supplier)},
			{"Quantity", num(*item.Inventory) + " kg"},
			{"Identifier", item.ID},
		}))
	}
	return joinBlocks(blocks, "No fermentables in stock.")
}

// HopList lists the hops that are in stock.
func (r *Renderer) HopList(items []model.Hop) string {
	var blocks []string
	for _, item := range items {
		if !model.InStock(item.Inventory) {
			continue
		}
		blocks = append(blocks, block([]field{
			{"Identifier", item.ID},
			{"Alpha Acids (A.A)", optNum(item.Alpha)},
			{"Quantity", num(*item.Inventory) + " grams"},
			{"Name", item.Name},
			{"Type", orNA(item.Type)},
			{"Use", orNA(item.Use)},
		}))
	}
	return joinBlocks(blocks, "No hops in stock.")
}

// YeastList lists the yeasts that are in stock.
func (r *Renderer) YeastList(items []model.Yeast) string {
	var blocks []string
	for _, item := range items {
		if !model.InStock(item.Inventory) {
			continue
		}
		unit := "pkg"
		if item.Unit != nil && *item.Unit != "" {
			unit = *item.Unit
		}
		blocks = append(blocks, block([]field{
			{"Identifier", item.ID},
			{"Attenuation (%)", optNum(item.Attenuation)},
			{"Quantity", num(*item.Inventory) + " " + unit},
			{"Name", item.Name},
			{"Type", orNA(item.Type)},
		}))
	}
	return joinBlocks(blocks, "No yeasts in stock.")
}

// MiscList lists the miscellaneous items that are in stock.
func (r *Renderer) MiscList(items []model.Misc) string {
	var blocks []string
	for _, item := range items {
		if !model.InStock(item.Inventory) {
			continue
		}
		blocks = append(blocks, block([]field{
			{"ID", item.ID},
			{"Name", item.Name},
			{"Type", orNA(item.Type)},
			{"Inventory", num(*item.Inventory) + " units (actual unit depends on item)"},
			{"Notes", optStr(item.Notes)},
		}))
	}
	return joinBlocks(blocks, "No miscellaneous items found.")
}

func (r *Renderer) FermentableDetail(item *model.Fermentable) string {
	return block([]field{
		{"Name", item.Name},
		{"Type", orNA(item.Type)},
		{"Supplier", optStr(item.Supplier)},
		{"Inventory", optNum(item.Inventory)},
		{"Origin", optStr(item.Origin)},
		{"Grain Category", optStr(item.GrainCategory)},
		{"Potential", optNum(item.Potential)},
		{"Potential Percentage", optNum(item.PotentialPercentage)},
		{"Color", optNum(item.Color)},
		{"Moisture", optNum(item.Moisture)},
		{"Protein", optNum(item.Protein)},
		{"Diastatic Power", optNum(item.DiastaticPower)},
		{"Friability", optNum(item.Friability)},
		{"Not Fermentable", optBool(item.NotFermentable)},
		{"Max In Batch", optNum(item.MaxInBatch)},
		{"Coarse Fine Diff", optNum(item.CoarseFineDiff)},
		{"Percent Extract Fine-Ground Dry Basis (FGDB)", optNum(item.FGDB)},
		{"Hidden", optBool(item.Hidden)},
		{"Notes", optStr(item.Notes)},
		{"User Notes", optStr(item.UserNotes)},
		{"Used In", optStr(item.UsedIn)},
		{"Substitutes", optStr(item.Substitutes)},
		{"Cost Per Amount", optNum(item.CostPerAmount)},
		{"Best Before Date", r.Timestamp(item.BestBeforeDate)},
		{"Manufacturing Date", r.Timestamp(item.ManufacturingDate)},
		{"Free Amino Nitrogen (FAN)", optNum(item.FAN)},
		{"Percent Coarse-Ground Dry Basis (CGDB)", optNum(item.CGDB)},
		{"Acid", optNum(item.Acid)},
		{"ID", item.ID},
	})
}

func (r *Renderer) HopDetail(item *model.Hop) string {
	return block([]field{
		{"Name", item.Name},
		{"Type", orNA(item.Type)},
		{"Origin", optStr(item.Origin)},
		{"Use", orNA(item.Use)},
		{"Usage", orNA(item.Usage)},
		{"Alpha Acid (% A.A)", optNum(item.Alpha)},
		{"Beta", optNum(item.Beta)},
		{"Inventory", optNum(item.Inventory)},
		{"Time", optNum(item.Time)},
		{"IBU", optNum(item.IBU)},
		{"Oil", optNum(item.Oil)},
		{"Myrcene", optNum(item.Myrcene)},
		{"Caryophyllene", optNum(item.Caryophyllene)},
		{"Humulene", optNum(item.Humulene)},
		{"Cohumulone", optNum(item.Cohumulone)},
		{"Farnesene", optNum(item.Farnesene)},
		{"HSI", optNum(item.HSI)},
		{"Year", optInt(item.Year)},
		{"Temp", optNum(item.Temp)},
		{"Amount", optNum(item.Amount)},
		{"Substitutes", optStr(item.Substitutes)},
		{"Used In", optStr(item.UsedIn)},
		{"Notes", optStr(item.Notes)},
		{"User Notes", optStr(item.UserNotes)},
		{"Hidden", optBool(item.Hidden)},
		{"Best Before Date", r.Timestamp(item.BestBeforeDate)},
		{"Manufacturing Date", r.Timestamp(item.ManufacturingDate)},
		{"Version", optStr(item.Version)},
		{"ID", item.ID},
	})
}

func (r *Renderer) YeastDetail(item *model.Yeast) string {
	return block([]field{
		{"Name", item.Name},
		{"Type", orNA(item.Type)},
		{"Form", orNA(item.Form)},
		{"Laboratory", optStr(item.Laboratory)},
		{"Product ID", optStr(item.ProductID)},
		{"Inventory", optNum(item.Inventory)},
		{"Amount", optNum(item.Amount)},
		{"Unit", optStr(item.Unit)},
		{"Attenuation", optNum(item.Attenuation)},
		{"Min Attenuation", optNum(item.MinAttenuation)},
		{"Max Attenuation", optNum(item.MaxAttenuation)},
		{"Flocculation", flocculation(item.Flocculation)},
		{"Min Temp", optNum(item.MinTemp)},
		{"Max Temp", optNum(item.MaxTemp)},
		{"Max ABV", optNum(item.MaxABV)},
		{"Cells Per Package", optNum(item.CellsPerPkg)},
		{"Age Rate", optNum(item.AgeRate)},
		{"Ferments All", optBool(item.FermentsAll)},
		{"Description", optStr(item.Description)},
		{"User Notes", optStr(item.UserNotes)},
		{"Hidden", optBool(item.Hidden)},
		{"Best Before Date", r.Timestamp(item.BestBeforeDate)},
		{"Manufacturing Date", r.Timestamp(item.ManufacturingDate)},
		{"Timestamp", r.firestoreTime(item.Timestamp)},
		{"Created", r.firestoreTime(item.Created)},
		{"Version", optStr(item.Version)},
		{"ID", item.ID},
		{"Rev", optStr(item.Rev)},
	})
}

func (r *Renderer) MiscDetail(item *model.Misc) string {
	return block([]field{
		{"ID", item.ID},
		{"Name", item.Name},
		{"Type", orNA(item.Type)},
		{"Use", orNA(item.Use)},
		{"Inventory", withUnit(item.Inventory, " "+unitOr(item.Unit, "units"))},
		{"Amount", optNum(item.Amount)},
		{"Time", optNum(item.Time)},
		{"Notes", optStr(item.Notes)},
	})
}

func (r *Renderer) firestoreTime(ts *model.Timestamp) string {
	if ts == nil {
		return NotAvailable
	}
	ms := ts.Seconds*1000 + ts.Nanoseconds/1_000_000
	return r.millis(ms, timeLayout)
}

func flocculation(f *model.Flocculation) string {
	if f == nil {
		return NotAvailable
	}
	return orNA(*f)
}

func unitOr(unit *string, fallback string) string {
	if unit == nil || *unit == "" {
		return fallback
	}
	return *unit
}

// InventorySummary groups every item per category, whatever its stock level.
type InventorySummary struct {
	Fermentables []model.Fermentable
	Hops         []model.Hop
	Yeasts       []model.Yeast
	Miscs        []model.Misc
}

// Summary renders one short block per item, category by category.
func (r *Renderer) Summary(s InventorySummary) string {
	var b strings.Builder

	section := func(title string, blocks [][]field) {
		b.WriteString(title)
		b.WriteString(":\n\n")
		for _, fields := range blocks {
			writeFields(&b, fields)
			b.WriteByte('\n')
		}
	}

	fermentables := make([][]field, 0, len(s.Fermentables))
	for _, f := range s.Fermentables {
		fermentables = append(fermentables, []field{
			{"Name", f.Name},
			{"Type", orNA(f.Type)},
			{"Supplier", optStr(f.Supplier)},
			{"Inventory Amount", withUnit(f.Inventory, " kg")},
		})
	}
	hops := make([][]field, 0, len(s.Hops))
	for _, h := range s.Hops {
		hops = append(hops, []field{
			{"Name", h.Name},
			{"Alpha Acid", optNum(h.Alpha)},
			{"Type", orNA(h.Type)},
			{"Use", orNA(h.Use)},
			{"Inventory Amount", withUnit(h.Inventory, " grams")},
		})
	}
	yeasts := make([][]field, 0, len(s.Yeasts))
	for _, y := range s.Yeasts {
		yeasts = append(yeasts, []field{
			{"Name", y.Name},
			{"Type", orNA(y.Type)},
			{"Attenuation", withUnit(y.Attenuation, "%")},
			{"Inventory Amount", withUnit(y.Inventory, " pkg")},
		})
	}
	miscs := make([][]field, 0, len(s.Miscs))
	for _, m := range s.Miscs {
		miscs = append(miscs, []field{
			{"Name", m.Name},
			{"Type", orNA(m.Type)},
			{"Notes", optStr(m.Notes)},
			{"Inventory Amount", withUnit(m.Inventory, " units")},
		})
	}

	section("Fermentables", fermentables)
	b.WriteString("\n---\n")
	section("Hops", hops)
	b.WriteString("\n---\n")
	section("Yeasts", yeasts)
	b.WriteString("\n---\n")
	section("Miscellaneous Items", miscs)

	return b.String()
}
