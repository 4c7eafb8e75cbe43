package recipe

import (
	"fmt"
	"strconv"

	"brewfather-mcp/internal/model"
)

// ImportText wraps the import payload of rec with a short overview and the steps to
// import it in Brewfather.
func ImportText(rec *model.Recipe, payload []byte) string {
	batchSize, boilTime := "N/A", "N/A"
	if rec.BatchSize != nil {
		batchSize = strconv.FormatFloat(*rec.BatchSize, 'f', -1, 64)
	}
	if rec.BoilTime != nil {
		boilTime = strconv.Itoa(*rec.BoilTime)
	}

	return fmt.Sprintf(`RECIPE JSON FOR BREWFATHER IMPORT
====================================

Recipe Name: %s
Type: %s
Batch Size: %sL
Boil Time: %s minutes

Ingredients:
- Fermentables: %d
- Hops: %d
- Yeasts: %d
- Misc: %d

IMPORT INSTRUCTIONS:
1. Copy the JSON below
2. In Brewfather, go to Recipes → Import → Brewfather JSON
3. Paste the JSON and import

JSON:
-----
%s

Note: Equipment profiles and calculated values (OG, FG, IBU, ABV) will be
set by Brewfather after import. This recipe contains the essential brewing
information needed to make the beer.
`, rec.Name, rec.Type, batchSize, boilTime,
		len(rec.Fermentables), len(rec.Hops), len(rec.Yeasts), len(rec.Miscs), payload)
}
