package tools

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"brewfather-mcp/internal/model"
	"brewfather-mcp/internal/recipe"
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func batchStatuses() []string {
	return model.Names(model.AllBatchStatuses())
}

// present reports whether key was passed with a non-null value.
func present(args map[string]any, key string) bool {
	v, ok := args[key]
	return ok && v != nil
}

// numberArgs collects the keys present in the request. Null values count as absent.
func numberArgs(req mcp.CallToolRequest, keys []string) (map[string]float64, error) {
	args := req.GetArguments()
	out := make(map[string]float64)
	for _, k := range keys {
		if !present(args, k) {
			continue
		}
		f, err := req.RequireFloat(k)
		if err != nil {
			return nil, err
		}
		out[k] = f
	}
	return out, nil
}

func optString(args map[string]any, key string) *string {
	s, ok := args[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func optFloat(req mcp.CallToolRequest, key string) (*float64, error) {
	if !present(req.GetArguments(), key) {
		return nil, nil
	}
	f, err := req.RequireFloat(key)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// rawEntries re-encodes each array element so the builder can validate entries one by
// one. A JSON string holding an array is accepted too.
func rawEntries(args map[string]any, key string) ([]json.RawMessage, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch list := v.(type) {
	case string:
		var out []json.RawMessage
		if err := json.Unmarshal([]byte(list), &out); err != nil {
			return nil, fmt.Errorf("argument %q must be an array: %w", key, err)
		}
		return out, nil
	case []any:
		out := make([]json.RawMessage, 0, len(list))
		for _, entry := range list {
			b, err := json.Marshal(entry)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", key, err)
			}
			out = append(out, b)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("argument %q must be an array", key)
	}
}

func recipeInput(req mcp.CallToolRequest) (recipe.Input, error) {
	args := req.GetArguments()
	in := recipe.Input{
		Name:       req.GetString("name", ""),
		Author:     optString(args, "author"),
		RecipeType: req.GetString("recipe_type", ""),
		StyleName:  optString(args, "style_name"),
	}

	var err error
	if in.BatchSize, err = optFloat(req, "batch_size"); err != nil {
		return in, err
	}
	boil, err := optFloat(req, "boil_time")
	if err != nil {
		return in, err
	}
	if boil != nil {
		minutes := int(*boil)
		in.BoilTime = &minutes
	}
	if in.FermentationTemp, err = optFloat(req, "fermentation_temp"); err != nil {
		return in, err
	}

	lists := []struct {
		key string
		dst *[]json.RawMessage
	}{
		{"fermentables", &in.Fermentables},
		{"hops", &in.Hops},
		{"yeasts", &in.Yeasts},
		{"miscs", &in.Miscs},
		{"mash_steps", &in.MashSteps},
	}
	for _, l := range lists {
		if *l.dst, err = rawEntries(args, l.key); err != nil {
			return in, err
		}
	}
	return in, nil
}
