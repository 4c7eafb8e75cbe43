// Package tools exposes the Brewfather client as agent tools.
package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"brewfather-mcp/internal/brewfather"
	"brewfather-mcp/internal/model"
	"brewfather-mcp/internal/recipe"
	"brewfather-mcp/internal/report"
)

const (
	inventoryPageSize = 50
	batchPageSize     = 50
	recipePageSize    = 100
)

// Brewfather is the part of the API client the tools depend on.
type Brewfather interface {
	ListFermentables(ctx context.Context, params *brewfather.ListQueryParams) ([]model.Fermentable, error)
	GetFermentable(ctx context.Context, id string) (*model.Fermentable, error)
	ListHops(ctx context.Context, params *brewfather.ListQueryParams) ([]model.Hop, error)
	GetHop(ctx context.Context, id string) (*model.Hop, error)
	ListYeasts(ctx context.Context, params *brewfather.ListQueryParams) ([]model.Yeast, error)
	GetYeast(ctx context.Context, id string) (*model.Yeast, error)
	ListMiscs(ctx context.Context, params *brewfather.ListQueryParams) ([]model.Misc, error)
	GetMisc(ctx context.Context, id string) (*model.Misc, error)
	UpdateInventory(ctx context.Context, category brewfather.InventoryCategory, id string, amount float64) error

	ListBatches(ctx context.Context, params *brewfather.ListQueryParams) ([]model.Batch, error)
	GetBatch(ctx context.Context, id string) (*model.Batch, error)
	UpdateBatch(ctx context.Context, id string, fields map[string]any) error
	GetBrewTracker(ctx context.Context, batchID string) (*model.BrewTracker, error)
	GetReadings(ctx context.Context, batchID string) ([]model.Reading, error)
	GetLastReading(ctx context.Context, batchID string) (*model.Reading, error)

	ListRecipes(ctx context.Context, params *brewfather.ListQueryParams) ([]model.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
}

// Handler implements every tool as a plain method returning the report text.
type Handler struct {
	api      Brewfather
	renderer *report.Renderer
	builder  *recipe.Builder
	logger   logrus.FieldLogger
}

func NewHandler(api Brewfather, renderer *report.Renderer, builder *recipe.Builder, logger logrus.FieldLogger) *Handler {
	return &Handler{api: api, renderer: renderer, builder: builder, logger: logger}
}

// fail logs err with the tool context and returns it unchanged.
func (h *Handler) fail(tool string, fields logrus.Fields, err error) error {
	h.logger.WithError(err).WithFields(fields).WithField("tool", tool).Error("tool failed")
	return err
}

var categoryLabels = map[brewfather.InventoryCategory]string{
	brewfather.Fermentables: "Fermentables (Grains, Adjuncts, etc..)",
	brewfather.Hops:         "Hops",
	brewfather.Yeasts:       "Yeasts",
	brewfather.Miscs:        "Miscellaneous Items",
}

func (h *Handler) InventoryCategories() string {
	var sb strings.Builder
	for _, c := range brewfather.InventoryCategories() {
		sb.WriteString(categoryLabels[c])
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (h *Handler) ListFermentables(ctx context.Context) (string, error) {
	items, err := h.api.ListFermentables(ctx, &brewfather.ListQueryParams{Limit: inventoryPageSize})
	if err != nil {
		return "", h.fail(ToolListFermentables, nil, err)
	}
	return h.renderer.FermentableList(items), nil
}

func (h *Handler) FermentableDetail(ctx context.Context, id string) (string, error) {
	item, err := h.api.GetFermentable(ctx, id)
	if err != nil {
		return "", h.fail(ToolFermentableDetail, logrus.Fields{"id": id}, err)
	}
	return h.renderer.FermentableDetail(item), nil
}

func (h *Handler) ListHops(ctx context.Context) (string, error) {
	items, err := h.api.ListHops(ctx, &brewfather.ListQueryParams{Limit: inventoryPageSize})
	if err != nil {
		return "", h.fail(ToolListHops, nil, err)
	}
	return h.renderer.HopList(items), nil
}

func (h *Handler) HopDetail(ctx context.Context, id string) (string, error) {
	item, err := h.api.GetHop(ctx, id)
	if err != nil {
		return "", h.fail(ToolHopDetail, logrus.Fields{"id": id}, err)
	}
	return h.renderer.HopDetail(item), nil
}

func (h *Handler) ListYeasts(ctx context.Context) (string, error) {
	items, err := h.api.ListYeasts(ctx, &brewfather.ListQueryParams{Limit: inventoryPageSize})
	if err != nil {
		return "", h.fail(ToolListYeasts, nil, err)
	}
	return h.renderer.YeastList(items), nil
}

func (h *Handler) YeastDetail(ctx context.Context, id string) (string, error) {
	item, err := h.api.GetYeast(ctx, id)
	if err != nil {
		return "", h.fail(ToolYeastDetail, logrus.Fields{"id": id}, err)
	}
	return h.renderer.YeastDetail(item), nil
}

func (h *Handler) ListMiscs(ctx context.Context) (string, error) {
	items, err := h.api.ListMiscs(ctx, &brewfather.ListQueryParams{Limit: inventoryPageSize})
	if err != nil {
		return "", h.fail(ToolListMiscs, nil, err)
	}
	return h.renderer.MiscList(items), nil
}

func (h *Handler) MiscDetail(ctx context.Context, id string) (string, error) {
	item, err := h.api.GetMisc(ctx, id)
	if err != nil {
		return "", h.fail(ToolMiscDetail, logrus.Fields{"id": id}, err)
	}
	return h.renderer.MiscDetail(item), nil
}

// InventorySummary fetches every category with inventory_exists=true. Any failing
// category fails the whole summary.
func (h *Handler) InventorySummary(ctx context.Context) (string, error) {
	params := &brewfather.ListQueryParams{InventoryExists: brewfather.Bool(true)}
	var (
		summary report.InventorySummary
		err     error
	)

	if summary.Fermentables, err = h.api.ListFermentables(ctx, params); err != nil {
		return "", h.fail(ToolInventorySummary, logrus.Fields{"category": brewfather.Fermentables}, err)
	}
	if summary.Hops, err = h.api.ListHops(ctx, params); err != nil {
		return "", h.fail(ToolInventorySummary, logrus.Fields{"category": brewfather.Hops}, err)
	}
	if summary.Yeasts, err = h.api.ListYeasts(ctx, params); err != nil {
		return "", h.fail(ToolInventorySummary, logrus.Fields{"category": brewfather.Yeasts}, err)
	}
	if summary.Miscs, err = h.api.ListMiscs(ctx, params); err != nil {
		return "", h.fail(ToolInventorySummary, logrus.Fields{"category": brewfather.Miscs}, err)
	}

	h.logger.WithFields(logrus.Fields{
		"fermentables": len(summary.Fermentables),
		"hops":         len(summary.Hops),
		"yeasts":       len(summary.Yeasts),
		"miscs":        len(summary.Miscs),
	}).Info("inventory summary gathered")

	return h.renderer.Summary(summary), nil
}

var inventoryUnits = map[brewfather.InventoryCategory]struct{ label, unit string }{
	brewfather.Fermentables: {"Fermentable", "kg"},
	brewfather.Hops:         {"Hop", "grams"},
	brewfather.Yeasts:       {"Yeast", "packets"},
	brewfather.Miscs:        {"Miscellaneous", "units"},
}

// UpdateInventory sets the stock of one item. Negative amounts are rejected.
func (h *Handler) UpdateInventory(ctx context.Context, category brewfather.InventoryCategory, id string, amount float64) (string, error) {
	tool := "update_" + inventoryToolSuffix(category) + "_inventory"
	fields := logrus.Fields{"id": id, "inventory": amount}
	if amount < 0 {
		return "", h.fail(tool, fields, fmt.Errorf("inventory amount must not be negative, got %v", amount))
	}
	if err := h.api.UpdateInventory(ctx, category, id, amount); err != nil {
		return "", h.fail(tool, fields, err)
	}
	u := inventoryUnits[category]
	return fmt.Sprintf("%s inventory for item %s updated to %s %s.", u.label, id, formatNumber(amount), u.unit), nil
}

func inventoryToolSuffix(c brewfather.InventoryCategory) string {
	switch c {
	case brewfather.Fermentables:
		return "fermentable"
	case brewfather.Hops:
		return "hop"
	case brewfather.Yeasts:
		return "yeast"
	default:
		return "misc"
	}
}

func (h *Handler) ListBatches(ctx context.Context) (string, error) {
	batches, err := h.api.ListBatches(ctx, &brewfather.ListQueryParams{Limit: batchPageSize})
	if err != nil {
		return "", h.fail(ToolListBatches, nil, err)
	}
	return h.renderer.BatchList(batches), nil
}

func (h *Handler) BatchDetail(ctx context.Context, id string) (string, error) {
	batch, err := h.api.GetBatch(ctx, id)
	if err != nil {
		return "", h.fail(ToolBatchDetail, logrus.Fields{"batch_id": id}, err)
	}
	return h.renderer.BatchDetail(batch), nil
}

// BatchUpdateFields are the measured batch values update_batch accepts, by API name.
var BatchUpdateFields = []string{
	"measuredMashPh",
	"measuredBoilSize",
	"measuredFirstWortGravity",
	"measuredPreBoilGravity",
	"measuredPostBoilGravity",
	"measuredKettleSize",
	"measuredOg",
	"measuredFermenterTopUp",
	"measuredBatchSize",
	"measuredFg",
	"measuredBottlingSize",
	"carbonationTemp",
}

// UpdateBatch patches status and measured values. An empty status and no values is not
// an error; nothing is sent.
func (h *Handler) UpdateBatch(ctx context.Context, id, status string, measured map[string]float64) (string, error) {
	fields := make(map[string]any, len(measured)+1)
	if status != "" {
		if !model.BatchStatus(status).Valid() {
			err := &recipe.ValidationError{Field: "batch status", Value: status, Valid: model.Names(model.AllBatchStatuses())}
			return "", h.fail(ToolUpdateBatch, logrus.Fields{"batch_id": id}, err)
		}
		fields["status"] = status
	}
	for k, v := range measured {
		fields[k] = v
	}
	if len(fields) == 0 {
		return "No update parameters provided.", nil
	}

	if err := h.api.UpdateBatch(ctx, id, fields); err != nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "", h.fail(ToolUpdateBatch, logrus.Fields{"batch_id": id, "fields": keys}, err)
	}
	return fmt.Sprintf("Batch %s updated successfully.", id), nil
}

func (h *Handler) ListRecipes(ctx context.Context) (string, error) {
	recipes, err := h.api.ListRecipes(ctx, &brewfather.ListQueryParams{Limit: recipePageSize})
	if err != nil {
		return "", h.fail(ToolListRecipes, nil, err)
	}
	return h.renderer.RecipeList(recipes), nil
}

func (h *Handler) RecipeDetail(ctx context.Context, id string) (string, error) {
	rec, err := h.api.GetRecipe(ctx, id)
	if err != nil {
		return "", h.fail(ToolRecipeDetail, logrus.Fields{"recipe_id": id}, err)
	}
	return h.renderer.RecipeDetail(rec), nil
}

func (h *Handler) BrewTracker(ctx context.Context, batchID string) (string, error) {
	tracker, err := h.api.GetBrewTracker(ctx, batchID)
	if err != nil {
		return "", h.fail(ToolBrewTracker, logrus.Fields{"batch_id": batchID}, err)
	}
	return h.renderer.BrewTracker(batchID, tracker), nil
}

func (h *Handler) LastReading(ctx context.Context, batchID string) (string, error) {
	reading, err := h.api.GetLastReading(ctx, batchID)
	if err != nil {
		return "", h.fail(ToolLastReading, logrus.Fields{"batch_id": batchID}, err)
	}
	return h.renderer.LastReading(reading), nil
}

// ReadingsSummary summarizes the last limit readings. A non-positive limit uses the default.
func (h *Handler) ReadingsSummary(ctx context.Context, batchID string, limit int) (string, error) {
	if limit <= 0 {
		limit = report.DefaultReadingsWindow
	}
	readings, err := h.api.GetReadings(ctx, batchID)
	if err != nil {
		return "", h.fail(ToolReadingsSummary, logrus.Fields{"batch_id": batchID}, err)
	}
	return h.renderer.ReadingsSummary(readings, limit), nil
}

func (h *Handler) RecipeEnums() string {
	return report.RecipeEnums()
}

// CreateRecipe builds a recipe and returns its import JSON with instructions.
func (h *Handler) CreateRecipe(in recipe.Input) (string, error) {
	rec, err := h.builder.Build(in)
	if err != nil {
		return "", h.fail(ToolCreateRecipe, logrus.Fields{"recipe": in.Name}, fmt.Errorf("failed to create recipe: %w", err))
	}
	payload, err := recipe.ImportJSON(rec)
	if err != nil {
		return "", h.fail(ToolCreateRecipe, logrus.Fields{"recipe": in.Name}, fmt.Errorf("failed to encode recipe: %w", err))
	}
	return recipe.ImportText(rec, payload), nil
}
