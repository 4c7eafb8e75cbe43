package brewfather

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"brewfather-mcp/internal/model"
)

// InventoryCategory is one of the four inventory collections.
type InventoryCategory string

const (
	Fermentables InventoryCategory = "fermentables"
	Hops         InventoryCategory = "hops"
	Yeasts       InventoryCategory = "yeasts"
	Miscs        InventoryCategory = "miscs"
)

// InventoryCategories lists the categories in display order.
func InventoryCategories() []InventoryCategory {
	return []InventoryCategory{Fermentables, Hops, Yeasts, Miscs}
}

// Endpoint returns the list endpoint of the category.
func (c InventoryCategory) Endpoint() string {
	return "inventory/" + string(c)
}

const (
	batchesEndpoint = "batches"
	recipesEndpoint = "recipes"
)

func detail(endpoint, id string) string {
	return endpoint + "/" + url.PathEscape(id)
}

// getOne fetches and decodes a single object.
func getOne[T any](ctx context.Context, c *Client, endpoint string) (*T, error) {
	body, err := c.get(ctx, endpoint, "")
	if err != nil {
		c.logger.WithError(err).WithField("endpoint", endpoint).Error("request failed")
		return nil, err
	}
	v, err := decodeAs[T](endpoint, body)
	if err != nil {
		c.logger.WithError(err).WithField("endpoint", endpoint).Error("response could not be decoded")
		return nil, err
	}
	return v, nil
}

func (c *Client) ListFermentables(ctx context.Context, params *ListQueryParams) ([]model.Fermentable, error) {
	return Paginate(ctx, c, Fermentables.Endpoint(), DecodeList[model.Fermentable], params)
}

func (c *Client) GetFermentable(ctx context.Context, id string) (*model.Fermentable, error) {
	return getOne[model.Fermentable](ctx, c, detail(Fermentables.Endpoint(), id))
}

func (c *Client) ListHops(ctx context.Context, params *ListQueryParams) ([]model.Hop, error) {
	return Paginate(ctx, c, Hops.Endpoint(), DecodeList[model.Hop], params)
}

func (c *Client) GetHop(ctx context.Context, id string) (*model.Hop, error) {
	return getOne[model.Hop](ctx, c, detail(Hops.Endpoint(), id))
}

func (c *Client) ListYeasts(ctx context.Context, params *ListQueryParams) ([]model.Yeast, error) {
	return Paginate(ctx, c, Yeasts.Endpoint(), DecodeList[model.Yeast], params)
}

func (c *Client) GetYeast(ctx context.Context, id string) (*model.Yeast, error) {
	return getOne[model.Yeast](ctx, c, detail(Yeasts.Endpoint(), id))
}

func (c *Client) ListMiscs(ctx context.Context, params *ListQueryParams) ([]model.Misc, error) {
	return Paginate(ctx, c, Miscs.Endpoint(), DecodeList[model.Misc], params)
}

func (c *Client) GetMisc(ctx context.Context, id string) (*model.Misc, error) {
	return getOne[model.Misc](ctx, c, detail(Miscs.Endpoint(), id))
}

// UpdateInventory sets the stock amount of one inventory item.
func (c *Client) UpdateInventory(ctx context.Context, category InventoryCategory, id string, amount float64) error {
	endpoint := detail(category.Endpoint(), id)
	if err := c.patch(ctx, endpoint, map[string]float64{"inventory": amount}); err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{"endpoint": endpoint, "inventory": amount}).Error("inventory update failed")
		return err
	}
	return nil
}

func (c *Client) ListBatches(ctx context.Context, params *ListQueryParams) ([]model.Batch, error) {
	return Paginate(ctx, c, batchesEndpoint, DecodeList[model.Batch], params)
}

func (c *Client) GetBatch(ctx context.Context, id string) (*model.Batch, error) {
	return getOne[model.Batch](ctx, c, detail(batchesEndpoint, id))
}

// UpdateBatch patches a batch with the given API field names.
func (c *Client) UpdateBatch(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return fmt.Errorf("update batch %s: no fields", id)
	}
	endpoint := detail(batchesEndpoint, id)
	if err := c.patch(ctx, endpoint, fields); err != nil {
		c.logger.WithError(err).WithField("endpoint", endpoint).Error("batch update failed")
		return err
	}
	return nil
}

func (c *Client) ListRecipes(ctx context.Context, params *ListQueryParams) ([]model.Recipe, error) {
	return Paginate(ctx, c, recipesEndpoint, DecodeList[model.Recipe], params)
}

func (c *Client) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	return getOne[model.Recipe](ctx, c, detail(recipesEndpoint, id))
}

func (c *Client) GetBrewTracker(ctx context.Context, batchID string) (*model.BrewTracker, error) {
	return getOne[model.BrewTracker](ctx, c, detail(batchesEndpoint, batchID)+"/brewtracker")
}

// GetReadings returns every reading of a batch, oldest first as sent by the server.
func (c *Client) GetReadings(ctx context.Context, batchID string) ([]model.Reading, error) {
	readings, err := getOne[[]model.Reading](ctx, c, detail(batchesEndpoint, batchID)+"/readings")
	if err != nil {
		return nil, err
	}
	return *readings, nil
}

func (c *Client) GetLastReading(ctx context.Context, batchID string) (*model.Reading, error) {
	return getOne[model.Reading](ctx, c, detail(batchesEndpoint, batchID)+"/readings/last")
}
