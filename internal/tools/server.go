package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"brewfather-mcp/internal/brewfather"
	"brewfather-mcp/internal/report"
)

// Tool names.
const (
	ToolInventoryCategories        = "list_inventory_categories"
	ToolListFermentables           = "list_fermentables"
	ToolFermentableDetail          = "get_fermentable_detail"
	ToolListHops                   = "list_hops"
	ToolHopDetail                  = "get_hop_detail"
	ToolListYeasts                 = "list_yeasts"
	ToolYeastDetail                = "get_yeast_detail"
	ToolListMiscs                  = "list_misc_items"
	ToolMiscDetail                 = "get_misc_detail"
	ToolInventorySummary           = "inventory_summary"
	ToolUpdateFermentableInventory = "update_fermentable_inventory"
	ToolUpdateHopInventory         = "update_hop_inventory"
	ToolUpdateYeastInventory       = "update_yeast_inventory"
	ToolUpdateMiscInventory        = "update_misc_inventory"
	ToolListBatches                = "list_batches"
	ToolBatchDetail                = "get_batch_detail"
	ToolUpdateBatch                = "update_batch"
	ToolListRecipes                = "list_recipes"
	ToolRecipeDetail               = "get_recipe_detail"
	ToolBrewTracker                = "get_batch_brewtracker"
	ToolLastReading                = "get_batch_last_reading"
	ToolReadingsSummary            = "get_batch_readings_summary"
	ToolRecipeEnums                = "get_recipe_enums"
	ToolCreateRecipe               = "create_recipe"

	PromptSuggestBeerStyles = "suggest_beer_styles"
)

// Version is set at build time.
var Version = "dev"

type textFunc func(ctx context.Context, req mcp.CallToolRequest) (string, error)

func textResult(fn textFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := fn(ctx, req)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(text), nil
	}
}

func idTool(name, desc, param, paramDesc string, fn func(context.Context, string) (string, error)) server.ServerTool {
	return server.ServerTool{
		Tool: mcp.NewTool(name,
			mcp.WithDescription(desc),
			mcp.WithString(param, mcp.Required(), mcp.Description(paramDesc)),
		),
		Handler: textResult(func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			id, err := req.RequireString(param)
			if err != nil {
				return "", err
			}
			return fn(ctx, id)
		}),
	}
}

func listTool(name, desc string, fn func(context.Context) (string, error)) server.ServerTool {
	return server.ServerTool{
		Tool: mcp.NewTool(name, mcp.WithDescription(desc)),
		Handler: textResult(func(ctx context.Context, _ mcp.CallToolRequest) (string, error) {
			return fn(ctx)
		}),
	}
}

func (h *Handler) inventoryTool(name string, category brewfather.InventoryCategory, unit string) server.ServerTool {
	return server.ServerTool{
		Tool: mcp.NewTool(name,
			mcp.WithDescription("Set the inventory amount of a "+inventoryToolSuffix(category)+" item in "+unit+"."),
			mcp.WithString("item_id", mcp.Required(), mcp.Description("Inventory item id")),
			mcp.WithNumber("inventory_amount", mcp.Required(), mcp.Description("New amount in "+unit), mcp.Min(0)),
		),
		Handler: textResult(func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			id, err := req.RequireString("item_id")
			if err != nil {
				return "", err
			}
			amount, err := req.RequireFloat("inventory_amount")
			if err != nil {
				return "", err
			}
			return h.UpdateInventory(ctx, category, id, amount)
		}),
	}
}

// ServerTools returns every tool with its handler, in registration order.
func (h *Handler) ServerTools() []server.ServerTool {
	batchUpdate := []mcp.ToolOption{
		mcp.WithDescription("Update the status and measured values of a batch."),
		mcp.WithString("batch_id", mcp.Required(), mcp.Description("Batch id")),
		mcp.WithString("status", mcp.Description("New batch status"), mcp.Enum(batchStatuses()...)),
	}
	for _, f := range BatchUpdateFields {
		batchUpdate = append(batchUpdate, mcp.WithNumber(f, mcp.Description("Measured value for "+f)))
	}

	return []server.ServerTool{
		listTool(ToolInventoryCategories, "List the inventory categories available in Brewfather.",
			func(context.Context) (string, error) { return h.InventoryCategories(), nil }),

		listTool(ToolListFermentables, "List fermentables that are in stock.", h.ListFermentables),
		idTool(ToolFermentableDetail, "Show everything known about one fermentable.", "identifier", "Fermentable id", h.FermentableDetail),
		listTool(ToolListHops, "List hops that are in stock.", h.ListHops),
		idTool(ToolHopDetail, "Show everything known about one hop.", "identifier", "Hop id", h.HopDetail),
		listTool(ToolListYeasts, "List yeasts that are in stock.", h.ListYeasts),
		idTool(ToolYeastDetail, "Show everything known about one yeast.", "identifier", "Yeast id", h.YeastDetail),
		listTool(ToolListMiscs, "List miscellaneous items that are in stock.", h.ListMiscs),
		idTool(ToolMiscDetail, "Show everything known about one miscellaneous item.", "item_id", "Misc id", h.MiscDetail),
		listTool(ToolInventorySummary, "Summarize every inventory category in detail.", h.InventorySummary),

		h.inventoryTool(ToolUpdateFermentableInventory, brewfather.Fermentables, "kg"),
		h.inventoryTool(ToolUpdateHopInventory, brewfather.Hops, "grams"),
		h.inventoryTool(ToolUpdateYeastInventory, brewfather.Yeasts, "packets"),
		h.inventoryTool(ToolUpdateMiscInventory, brewfather.Miscs, "units"),

		listTool(ToolListBatches, "List brew batches.", h.ListBatches),
		idTool(ToolBatchDetail, "Show a batch with measured values compared to the recipe.", "batch_id", "Batch id", h.BatchDetail),
		{
			Tool: mcp.NewTool(ToolUpdateBatch, batchUpdate...),
			Handler: textResult(func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
				id, err := req.RequireString("batch_id")
				if err != nil {
					return "", err
				}
				measured, err := numberArgs(req, BatchUpdateFields)
				if err != nil {
					return "", err
				}
				return h.UpdateBatch(ctx, id, req.GetString("status", ""), measured)
			}),
		},

		listTool(ToolListRecipes, "List recipes.", h.ListRecipes),
		idTool(ToolRecipeDetail, "Show the full recipe.", "recipe_id", "Recipe id", h.RecipeDetail),

		idTool(ToolBrewTracker, "Show brewtracker progress for a batch.", "batch_id", "Batch id", h.BrewTracker),
		idTool(ToolLastReading, "Show the latest sensor reading for a batch.", "batch_id", "Batch id", h.LastReading),
		{
			Tool: mcp.NewTool(ToolReadingsSummary,
				mcp.WithDescription("Summarize recent sensor readings and their trend."),
				mcp.WithString("batch_id", mcp.Required(), mcp.Description("Batch id")),
				mcp.WithNumber("limit", mcp.Description("Number of recent readings to include"), mcp.DefaultNumber(report.DefaultReadingsWindow)),
			),
			Handler: textResult(func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
				id, err := req.RequireString("batch_id")
				if err != nil {
					return "", err
				}
				return h.ReadingsSummary(ctx, id, req.GetInt("limit", report.DefaultReadingsWindow))
			}),
		},

		listTool(ToolRecipeEnums, "List the values accepted by create_recipe and update_batch.",
			func(context.Context) (string, error) { return h.RecipeEnums(), nil }),
		{
			Tool: createRecipeTool(),
			Handler: textResult(func(_ context.Context, req mcp.CallToolRequest) (string, error) {
				in, err := recipeInput(req)
				if err != nil {
					return "", err
				}
				return h.CreateRecipe(in)
			}),
		},
	}
}

func createRecipeTool() mcp.Tool {
	object := map[string]any{"type": "object"}
	return mcp.NewTool(ToolCreateRecipe,
		mcp.WithDescription("Build a recipe as Brewfather import JSON. Use get_recipe_enums for accepted values."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Recipe name")),
		mcp.WithString("author", mcp.Description("Recipe author")),
		mcp.WithString("recipe_type", mcp.Description("All Grain, Extract or Partial Mash")),
		mcp.WithString("style_name", mcp.Description("Beer style")),
		mcp.WithNumber("batch_size", mcp.Description("Batch size in liters")),
		mcp.WithNumber("boil_time", mcp.Description("Boil time in minutes")),
		mcp.WithArray("fermentables", mcp.Items(object), mcp.Description("Objects with name, amount (kg) and optional color (EBC)")),
		mcp.WithArray("hops", mcp.Items(object), mcp.Description("Objects with name, amount (g), alpha, use and time (min)")),
		mcp.WithArray("yeasts", mcp.Items(object), mcp.Description("Objects with name, amount and form")),
		mcp.WithArray("miscs", mcp.Items(object), mcp.Description("Objects with name, amount, use and optional time")),
		mcp.WithArray("mash_steps", mcp.Items(object), mcp.Description("Objects with optional name, stepTemp (°C) and stepTime (min)")),
		mcp.WithNumber("fermentation_temp", mcp.Description("Primary fermentation temperature in °C")),
	)
}

// NewServer creates the MCP server with every tool and prompt registered.
func NewServer(h *Handler) *server.MCPServer {
	s := server.NewMCPServer(
		"brewfather-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)
	s.AddTools(h.ServerTools()...)
	s.AddPrompt(suggestBeerStylesPrompt(), h.SuggestBeerStyles)
	return s
}

const serverInstructions = `Tools for a Brewfather account: inventory, batches, recipes, brewtracker progress and sensor readings.
Call get_recipe_enums before create_recipe or update_batch to learn the accepted values.
Inventory list tools only show items that are in stock; inventory_summary shows everything.`
