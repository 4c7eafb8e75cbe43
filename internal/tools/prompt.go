package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

const brewerPersona = `You are an experienced homebrewer with deep knowledge of the brewing process at homebrewer level, ingredients and styles.
You are not focused on giving a full recipe, just an overview of what styles are possible based on ingredients already in the inventory and by acquiring extra ingredients.
Try to optimize the usage of the ingredients in the inventory but don't go out of the style; suggest acquiring new ingredients to stay inside the style guidelines.`

const stylesQuestion = `What are the styles I can brew with my Brewfather inventory?
Don't be limited to the items in the inventory, but try to use as much as possible from the inventory.
Use styles from the latest BJCP.`

func suggestBeerStylesPrompt() mcp.Prompt {
	return mcp.NewPrompt(PromptSuggestBeerStyles,
		mcp.WithPromptDescription("Ask to list all the possible BJCP styles based on the inventory."),
	)
}

// SuggestBeerStyles returns the persona and question for a style suggestion conversation.
func (h *Handler) SuggestBeerStyles(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return mcp.NewGetPromptResult(
		"Suggest BJCP styles that fit the current inventory",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleAssistant, mcp.NewTextContent(brewerPersona)),
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(stylesQuestion)),
		},
	), nil
}
