// Package llm wraps the OpenAI API for recap generation: model catalog
// with pricing, cost accounting, and token streaming.
package llm

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Pricing is the per-1M-token rate pair for one model, in USD. Decimal
// keeps the sub-cent arithmetic exact.
type Pricing struct {
	Input  decimal.Decimal `json:"input"`
	Output decimal.Decimal `json:"output"`
}

// ModelInfo describes one selectable model for the UI.
type ModelInfo struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Badge       string `json:"badge,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func usd(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// modelPricing holds the exact per-1M-token rates.
var modelPricing = map[string]Pricing{
	"gpt-4o":        {Input: usd("2.50"), Output: usd("10.00")},
	"gpt-4o-mini":   {Input: usd("0.15"), Output: usd("0.60")},
	"gpt-5":         {Input: usd("1.25"), Output: usd("10.00")},
	"o3":            {Input: usd("2.00"), Output: usd("8.00")},
	"o3-mini":       {Input: usd("1.00"), Output: usd("4.00")},
	"o4-mini":       {Input: usd("0.75"), Output: usd("3.00")},
	"gpt-4-turbo":   {Input: usd("10.00"), Output: usd("30.00")},
	"gpt-3.5-turbo": {Input: usd("0.50"), Output: usd("1.50")},
}

// catalog is the ordered list shown to the commissioner.
var catalog = []ModelInfo{
	{ID: "gpt-4o", Category: "Best for Creative Tasks",
		Description: "GPT-4o - $2.50/$10 per 1M tokens",
		Badge:       "Best Creativity", Reason: "Superior character roleplay"},
	{ID: "gpt-4o-mini", Category: "Best for Creative Tasks",
		Description: "GPT-4o Mini - $0.15/$0.60 per 1M tokens",
		Badge:       "Recommended", Reason: "Best creativity/cost balance"},
	{ID: "gpt-5", Category: "Latest Technology",
		Description: "GPT-5 - $1.25/$10 per 1M tokens",
		Badge:       "Latest", Reason: "Newest technology"},
	{ID: "o3", Category: "Reasoning Models",
		Description: "O3 - $2/$8 per 1M tokens",
		Badge:       "Smart", Reason: "Advanced reasoning"},
	{ID: "o3-mini", Category: "Reasoning Models",
		Description: "O3 Mini - $1/$4 per 1M tokens"},
	{ID: "o4-mini", Category: "Reasoning Models",
		Description: "O4 Mini - $0.75/$3 per 1M tokens"},
	{ID: "gpt-4-turbo", Category: "High Performance",
		Description: "GPT-4 Turbo - $10/$30 per 1M tokens"},
	{ID: "gpt-3.5-turbo", Category: "Budget Option",
		Description: "GPT-3.5 Turbo - $0.50/$1.50 per 1M tokens",
		Badge:       "Cheapest", Reason: "Most affordable"},
}

// Models returns the selectable model catalog.
func Models() []ModelInfo {
	out := make([]ModelInfo, len(catalog))
	copy(out, catalog)
	return out
}

// ValidModel reports whether the model has a pricing entry.
func ValidModel(modelID string) bool {
	_, ok := modelPricing[modelID]
	return ok
}

// Cost is one API call's token counts and dollar breakdown.
type Cost struct {
	Model            string          `json:"model"`
	PromptTokens     int             `json:"prompt_tokens"`
	CompletionTokens int             `json:"completion_tokens"`
	TotalTokens      int             `json:"total_tokens"`
	PromptCost       decimal.Decimal `json:"prompt_cost"`
	CompletionCost   decimal.Decimal `json:"completion_cost"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	Estimated        bool            `json:"estimated"`
}

var oneMillion = decimal.NewFromInt(1_000_000)

// CalculateCost converts exact token usage into dollars.
func CalculateCost(modelID string, promptTokens, completionTokens int) (Cost, error) {
	pricing, ok := modelPricing[modelID]
	if !ok {
		return Cost{}, fmt.Errorf("pricing not available for model %q", modelID)
	}
	promptCost := decimal.NewFromInt(int64(promptTokens)).Mul(pricing.Input).Div(oneMillion)
	completionCost := decimal.NewFromInt(int64(completionTokens)).Mul(pricing.Output).Div(oneMillion)
	return Cost{
		Model:            modelID,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		PromptCost:       promptCost,
		CompletionCost:   completionCost,
		TotalCost:        promptCost.Add(completionCost),
	}, nil
}

// EstimateCost predicts the cost of a call before making it, using the
// 4-characters-per-token heuristic for the prompt.
func EstimateCost(modelID, inputText string, estimatedOutputTokens int) (Cost, error) {
	cost, err := CalculateCost(modelID, len(inputText)/4, estimatedOutputTokens)
	if err != nil {
		return Cost{}, err
	}
	cost.Estimated = true
	return cost, nil
}
