package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JoshFink/commish/internal/api/response"
	"github.com/JoshFink/commish/internal/llm"
)

// ModelsHandler exposes the LLM model catalog
type ModelsHandler struct{}

// NewModelsHandler creates a new models handler
func NewModelsHandler() *ModelsHandler {
	return &ModelsHandler{}
}

// List returns the selectable models
// GET /api/models
func (h *ModelsHandler) List(c *gin.Context) {
	models := llm.Models()
	response.SuccessList(c, models, len(models))
}

// Estimate predicts the cost of a recap before generating it
// GET /api/models/:model/estimate?input_chars=N&output_tokens=M
func (h *ModelsHandler) Estimate(c *gin.Context) {
	modelID := c.Param("model")
	if !llm.ValidModel(modelID) {
		response.NotFound(c, "unknown model "+modelID)
		return
	}

	inputChars, err := strconv.Atoi(c.DefaultQuery("input_chars", "4000"))
	if err != nil || inputChars < 0 {
		response.BadRequest(c, "input_chars must be a non-negative integer")
		return
	}
	outputTokens, err := strconv.Atoi(c.DefaultQuery("output_tokens", "2000"))
	if err != nil || outputTokens < 0 {
		response.BadRequest(c, "output_tokens must be a non-negative integer")
		return
	}

	// 4 characters per token, same heuristic the generator uses.
	cost, err := llm.CalculateCost(modelID, inputChars/4, outputTokens)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	cost.Estimated = true
	response.Success(c, cost)
}
