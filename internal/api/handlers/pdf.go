package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JoshFink/commish/internal/api/response"
	"github.com/JoshFink/commish/internal/pdf"
)

// PDFHandler renders recaps as downloadable PDFs
type PDFHandler struct{}

// NewPDFHandler creates a new PDF handler
func NewPDFHandler() *PDFHandler {
	return &PDFHandler{}
}

// ExportRequest is the PDF export payload.
type ExportRequest struct {
	LeagueName     string `json:"league_name"`
	Week           int    `json:"week" binding:"required"`
	Persona        string `json:"persona" binding:"required"`
	Format         string `json:"format"`
	TrashTalkLevel int    `json:"trash_talk_level"`
	Content        string `json:"content" binding:"required"`
}

// Export renders the recap content as a PDF attachment
// POST /api/recap/pdf
func (h *PDFHandler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "week, persona, and content are required")
		return
	}
	if req.Format == "" {
		req.Format = "Classic"
	}
	if req.TrashTalkLevel == 0 {
		req.TrashTalkLevel = 5
	}

	now := time.Now()
	weekLabel := fmt.Sprintf("Week %d", req.Week)

	out, err := pdf.Render(pdf.Document{
		LeagueName:     req.LeagueName,
		WeekLabel:      weekLabel,
		Persona:        req.Persona,
		Format:         req.Format,
		TrashTalkLevel: req.TrashTalkLevel,
		Content:        req.Content,
	}, now)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	filename := pdf.GetFilename(req.LeagueName, weekLabel, req.Persona, now)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
