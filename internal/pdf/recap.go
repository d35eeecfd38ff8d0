// Package pdf renders generated recaps as downloadable PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-pdf/fpdf"
)

// Document describes one recap to render.
type Document struct {
	LeagueName     string
	WeekLabel      string
	Persona        string
	Format         string
	TrashTalkLevel int
	Content        string
}

// Render produces the PDF bytes for a recap document.
func Render(doc Document, now time.Time) ([]byte, error) {
	if doc.LeagueName == "" {
		doc.LeagueName = "Fantasy Football League"
	}
	if doc.WeekLabel == "" {
		doc.WeekLabel = "Current Week"
	}
	date := now.Format("January 2, 2006")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s - %s Recap", doc.LeagueName, doc.WeekLabel), true)
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 22)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-16)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, "Generated with AI - Commish", "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, "Generated on "+date, "", 0, "L", false, 0, "")
	})

	pdf.AddPage()

	// Header block.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(30, 60, 114)
	pdf.CellFormat(0, 10, sanitizeText(doc.LeagueName), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s  |  %s", sanitizeText(doc.WeekLabel), date), "", 1, "L", false, 0, "")

	meta := fmt.Sprintf("%s Recap  |  Narrated by: %s  |  Intensity: Level %d",
		doc.Format, sanitizeText(doc.Persona), doc.TrashTalkLevel)
	pdf.CellFormat(0, 6, meta, "", 1, "L", false, 0, "")

	pdf.SetDrawColor(42, 82, 152)
	pdf.SetLineWidth(0.6)
	pdf.Line(18, pdf.GetY()+2, 192, pdf.GetY()+2)
	pdf.Ln(7)

	// Body: one MultiCell per paragraph.
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(40, 40, 40)
	for _, paragraph := range strings.Split(doc.Content, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		pdf.MultiCell(0, 5.5, sanitizeText(paragraph), "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeText strips characters the core PDF fonts cannot encode, so
// recaps full of emoji still render instead of producing mojibake.
func sanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || (r >= 32 && r < 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// GetFilename builds a safe download name: alphanumerics, spaces, dashes
// and underscores survive, spaces become underscores, and the whole name
// is capped at 100 characters.
func GetFilename(leagueName, weekLabel, persona string, now time.Time) string {
	clean := func(s string) string {
		var b strings.Builder
		for _, r := range s {
			if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
				b.WriteRune(r)
			}
		}
		return strings.TrimSpace(b.String())
	}

	name := fmt.Sprintf("%s_%s_%s_%s.pdf",
		clean(leagueName), clean(weekLabel), clean(persona), now.Format("20060102"))
	name = strings.ReplaceAll(name, " ", "_")
	if len(name) > 100 {
		name = name[:100]
	}
	return name
}
