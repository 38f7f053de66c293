// Package report lays out the exported meal plan as an A4 PDF in the
// program's black and gold table style.
package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/AbanoupRefat/meal-planner-app/internal/arabic"
	"github.com/AbanoupRefat/meal-planner-app/internal/nutrition"
)

const (
	arabicFamily   = "NotoSansArabic"
	fallbackFamily = "Helvetica"

	bandHeight = 26 // meal label row
	rowHeight  = 22 // column header and entry rows
)

// Table columns in logical order; the name column sits rightmost on the
// page because the headers are Arabic.
var columnHeaders = []string{
	"وصف الطعام",
	"الكمية (جرام)",
	"السعرات",
	"البروتين",
	"الكربوهيدرات",
	"الدهون",
}

// Builder renders meal plans to PDF bytes.
type Builder struct {
	fonts *FontRegistry
	theme Theme
}

func NewBuilder(fonts *FontRegistry, theme Theme) *Builder {
	return &Builder{fonts: fonts, theme: theme}
}

// Render produces the full document: header line, one table per meal,
// then the totals section. Every Arabic string is shaped exactly once,
// right before placement, because the canvas draws glyphs
// left-to-right. When content would overflow the page a new one is
// started; inside a table the column headers are drawn again.
func (b *Builder) Render(plan nutrition.MealPlan, totals nutrition.Totals) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle("النظام الرابع", true)

	margin := b.theme.Margin
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)

	family := b.applyFonts(pdf)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	usable := pageW - 2*margin
	limit := pageH - margin

	// ensure starts a new page when h points would not fit anymore
	ensure := func(h float64) bool {
		if pdf.GetY()+h > limit {
			pdf.AddPage()
			return true
		}
		return false
	}

	widths := columnWidths(usable)

	b.drawHeader(pdf, family, usable, plan)

	for _, meal := range plan.Meals {
		// keep the meal label and its first row on one page
		ensure(bandHeight + 2*rowHeight)

		pdf.SetFont(family, "B", b.theme.TableHeaderSize)
		b.setTableColors(pdf, b.theme.HeaderText)
		pdf.CellFormat(usable, bandHeight, arabic.Shape(meal.Label), "1", 1, "CM", true, 0, "")

		b.drawColumnHeaders(pdf, family, widths)

		pdf.SetFont(family, "", b.theme.BodySize)
		b.setTableColors(pdf, b.theme.BodyText)
		for _, entry := range meal.Entries {
			if ensure(rowHeight) {
				b.drawColumnHeaders(pdf, family, widths)
				pdf.SetFont(family, "", b.theme.BodySize)
				b.setTableColors(pdf, b.theme.BodyText)
			}
			b.drawEntryRow(pdf, widths, entry)
		}
	}

	b.drawTotals(pdf, family, usable, ensure, totals)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// --------------------------------------------------
// Fonts
// --------------------------------------------------

// applyFonts embeds Noto Sans Arabic when the registry has it and
// falls back to the core fonts otherwise, like the original did.
func (b *Builder) applyFonts(pdf *fpdf.Fpdf) string {
	regular, bold, ok := b.fonts.Load()
	if !ok {
		return fallbackFamily
	}
	pdf.AddUTF8FontFromBytes(arabicFamily, "", regular)
	pdf.AddUTF8FontFromBytes(arabicFamily, "B", bold)
	if pdf.Err() {
		return fallbackFamily
	}
	return arabicFamily
}

// --------------------------------------------------
// Sections
// --------------------------------------------------

func (b *Builder) drawHeader(pdf *fpdf.Fpdf, family string, usable float64, plan nutrition.MealPlan) {
	header := fmt.Sprintf(
		"النظام الرابع : إجمالي السعرات الحرارية: %s سعر حراري",
		formatNumber(plan.CalorieTarget),
	)

	pdf.SetFont(family, "B", b.theme.HeaderSize)
	pdf.SetTextColor(b.theme.HeaderText.R, b.theme.HeaderText.G, b.theme.HeaderText.B)
	pdf.CellFormat(usable, b.theme.HeaderSize+8, arabic.Shape(header), "", 1, "CM", false, 0, "")

	if plan.ClientName != "" {
		pdf.SetFont(family, "", b.theme.BodySize+2)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(usable, b.theme.BodySize+8, arabic.Shape(plan.ClientName), "", 1, "CM", false, 0, "")
	}

	pdf.Ln(15)
}

func (b *Builder) drawColumnHeaders(pdf *fpdf.Fpdf, family string, widths []float64) {
	pdf.SetFont(family, "B", b.theme.BodySize)
	b.setTableColors(pdf, b.theme.HeaderText)

	// visual order: last logical column leftmost
	for i := len(columnHeaders) - 1; i >= 0; i-- {
		pdf.CellFormat(widths[i], rowHeight, arabic.Shape(columnHeaders[i]), "1", 0, "CM", true, 0, "")
	}
	pdf.Ln(rowHeight)
}

func (b *Builder) drawEntryRow(pdf *fpdf.Fpdf, widths []float64, entry nutrition.FoodEntry) {
	cells := []string{
		arabic.Shape(entry.Name),
		amountCell(entry.Quantity),
		formatNumber(entry.Calories),
		formatNumber(entry.ProteinG),
		formatNumber(entry.CarbsG),
		formatNumber(entry.FatG),
	}
	for i := len(cells) - 1; i >= 0; i-- {
		pdf.CellFormat(widths[i], rowHeight, cells[i], "1", 0, "CM", true, 0, "")
	}
	pdf.Ln(rowHeight)
}

func (b *Builder) drawTotals(pdf *fpdf.Fpdf, family string, usable float64, ensure func(float64) bool, totals nutrition.Totals) {
	pdf.Ln(15)
	ensure(2*rowHeight + 10)

	macros := fmt.Sprintf(
		"إجمالي البروتين: %s غ     إجمالي الكربوهيدرات: %s غ     إجمالي الدهون: %s غ",
		formatNumber(totals.ProteinG),
		formatNumber(totals.CarbsG),
		formatNumber(totals.FatG),
	)

	pdf.SetFont(family, "B", b.theme.FooterSize)
	pdf.SetTextColor(b.theme.HeaderText.R, b.theme.HeaderText.G, b.theme.HeaderText.B)
	pdf.CellFormat(usable, rowHeight, arabic.Shape(macros), "", 1, "CM", false, 0, "")

	pdf.Ln(10)
	pdf.CellFormat(usable, rowHeight, arabic.Shape(b.theme.Website), "", 1, "CM", false, 0, "")
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (b *Builder) setTableColors(pdf *fpdf.Fpdf, text RGB) {
	pdf.SetTextColor(text.R, text.G, text.B)
	pdf.SetFillColor(b.theme.Fill.R, b.theme.Fill.G, b.theme.Fill.B)
	pdf.SetDrawColor(b.theme.Grid.R, b.theme.Grid.G, b.theme.Grid.B)
	pdf.SetLineWidth(1)
}

// columnWidths splits the usable width: the name column takes whatever
// the five fixed numeric columns leave.
func columnWidths(usable float64) []float64 {
	const numeric = 80.0
	name := usable - 5*numeric
	return []float64{name, numeric, numeric, numeric, numeric, numeric}
}

// formatNumber prints values the way the form shows them: no trailing
// zeros, at most two decimals.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// amountCell fills the quantity column. A zero amount leaves the cell
// blank instead of printing "0".
func amountCell(quantity float64) string {
	if quantity == 0 {
		return ""
	}
	return formatNumber(quantity)
}
