package fakebook

import (
	"strconv"

	gofpdf "github.com/phpdave11/gofpdf"
)

// US-Letter geometry in points.
const (
	letterW = 612.0
	letterH = 792.0
	inch    = 72.0
)

// TOC layout geometry. Pagination is a pure function of these constants, so
// the number of TOC pages can be computed before any entry is rendered.
const (
	tocMargin     = 0.9 * inch  // left/right/top margin
	tocRowH       = 0.32 * inch // vertical advance per entry
	tocStripeH    = 0.28 * inch // height of the alternating row background
	tocHeaderDrop = 0.8 * inch  // header baseline to first entry, first page
	tocContDrop   = 0.55 * inch // header baseline to first entry, continuation
	tocFooterY    = letterH - 0.5*inch
	tocMaxEntryY  = letterH - tocMargin - 0.5*inch // last usable entry baseline
)

type tocRGB struct{ r, g, b int }

var (
	tocPrimary = tocRGB{44, 62, 80}    // dark blue-gray
	tocAccent  = tocRGB{52, 152, 219}  // light blue
	tocText    = tocRGB{52, 73, 94}    // gray
	tocMuted   = tocRGB{149, 165, 166} // footer gray
	tocStripe  = tocRGB{236, 240, 241} // row background
)

// tocEntry is one TOC line: a display title and its 1-based page number in
// the final document.
type tocEntry struct {
	title string
	page  int
}

// tocCapacity returns how many entries fit on a TOC page.
func tocCapacity(first bool) int {
	y := tocMargin + tocHeaderDrop
	if !first {
		y = tocMargin + tocContDrop
	}
	return int((tocMaxEntryY-y)/tocRowH) + 1
}

// tocPageCount returns the number of TOC pages n entries occupy.
func tocPageCount(n int) int {
	if n <= 0 {
		return 0
	}
	first := tocCapacity(true)
	if n <= first {
		return 1
	}
	cont := tocCapacity(false)
	return 1 + (n-first+cont-1)/cont
}

// renderTOC lays out the table of contents: a styled header, one line per
// entry with a dotted leader to its page number, alternating row backgrounds,
// and a small page footer on every TOC page.
func renderTOC(doc *gofpdf.Fpdf, entries []tocEntry) {
	capacity := tocCapacity(true)
	tocPage := 1
	onPage := 0
	y := startTOCPage(doc, true)

	right := letterW - tocMargin
	for i, e := range entries {
		if onPage == capacity {
			drawTOCFooter(doc, tocPage)
			tocPage++
			capacity = tocCapacity(false)
			onPage = 0
			y = startTOCPage(doc, false)
		}

		if i%2 == 0 {
			doc.SetFillColor(tocStripe.r, tocStripe.g, tocStripe.b)
			doc.Rect(tocMargin-10, y-tocStripeH+5, right-tocMargin+20, tocStripeH, "F")
		}

		doc.SetFont("Helvetica", "", 11)
		doc.Text(tocMargin, y, e.title)

		pageStr := strconv.Itoa(e.page)
		doc.SetFont("Helvetica", "B", 11)
		numW := doc.GetStringWidth(pageStr)
		doc.Text(right-numW, y, pageStr)

		doc.SetFont("Helvetica", "", 11)
		dotStart := tocMargin + doc.GetStringWidth(e.title) + 10
		dotEnd := right - 40
		if dotStart < dotEnd {
			doc.SetDashPattern([]float64{2, 4}, 0)
			doc.Line(dotStart, y-3, dotEnd, y-3)
			doc.SetDashPattern([]float64{}, 0)
		}

		y += tocRowH
		onPage++
	}
	drawTOCFooter(doc, tocPage)
}

// startTOCPage adds a TOC page with its header and returns the baseline of
// the first entry.
func startTOCPage(doc *gofpdf.Fpdf, first bool) float64 {
	doc.AddPageFormat("P", gofpdf.SizeType{Wd: letterW, Ht: letterH})
	y := tocMargin

	doc.SetTextColor(tocPrimary.r, tocPrimary.g, tocPrimary.b)
	doc.SetDrawColor(tocAccent.r, tocAccent.g, tocAccent.b)
	if first {
		doc.SetFont("Helvetica", "B", 28)
		doc.Text(tocMargin, y, "Table of Contents")
		doc.SetLineWidth(2)
		doc.Line(tocMargin, y+0.3*inch, tocMargin+200, y+0.3*inch)
		y += tocHeaderDrop
	} else {
		doc.SetFont("Helvetica", "B", 20)
		doc.Text(tocMargin, y, "Table of Contents (continued)")
		doc.SetLineWidth(1)
		doc.Line(tocMargin, y+0.15*inch, tocMargin+150, y+0.15*inch)
		y += tocContDrop
	}

	doc.SetTextColor(tocText.r, tocText.g, tocText.b)
	doc.SetDrawColor(tocText.r, tocText.g, tocText.b)
	doc.SetLineWidth(0.5)
	return y
}

// drawTOCFooter centers a "- n -" marker near the bottom of the current page.
func drawTOCFooter(doc *gofpdf.Fpdf, n int) {
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(tocMuted.r, tocMuted.g, tocMuted.b)
	text := "- " + strconv.Itoa(n) + " -"
	doc.Text((letterW-doc.GetStringWidth(text))/2, tocFooterY, text)
	doc.SetTextColor(tocText.r, tocText.g, tocText.b)
}
