// Package pdftest generates small PDF and image files for use in tests.
package pdftest

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	gofpdf "github.com/phpdave11/gofpdf"
)

// CreatePDF writes a simple PDF with numPages labeled pages to filename.
func CreatePDF(t *testing.T, filename string, numPages int) {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 14)
	for i := 1; i <= numPages; i++ {
		doc.AddPage()
		doc.Text(20, 30, fmt.Sprintf("Page %d of %d", i, numPages))
	}
	if err := doc.OutputFileAndClose(filename); err != nil {
		t.Fatalf("creating test PDF: %v", err)
	}
}

// CreatePNG writes a solid-color PNG of the given size to filename.
func CreatePNG(t *testing.T, filename string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 44, G: 62, B: 80, A: 255})
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		t.Fatalf("creating test PNG: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
}
