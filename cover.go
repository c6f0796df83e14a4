package fakebook

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	gofpdf "github.com/phpdave11/gofpdf"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultCoverDir is the conventional directory probed for a cover image
// (cover.png, cover.jpg, ...) when none is set explicitly. It is resolved
// relative to the current working directory.
const DefaultCoverDir = "static"

var coverExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp"}

// detectCover returns the first existing cover image at the conventional
// location, or "" when there is none.
func detectCover() string {
	for _, ext := range coverExts {
		p := filepath.Join(DefaultCoverDir, "cover"+ext)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// addCoverPage places the image at path on a new letter-sized page, scaled to
// fit and centered, preserving its aspect ratio. The image is validated before
// any page is added, so on error the document is left untouched.
func addCoverPage(doc *gofpdf.Fpdf, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding %s: %v", filepath.Base(path), err)
	}

	imgType := strings.ToUpper(format)
	switch format {
	case "png", "jpeg", "gif":
		// gofpdf registers these natively
	case "bmp", "tiff", "webp":
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decoding %s: %v", filepath.Base(path), err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("converting %s: %v", filepath.Base(path), err)
		}
		data = buf.Bytes()
		imgType = "PNG"
	default:
		return fmt.Errorf("unsupported cover image format %q", format)
	}

	opts := gofpdf.ImageOptions{ImageType: imgType}
	doc.RegisterImageOptionsReader("cover", opts, bytes.NewReader(data))
	if doc.Err() {
		err := doc.Error()
		doc.ClearError()
		return err
	}

	// Pixel dimensions are treated as points, matching the page coordinates.
	scale := math.Min(letterW/float64(cfg.Width), letterH/float64(cfg.Height))
	w := float64(cfg.Width) * scale
	h := float64(cfg.Height) * scale

	doc.AddPageFormat("P", gofpdf.SizeType{Wd: letterW, Ht: letterH})
	doc.ImageOptions("cover", (letterW-w)/2, (letterH-h)/2, w, h, false, opts, 0, "")
	return doc.Error()
}

// addTitlePage renders a centered text title page, used as the cover when no
// cover image is available but a title was configured.
func addTitlePage(doc *gofpdf.Fpdf, title string) {
	doc.AddPageFormat("P", gofpdf.SizeType{Wd: letterW, Ht: letterH})
	doc.SetFont("Helvetica", "B", 36)
	doc.SetTextColor(0, 0, 0)
	w := doc.GetStringWidth(title)
	doc.Text((letterW-w)/2, letterH/2, title)
}
