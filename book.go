// Package fakebook merges a directory of PDF lead sheets into a single book:
// an optional cover page, a generated table of contents, every input in
// case-insensitive alphabetical order, and one bookmark per input pointing at
// its first page.
//
// It uses the gofpdi contrib package to import source pages as templates, so
// page content is carried over byte-for-byte without re-rendering.
package fakebook

import (
	"fmt"
	"os"
	"path/filepath"

	reader "github.com/ledongthuc/pdf"
	gofpdf "github.com/phpdave11/gofpdf"
	"github.com/phpdave11/gofpdf/contrib/gofpdi"
)

// Builder assembles a merged book PDF from a directory of inputs.
type Builder struct {
	outputPath string
	inputDir   string
	cfg        builderConfig
}

// New returns a Builder that will merge every PDF directly inside inputDir
// into a single document at outputPath.
func New(outputPath, inputDir string, opts ...Option) *Builder {
	b := &Builder{outputPath: outputPath, inputDir: inputDir}
	for _, opt := range opts {
		opt(&b.cfg)
	}
	return b
}

// BuildResult reports what a successful build produced.
type BuildResult struct {
	OutputPath string
	Pages      int          // total pages in the output document
	CoverPages int          // 1 if a cover or title page was added, else 0
	TOCPages   int          // number of table-of-contents pages
	Files      []SourceFile // merged inputs in order, with page counts filled in
	Warnings   []string     // non-fatal conditions, e.g. a skipped cover image
}

// Offset returns the zero-based index of the first page contributed by input
// i. Offsets are strictly increasing and contiguous:
// Offset(i+1) == Offset(i) + Files[i].Pages.
func (r *BuildResult) Offset(i int) int {
	off := r.CoverPages + r.TOCPages
	for j := 0; j < i; j++ {
		off += r.Files[j].Pages
	}
	return off
}

// Build runs the whole merge as a single forward pass: discover inputs, count
// their pages, place the cover, render the TOC, import all source pages with
// one bookmark per file, and write the output atomically. On any error no
// output file is written.
func (b *Builder) Build() (*BuildResult, error) {
	files, err := Discover(b.inputDir)
	if err != nil {
		return nil, err
	}
	res := &BuildResult{OutputPath: b.outputPath, Files: files}

	// Validate every input up front so a corrupt file aborts the run before
	// anything is assembled.
	for i := range files {
		n, err := countPages(files[i].Path)
		if err != nil {
			return nil, newBookError("Build", files[i].Path, ErrUnreadablePDF, err)
		}
		files[i].Pages = n
	}

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	if !b.cfg.created.IsZero() {
		doc.SetCreationDate(b.cfg.created)
		doc.SetModificationDate(b.cfg.created)
	}

	if err := b.addCover(doc, res); err != nil {
		return nil, err
	}

	res.TOCPages = tocPageCount(len(files))
	entries := make([]tocEntry, len(files))
	page := res.CoverPages + res.TOCPages
	for i, f := range files {
		entries[i] = tocEntry{title: f.DisplayTitle(), page: page + 1}
		page += f.Pages
	}
	renderTOC(doc, entries)

	for i, f := range files {
		if err := appendFile(doc, f); err != nil {
			return nil, err
		}
		if b.cfg.progress != nil {
			b.cfg.progress(i+1, len(files), f.Name)
		}
	}

	if doc.Err() {
		return nil, &BookError{Op: "Build", Err: doc.Error()}
	}

	res.Pages = page
	if err := writeAtomic(doc, b.outputPath); err != nil {
		return nil, err
	}
	return res, nil
}

// addCover decides page 1: an explicitly configured cover image (fatal when
// unusable), an auto-detected one at static/cover.* (skipped with a warning
// when unusable), or a text title page when a title was configured.
func (b *Builder) addCover(doc *gofpdf.Fpdf, res *BuildResult) error {
	coverPath := b.cfg.coverPath
	explicit := coverPath != ""
	if !explicit {
		coverPath = detectCover()
	}

	if coverPath != "" {
		err := addCoverPage(doc, coverPath)
		if err == nil {
			res.CoverPages = 1
			return nil
		}
		if explicit {
			return newBookError("Build", coverPath, ErrCoverImage, err)
		}
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("skipping cover image %s: %v", coverPath, err))
	}

	if b.cfg.title != "" {
		addTitlePage(doc, b.cfg.title)
		res.CoverPages = 1
	}
	return nil
}

// countPages checks that path parses as a PDF and returns its page count.
func countPages(path string) (n int, err error) {
	// The reader panics on some malformed inputs; treat that as a parse error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing: %v", r)
		}
	}()

	f, doc, err := reader.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return doc.NumPage(), nil
}

// appendFile imports all pages from one source PDF, preserving each page's
// own dimensions, and bookmarks the first of them with the display title.
func appendFile(doc *gofpdf.Fpdf, f SourceFile) (err error) {
	// gofpdi panics on malformed files instead of returning errors.
	defer func() {
		if r := recover(); r != nil {
			err = newBookError("Build", f.Path, ErrUnreadablePDF, fmt.Errorf("%v", r))
		}
	}()

	imp := gofpdi.NewImporter()
	for i := 1; i <= f.Pages; i++ {
		tplID := imp.ImportPage(doc, f.Path, i, "/MediaBox")

		var w, h float64
		if dims, ok := imp.GetPageSizes()[i]; ok {
			if mb, ok := dims["/MediaBox"]; ok {
				w = mb["w"]
				h = mb["h"]
			}
		}
		if w == 0 || h == 0 {
			w = 595.28 // A4 default
			h = 841.89
		}

		doc.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		if i == 1 {
			doc.Bookmark(f.DisplayTitle(), 0, 0)
		}
		imp.UseImportedTemplate(doc, tplID, 0, 0, w, h)
	}
	return doc.Error()
}

// writeAtomic serializes the document to a temp file next to outputPath and
// renames it into place, so a failed run never leaves a partial output file.
func writeAtomic(doc *gofpdf.Fpdf, outputPath string) error {
	wrap := func(cause error) error {
		return newBookError("Write", outputPath, ErrOutputWrite, cause)
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wrap(err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(outputPath)+".tmp")
	if err != nil {
		return wrap(err)
	}
	if err := doc.Output(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return wrap(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return wrap(err)
	}
	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		os.Remove(tmp.Name())
		return wrap(err)
	}
	return nil
}
