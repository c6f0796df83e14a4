package fakebook

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// SourceFile is one input PDF discovered in the input directory.
type SourceFile struct {
	Path  string // full path to the file
	Name  string // base filename, e.g. "all_of_me.pdf"
	Pages int    // page count, filled in during a build
}

// DisplayTitle returns the human-readable title used for the TOC entry and
// bookmark of this file: the filename without its extension, underscores and
// hyphens replaced by spaces, and the first letter of each word capitalized.
func (s SourceFile) DisplayTitle() string {
	return displayTitle(s.Name)
}

func displayTitle(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	words := strings.Fields(base)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Discover lists the PDF files directly inside dir (non-recursive), sorted by
// filename case-insensitively. The files are not opened; page counts are
// gathered later during the build.
func Discover(dir string) ([]SourceFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, newBookError("Discover", dir, ErrDirectoryNotFound, err)
	}
	if !info.IsDir() {
		return nil, newBookError("Discover", dir, ErrDirectoryNotFound, nil)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newBookError("Discover", dir, ErrDirectoryNotFound, err)
	}

	var files []SourceFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		files = append(files, SourceFile{
			Path: filepath.Join(dir, entry.Name()),
			Name: entry.Name(),
		})
	}
	if len(files) == 0 {
		return nil, newBookError("Discover", dir, ErrNoInputFiles, nil)
	}

	sort.Slice(files, func(i, j int) bool {
		a, b := strings.ToLower(files[i].Name), strings.ToLower(files[j].Name)
		if a != b {
			return a < b
		}
		return files[i].Name < files[j].Name
	})
	return files, nil
}
