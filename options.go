package fakebook

import "time"

// Option is a functional option for configuring a Builder via New.
type Option func(*builderConfig)

type builderConfig struct {
	coverPath string
	title     string
	created   time.Time
	progress  func(done, total int, name string)
}

// WithCoverImage sets an explicit cover image path. When set, the conventional
// static/cover.* location is not probed, and a missing or undecodable image
// fails the build with ErrCoverImage.
func WithCoverImage(path string) Option {
	return func(c *builderConfig) {
		c.coverPath = path
	}
}

// WithTitle sets the text for a fallback title page, rendered as page 1 when
// no cover image is available. Without a title and without a cover image the
// document starts directly at the table of contents.
func WithTitle(title string) Option {
	return func(c *builderConfig) {
		c.title = title
	}
}

// WithCreationDate pins the document creation and modification timestamps,
// so rebuilding identical inputs does not vary the embedded metadata. Page
// content is identical across such builds; whole-file bytes may still differ
// because the underlying page importer does not guarantee a stable object
// emission order.
func WithCreationDate(t time.Time) Option {
	return func(c *builderConfig) {
		c.created = t
	}
}

// WithProgress registers a callback invoked after each input file has been
// merged, with the number of files done, the total, and the file just merged.
func WithProgress(fn func(done, total int, name string)) Option {
	return func(c *builderConfig) {
		c.progress = fn
	}
}
