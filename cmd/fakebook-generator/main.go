// Command fakebook-generator merges every PDF in a directory into a single
// book with a cover page, a table of contents, and one bookmark per song.
//
// # Usage
//
//	fakebook-generator [flags] OUTPUT.pdf INPUT_DIR
//
// Inputs are merged in case-insensitive alphabetical order by filename. A
// cover image is picked up automatically from static/cover.png (or .jpg,
// .gif, .bmp, .tiff, .webp) relative to the working directory; -cover
// overrides the location and -title renders a text title page when no image
// is available.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"

	fakebook "github.com/elliotvilhelm/fakebook-generator"
)

func main() {
	cover := flag.String("cover", "", "cover image path (default: autodetect static/cover.*)")
	title := flag.String("title", "", "title page text used when no cover image exists")
	quiet := flag.Bool("quiet", false, "suppress progress output and the summary line")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	outputPath, inputDir := flag.Arg(0), flag.Arg(1)

	var opts []fakebook.Option
	if *cover != "" {
		opts = append(opts, fakebook.WithCoverImage(*cover))
	}
	if *title != "" {
		opts = append(opts, fakebook.WithTitle(*title))
	}

	var bar *pb.ProgressBar
	if !*quiet {
		opts = append(opts, fakebook.WithProgress(func(done, total int, name string) {
			if bar == nil {
				bar = pb.StartNew(total)
			}
			bar.Increment()
		}))
	}

	res, err := fakebook.New(outputPath, inputDir, opts...).Build()
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fakebook-generator: %v\n", err)
		os.Exit(1)
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "fakebook-generator: warning: %s\n", w)
	}
	if !*quiet {
		fmt.Printf("wrote %s (%d pages, %d songs)\n", res.OutputPath, res.Pages, len(res.Files))
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: fakebook-generator [flags] OUTPUT.pdf INPUT_DIR\n")
	flag.PrintDefaults()
}
