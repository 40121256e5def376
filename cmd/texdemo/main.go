// Command texdemo lays out a formula and writes it as a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sanity-io/litter"

	"github.com/gogpu/mathtex"
	"github.com/gogpu/mathtex/layout"
	"github.com/gogpu/mathtex/paint"
	"github.com/gogpu/mathtex/text"
)

// demos are rendered when no formula is given.
var demos = []string{
	`x = \frac{-b \pm \sqrt{b^2-4ac}}{2a}`,
	`\Sum_{i=1}^{n} i = \frac{n(n+1)}{2}`,
	`\int_0^1 x^2 dx`,
	`\left( \begin{array}{c|c} a & b \\ c & d \end{array} \right)`,
	`\overrightarrow{AB} + \overline{z} \rightarrow \sqrt[3]{\alpha_1^2}`,
}

func main() {
	var (
		size    = flag.Float64("size", 32, "font size in pixels per em")
		output  = flag.String("output", "formula.png", "output file (demo index is appended without a formula)")
		margin  = flag.Int("margin", 8, "margin around the formula in pixels")
		upright = flag.String("font", "", "upright TrueType/OpenType font (default Go Regular)")
		italic  = flag.String("italic", "", "italic font (default Go Italic, or -font)")
		dump    = flag.Bool("dump", false, "print the box tree to stdout")
		verbose = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		mathtex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m, err := measurer(*upright, *italic)
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	formulas := flag.Args()
	if len(formulas) == 0 {
		formulas = demos
	}

	for i, src := range formulas {
		res := mathtex.Render(src, *size, mathtex.WithMeasurer(m))
		if err := res.Err(); err != nil {
			log.Printf("%q: %v", src, err)
		}
		if *dump {
			fmt.Println(dumpBox(res.Box))
		}

		path := *output
		if len(formulas) > 1 {
			path = fmt.Sprintf("%s-%d.png", strings.TrimSuffix(*output, filepath.Ext(*output)), i)
		}
		img := res.Image(paint.WithMargin(*margin))
		if err := paint.SavePNG(path, img); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("%s saved to %s (%dx%d)\n", src, path, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

// dumpBox renders the box tree as Go-like source for inspection.
func dumpBox(b *layout.Box) string {
	opts := litter.Options{
		StripPackageNames: true,
		HidePrivateFields: true,
		Separator:         " ",
	}
	return opts.Sdump(b)
}

// measurer loads the requested fonts, falling back to the Go fonts.
func measurer(upright, italic string) (layout.Measurer, error) {
	if upright == "" && italic == "" {
		return text.DefaultMeasurer(), nil
	}
	def := text.DefaultMeasurer()
	up, it := def.Source(false), def.Source(true)
	if upright != "" {
		src, err := text.NewFontSourceFromFile(upright)
		if err != nil {
			return nil, err
		}
		up, it = src, src
	}
	if italic != "" {
		src, err := text.NewFontSourceFromFile(italic)
		if err != nil {
			return nil, err
		}
		it = src
	}
	return text.NewMeasurer(up, it)
}
