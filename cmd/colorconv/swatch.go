package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/colorspace"
)

// Default swatch size in pixels.
const (
	defaultSwatchWidth  = 320
	defaultSwatchHeight = 120
)

func newSwatchCmd(a *app) *cobra.Command {
	var (
		output        string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "swatch <fg-hex> <bg-hex> -o <file.png>",
		Short: "Render a PNG sample of text on a background",
		Long:  `Render a PNG with sample text in the foreground color on the background color, labelled with their contrast ratio and WCAG level. Use -o - to write to standard output.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, bg, err := parsePair(args[0], args[1])
			if err != nil {
				return fmt.Errorf("swatch: %w", err)
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("swatch: invalid size %dx%d", width, height)
			}

			img := renderSwatch(fg, bg, a.ev.Check(fg, bg), width, height)

			if output == "-" {
				return writePNG(cmd.OutOrStdout(), img)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("swatch: %w", err)
			}
			if err := writePNG(f, img); err != nil {
				_ = f.Close()
				return fmt.Errorf("swatch: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("swatch: %w", err)
			}
			a.logger.Info("colorconv: swatch written",
				slog.String("file", output),
				slog.Int("width", width),
				slog.Int("height", height))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "swatch.png", "output file, or - for stdout")
	cmd.Flags().IntVar(&width, "width", defaultSwatchWidth, "image width")
	cmd.Flags().IntVar(&height, "height", defaultSwatchHeight, "image height")
	return cmd
}

// renderSwatch fills a width x height image with bg and draws two centred
// lines of text in fg: a pangram and the contrast report.
func renderSwatch(fg, bg colorspace.RGB, r colorspace.Report, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: basicfont.Face7x13,
	}
	lines := []string{
		"The quick brown fox",
		fmt.Sprintf("%.2f:1 %s", r.Ratio, r.Level),
	}

	lineHeight := basicfont.Face7x13.Height
	top := (height - lineHeight*len(lines)) / 2
	for i, line := range lines {
		w := d.MeasureString(line).Ceil()
		d.Dot = fixed.P((width-w)/2, top+basicfont.Face7x13.Ascent+i*lineHeight)
		d.DrawString(line)
	}
	return img
}

// writePNG encodes img to w.
func writePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
