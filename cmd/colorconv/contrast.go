package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorspace"
)

// contrastResult is the structured output of the contrast command.
type contrastResult struct {
	Foreground        colorspace.Hex `json:"foreground" yaml:"foreground"`
	Background        colorspace.Hex `json:"background" yaml:"background"`
	colorspace.Report `yaml:",inline"`
}

// bestTextResult is the structured output of the best-text command.
type bestTextResult struct {
	Background colorspace.Hex   `json:"background" yaml:"background"`
	Text       colorspace.Hex   `json:"text" yaml:"text"`
	Ratio      float64          `json:"ratio" yaml:"ratio"`
	Level      colorspace.Level `json:"level" yaml:"level"`
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <fg-hex> <bg-hex>",
		Short: "Report the WCAG contrast between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, bg, err := parsePair(args[0], args[1])
			if err != nil {
				return fmt.Errorf("contrast: %w", err)
			}

			r := a.ev.Check(fg, bg)
			a.logger.Debug("colorconv: contrast checked",
				slog.Float64("ratio", r.Ratio),
				slog.String("level", r.Level.String()))

			res := contrastResult{Foreground: fg.Hex(), Background: bg.Hex(), Report: r}
			return a.out.emit(res, func() {
				a.out.printf("%s%s on %s\n", a.out.sample(fg, bg), res.Foreground, res.Background)
				a.out.printf("ratio      %s:1\n", a.out.number(r.Ratio))
				a.out.printf("percentage %s\n", a.out.number(r.Percentage))
				a.out.printf("level      %s\n", r.Level)
			})
		},
	}
}

func newBestTextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "best-text <bg-hex>",
		Short: "Pick black or white text for a background",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := colorspace.ParseHex(args[0])
			if err != nil {
				return fmt.Errorf("best-text: %w", err)
			}

			text := a.ev.BestText(bg)
			ratio := a.ev.ContrastRatio(text, bg)
			res := bestTextResult{
				Background: bg.Hex(),
				Text:       text.Hex(),
				Ratio:      ratio,
				Level:      colorspace.Grade(ratio),
			}
			return a.out.emit(res, func() {
				a.out.printf("%s%s (%s:1, %s)\n", a.out.sample(text, bg), res.Text, a.out.number(ratio), res.Level)
			})
		},
	}
}

func parsePair(fgText, bgText string) (fg, bg colorspace.RGB, err error) {
	if fg, err = colorspace.ParseHex(fgText); err != nil {
		return fg, bg, fmt.Errorf("foreground: %w", err)
	}
	if bg, err = colorspace.ParseHex(bgText); err != nil {
		return fg, bg, fmt.Errorf("background: %w", err)
	}
	return fg, bg, nil
}
