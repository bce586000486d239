package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/colorspace"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// printer writes command results in the configured format.
type printer struct {
	w           io.Writer
	format      string
	floatFormat string // "%.<precision>f"
	preview     bool
	msg         *message.Printer
	term        *termenv.Output
}

func newPrinter(w io.Writer, cfg OutputConfig, opts ...termenv.OutputOption) (*printer, error) {
	tag, err := language.Parse(cfg.Lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", cfg.Lang, err)
	}
	return &printer{
		w:           w,
		format:      cfg.Format,
		floatFormat: "%." + strconv.Itoa(cfg.Precision) + "f",
		preview:     cfg.Preview,
		msg:         message.NewPrinter(tag),
		term:        termenv.NewOutput(w, opts...),
	}, nil
}

// emit writes v as JSON or YAML, or calls text for the text format.
func (p *printer) emit(v any, text func()) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text()
		return nil
	}
}

// printf writes localized text.
func (p *printer) printf(format string, args ...any) {
	p.msg.Fprintf(p.w, format, args...)
}

// number formats x with the configured precision and locale.
func (p *printer) number(x float64) string {
	return p.msg.Sprintf(p.floatFormat, x)
}

func (p *printer) numbers(xs ...float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = p.number(x)
	}
	return strings.Join(parts, " ")
}

// value renders a color of any model for text output.
func (p *printer) value(v any) string {
	switch c := v.(type) {
	case colorspace.RGB:
		return p.numbers(c.R, c.G, c.B)
	case colorspace.HSL:
		return p.numbers(c.H, c.S, c.L)
	case colorspace.HSV:
		return p.numbers(c.H, c.S, c.V)
	case colorspace.HWB:
		return p.numbers(c.H, c.W, c.B)
	case colorspace.CMYK:
		return p.numbers(c.C, c.M, c.Y, c.K)
	case colorspace.Hex:
		return string(c)
	case colorspace.Packed:
		return fmt.Sprintf("%d (0x%06x)", uint32(c), uint32(c))
	default:
		return fmt.Sprint(v)
	}
}

// swatch returns a color block for c, or "" when previews are off or the
// terminal has no color support.
func (p *printer) swatch(c colorspace.RGB) string {
	if !p.preview || p.term.Profile == termenv.Ascii {
		return ""
	}
	bg := p.term.Color(string(c.Hex()))
	return p.term.String("      ").Background(bg).String() + " "
}

// sample returns text drawn in fg on bg, or "" like swatch.
func (p *printer) sample(fg, bg colorspace.RGB) string {
	if !p.preview || p.term.Profile == termenv.Ascii {
		return ""
	}
	return p.term.String(" Aa ").
		Foreground(p.term.Color(string(fg.Hex()))).
		Background(p.term.Color(string(bg.Hex()))).
		String() + " "
}
