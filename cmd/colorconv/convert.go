package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorspace"
)

// Color models accepted by convert. argb is input only.
const (
	modelRGB    = "rgb"
	modelHSL    = "hsl"
	modelHSV    = "hsv"
	modelHWB    = "hwb"
	modelCMYK   = "cmyk"
	modelHex    = "hex"
	modelPacked = "packed"
	modelARGB   = "argb"
	modelAll    = "all"
)

var targetModels = []string{modelRGB, modelHSL, modelHSV, modelHWB, modelCMYK, modelHex, modelPacked}

// arity is the number of arguments each input model takes.
var arity = map[string]int{
	modelRGB:    3,
	modelHSL:    3,
	modelHSV:    3,
	modelHWB:    3,
	modelCMYK:   4,
	modelHex:    1,
	modelPacked: 1,
	modelARGB:   1,
}

// source is a parsed input color: its RGB value plus the value in the
// model it was given in, so hue survives conversions among hue models.
type source struct {
	model  string
	rgb    colorspace.RGB
	native any
}

func newConvertCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert --from <model> --to <model> <values...>",
		Short: "Convert a color between models",
		Long: `Convert a color between models.

Models: rgb, hsl, hsv, hwb, cmyk, hex, packed, and argb (input only).
Numeric models take one argument per channel, in [0, 1]. hex takes
"#rrggbb", argb takes up to 8 hex digits, packed takes a decimal or 0x
integer. --to all prints every model.`,
		Example: `  colorconv convert --from hex --to hsl '#3399cc'
  colorconv convert --from rgb --to all 1 0.5 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSource(from, args)
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}

			targets := []string{to}
			if to == modelAll {
				targets = targetModels
			}
			result := make(map[string]any, len(targets))
			for _, model := range targets {
				v, err := src.to(model)
				if err != nil {
					return fmt.Errorf("convert: %w", err)
				}
				result[model] = v
			}
			a.logger.Debug("colorconv: converted",
				slog.String("from", from),
				slog.String("to", to),
				slog.String("hex", string(src.rgb.Hex())))

			return a.out.emit(result, func() {
				for _, model := range targets {
					a.out.printf("%-6s %s%s\n", model, a.out.swatch(src.rgb), a.out.value(result[model]))
				}
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", modelHex, "input model")
	cmd.Flags().StringVar(&to, "to", modelRGB, "output model, or all")
	return cmd
}

// parseSource reads args as a color in model.
func parseSource(model string, args []string) (source, error) {
	model = strings.ToLower(model)
	n, ok := arity[model]
	if !ok {
		return source{}, fmt.Errorf("unknown input model %q", model)
	}
	if len(args) != n {
		return source{}, fmt.Errorf("%s takes %d argument(s), got %d", model, n, len(args))
	}

	src := source{model: model}
	switch model {
	case modelHex:
		rgb, err := colorspace.ParseHex(args[0])
		if err != nil {
			return source{}, err
		}
		src.rgb, src.native = rgb, rgb.Hex()
		return src, nil
	case modelARGB:
		src.rgb = colorspace.ParseARGB(args[0])
		src.native = src.rgb
		return src, nil
	case modelPacked:
		v, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return source{}, fmt.Errorf("invalid packed color %q: %w", args[0], err)
		}
		p := colorspace.Packed(v)
		src.rgb, src.native = p.RGB(), p
		return src, nil
	}

	xs := make([]float64, n)
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return source{}, fmt.Errorf("invalid %s channel %q: %w", model, arg, err)
		}
		xs[i] = x
	}

	switch model {
	case modelRGB:
		c := colorspace.RGB{R: xs[0], G: xs[1], B: xs[2]}
		src.rgb, src.native = c, c
	case modelHSL:
		c := colorspace.HSL{H: xs[0], S: xs[1], L: xs[2]}
		src.rgb, src.native = c.RGB(), c
	case modelHSV:
		c := colorspace.HSV{H: xs[0], S: xs[1], V: xs[2]}
		src.rgb, src.native = c.RGB(), c
	case modelHWB:
		c := colorspace.HWB{H: xs[0], W: xs[1], B: xs[2]}
		src.rgb, src.native = c.RGB(), c
	case modelCMYK:
		c := colorspace.CMYK{C: xs[0], M: xs[1], Y: xs[2], K: xs[3]}
		src.rgb, src.native = c.RGB(), c
	}
	return src, nil
}

// to converts s into model. Conversions among HSL, HSV and HWB go
// directly so that the input hue is kept for grays.
func (s source) to(model string) (any, error) {
	switch model {
	case modelRGB:
		return s.rgb, nil
	case modelHSL:
		switch c := s.native.(type) {
		case colorspace.HSL:
			return c, nil
		case colorspace.HSV:
			return c.HSL(), nil
		case colorspace.HWB:
			return c.HSL(), nil
		}
		return s.rgb.HSL(), nil
	case modelHSV:
		switch c := s.native.(type) {
		case colorspace.HSV:
			return c, nil
		case colorspace.HSL:
			return c.HSV(), nil
		case colorspace.HWB:
			return c.HSV(), nil
		}
		return s.rgb.HSV(), nil
	case modelHWB:
		switch c := s.native.(type) {
		case colorspace.HWB:
			return c, nil
		case colorspace.HSL:
			return c.HWB(), nil
		case colorspace.HSV:
			return c.HWB(), nil
		}
		return s.rgb.HWB(), nil
	case modelCMYK:
		if c, ok := s.native.(colorspace.CMYK); ok {
			return c, nil
		}
		return s.rgb.CMYK(), nil
	case modelHex:
		return s.rgb.Hex(), nil
	case modelPacked:
		return s.rgb.Packed(), nil
	default:
		return nil, fmt.Errorf("unknown output model %q", model)
	}
}
