package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorspace"
)

type validation struct {
	Input string `json:"input" yaml:"input"`
	Valid bool   `json:"valid" yaml:"valid"`
}

func newValidateCmd(a *app) *cobra.Command {
	var alpha bool

	cmd := &cobra.Command{
		Use:   "validate [--alpha] <hex...>",
		Short: "Check hex color syntax",
		Long:  `Check that each argument is '#' followed by 6 hex digits (or 8 with --alpha). Exits with status 1 if any argument is invalid.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid := colorspace.IsValid
			if alpha {
				valid = colorspace.IsValidWithAlpha
			}

			results := make([]validation, len(args))
			invalid := 0
			for i, arg := range args {
				results[i] = validation{Input: arg, Valid: valid(arg)}
				if !results[i].Valid {
					invalid++
				}
			}

			err := a.out.emit(results, func() {
				for _, r := range results {
					status := "valid"
					if !r.Valid {
						status = "invalid"
					}
					a.out.printf("%-12s %s\n", r.Input, status)
				}
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("validate: %d of %d invalid: %w", invalid, len(args), colorspace.ErrInvalidHex)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&alpha, "alpha", false, "also accept 8 digit colors with alpha")
	return cmd
}
