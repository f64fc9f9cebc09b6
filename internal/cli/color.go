package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouni/dicebear-kit/pkg/domain"
)

func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Generate or validate colour specifications",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "random",
		Short: "Print a random colour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), domain.RandomColor())
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check SPEC...",
		Short: "Validate colours and print the canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   domain.Color
				err error
			)
			if len(args) == 1 {
				c, err = domain.NewColor(args[0])
			} else {
				c, err = domain.NewGradient(args...)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c)
			return err
		},
	})

	return cmd
}
