package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouni/dicebear-kit/pkg/domain"
)

func newStylesCmd() *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the supported avatar styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if random {
				_, err := fmt.Fprintln(out, domain.RandomStyle())
				return err
			}
			for _, s := range domain.Styles() {
				if _, err := fmt.Fprintln(out, s); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&random, "random", false, "print one random style")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range domain.Formats() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", f, f.MimeType()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
