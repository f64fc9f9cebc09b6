package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/dicebear-kit/pkg/domain"
)

func newSchemaCmd(a *app) *cobra.Command {
	var properties bool

	cmd := &cobra.Command{
		Use:   "schema STYLE",
		Short: "Print the JSON schema of an avatar style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := domain.StyleFromName(args[0])
			if err != nil {
				return err
			}
			gen, cleanup, err := a.newGenerator()
			if err != nil {
				return err
			}
			defer cleanup()

			schema, err := gen.Schema(cmd.Context(), style)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if properties {
				_, err = fmt.Fprintln(out, strings.Join(schema.PropertyNames(), "\n"))
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(schema)
		},
	}

	cmd.Flags().BoolVar(&properties, "properties", false, "only list the property names")
	return cmd
}
