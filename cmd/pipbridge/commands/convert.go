package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pipbridge/internal/app"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write pyproject.toml from the Pipfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := target(cmd)
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Convert(cmd.Context(), t, app.ConvertOptions{Force: force})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rewrite pyproject.toml even when the Pipfile is unchanged")
	return cmd
}

func (c *CLI) newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the Pipfile in canonical form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := target(cmd)
			if err != nil {
				return err
			}
			return c.app.Format(cmd.Context(), t)
		},
	}
}
