package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pipbridge/internal/app"
)

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [packages...]",
		Short: "Add packages to the Pipfile",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editable, _ := cmd.Flags().GetStringArray("editable")
			requirements, _ := cmd.Flags().GetString("requirements")
			if len(args) == 0 && len(editable) == 0 && requirements == "" {
				_ = cmd.Help()
				return nil
			}
			t, err := target(cmd)
			if err != nil {
				return err
			}
			dev, _ := cmd.Flags().GetBool("dev")
			index, _ := cmd.Flags().GetString("index")
			return c.app.Add(cmd.Context(), t, app.AddOptions{
				Packages:     args,
				Editable:     editable,
				Requirements: requirements,
				Dev:          dev,
				Index:        index,
			})
		},
	}
	cmd.Flags().BoolP("dev", "d", false, "Add to [dev-packages]")
	cmd.Flags().String("index", "", "Pin the packages to a named [[source]]")
	cmd.Flags().StringArrayP("editable", "e", nil, "Add a local path as an editable package")
	cmd.Flags().StringP("requirements", "r", "", "Import packages from a requirements file")
	return cmd
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [packages...]",
		Short: "Remove packages from the Pipfile",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			allDev, _ := cmd.Flags().GetBool("all-dev")
			if len(args) == 0 && !all && !allDev {
				_ = cmd.Help()
				return nil
			}
			t, err := target(cmd)
			if err != nil {
				return err
			}
			dev, _ := cmd.Flags().GetBool("dev")
			return c.app.Remove(cmd.Context(), t, app.RemoveOptions{
				Packages: args,
				Dev:      dev,
				All:      all,
				AllDev:   allDev,
			})
		},
	}
	cmd.Flags().BoolP("dev", "d", false, "Only remove from [dev-packages]")
	cmd.Flags().Bool("all", false, "Remove every package from both sections")
	cmd.Flags().Bool("all-dev", false, "Remove every package from [dev-packages]")
	return cmd
}
