package commands

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pipbridge/internal/app"
	"go.trai.ch/pipbridge/internal/ui/output"
	"go.trai.ch/pipbridge/internal/ui/style"
	"go.trai.ch/pipbridge/internal/ui/tree"
	"go.trai.ch/zerr"
)

func (c *CLI) newScriptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scripts",
		Short: "List the scripts declared in the Pipfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := target(cmd)
			if err != nil {
				return err
			}
			scripts, err := c.app.Scripts(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printScripts(cmd.OutOrStdout(), scripts)
		},
	}
}

func printScripts(w io.Writer, scripts []app.Script) error {
	styles := style.New(output.Renderer(w))

	width := 0
	for _, s := range scripts {
		width = max(width, len(s.Name))
	}

	var b strings.Builder
	for _, s := range scripts {
		pad := strings.Repeat(" ", width-len(s.Name)+2)
		b.WriteString(styles.Name.Render(s.Name) + pad + s.Command + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (c *CLI) newRequirementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requirements",
		Short: "Print Pipfile.lock as a requirements.txt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := target(cmd)
			if err != nil {
				return err
			}
			dev, _ := cmd.Flags().GetBool("dev")
			devOnly, _ := cmd.Flags().GetBool("dev-only")
			hashes, _ := cmd.Flags().GetBool("hash")
			text, err := c.app.Requirements(cmd.Context(), t, app.RequirementsOptions{
				Dev:     dev,
				DevOnly: devOnly,
				Hashes:  hashes,
			})
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().BoolP("dev", "d", false, "Include [dev-packages]")
	cmd.Flags().Bool("dev-only", false, "Only emit [dev-packages]")
	cmd.Flags().Bool("hash", false, "Emit --hash options for every package")
	return cmd
}

func (c *CLI) newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the resolved dependency tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := target(cmd)
			if err != nil {
				return err
			}
			deps, err := c.app.Graph(cmd.Context(), t)
			if err != nil {
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(deps); err != nil {
					return zerr.Wrap(err, "failed to encode dependency graph")
				}
				return nil
			}
			return tree.New(cmd.OutOrStdout()).Render(deps)
		},
	}
	cmd.Flags().Bool("json", false, "Print the tree as JSON")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate pyproject.toml and Pipfile.lock when their inputs change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := target(cmd)
			if err != nil {
				return err
			}
			debounce, _ := cmd.Flags().GetDuration("debounce")
			return c.app.Watch(cmd.Context(), t, app.WatchOptions{Debounce: debounce})
		},
	}
	cmd.Flags().Duration("debounce", 0, "Quiet period before changes are processed (default 100ms)")
	return cmd
}
