package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pipbridge/internal/app"
)

func (c *CLI) newLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Write Pipfile.lock from uv.lock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := target(cmd)
			if err != nil {
				return err
			}
			return c.app.Lock(cmd.Context(), t)
		},
	}
}

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that Pipfile.lock matches the Pipfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := target(cmd)
			if err != nil {
				return err
			}
			return c.app.Verify(cmd.Context(), t)
		},
	}
}

func (c *CLI) newLockAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock-all DIR...",
		Short: "Write Pipfile.lock in every given project directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			recursive, _ := cmd.Flags().GetBool("recursive")
			return c.app.LockAll(cmd.Context(), args, app.LockAllOptions{Jobs: jobs, Recursive: recursive})
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of projects locked in parallel (default: number of CPUs)")
	cmd.Flags().BoolP("recursive", "R", false, "Lock every project found below the given directories")
	return cmd
}
