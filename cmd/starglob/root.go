package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"
)

const verboseFlag = "verbose"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "starglob [sub-command]",
		Short: "Match text against * wildcard patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: setupLogging,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	cmd.PersistentFlags().BoolP(verboseFlag, "v", false, "log debugging information to stderr")

	cmd.AddCommand(newMatchCmd())
	cmd.AddCommand(newExplainCmd())
	cmd.AddCommand(newDotCmd())
	return cmd
}

// setupLogging stores a logger writing to the command's stderr in the
// command context.
func setupLogging(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool(verboseFlag)
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	cmd.SetContext(slogcontext.NewCtx(cmd.Context(), logger))
	return nil
}
