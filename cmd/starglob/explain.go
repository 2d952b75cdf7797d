package main

import (
	"fmt"

	"github.com/DrJosh9000/starglob"
	"github.com/spf13/cobra"
)

func newExplainCmd() *cobra.Command {
	var ignoreCase bool
	cmd := &cobra.Command{
		Use:   "explain PATTERN...",
		Short: "Print how each pattern compiles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := starglob.Compile(arg, starglob.CaseInsensitive(ignoreCase))
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%q\t%s\n", arg, p.Describe()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compile case-insensitively")
	return cmd
}

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot PATTERN",
		Short: "Write a GraphViz digraph of the compiled pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := starglob.Compile(args[0])
			if err != nil {
				return err
			}
			return p.WriteDot(cmd.OutOrStdout())
		},
	}
}
