package main

import (
	"fmt"

	"github.com/adammck/forceplate/plates"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a summary of each plate in a force plate CSV export",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := plates.LoadFile(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "frames: %d\n", s.Len())
			for _, sum := range plates.Summarize(s) {
				fmt.Fprintln(out, sum)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "csv", "", "force plate CSV export")
	cmd.MarkFlagRequired("csv")
	return cmd
}
