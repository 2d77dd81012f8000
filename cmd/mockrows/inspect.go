package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <fixture>",
		Short: "Show the columns and row count of a fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := a.load(args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "POS\tNAME\tTYPE\tCODE\tFAMILY")
			for _, c := range rs.Columns() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", c.Position, c.Name, c.Type, c.Type.Code(), c.Type.Family())
			}
			if err := w.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d rows\n", rs.Len())
			return err
		},
	}
}
