package main

import (
	"fmt"
	"text/tabwriter"

	"crayon/internal/demo"

	"github.com/spf13/cobra"
)

func (c *cli) demoCmd() *cobra.Command {
	var (
		host hostFlags
		list bool
	)
	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Run a bundled sketch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list || len(args) == 0 {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, name := range demo.Names() {
					d, _ := demo.Lookup(name)
					fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Summary)
				}
				return tw.Flush()
			}
			rc, err := c.runConfig(host)
			if err != nil {
				return err
			}
			return demo.Run(cmd.Context(), args[0], rc, c.logger)
		},
	}
	host.register(cmd)
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List the demos")
	return cmd
}
