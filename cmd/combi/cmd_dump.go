package main

import (
	"fmt"

	"github.com/dhamidi/combi/fluent"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var startProduction string
	var recognize bool

	cmd := &cobra.Command{
		Use:   "dump <grammar>",
		Short: "Print the compiled routine of a grammar production",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(args[0], startProduction)
			if err != nil {
				return err
			}
			p, err := g.Parser(startProduction)
			if err != nil {
				return err
			}
			var opts []fluent.CompileOption
			if recognize {
				opts = append(opts, fluent.WithDiscard())
			}
			c, err := fluent.Compile(p, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, c.Listing())
			st := c.Routine().Stats()
			fmt.Fprintf(out, "\n# %d statements, %d guards, %d calls, %d subroutines\n",
				st.Statements, st.Guards, st.Calls, len(c.Subroutines()))
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "production to compile")
	cmd.Flags().BoolVar(&recognize, "recognize", false, "compile without values")
	cmd.MarkFlagRequired("start")

	return cmd
}
