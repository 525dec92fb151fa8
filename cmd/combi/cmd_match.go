package main

import (
	"fmt"

	"github.com/dhamidi/combi/fluent"
	"github.com/dhamidi/combi/format"
	"github.com/dhamidi/combi/scan"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newMatchCmd() *cobra.Command {
	var (
		startProduction string
		outputFormat    string
		compiled        bool
		recognize       bool
		trace           bool
		all             bool
	)

	cmd := &cobra.Command{
		Use:   "match <grammar> [input|-]",
		Short: "Match an input against a grammar production",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			g, err := loadGrammar(args[0], startProduction)
			if err != nil {
				return err
			}
			name, input, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			p, err := g.Parser(startProduction)
			if err != nil {
				return err
			}
			mode := "interpreted"
			if compiled || recognize {
				var opts []fluent.CompileOption
				mode = "compiled"
				if recognize {
					opts = append(opts, fluent.WithDiscard())
					mode = "recognizer"
				}
				c, err := fluent.Compile(p, opts...)
				if err != nil {
					return err
				}
				p = c
			}

			parseOpts := []fluent.Option{fluent.WithFile(name)}
			if trace {
				commonlog.SetMaxLevel(commonlog.Debug)
				parseOpts = append(parseOpts, fluent.WithTrace())
			}
			ctx := fluent.NewContext(input, parseOpts...)
			var res fluent.Result[string]
			ok := p.Parse(ctx, &res)

			m := &format.Match{
				Grammar: g.Filename,
				Start:   startProduction,
				Input:   name,
				Mode:    mode,
				Matched: ok,
			}
			if ok {
				m.From = format.PositionOf(scan.Locate(input, res.Start))
				m.To = format.PositionOf(scan.Locate(input, res.End))
				m.Text = input[res.Start:res.End]
				m.Rest = len(input) - res.End
			} else {
				at := format.PositionOf(ctx.Scanner.Cursor.Position())
				m.From, m.To = at, at
				m.Rest = len(input)
			}
			if err := enc.Encode(&format.Report{Match: m}); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if !ok {
				return &fluent.ParseError{Parser: startProduction, Filename: name, Position: ctx.Scanner.Cursor.Position()}
			}
			if all && m.Rest > 0 {
				return fmt.Errorf("%s:%s: %d bytes of trailing input", name, m.To, m.Rest)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "production to match")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&compiled, "compiled", false, "compile the recognizer before matching")
	cmd.Flags().BoolVar(&recognize, "recognize", false, "compile the recognizer without values")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every parser entry and exit")
	cmd.Flags().BoolVar(&all, "all", false, "fail unless the whole input matches")
	cmd.MarkFlagRequired("start")

	return cmd
}
