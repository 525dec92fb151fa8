package main

import (
	"fmt"

	"github.com/dhamidi/combi/format"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokens <grammar> [input|-]",
		Short: "Split an input into the tokens of a grammar's lexical productions",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			g, err := loadGrammar(args[0], "")
			if err != nil {
				return err
			}
			lexicon, err := g.Lexicon()
			if err != nil {
				return err
			}
			name, input, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			tokens, err := lexicon.NewLexer(input, name).Tokenize()
			if err != nil {
				return err
			}
			report := &format.Report{Tokens: make([]format.Token, 0, len(tokens))}
			for _, tok := range tokens {
				report.Tokens = append(report.Tokens, format.Token{
					Kind:     tok.Kind,
					Text:     tok.Text,
					Position: format.PositionOf(tok.Position),
				})
			}
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json, yaml)")

	return cmd
}
