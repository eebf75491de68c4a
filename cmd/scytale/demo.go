package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type sample struct {
	step int
	text string
}

var demoSamples = []sample{
	{step: 4, text: "I am hurt very badly help"},
	{step: 3, text: "I am hurt very badly please send help as soon as possible, thanks very much"},
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Encode and decode the sample messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range demoSamples {
				log.Info().Int("step", s.step).Msg("Running sample")
				fmt.Fprintf(a.out, "Input: '%s'\n", s.text)
				code, err := a.transposer.Encode(s.text, s.step)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Code: %s\n", code)
				decoded, err := a.transposer.Decode(code, s.step)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Decoded: %s\n", decoded)
			}
			return nil
		},
	}
}
