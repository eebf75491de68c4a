package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "encode MESSAGE...",
		Short:   "Transpose a message",
		Example: `  scytale encode --step 4 "I am hurt very badly help"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// words are joined with a space, which encoding strips anyway
			message := strings.Join(args, " ")
			code, err := a.transposer.Encode(message, a.cfg.CipherConfig.Step)
			if err != nil {
				return err
			}
			log.Debug().Int("step", a.cfg.CipherConfig.Step).Msgf("Encoded %d characters", len([]rune(message)))
			fmt.Fprintln(a.out, code)
			return nil
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "decode CIPHERTEXT",
		Short:   "Restore a transposed message",
		Long:    "Restore a transposed message. The cipher text is a single argument, quote it to keep its padding.",
		Example: `  scytale decode --step 4 "Iryyatbhmvaehedlurlp"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plain, err := a.transposer.Decode(args[0], a.cfg.CipherConfig.Step)
			if err != nil {
				return err
			}
			log.Debug().Int("step", a.cfg.CipherConfig.Step).Msgf("Decoded %d characters", len([]rune(args[0])))
			fmt.Fprintln(a.out, plain)
			return nil
		},
	}
}
