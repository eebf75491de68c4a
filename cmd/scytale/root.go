package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danilovkiri/dk_go_scytale/internal/config"
	"github.com/danilovkiri/dk_go_scytale/internal/service/scytale"
	scytaleService "github.com/danilovkiri/dk_go_scytale/internal/service/scytale/v1"
)

// app carries the state shared by all subcommands.
type app struct {
	cfg        *config.Config
	transposer scytale.Transposer
	out        io.Writer
}

// newRootCmd builds the command tree. A nil transposer is replaced by the
// cipher service once configuration and flags are resolved.
func newRootCmd(transposer scytale.Transposer) *cobra.Command {
	a := &app{transposer: transposer}
	var (
		step     int
		strict   bool
		logLevel string
	)

	rootCmd := &cobra.Command{
		Use:           "scytale",
		Short:         "Scytale transposition cipher",
		Long:          "Scytale transposition cipher.\n\n" + config.Usage(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewDefaultConfiguration()
			if err != nil {
				return err
			}
			// any set flags override the environment
			flags := cmd.Flags()
			if flags.Changed("step") {
				cfg.CipherConfig.Step = step
			}
			if flags.Changed("strict") {
				cfg.CipherConfig.Strict = strict
			}
			if flags.Changed("log-level") {
				cfg.LogConfig.Level = logLevel
			}
			if err := cfg.CipherConfig.Validate(); err != nil {
				return err
			}
			if err := setupLogger(cmd.ErrOrStderr(), cfg.LogConfig); err != nil {
				return err
			}
			a.cfg = cfg
			a.out = cmd.OutOrStdout()
			if a.transposer == nil {
				service := scytaleService.NewScytaleService(cfg.CipherConfig)
				log.Debug().Bool("strict", service.Strict()).Msg("Initialized cipher service")
				a.transposer = service
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().IntVarP(&step, "step", "s", 4, "number of columns (overrides SCYTALE_STEP)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", true, "reject cipher text not divisible by step (overrides SCYTALE_STRICT)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newDemoCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setupLogger points the global zerolog logger at w so stdout only carries cipher output.
func setupLogger(w io.Writer, c *config.LogConfig) error {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return errors.Wrapf(err, "LOG_LEVEL %q", c.Level)
	}
	zerolog.SetGlobalLevel(level)
	noColor := true
	if f, ok := w.(*os.File); ok && f == os.Stderr {
		noColor = false
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).With().Timestamp().Logger()
	return nil
}
