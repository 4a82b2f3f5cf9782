package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rubyalign/config"
	"rubyalign/furigana"
	"rubyalign/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	aligner *furigana.Aligner
}

func rootCmd() *cobra.Command {
	a := &app{}
	var (
		cfgPath  string
		envFile  string
		logLevel string
		logJSON  bool
	)
	root := &cobra.Command{
		Use:           "rubyalign",
		Short:         "Align hiragana readings with Japanese titles as furigana",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envFile != "" {
				if err := config.LoadEnv(envFile); err != nil {
					return err
				}
			}
			if cfgPath == "" {
				cfgPath = config.Path()
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg.ApplyEnv()
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-json") {
				cfg.Log.JSON = logJSON
			}
			lc := cfg.LoggerConfig()
			lc.Output = cmd.ErrOrStderr()

			a.cfg = cfg
			a.log = logger.NewLogger(lc)
			a.aligner = furigana.New(
				furigana.WithExceptions(cfg.ExceptionSegments()),
				furigana.WithLogger(a.log),
			)
			a.log.Debug("config loaded", "path", cfgPath, "format", cfg.Format, "dict", cfg.Dict)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", fmt.Sprintf("config file (default $%s or %s)", config.EnvConfigPath, config.DefaultPath))
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading config")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error, disabled")
	pf.BoolVar(&logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(
		alignCmd(a),
		chunksCmd(),
		romajiCmd(),
		batchCmd(a),
	)
	return root
}
