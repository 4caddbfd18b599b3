package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cipherbox/internal/app"
	"cipherbox/internal/logging"
)

var (
	home       string
	configPath string
	passphrase string
	verbose    bool

	appCtx *app.Wire
	logger *zap.Logger
)

func Execute() error {
	return execute(newRootCmd(), os.Args[1:])
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cipherbox",
		Short: "Morse, binary and Caesar text converter",
		Long: `cipherbox converts text to Morse code, 8-bit binary or a Caesar shift,
adds binary strings in 8-bit arithmetic and keeps a history of conversions.

Run without arguments to start the interactive shell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".cipherbox")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			if passphrase != "" {
				cfg.Passphrase = passphrase
			}

			logger, err = logging.New(logging.Options{
				Level:   cfg.Logging.Level,
				Format:  cfg.Logging.Format,
				Verbose: verbose,
			})
			if err != nil {
				return err
			}

			appCtx, err = app.NewWire(cfg, logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.cipherbox)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal the history file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(shellCmd(), encodeCmd(), decodeCmd(), addCmd(), historyCmd())
	return root
}
