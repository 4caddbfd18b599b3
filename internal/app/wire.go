package app

import (
	"io"

	"go.uber.org/zap"

	"cipherbox/internal/adder"
	"cipherbox/internal/domain"
	"cipherbox/internal/logging"
	convertsvc "cipherbox/internal/services/convert"
	historysvc "cipherbox/internal/services/history"
	"cipherbox/internal/shell"
	"cipherbox/internal/store"
)

// Wire bundles all stores, services, and helpers for the CLI.
type Wire struct {
	Config       *Config
	Logger       *zap.Logger
	HistoryStore domain.HistoryStore
	History      domain.HistoryService
	Convert      domain.ConversionService
	Adder        domain.Adder
	Animation    *shell.Animation
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config, logger *zap.Logger) (*Wire, error) {
	logger = logging.OrNop(logger)

	// The passphrase decides between plain and sealed history.
	var hs domain.HistoryStore
	if cfg.Passphrase != "" {
		hs = store.NewSealedHistoryFileStore(cfg.HistoryPath(), cfg.Passphrase)
	} else {
		hs = store.NewHistoryFileStore(cfg.HistoryPath())
	}
	logger.Debug("history store selected",
		zap.String("path", cfg.HistoryPath()),
		zap.Bool("sealed", cfg.Passphrase != ""))

	var anim *shell.Animation
	if cfg.Animation.Enabled {
		anim = shell.NewAnimation(cfg.Animation.Frames, cfg.Animation.Delay, cfg.Animation.Color)
	}

	return &Wire{
		Config:       cfg,
		Logger:       logger,
		HistoryStore: hs,
		History:      historysvc.New(hs, logger.Named("history")),
		Convert:      convertsvc.New(convertsvc.Options{MorseStrict: cfg.Morse.Strict}, logger.Named("convert")),
		Adder:        adder.New(),
		Animation:    anim,
	}, nil
}

// Shell returns an interactive shell reading in and writing out.
func (w *Wire) Shell(in io.Reader, out io.Writer) *shell.Shell {
	return shell.New(in, out, w.Convert, w.History, w.Adder, w.Animation, w.Logger.Named("shell"))
}
