package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherbox/internal/app"
	"cipherbox/internal/store"
)

func TestNewWire_PlainHistory(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())
	w, err := app.NewWire(cfg, nil)
	require.NoError(t, err)

	_, ok := w.HistoryStore.(*store.HistoryFileStore)
	assert.True(t, ok, "want plain store, got %T", w.HistoryStore)
	assert.NotNil(t, w.Animation)
	assert.NotNil(t, w.Shell(nil, nil))
}

func TestNewWire_SealedHistoryAndNoAnimation(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())
	cfg.Passphrase = "pw"
	cfg.Animation.Enabled = false

	w, err := app.NewWire(cfg, nil)
	require.NoError(t, err)

	_, ok := w.HistoryStore.(*store.SealedHistoryFileStore)
	assert.True(t, ok, "want sealed store, got %T", w.HistoryStore)
	assert.Nil(t, w.Animation)
}
