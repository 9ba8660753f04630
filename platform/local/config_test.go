package local

import (
	"room-bot/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		req := require.New(t)

		cfg, err := LoadConfig()

		req.NoError(err)
		req.Equal("ding-bot", cfg.BotName)
		req.Equal([]string{"Alice", "Bruce LEE", "Carol", "Dave"}, cfg.Contacts)
		req.Equal(64, cfg.EventBuffer)
	})

	t.Run("should read the directory from the environment", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("BOT_NAME", "owner")
		t.Setenv("CONTACTS", "Zoe,Bruce LEE")

		cfg, err := LoadConfig()

		req.NoError(err)
		req.Equal("owner", cfg.BotName)
		req.Equal([]string{"Zoe", "Bruce LEE"}, cfg.Contacts)
	})

	t.Run("should reject an empty event buffer", func(t *testing.T) {
		t.Setenv("EVENT_BUFFER", "0")

		_, err := LoadConfig()

		require.ErrorIs(t, err, errors.ErrInvalidConfig)
	})
}
