package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"log_level": "DEBUG",
		"game_settings": {
			"games_per_session": 5,
			"min_score": 10,
			"max_score": 20,
			"game_delay": 2,
			"session_interval": 600
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Game.GamesPerSession)
	assert.Equal(t, 10, cfg.Game.MinScore)
	assert.Equal(t, 20, cfg.Game.MaxScore)
	assert.Equal(t, 2*time.Second, cfg.Game.GameDelay)
	assert.Equal(t, 10*time.Minute, cfg.Game.SessionInterval)
	// Untouched keys keep their defaults.
	assert.Equal(t, "https://app.piggycell.io", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.json"))
	assert.Error(t, err)
}

func TestLoadMalformedFileIsError(t *testing.T) {
	path := writeConfig(t, `{"log_level": `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvertedScoreRange(t *testing.T) {
	path := writeConfig(t, `{"game_settings": {"min_score": 50, "max_score": 10}}`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsZeroGames(t *testing.T) {
	path := writeConfig(t, `{"game_settings": {"games_per_session": 0}}`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveSessionInterval(t *testing.T) {
	for _, interval := range []int{0, -300} {
		path := writeConfig(t, fmt.Sprintf(`{"game_settings": {"session_interval": %d}}`, interval))
		_, err := Load(path)
		assert.Error(t, err, "session_interval %d must be rejected", interval)
	}
}

func TestLoadRejectsNegativeGameDelay(t *testing.T) {
	path := writeConfig(t, `{"game_settings": {"game_delay": -1}}`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3, cfg.Game.GamesPerSession)
	assert.Equal(t, 65, cfg.Game.MinScore)
	assert.Equal(t, 100, cfg.Game.MaxScore)
	assert.Equal(t, 5*time.Minute, cfg.Game.SessionInterval)
}
