package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/esg-navigator/internal/catalog"
	"github.com/jonathan/esg-navigator/internal/dataset"
	"github.com/jonathan/esg-navigator/internal/logger"
	"github.com/jonathan/esg-navigator/internal/recommend"
	"github.com/jonathan/esg-navigator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswers(t *testing.T) {
	answers, err := parseAnswers([]string{"q1=compliance", "priorities=climate", "priorities = nature"})
	require.NoError(t, err)

	assert.Equal(t, "compliance", answers.Get("q1"))
	assert.Equal(t, types.AnswerValue{"climate", "nature"}, answers["priorities"])
}

func TestParseAnswers_Invalid(t *testing.T) {
	for _, pair := range []string{"compliance", "=compliance", "objective=", ""} {
		_, err := parseAnswers([]string{pair})
		assert.Error(t, err, pair)
	}
}

func TestWriteRecommendations(t *testing.T) {
	data, err := dataset.Seed()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = writeRecommendations(&buf, catalog.New(data), recommend.Default(), types.Answers{"q1": {"compliance"}})
	require.NoError(t, err)

	var recs []types.Recommendation
	require.NoError(t, json.Unmarshal(buf.Bytes(), &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "esrs", recs[0].Framework.ID)
	assert.Equal(t, 80, recs[0].Score)
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("ESG_PORT", "")
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7000\nlog:\n  level: debug\n"), 0o644))
	t.Setenv("ESG_LOG_LEVEL", "warn")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level, "environment overrides the file")
}

func TestLoadDataset_Embedded(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := loadConfig("")
	require.NoError(t, err)

	data, err := loadDataset(t.Context(), cfg, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, 6, data.Counts()[dataset.KindFramework])
}

func TestLoadDataset_MissingSeedDir(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := loadConfig("")
	require.NoError(t, err)
	cfg.Dataset.SeedDir = t.TempDir()

	_, err = loadDataset(t.Context(), cfg, logger.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load seed directory")
}
