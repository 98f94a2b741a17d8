package sprt

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/quoridor/pkg/common"
	"laptudirm.com/x/quoridor/pkg/config"
	"laptudirm.com/x/quoridor/pkg/match"
	"laptudirm.com/x/quoridor/pkg/stats"
)

func engine(name string, depth int) config.EngineConfig {
	engine := config.Default()
	engine.Name = name
	engine.Depth = depth
	engine.MoveTime = 0
	return engine
}

func testConfig() Config {
	return Config{
		Name:        "depth",
		Engines:     [2]config.EngineConfig{engine("deep", 2), engine("shallow", 1)},
		Rules:       match.Rules{Size: 5, Walls: 2, MaxPlies: 40},
		Concurrency: 2,
		Hypothesis:  stats.Hypothesis{Elo0: -10, Elo1: 10, Alpha: 0.05, Beta: 0.05},
		MaxPairs:    3,
		Openings:    match.OpeningConfig{RandomWalls: true, Seed: 1},
	}
}

func TestSPRT(t *testing.T) {
	old := common.Directory
	common.Directory = t.TempDir()
	t.Cleanup(func() { common.Directory = old })
	require.NoError(t, common.EnsureDirectories())

	var out bytes.Buffer

	test, err := New(testConfig())
	require.NoError(t, err)
	test.Out = &out

	verdict, err := test.Start()
	require.NoError(t, err)
	assert.Equal(t, stats.Continue, verdict)

	assert.Equal(t, 3, test.State.Penta.Pairs())
	assert.Equal(t, 6, test.State.Games())
	assert.Contains(t, out.String(), "Pair limit reached")
	assert.Contains(t, out.String(), "PENTA")

	// the saved state resumes the test
	data, err := os.ReadFile(filepath.Join(common.PausedSPRTs(), "depth"))
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, test.State, saved.State)
	assert.GreaterOrEqual(t, saved.Openings.Start, 3)
	assert.Equal(t, test.Engines, saved.Engines)

	resumed, err := Resume("depth")
	require.NoError(t, err)
	assert.Equal(t, test.State, resumed.State)

	// the pair limit covers the pairs of earlier sessions
	out.Reset()
	resumed.Out = &out
	verdict, err = resumed.Start()
	require.NoError(t, err)
	assert.Equal(t, stats.Continue, verdict)
	assert.Equal(t, 3, resumed.State.Penta.Pairs())
	assert.Contains(t, out.String(), "Pair limit reached")

	resumed.MaxPairs = 4
	_, err = resumed.Start()
	require.NoError(t, err)
	assert.Equal(t, 4, resumed.State.Penta.Pairs())

	_, err = Resume("missing")
	assert.Error(t, err)
}

func TestRecord(t *testing.T) {
	test, err := New(testConfig())
	require.NoError(t, err)

	test.record(PairResult{
		Result:  match.WinDraw,
		Matches: [2]Result{{Result: match.Win}, {Result: match.Draw}},
	})
	test.record(PairResult{
		Result:  match.DrawDraw,
		Matches: [2]Result{{Result: match.Win}, {Result: match.Loss}},
	})

	assert.Equal(t, stats.WDL{Wins: 2, Draws: 1, Losses: 1}, test.State.WDL)
	assert.Equal(t, stats.Penta{0, 0, 1, 1, 0}, test.State.Penta)

	pentaLLR := test.LLR()
	test.Legacy = true
	assert.NotEqual(t, pentaLLR, test.LLR())
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"name", func(c *Config) { c.Name = "" }},
		{"alpha", func(c *Config) { c.Alpha = 1.5 }},
		{"hypothesis", func(c *Config) { c.Elo0, c.Elo1 = 5, 0 }},
		{"engine", func(c *Config) { c.Engines[1].Jitter = -1 }},
		{"openings", func(c *Config) { c.Openings.Order = "shuffled" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := testConfig()
			test.modify(&config)

			_, err := New(config)
			assert.Error(t, err)
		})
	}

	t.Run("defaults", func(t *testing.T) {
		config := testConfig()
		config.Concurrency = 0
		config.Alpha, config.Beta = 0, 0

		test, err := New(config)
		require.NoError(t, err)
		assert.Equal(t, 1, test.Concurrency)
		assert.Equal(t, 0.05, test.Alpha)
	})
}

func TestSetupError(t *testing.T) {
	config := testConfig()
	config.Rules.Size = 4

	test, err := New(config)
	require.NoError(t, err)
	test.Out = &bytes.Buffer{}

	_, err = test.Start()
	assert.Error(t, err)
}
