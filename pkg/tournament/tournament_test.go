package tournament

import (
	"bytes"
	"io"
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
		Name: "depths",
		Engines: []config.EngineConfig{
			engine("one", 1), engine("two", 2), engine("three", 3),
		},
		Rules:       match.Rules{Size: 5, Walls: 2, MaxPlies: 30},
		Concurrency: 2,
		Openings:    match.OpeningConfig{RandomWalls: true, Seed: 5},
	}
}

func tempDirectory(t *testing.T) {
	old := common.Directory
	common.Directory = t.TempDir()
	t.Cleanup(func() { common.Directory = old })
	require.NoError(t, common.EnsureDirectories())
}

func start(t *testing.T, tour *Tournament) string {
	var out bytes.Buffer
	tour.Out, tour.Progress = &out, io.Discard

	require.NoError(t, tour.Start())
	return out.String()
}

func TestTournament(t *testing.T) {
	tempDirectory(t)

	tour, err := NewTournament(testConfig())
	require.NoError(t, err)
	assert.Equal(t, 6, tour.Total())

	out := start(t, tour)
	assert.Contains(t, out, "three")

	games := 0
	for _, score := range tour.State.Scores {
		assert.Equal(t, 4, score.Games())
		games += score.Games()
	}
	assert.Equal(t, 12, games)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, tour.State.Done)

	// the saved state resumes the tournament without playing again
	data, err := os.ReadFile(filepath.Join(common.PausedTournaments(), "depths"))
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, saved.State.Done)

	resumed, err := Resume("depths")
	require.NoError(t, err)
	start(t, resumed)
	assert.Equal(t, tour.State.Scores, resumed.State.Scores)

	_, err = Resume("missing")
	assert.Error(t, err)
}

func TestResumePartial(t *testing.T) {
	tempDirectory(t)

	config := testConfig()
	config.Scheduler = "gauntlet"
	config.State = State{
		Scores: []stats.WDL{{Wins: 1}, {}, {Losses: 1}},
		Done:   []int{3},
	}

	tour, err := NewTournament(config)
	require.NoError(t, err)
	assert.Equal(t, 4, tour.Total())

	out := start(t, tour)
	assert.Contains(t, out, "one")

	assert.Len(t, tour.State.Done, 4)
	// game 3 was already played by engines one and three
	assert.Equal(t, 3+1, tour.State.Scores[0].Games())
	assert.Equal(t, 2, tour.State.Scores[1].Games())
	assert.Equal(t, 1+1, tour.State.Scores[2].Games())
	assert.Equal(t, []int{1, 2, 3, 4}, tour.Wrap().State.Done)
}

func TestRecord(t *testing.T) {
	tour, err := NewTournament(testConfig())
	require.NoError(t, err)

	tour.record(Result{
		Match: &Match{Number: 1, Player1: 2, Player2: 0},
		Game:  &match.Game{Result: match.Win},
	})
	tour.record(Result{
		Match: &Match{Number: 2, Player1: 0, Player2: 2},
		Game:  &match.Game{Result: match.Draw},
	})
	tour.record(Result{
		Match: &Match{Number: 3, Player1: 1, Player2: 0},
		Game:  &match.Game{Result: match.Loss},
	})

	assert.Equal(t, []stats.WDL{
		{Wins: 1, Draws: 1, Losses: 1},
		{Losses: 1},
		{Wins: 1, Draws: 1},
	}, tour.State.Scores)
	assert.True(t, tour.isDone(2))
	assert.False(t, tour.isDone(4))
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"name", func(c *Config) { c.Name = "" }},
		{"engines", func(c *Config) { c.Engines = c.Engines[:1] }},
		{"engine", func(c *Config) { c.Engines[2].Jitter = -1 }},
		{"scheduler", func(c *Config) { c.Scheduler = "swiss" }},
		{"scores", func(c *Config) { c.State.Scores = make([]stats.WDL, 2) }},
		{"openings", func(c *Config) { c.Openings.Order = "shuffled" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := testConfig()
			test.modify(&config)

			_, err := NewTournament(config)
			assert.Error(t, err)
		})
	}

	t.Run("defaults", func(t *testing.T) {
		config := testConfig()
		config.Concurrency = 0

		tour, err := NewTournament(config)
		require.NoError(t, err)
		assert.Equal(t, 1, tour.Concurrency)
		assert.Equal(t, 1, tour.Rounds)
		assert.Equal(t, 1, tour.GamePairs)
	})
}

func TestSetupError(t *testing.T) {
	config := testConfig()
	config.Rules.Size = 4

	tour, err := NewTournament(config)
	require.NoError(t, err)
	tour.Out, tour.Progress = io.Discard, io.Discard

	assert.Error(t, tour.Start())
}
