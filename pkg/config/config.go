// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config describes how an automated player is set up: its search
// limits, its heuristic weights and its source of randomness.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/quoridor/pkg/search"
)

// EngineConfig is the configuration of a single automated player.
type EngineConfig struct {
	Name string `yaml:"name"`

	// Maximum search depth in plies, search.MaxPly if not positive.
	Depth int `yaml:"depth"`

	// Wall clock budget of a single decision, unlimited if not positive.
	// At least one of Depth and MoveTime must limit the search.
	MoveTime time.Duration `yaml:"move-time"`

	// Game clock in the moves/base+increment format, seconds. Only used
	// by matches.
	TimeControl string `yaml:"tc"`

	// Number of wall candidates searched at each node.
	WallBreadth int `yaml:"wall-breadth"`

	Seed   int64   `yaml:"seed"`
	Jitter float64 `yaml:"jitter"`

	Weights search.Weights `yaml:"weights"`
}

// Default returns the configuration used when nothing is specified.
func Default() EngineConfig {
	return EngineConfig{
		Name:        "quoridor",
		MoveTime:    search.DefaultBudget,
		WallBreadth: search.DefaultBreadth,
		Weights:     search.DefaultWeights(),
	}
}

// UnmarshalYAML fills the fields missing from the document with their
// default values.
func (config *EngineConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain EngineConfig

	defaults := plain(Default())
	if err := node.Decode(&defaults); err != nil {
		return err
	}

	*config = EngineConfig(defaults)
	return nil
}

var (
	ErrInvalid      = errors.New("config: invalid engine configuration")
	ErrUnknownLevel = errors.New("config: unknown level")
)

// Validate checks the configuration for values no engine can work with.
func (config *EngineConfig) Validate() error {
	switch {
	case config.Depth > search.MaxPly:
		return fmt.Errorf("%w: depth %d is more than %d", ErrInvalid, config.Depth, search.MaxPly)
	case config.WallBreadth > search.MaxBreadth:
		return fmt.Errorf("%w: wall breadth %d is more than %d", ErrInvalid, config.WallBreadth, search.MaxBreadth)
	case config.Depth <= 0 && config.MoveTime <= 0:
		return fmt.Errorf("%w: neither a depth nor a move time limits the search", ErrInvalid)
	case config.Jitter < 0:
		return fmt.Errorf("%w: negative jitter", ErrInvalid)
	case config.Weights.NearWin >= config.Weights.Forced():
		return fmt.Errorf(
			"%w: near win weight %g is not below the forced score %g",
			ErrInvalid, config.Weights.NearWin, config.Weights.Forced(),
		)
	}

	return nil
}

// MaxDepth returns the depth limit of the engine's searches.
func (config *EngineConfig) MaxDepth() int {
	if config.Depth <= 0 {
		return search.MaxPly
	}

	return config.Depth
}

// Engine creates a search engine with the configuration. Each call returns
// a new engine with its own jitter source.
func (config *EngineConfig) Engine() *search.Engine {
	engine := search.NewEngine(config.Weights)
	engine.Budget = config.MoveTime
	engine.Breadth = config.WallBreadth
	engine.Jitter = search.NewJitter(config.Seed, config.Jitter)
	return engine
}

// Levels are the difficulty presets of the interactive game, as search
// depths.
var Levels = map[string]int{
	"easy":   2,
	"medium": 3,
	"hard":   5,
}

// Level returns the default configuration searching to the depth of the
// named difficulty level, without a time limit.
func Level(name string) (EngineConfig, error) {
	depth, found := Levels[name]
	if !found {
		names := make([]string, 0, len(Levels))
		for level := range Levels {
			names = append(names, level)
		}
		sort.Strings(names)

		return EngineConfig{}, fmt.Errorf("%w %q, want one of %v", ErrUnknownLevel, name, names)
	}

	config := Default()
	config.Name = name
	config.Depth = depth
	config.MoveTime = 0
	return config, nil
}

// Load reads an engine configuration from a YAML file.
func Load(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return EngineConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return config, config.Validate()
}
