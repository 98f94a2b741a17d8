// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package match plays games between two engine configurations.
package match

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/quoridor/pkg/board"
	"laptudirm.com/x/quoridor/pkg/config"
	"laptudirm.com/x/quoridor/pkg/search"
	"laptudirm.com/x/quoridor/pkg/turnlog"
)

const (
	DefaultSize     = 9
	DefaultWalls    = 10
	DefaultMaxPlies = 200
)

// Rules are the settings shared by every game of a series.
type Rules struct {
	Size  int `yaml:"size"`
	Walls int `yaml:"walls"`

	// A game still in progress after this many plies is adjudicated as a
	// draw, since tokens can shuffle back and forth forever.
	MaxPlies int `yaml:"max-plies"`

	// Directory to save the log of every game in, none if empty.
	GamesDir string `yaml:"games-dir"`
}

func (rules Rules) withDefaults() Rules {
	if rules.Size == 0 {
		rules.Size = DefaultSize
	}

	if rules.Walls == 0 {
		rules.Walls = DefaultWalls
	}

	if rules.MaxPlies <= 0 {
		rules.MaxPlies = DefaultMaxPlies
	}

	return rules
}

// Config is the configuration of a single game. Engines[0] plays player 0,
// which moves first.
type Config struct {
	Rules
	Opening Opening

	Engines [2]config.EngineConfig
}

// Game is a finished game.
type Game struct {
	ID uuid.UUID

	Result Result
	Reason string

	Plies int
	Log   *turnlog.Log
}

// Run plays a game between the two engines of the configuration. The
// error is only non-nil if the game couldn't be set up.
func Run(config *Config) (*Game, error) {
	rules := config.Rules.withDefaults()

	b, err := board.New(rules.Size, rules.Walls, board.Player0)
	if err != nil {
		return nil, err
	}

	if err := config.Opening.Setup(&b); err != nil {
		return nil, err
	}

	game := &Game{
		ID:  uuid.New(),
		Log: &turnlog.Log{},
	}

	game.Result, game.Reason = play(config, rules, &b, game.Log)
	game.Plies = len(game.Log.Entries)

	if rules.GamesDir != "" {
		path := filepath.Join(rules.GamesDir, game.ID.String()+".log")
		if err := game.Log.WriteFile(path); err != nil {
			logrus.Warnf("could not save game %s: %v", game.ID, err)
		}
	}

	return game, nil
}

func play(config *Config, rules Rules, b *board.Board, log *turnlog.Log) (Result, string) {
	var (
		engines  [2]*search.Engine
		memories [2]*search.Memory
		clocks   [2]TimeControl
	)

	for i := range config.Engines {
		var err error
		if clocks[i], err = ParseTime(config.Engines[i].TimeControl); err != nil {
			return GameLostBy[i], err.Error()
		}

		engines[i] = config.Engines[i].Engine()
		memories[i] = search.NewMemory()
	}

	for ply := 0; b.Outcome() == board.InProgress; ply++ {
		if ply >= rules.MaxPlies {
			return Draw, "move limit"
		}

		mover := b.SideToMove()
		engine, clock := engines[mover], &clocks[mover]

		engine.Budget = clock.Budget(config.Engines[mover].MoveTime)

		start := time.Now()
		turn := engine.ComputeTurn(*b, config.Engines[mover].MaxDepth(), memories[mover])
		if !clock.Spend(time.Since(start)) {
			return GameLostBy[mover], "time forfeit"
		}

		logrus.WithFields(logrus.Fields{
			"player": mover,
			"turn":   turn,
			"score":  memories[mover].Last.Score,
			"depth":  memories[mover].Last.Depth,
		}).Trace("engine played")

		switch {
		case turn.IsUndefined():
			return GameLostBy[mover], "no turn"
		case !b.Legal(turn):
			return GameLostBy[mover], fmt.Sprintf("illegal turn %s", turn)
		}

		b.ApplyTurn(turn)
		log.Append(mover, turn, turnlog.EngineVsEngine)
	}

	if b.Outcome() == board.Abandoned {
		return Draw, "abandonment"
	}

	return ResultOf(b.Outcome()), "reaching the goal"
}
