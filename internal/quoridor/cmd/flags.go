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

package cmd

import (
	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/quoridor/pkg/board"
	"laptudirm.com/x/quoridor/pkg/config"
	"laptudirm.com/x/quoridor/pkg/match"
	"laptudirm.com/x/quoridor/pkg/turnlog"
)

// boardFlags registers the flags describing a fresh board.
func boardFlags(cmd *cobra.Command) {
	cmd.Flags().Int("size", match.DefaultSize, "Number of rows and columns of the board")
	cmd.Flags().Int("walls", match.DefaultWalls, "Number of walls of each player")
}

// newBoard creates a fresh board from the board flags.
func newBoard(cmd *cobra.Command) (board.Board, error) {
	size, _ := cmd.Flags().GetInt("size")
	walls, _ := cmd.Flags().GetInt("walls")
	return board.New(size, walls, board.Player0)
}

// loadBoard creates a fresh board and replays the turn log at path on it,
// if path isn't empty.
func loadBoard(cmd *cobra.Command, path string) (board.Board, *turnlog.Log, error) {
	b, err := newBoard(cmd)
	if err != nil {
		return b, nil, err
	}

	log := &turnlog.Log{}
	if path == "" {
		return b, log, nil
	}

	if log, err = turnlog.ReadFile(path); err != nil {
		return b, nil, err
	}

	err = log.Replay(&b, -1)
	return b, log, err
}

// engineFlags registers the flags configuring an engine.
func engineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "YAML file with the engine's configuration")
	cmd.Flags().String("level", "", "Difficulty level: easy, medium or hard")
	cmd.Flags().Int("depth", 0, "Maximum search depth in plies")
	cmd.Flags().Duration("move-time", 0, "Time limit of a single decision")
}

// loadEngine builds the engine configuration from, in increasing order of
// priority, the defaults or the level, the configuration file, the
// environment and the flags.
func loadEngine(cmd *cobra.Command) (config.EngineConfig, error) {
	engine := config.Default()

	if level, _ := cmd.Flags().GetString("level"); level != "" {
		var err error
		if engine, err = config.Level(level); err != nil {
			return engine, err
		}
	}

	if file, _ := cmd.Flags().GetString("config"); file != "" {
		var err error
		if engine, err = config.Load(file); err != nil {
			return engine, err
		}
	}

	config.LoadDotEnv()
	if err := engine.FromEnv(config.EnvPrefix); err != nil {
		return engine, err
	}

	if cmd.Flags().Changed("depth") {
		engine.Depth, _ = cmd.Flags().GetInt("depth")
	}

	if cmd.Flags().Changed("move-time") {
		engine.MoveTime, _ = cmd.Flags().GetDuration("move-time")
	}

	logrus.WithFields(logrus.Fields{
		"name":      engine.Name,
		"depth":     engine.Depth,
		"move-time": engine.MoveTime,
	}).Debug("engine configured")

	return engine, engine.Validate()
}

// colors returns the colorizer selected by the --no-color flag.
func colors(cmd *cobra.Command) aurora.Aurora {
	disabled, _ := cmd.Flags().GetBool("no-color")
	return aurora.NewAurora(!disabled)
}
