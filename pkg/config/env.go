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

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// EnvPrefix is the prefix of the environment variables read by FromEnv.
const EnvPrefix = "QUORIDOR_"

// LoadDotEnv loads the given .env files, or .env in the working directory
// if none are given, into the environment. Variables which are already set
// are not overridden. Missing files are not an error.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logrus.Debugf(".env file not found or could not be loaded: %v", err)
	}
}

// FromEnv overrides the configuration with the environment variables
// <prefix>NAME, DEPTH, MOVETIME, TC, BREADTH, SEED, JITTER and W_<weight>
// for each evaluation weight, e.g. QUORIDOR_W_PATH_DELTA. The result is
// left for Validate, since later sources may still change it.
func (config *EngineConfig) FromEnv(prefix string) error {
	if value, found := os.LookupEnv(prefix + "NAME"); found {
		config.Name = value
	}

	if value, found := os.LookupEnv(prefix + "TC"); found {
		config.TimeControl = value
	}

	ints := []struct {
		key   string
		value *int
	}{
		{"DEPTH", &config.Depth},
		{"BREADTH", &config.WallBreadth},
	}

	for _, env := range ints {
		if err := getEnvAsInt(prefix+env.key, env.value); err != nil {
			return err
		}
	}

	if value, found := os.LookupEnv(prefix + "SEED"); found {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", prefix+"SEED", err)
		}

		config.Seed = seed
	}

	if value, found := os.LookupEnv(prefix + "MOVETIME"); found {
		budget, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("config: %s must be a duration: %w", prefix+"MOVETIME", err)
		}

		config.MoveTime = budget
	}

	w := &config.Weights
	floats := []struct {
		key   string
		value *float64
	}{
		{"JITTER", &config.Jitter},

		{"W_PATH_DELTA", &w.PathDelta},
		{"W_OPPONENT_PATH", &w.OpponentPath},
		{"W_WALLS_LEFT", &w.WallsLeft},
		{"W_CENTRALITY", &w.Centrality},
		{"W_WALL_PROXIMITY", &w.WallProximity},
		{"W_IDLE_WALL", &w.IdleWall},
		{"W_WALL_LINE", &w.WallLine},
		{"W_NEAR_WIN", &w.NearWin},
		{"W_WIN", &w.Win},
		{"W_DEPTH_PENALTY", &w.DepthPenalty},

		{"W_PATH_CUT", &w.Placement.PathCut},
		{"W_PATH_PROXIMITY", &w.Placement.PathProximity},
		{"W_LINE", &w.Placement.Line},
		{"W_CENTER_DISTANCE", &w.Placement.CenterDistance},
		{"W_SELF_BLOCK", &w.Placement.SelfBlock},
	}

	for _, env := range floats {
		if err := getEnvAsFloat(prefix+env.key, env.value); err != nil {
			return err
		}
	}

	return nil
}

// getEnvAsInt stores the value of an environment variable in dst if it is
// set, returning an error if it can't be parsed.
func getEnvAsInt(key string, dst *int) error {
	value, found := os.LookupEnv(key)
	if !found {
		return nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("config: %s must be an integer: %w", key, err)
	}

	*dst = n
	return nil
}

func getEnvAsFloat(key string, dst *float64) error {
	value, found := os.LookupEnv(key)
	if !found {
		return nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("config: %s must be a number: %w", key, err)
	}

	*dst = f
	return nil
}
