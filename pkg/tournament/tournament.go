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

// Package tournament plays many engine configurations against each other
// and ranks them by their results.
package tournament

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/quoridor/internal/util"
	"laptudirm.com/x/quoridor/pkg/common"
	"laptudirm.com/x/quoridor/pkg/config"
	"laptudirm.com/x/quoridor/pkg/match"
	"laptudirm.com/x/quoridor/pkg/stats"
	"laptudirm.com/x/quoridor/pkg/tournament/schedule"
)

type Config struct {
	Name string `yaml:"name"`

	// The engines participating in the tournament.
	Engines []config.EngineConfig `yaml:"engines"`

	Rules match.Rules `yaml:"rules"`

	// Number of games that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	// Either round-robin or gauntlet. In a gauntlet the first engine plays
	// every other one.
	Scheduler string `yaml:"scheduler"`

	// 1 Tournament = {ROUNDS} Rounds
	// 1 Round      = {SOME_N} Encounters
	// 1 Encounter  = {GAME_P} Game Pairs
	// 1 Game Pair  = 2 Games
	Rounds    int `yaml:"rounds"`
	GamePairs int `yaml:"game-pairs"`

	// Both games of a pair start from the same opening.
	Openings match.OpeningConfig `yaml:"openings"`

	State State `yaml:"state"`
}

// State are the results of the tournament so far.
type State struct {
	// Results of every engine, in the order of Config.Engines.
	Scores []stats.WDL `yaml:"scores"`

	// Numbers of the games already played.
	Done []int `yaml:"done"`
}

var ErrConfig = errors.New("tournament: invalid configuration")

func NewTournament(config Config) (*Tournament, error) {
	if config.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrConfig)
	}

	if len(config.Engines) < 2 {
		return nil, fmt.Errorf("%w: need at least two engines", ErrConfig)
	}

	for i := range config.Engines {
		if err := config.Engines[i].Validate(); err != nil {
			return nil, err
		}
	}

	config.Concurrency = max(config.Concurrency, 1)
	config.Rounds = max(config.Rounds, 1)
	config.GamePairs = max(config.GamePairs, 1)

	switch len(config.State.Scores) {
	case 0:
		config.State.Scores = make([]stats.WDL, len(config.Engines))
	case len(config.Engines):
	default:
		return nil, fmt.Errorf("%w: %d scores for %d engines", ErrConfig, len(config.State.Scores), len(config.Engines))
	}

	scheduler, err := schedule.New(config.Scheduler)
	if err != nil {
		return nil, err
	}

	openings, err := match.NewBook(config.Openings)
	if err != nil {
		return nil, err
	}

	tour := &Tournament{
		Config:    config,
		PauseDir:  common.PausedTournaments(),
		Out:       os.Stdout,
		Progress:  os.Stderr,
		scheduler: scheduler,
		openings:  openings,
		done:      make(map[int]bool, len(config.State.Done)),
	}

	for _, number := range config.State.Done {
		tour.done[number] = true
	}

	return tour, nil
}

// Resume loads a paused tournament by name.
func Resume(name string) (*Tournament, error) {
	data, err := os.ReadFile(filepath.Join(common.PausedTournaments(), name))
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return NewTournament(config)
}

type Tournament struct {
	Config

	// Directory the state of the tournament is saved in after every report.
	PauseDir string

	// Destinations of the reports and of the progress bar.
	Out, Progress io.Writer

	scheduler schedule.Scheduler
	openings  *match.OpeningBook

	// guards Config.State and done
	mu   sync.Mutex
	done map[int]bool
}

// Total is the number of games in the whole tournament. It must not be
// called while the tournament is running.
func (tour *Tournament) Total() int {
	encounters := schedule.Encounters(tour.scheduler, len(tour.Engines))
	return tour.Rounds * len(encounters) * tour.GamePairs * 2
}

// Start plays every game which hasn't been played yet.
func (tour *Tournament) Start() error {
	total := tour.Total()

	games := make(chan *Match)
	results := make(chan Result)
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < tour.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tour.Thread(games, results, done)
		}()
	}

	go func() {
		tour.schedule(games, done)
		close(games)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	err := tour.ResultHandler(results, total)

	// on error throw away the games still being played
	close(done)
	for range results {
	}

	return err
}

// schedule generates every game of the tournament in order. The openings
// are drawn for played games too, so a resumed tournament plays the same
// games it would have played without the pause.
func (tour *Tournament) schedule(games chan<- *Match, done <-chan struct{}) {
	number := 0
	for round := 0; round < tour.Rounds; round++ {
		tour.scheduler.Initialize(len(tour.Engines))

		for encounter := 0; encounter < tour.scheduler.TotalEncounters(); encounter++ {
			p1, p2 := tour.scheduler.NextEncounter()

			for pair := 0; pair < tour.GamePairs; pair++ {
				opening := tour.openings.Next()

				for game := 0; game < 2; game++ {
					number++

					if !tour.isDone(number) {
						m := &Match{
							Config: match.Config{
								Rules:   tour.Rules,
								Opening: opening,
								Engines: [2]config.EngineConfig{
									tour.Engines[p1],
									tour.Engines[p2],
								},
							},

							Round:  round + 1,
							Number: number,

							Player1: p1,
							Player2: p2,
						}

						select {
						case games <- m:
						case <-done:
							return
						}
					}

					// Switch sides.
					p1, p2 = p2, p1
				}
			}
		}
	}
}

func (tour *Tournament) isDone(number int) bool {
	tour.mu.Lock()
	defer tour.mu.Unlock()
	return tour.done[number]
}

func (tour *Tournament) Thread(games <-chan *Match, results chan<- Result, done <-chan struct{}) {
	for game := range games {
		result := tour.RunGame(game)

		select {
		case results <- result:
		case <-done:
			return
		}
	}
}

type Match struct {
	match.Config

	Round, Number    int
	Player1, Player2 int
}

func (tour *Tournament) RunGame(game *Match) Result {
	logrus.Infof(
		"%s Round #%d Game #%d: %s vs %s (%s)",
		aurora.Yellow("Starting"),
		game.Round,
		game.Number,
		game.Engines[0].Name,
		game.Engines[1].Name,
		aurora.Yellow(game.Opening),
	)

	played, err := match.Run(&game.Config)
	return Result{Match: game, Game: played, Err: err}
}

// ResultHandler collects the results until every game has been played.
func (tour *Tournament) ResultHandler(results <-chan Result, total int) error {
	bar := util.NewBar(total, "Games", tour.Progress)
	defer bar.Close()

	tour.mu.Lock()
	bar.Goto(len(tour.State.Done))
	tour.mu.Unlock()

	resultCount := 0
	for result := range results {
		if result.Err != nil {
			return result.Err
		}

		tour.record(result)
		bar.Add(1)
		resultCount++

		logrus.Infof(
			"%s Round #%d Game #%d: %s vs %s: %s",
			aurora.Green("Finished"),
			result.Match.Round,
			result.Match.Number,
			result.Match.Engines[0].Name,
			result.Match.Engines[1].Name,
			result,
		)

		if resultCount%5 == 0 {
			tour.Report()
		}
	}

	tour.Report()
	return nil
}

func (tour *Tournament) record(result Result) {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	scores := tour.State.Scores
	p1, p2 := result.Match.Player1, result.Match.Player2

	switch result.Game.Result {
	case match.Win:
		scores[p1].Wins++
		scores[p2].Losses++
	case match.Loss:
		scores[p2].Wins++
		scores[p1].Losses++
	case match.Draw:
		scores[p1].Draws++
		scores[p2].Draws++
	}

	tour.done[result.Match.Number] = true
	tour.State.Done = append(tour.State.Done, result.Match.Number)
}

// Report prints the standings and saves the state of the tournament so
// that it can be restarted.
func (tour *Tournament) Report() {
	if err := tour.save(); err != nil {
		logrus.Warnf("could not save the state of %s: %v", tour.Name, err)
	}

	tour.mu.Lock()
	scores := slices.Clone(tour.State.Scores)
	tour.mu.Unlock()

	fmt.Fprintln(tour.Out, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(tour.Out, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(tour.Out, "╠══════════════════════════════════════════════════════════╣")
	for i, engine := range tour.Engines {
		score := scores[i]
		elo := score.Elo()

		row := fmt.Sprintf(
			"%2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d",
			i+1, engine.Name,
			elo.Mu, elo.Error(),
			score.Wins, score.Losses, score.Draws,
			score.Games(),
		)

		var value any = row
		if tour.Scheduler == schedule.GauntletName && i == 0 {
			if elo.Mu >= 0 {
				value = aurora.Green(row)
			} else {
				value = aurora.Red(row)
			}
		}

		fmt.Fprintf(tour.Out, "║ %s ║\n", value)
	}
	fmt.Fprintln(tour.Out, "╚══════════════════════════════════════════════════════════╝")
}

func (tour *Tournament) save() error {
	data, err := yaml.Marshal(tour.Wrap())
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(tour.PauseDir, tour.Name), data, 0644)
}

// Wrap returns the configuration which resumes the tournament.
func (tour *Tournament) Wrap() Config {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	config := tour.Config
	config.State = State{
		Scores: slices.Clone(tour.State.Scores),
		Done:   slices.Clone(tour.State.Done),
	}

	slices.Sort(config.State.Done)
	return config
}

type Result struct {
	Match *Match
	Game  *match.Game

	Err error
}

func (result Result) String() string {
	switch result.Game.Result {
	case match.Win:
		return fmt.Sprintf("%s wins by %s", result.Match.Engines[0].Name, result.Game.Reason)
	case match.Loss:
		return fmt.Sprintf("%s wins by %s", result.Match.Engines[1].Name, result.Game.Reason)
	case match.Draw:
		return fmt.Sprintf("Draw by %s", result.Game.Reason)
	}

	return "illegal result"
}
