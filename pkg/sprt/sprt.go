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

// Package sprt runs sequential probability ratio tests between two engine
// configurations, to find out whether a change of weights or limits makes
// the engine stronger.
package sprt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/quoridor/pkg/common"
	"laptudirm.com/x/quoridor/pkg/config"
	"laptudirm.com/x/quoridor/pkg/match"
	"laptudirm.com/x/quoridor/pkg/stats"
)

type Config struct {
	Name string `yaml:"name"`

	// The engines being compared, the first one is the one under test.
	Engines [2]config.EngineConfig `yaml:"engines"`

	Rules match.Rules `yaml:"rules"`

	// Number of game pairs that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	// Use the trinomial model on single games instead of the pentanomial
	// model on game pairs.
	Legacy bool `yaml:"legacy"`

	stats.Hypothesis `yaml:",inline"`

	// Stop after this many pairs even without a verdict, never if zero.
	MaxPairs int `yaml:"max-pairs"`

	Openings match.OpeningConfig `yaml:"openings"`

	State State `yaml:"state"`
}

// State are the results of the test so far, from the point of view of
// the engine under test.
type State struct {
	stats.WDL `yaml:",inline"`
	Penta     stats.Penta `yaml:"penta"`
}

var ErrConfig = errors.New("sprt: invalid configuration")

func New(config Config) (*SPRT, error) {
	if config.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrConfig)
	}

	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}

	if config.Alpha == 0 && config.Beta == 0 {
		config.Alpha, config.Beta = 0.05, 0.05
	}

	if config.Alpha <= 0 || config.Alpha >= 1 || config.Beta <= 0 || config.Beta >= 1 {
		return nil, fmt.Errorf("%w: error bounds must be in (0, 1)", ErrConfig)
	}

	if config.Elo0 >= config.Elo1 {
		return nil, fmt.Errorf("%w: elo0 must be less than elo1", ErrConfig)
	}

	for i := range config.Engines {
		if err := config.Engines[i].Validate(); err != nil {
			return nil, err
		}
	}

	openings, err := match.NewBook(config.Openings)
	if err != nil {
		return nil, err
	}

	return &SPRT{
		Config:   config,
		PauseDir: common.PausedSPRTs(),
		Out:      os.Stdout,
		openings: openings,
	}, nil
}

// Resume loads a paused test by name.
func Resume(name string) (*SPRT, error) {
	data, err := os.ReadFile(filepath.Join(common.PausedSPRTs(), name))
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return New(config)
}

type SPRT struct {
	Config

	// Directory the state of the test is saved in after every report.
	PauseDir string

	// Destination of the reports.
	Out io.Writer

	openings *match.OpeningBook

	// guards Config.State and number
	mu     sync.Mutex
	number int
}

// Start runs the test until a hypothesis is accepted or MaxPairs is
// reached, and returns the verdict. MaxPairs counts the pairs of every
// session of the test, so a resumed test may end without playing.
func (sprt *SPRT) Start() (stats.Verdict, error) {
	if sprt.limitReached() {
		fmt.Fprintln(sprt.Out, aurora.Yellow("Pair limit reached"))
		sprt.Report()
		return stats.Continue, nil
	}

	results := make(chan PairResult)
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < sprt.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sprt.Thread(results, done)
		}()
	}

	verdict, err := sprt.ResultHandler(results)

	// stop the threads and throw away the pairs still being played
	close(done)
	go func() {
		wg.Wait()
		close(results)
	}()

	for range results {
	}

	return verdict, err
}

func (sprt *SPRT) Thread(results chan<- PairResult, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}

		pair := sprt.PlayPair()

		select {
		case results <- pair:
		case <-done:
			return
		}
	}
}

// PlayPair plays two games from the same opening with swapped sides.
func (sprt *SPRT) PlayPair() PairResult {
	opening := sprt.openings.Next()

	var pair PairResult

	p1, p2 := 0, 1
	for game := 0; game < 2; game++ {
		g := Match{
			Config: match.Config{
				Rules:   sprt.Rules,
				Opening: opening,
				Engines: [2]config.EngineConfig{
					sprt.Engines[p1],
					sprt.Engines[p2],
				},
			},

			Number: sprt.nextNumber(),

			Player1: p1,
			Player2: p2,
		}

		result, err := sprt.RunGame(&g)
		if err != nil {
			pair.Err = err
			return pair
		}

		pair.Matches[game] = result

		p1, p2 = p2, p1
	}

	pair.Result = match.GetPairResult(
		pair.Matches[0].Result,
		pair.Matches[1].Result,
	)

	return pair
}

func (sprt *SPRT) nextNumber() int {
	sprt.mu.Lock()
	defer sprt.mu.Unlock()

	sprt.number++
	return sprt.number
}

type Match struct {
	match.Config
	Number int

	Player1, Player2 int
}

func (sprt *SPRT) RunGame(game *Match) (Result, error) {
	logrus.Infof(
		"%s Game #%d: %s vs %s (%s)",
		aurora.Yellow("Starting"),
		game.Number,
		game.Engines[0].Name,
		game.Engines[1].Name,
		aurora.Yellow(game.Opening),
	)

	played, err := match.Run(&game.Config)
	if err != nil {
		return Result{}, err
	}

	// results are kept from the point of view of the engine under test
	score := played.Result
	if game.Player2 == 0 {
		score = -score
	}

	return Result{
		Match:  game,
		Game:   played,
		Result: score,
	}, nil
}

// ResultHandler collects the pair results until the test ends.
func (sprt *SPRT) ResultHandler(results <-chan PairResult) (stats.Verdict, error) {
	resultCount := 0
	for pair := range results {
		if pair.Err != nil {
			return stats.Continue, pair.Err
		}

		sprt.record(pair)
		resultCount++

		for _, result := range pair.Matches {
			logrus.Infof(
				"%s Game #%d: %s vs %s: %s",
				aurora.Green("Finished"),
				result.Match.Number,
				result.Match.Engines[0].Name,
				result.Match.Engines[1].Name,
				result,
			)
		}

		if resultCount%5 == 0 {
			sprt.Report()
		}

		verdict := sprt.Verdict(sprt.LLR())
		switch {
		case verdict == stats.AcceptH0:
			fmt.Fprintln(sprt.Out, aurora.Red("\nH0 Accepted"))
		case verdict == stats.AcceptH1:
			fmt.Fprintln(sprt.Out, aurora.Green("\nH1 Accepted"))
		case sprt.limitReached():
			fmt.Fprintln(sprt.Out, aurora.Yellow("\nPair limit reached"))
		default:
			continue
		}

		sprt.Report()
		return verdict, nil
	}

	return stats.Continue, nil
}

func (sprt *SPRT) limitReached() bool {
	sprt.mu.Lock()
	defer sprt.mu.Unlock()

	return sprt.MaxPairs > 0 && sprt.State.Penta.Pairs() >= sprt.MaxPairs
}

func (sprt *SPRT) record(pair PairResult) {
	sprt.mu.Lock()
	defer sprt.mu.Unlock()

	sprt.State.Penta[pair.Result.Penta()]++

	for _, result := range pair.Matches {
		switch result.Result {
		case match.Win:
			sprt.State.Wins++
		case match.Loss:
			sprt.State.Losses++
		case match.Draw:
			sprt.State.Draws++
		}
	}
}

// Report prints the current state of the test and saves it so that the
// test can be restarted.
func (sprt *SPRT) Report() {
	if err := sprt.save(); err != nil {
		logrus.Warnf("could not save the state of %s: %v", sprt.Name, err)
	}

	sprt.mu.Lock()
	state := sprt.State
	sprt.mu.Unlock()

	elo := state.Elo()
	if !sprt.Legacy {
		elo = state.Penta.Elo()
	}

	lower, upper := sprt.Bounds()

	eloStr := fmt.Sprintf("║ ELO   | %.2f +- %.2f (95%%)", elo.Mu, elo.Error())
	llrStr := fmt.Sprintf("║ LLR   | %.2f (%.2f, %.2f) [%.2f, %.2f]", sprt.LLR(), lower, upper, sprt.Elo0, sprt.Elo1)
	gamStr := fmt.Sprintf("║ GAMES | N: %d W: %d L: %d D: %d", state.Games(), state.Wins, state.Losses, state.Draws)

	fmt.Fprintln(sprt.Out, "╔═════════════════════════════════════════════════╗")
	fmt.Fprintf(sprt.Out, "%-50s║\n", eloStr)
	fmt.Fprintf(sprt.Out, "%-50s║\n", llrStr)
	fmt.Fprintf(sprt.Out, "%-50s║\n", gamStr)
	if !sprt.Legacy {
		pentaStr := fmt.Sprintf(
			"║ PENTA | [%d, %d, %d, %d, %d]",
			state.Penta[stats.LossLoss], state.Penta[stats.LossDraw],
			state.Penta[stats.DrawDraw],
			state.Penta[stats.WinDraw], state.Penta[stats.WinWin],
		)
		fmt.Fprintf(sprt.Out, "%-50s║\n", pentaStr)
	}
	fmt.Fprintln(sprt.Out, "╚═════════════════════════════════════════════════╝")
}

func (sprt *SPRT) save() error {
	data, err := yaml.Marshal(sprt.Wrap())
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(sprt.PauseDir, sprt.Name), data, 0644)
}

// LLR returns the log-likelihood ratio of the results so far.
func (sprt *SPRT) LLR() float64 {
	sprt.mu.Lock()
	defer sprt.mu.Unlock()

	if sprt.Legacy {
		return sprt.State.LLR(sprt.Hypothesis)
	}

	return sprt.State.Penta.LLR(sprt.Hypothesis)
}

// Wrap returns the configuration which resumes the test.
func (sprt *SPRT) Wrap() Config {
	sprt.mu.Lock()
	defer sprt.mu.Unlock()

	config := sprt.Config
	config.Openings = sprt.openings.Wrap()
	return config
}

type PairResult struct {
	Result  match.PairResult
	Matches [2]Result

	Err error
}

type Result struct {
	Match *Match
	Game  *match.Game

	Result match.Result
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
