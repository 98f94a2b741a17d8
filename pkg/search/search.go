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

// Package search implements the decision engine of the quoridor player:
// an iterative deepening alpha-beta search over copies of the board, with
// a static evaluator at its leaves and a generator which keeps only the
// most promising walls at each node.
package search

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/quoridor/pkg/board"
)

// MaxPly is the deepest a search can go.
const MaxPly = 64

// DefaultBudget is the default wall-clock budget of a single decision.
const DefaultBudget = 500 * time.Millisecond

// Engine searches for the best turn of a position.
type Engine struct {
	Evaluator
	Generator

	// Wall clock time a single decision may take. If it is not positive
	// searches run until the requested depth is complete.
	Budget time.Duration

	now func() time.Time
}

// NewEngine creates an Engine with the given weights, the default budget
// and no jitter.
func NewEngine(weights Weights) *Engine {
	return &Engine{
		Evaluator: Evaluator{Weights: weights, Jitter: NoJitter{}},
		Generator: Generator{Placement: weights.Placement, Breadth: DefaultBreadth},
		Budget:    DefaultBudget,
	}
}

// Result is the outcome of a search.
type Result struct {
	// Best turn found, Undefined if the game is over or no depth could be
	// searched at all.
	Turn  board.Turn `json:"turn"`
	Score float64    `json:"score"`

	// Deepest depth which was completely searched.
	Depth int `json:"depth"`
	Nodes int `json:"nodes"`

	Elapsed  time.Duration `json:"elapsed"`
	TimedOut bool          `json:"timed-out"`

	// Principal variation of the deepest completed depth.
	PV []board.Turn `json:"pv"`
}

// searchContext holds the state of a single decision.
type searchContext struct {
	root board.Player

	deadline    time.Time
	hasDeadline bool
	now         func() time.Time

	nodes   int
	aborted bool

	// best root turn of the current iteration and its score
	rootBest  board.Turn
	rootScore float64

	prevPV []board.Turn

	pv       [MaxPly + 1][MaxPly + 1]board.Turn
	pvLength [MaxPly + 1]int

	children [MaxPly + 1][]board.Turn
}

func (ctx *searchContext) expired() bool {
	if !ctx.aborted && ctx.hasDeadline && ctx.now().After(ctx.deadline) {
		ctx.aborted = true
	}

	return ctx.aborted
}

// ComputeTurn returns the best turn for the side to move of b, searching
// at most maxDepth plies deep. It returns the Undefined turn if the game
// is over. mem may be nil.
func (e *Engine) ComputeTurn(b board.Board, maxDepth int, mem *Memory) board.Turn {
	return e.Search(b, maxDepth, mem).Turn
}

// Search runs an iterative deepening search on b from depth one up to
// maxDepth, stopping early once the budget is spent or a forced result
// is found. The turn of the deepest fully searched depth is reported. If
// not even the first depth could be completed, the best root turn which
// was completely evaluated is reported instead.
func (e *Engine) Search(b board.Board, maxDepth int, mem *Memory) Result {
	now := e.now
	if now == nil {
		now = time.Now
	}

	start := now()

	var result Result
	if b.Outcome() != board.InProgress {
		return result
	}

	maxDepth = max(1, min(maxDepth, MaxPly))

	ctx := &searchContext{
		root:        b.SideToMove(),
		deadline:    start.Add(e.Budget),
		hasDeadline: e.Budget > 0,
		now:         now,
	}

	for ply := range ctx.children {
		ctx.children[ply] = make([]board.Turn, 0, MaxChildren)
	}

	if mem == nil {
		mem = NewMemory()
	}
	mem.Reset()

	for depth := 1; depth <= maxDepth; depth++ {
		ctx.prevPV = mem.PV
		ctx.rootBest = board.Turn{}

		score, ok := e.alphaBeta(ctx, &b, 0, depth, math.Inf(-1), math.Inf(+1), board.Turn{})
		if !ok {
			result.TimedOut = true
			logrus.WithField("depth", depth).Debug("search: out of time")
			break
		}

		pv := make([]board.Turn, ctx.pvLength[0])
		copy(pv, ctx.pv[0][:ctx.pvLength[0]])

		result.Depth = depth
		result.Score = score
		result.PV = pv
		if len(pv) > 0 {
			result.Turn = pv[0]
		}

		mem.PV = pv

		logrus.WithFields(logrus.Fields{
			"depth": depth,
			"score": score,
			"nodes": ctx.nodes,
			"turn":  result.Turn,
		}).Debug("search: depth completed")

		if e.IsForced(score) {
			break
		}
	}

	if result.Depth == 0 && !ctx.rootBest.IsUndefined() {
		result.Turn = ctx.rootBest
		result.Score = ctx.rootScore
	}

	result.Nodes = ctx.nodes
	result.Elapsed = now().Sub(start)
	mem.Last = result

	logrus.Tracef("search: %s after %d nodes in %s", result.Turn, result.Nodes, result.Elapsed)
	return result
}

// alphaBeta searches b, ply plies from the root, up to depth. The player
// to move at the root maximizes and its opponent minimizes. The second
// return value is false if the search ran out of time, in which case the
// returned score must be ignored.
func (e *Engine) alphaBeta(ctx *searchContext, b *board.Board, ply, depth int, alpha, beta float64, last board.Turn) (float64, bool) {
	ctx.nodes++
	if ctx.expired() {
		return 0, false
	}

	ctx.pvLength[ply] = 0

	if outcome := b.Outcome(); outcome != board.InProgress {
		return e.Terminal(outcome, ctx.root, ply), true
	}

	if ply >= depth {
		return e.Evaluate(b, ctx.root, last), true
	}

	var first board.Turn
	if ply < len(ctx.prevPV) {
		first = ctx.prevPV[ply]
	}

	children := e.Children(b, first, ctx.children[ply])
	ctx.children[ply] = children

	if len(children) == 0 {
		return e.Evaluate(b, ctx.root, last), true
	}

	maximizing := ply%2 == 0

	best := math.Inf(+1)
	if maximizing {
		best = math.Inf(-1)
	}

	for _, child := range children {
		next := *b
		next.ApplyTurn(child)

		score, ok := e.alphaBeta(ctx, &next, ply+1, depth, alpha, beta, child)
		if !ok {
			return 0, false
		}

		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score

			ctx.pv[ply][0] = child
			copy(ctx.pv[ply][1:], ctx.pv[ply+1][:ctx.pvLength[ply+1]])
			ctx.pvLength[ply] = ctx.pvLength[ply+1] + 1

			if ply == 0 {
				ctx.rootBest, ctx.rootScore = child, score
			}
		}

		if maximizing {
			if best >= beta {
				return best, true
			}
			alpha = max(alpha, best)
		} else {
			if best <= alpha {
				return best, true
			}
			beta = min(beta, best)
		}
	}

	return best, true
}
