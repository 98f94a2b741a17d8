package match

import (
	"laptudirm.com/x/quoridor/pkg/board"
	"laptudirm.com/x/quoridor/pkg/stats"
)

// PairResult represents the result of a single game pair.
type PairResult int

const (
	WinWin   = PairResult(Win + Win)   // Player 1 Double kills
	WinDraw  = PairResult(Win + Draw)  // Player 1 Wins and Holds
	DrawDraw = PairResult(Draw + Draw) // Win-Loss or Draw-Draw
	DrawLoss = PairResult(Draw + Loss) // Player 2 Wins and Holds
	LossLoss = PairResult(Loss + Loss) // Player 2 Double kills
)

// GetPairResult returns the PairResult given the Result of each game in the
// pair, both from the point of view of player 1 of the pair.
func GetPairResult(result1, result2 Result) PairResult {
	return PairResult(result1 + result2)
}

// Penta returns the index of the pair result in a stats.Penta.
func (pair PairResult) Penta() int {
	return int(pair-LossLoss) + stats.LossLoss
}

// Result represents the result of a single game from the point of view of
// the engine playing player 0.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// GameLostBy maps the losing player to the game's Result.
var GameLostBy = [2]Result{
	board.Player0: Loss,
	board.Player1: Win,
}

// ResultOf converts the outcome of a finished game to a Result.
func ResultOf(outcome board.Outcome) Result {
	switch outcome {
	case board.Player0Won:
		return Win
	case board.Player1Won:
		return Loss
	default:
		return Draw
	}
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}
