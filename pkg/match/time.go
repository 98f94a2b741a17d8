package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultMovesToGo is the number of turns the remaining time is divided
// into when the time control doesn't repeat.
const DefaultMovesToGo = 30

// minBudget is the smallest budget handed to an engine, since a zero
// budget means no deadline at all.
const minBudget = time.Millisecond

// TimeControl is the game clock of a single player. The zero value is an
// unlimited clock.
type TimeControl struct {
	MovesToGo int
	Base, Inc time.Duration

	initial   time.Duration
	movesLeft int
}

var ErrTimeControl = errors.New("parse tc: invalid time control")

// ParseTime parses a time control in the movestogo/time+increment format,
// with both time and increment in seconds. The movestogo part is optional
// and the empty string is an unlimited clock.
func ParseTime(str string) (TimeControl, error) {
	var tc TimeControl
	if str == "" {
		return tc, nil
	}

	moves, clock, found := strings.Cut(str, "/")
	tc.MovesToGo = -1
	if found {
		n, err := strconv.Atoi(moves)
		if err != nil || n <= 0 {
			return TimeControl{}, fmt.Errorf("%w: bad moves to go %q", ErrTimeControl, moves)
		}

		tc.MovesToGo = n
	} else {
		clock = moves
	}

	base, inc, found := strings.Cut(clock, "+")
	if !found {
		return TimeControl{}, fmt.Errorf("%w: increment not found in %q", ErrTimeControl, str)
	}

	incs, err := strconv.ParseFloat(inc, 64)
	if err != nil || incs < 0 {
		return TimeControl{}, fmt.Errorf("%w: bad increment %q", ErrTimeControl, inc)
	}

	secs, err := strconv.ParseFloat(base, 64)
	if err != nil || secs <= 0 {
		return TimeControl{}, fmt.Errorf("%w: bad time %q", ErrTimeControl, base)
	}

	tc.Inc = time.Millisecond * time.Duration(incs*1000)
	tc.Base = time.Millisecond * time.Duration(secs*1000)
	tc.initial, tc.movesLeft = tc.Base, tc.MovesToGo
	return tc, nil
}

// IsUnlimited reports whether the clock never runs out.
func (tc *TimeControl) IsUnlimited() bool {
	return tc.Base == 0 && tc.Inc == 0
}

// Budget returns the time a player may spend on its next turn, never more
// than moveTime if it is positive.
func (tc *TimeControl) Budget(moveTime time.Duration) time.Duration {
	if tc.IsUnlimited() {
		return moveTime
	}

	movesToGo := tc.movesLeft
	if movesToGo <= 0 {
		movesToGo = DefaultMovesToGo
	}

	budget := tc.Base/time.Duration(movesToGo) + tc.Inc
	budget = min(budget, tc.Base)
	if moveTime > 0 {
		budget = min(budget, moveTime)
	}

	return max(budget, minBudget)
}

// Spend charges the clock for a turn which took elapsed. It reports false
// if the player ran out of time.
func (tc *TimeControl) Spend(elapsed time.Duration) bool {
	if tc.IsUnlimited() {
		return true
	}

	tc.Base -= elapsed
	if tc.Base < 0 {
		return false
	}

	tc.Base += tc.Inc

	if tc.movesLeft > 0 {
		tc.movesLeft--
		if tc.movesLeft == 0 {
			tc.movesLeft = tc.MovesToGo
			tc.Base += tc.initial
		}
	}

	return true
}
