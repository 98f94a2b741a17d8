// Package schedule decides which engines of a tournament meet, and in
// which order.
package schedule

import (
	"errors"
	"fmt"
)

// Names of the available schedulers. An empty name selects RoundRobinName.
const (
	RoundRobinName = "round-robin"
	GauntletName   = "gauntlet"
)

var ErrScheduler = errors.New("schedule: unknown scheduler")

// New returns a fresh scheduler of the named kind.
func New(name string) (Scheduler, error) {
	switch name {
	case RoundRobinName, "":
		return &RoundRobin{}, nil
	case GauntletName:
		return &Gauntlet{}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrScheduler, name)
	}
}

// Scheduler generates the encounters of a single round between n players.
// An encounter is a pair of player indices. Initialize starts a new round.
type Scheduler interface {
	Initialize(n int)
	NextEncounter() (int, int)
	TotalEncounters() int
}

// Encounters lists every encounter of a round between n players.
func Encounters(s Scheduler, n int) [][2]int {
	s.Initialize(n)

	list := make([][2]int, 0, s.TotalEncounters())
	for i := 0; i < s.TotalEncounters(); i++ {
		p1, p2 := s.NextEncounter()
		list = append(list, [2]int{p1, p2})
	}

	return list
}
