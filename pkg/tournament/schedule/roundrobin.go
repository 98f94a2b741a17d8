package schedule

import "slices"

// RoundRobin pits every player against every other player using the
// circle method. With an odd number of players a phantom player is added,
// and its encounters are skipped.
type RoundRobin struct {
	playerCount int
	pairNumber  int

	circleTop, circleBottom []int
}

func (rr *RoundRobin) Initialize(n int) {
	rr.playerCount = n
	roundedTotal := n + n%2

	rr.circleTop = make([]int, roundedTotal/2)
	rr.circleBottom = make([]int, roundedTotal/2)

	for i := 0; i < roundedTotal; i++ {
		if i < roundedTotal/2 {
			rr.circleTop[i] = i
		} else {
			rr.circleBottom[roundedTotal-i-1] = i
		}
	}

	rr.pairNumber = 0
}

func (rr *RoundRobin) NextEncounter() (int, int) {
	for {
		if rr.pairNumber >= len(rr.circleTop) {
			rr.rotate()
		}

		player1 := rr.circleTop[rr.pairNumber]
		player2 := rr.circleBottom[rr.pairNumber]
		rr.pairNumber++

		if player1 < rr.playerCount && player2 < rr.playerCount {
			return player1, player2
		}
	}
}

// rotate keeps player 0 fixed and moves everyone else one seat clockwise.
func (rr *RoundRobin) rotate() {
	rr.pairNumber = 0

	lastIdx := len(rr.circleTop) - 1
	lastElem := rr.circleTop[lastIdx]

	rr.circleTop = slices.Insert(rr.circleTop, 1, rr.circleBottom[0])[:lastIdx+1]
	rr.circleBottom = append(rr.circleBottom, lastElem)[1:]
}

func (rr *RoundRobin) TotalEncounters() int {
	return rr.playerCount * (rr.playerCount - 1) / 2
}
