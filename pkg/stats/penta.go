package stats

import "math"

// Pair results indexed by the points scored in the pair, so that Penta[0]
// counts double losses and Penta[4] double wins.
const (
	LossLoss = iota
	LossDraw
	DrawDraw // win-loss or draw-draw
	WinDraw
	WinWin
)

var pentaScores = []float64{0, 0.25, 0.5, 0.75, 1}

// Penta counts the results of game pairs played from the same opening
// with swapped sides.
type Penta [5]int

func (p Penta) Pairs() int {
	return p[LossLoss] + p[LossDraw] + p[DrawDraw] + p[WinDraw] + p[WinWin]
}

func (p Penta) probabilities() ([]float64, float64) {
	n := float64(p.Pairs()) + 2.5

	probs := make([]float64, len(p))
	for i, count := range p {
		probs[i] = (float64(count) + 0.5) / n
	}

	return probs, n
}

// Elo returns the best fit elo difference for the pair results using a
// pentanomial model, with its bounds.
func (p Penta) Elo() Estimate {
	probs, n := p.probabilities()
	mu, variance := moments(probs, pentaScores)
	return estimate(mu, math.Sqrt(variance)/math.Sqrt(n))
}

// LLR returns the log-likelihood ratio comparing the fit of the two elo
// hypotheses to the pair results. It uses the normalized elo
// approximation, see http://hardy.uhasselt.be/Fishtest/support_MLE_multinomial.pdf
func (p Penta) LLR(h Hypothesis) float64 {
	probs, n := p.probabilities()
	_, variance := moments(probs, pentaScores)
	r := math.Sqrt(variance)

	r0 := deviation(probs, pentaScores, nEloToScore(h.Elo0, r))
	r1 := deviation(probs, pentaScores, nEloToScore(h.Elo1, r))
	if r0 == 0 || r1 == 0 {
		return 0
	}

	return 0.5 * n * math.Log(r0/r1)
}
