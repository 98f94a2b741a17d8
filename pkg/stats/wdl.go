package stats

import "math"

var wdlScores = []float64{1, 0.5, 0}

// WDL counts the results of single games from the point of view of one
// player.
type WDL struct {
	Wins   int `yaml:"wins"`
	Draws  int `yaml:"draws"`
	Losses int `yaml:"losses"`
}

func (r WDL) Games() int {
	return r.Wins + r.Draws + r.Losses
}

// probabilities returns the measured result probabilities with a
// Dirichlet([0.5, 0.5, 0.5]) prior, and the prior adjusted game count.
func (r WDL) probabilities() ([]float64, float64) {
	n := float64(r.Games()) + 1.5
	return []float64{
		(float64(r.Wins) + 0.5) / n,
		(float64(r.Draws) + 0.5) / n,
		(float64(r.Losses) + 0.5) / n,
	}, n
}

// Elo returns the likely elo difference of the player with its bounds.
func (r WDL) Elo() Estimate {
	probs, n := r.probabilities()
	mu, variance := moments(probs, wdlScores)
	return estimate(mu, math.Sqrt(variance)/math.Sqrt(n))
}

// LLR returns the log-likelihood ratio of the results for elo1 against
// elo0 using a trinomial model.
func (r WDL) LLR(h Hypothesis) float64 {
	probs, n := r.probabilities()
	_, dlo := wdlToElo(probs[0], probs[1], probs[2])

	w0, d0, l0 := eloToWDL(h.Elo0, dlo)
	w1, d1, l1 := eloToWDL(h.Elo1, dlo)

	return n * (probs[0]*math.Log(w1/w0) +
		probs[1]*math.Log(d1/d0) +
		probs[2]*math.Log(l1/l0))
}
