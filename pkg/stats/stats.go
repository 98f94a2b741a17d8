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

// Package stats implements the rating math used to compare two engine
// configurations: elo estimates with error bounds and sequential
// probability ratio tests over game and game pair results.
package stats

import (
	"fmt"
	"math"
)

// Estimate is an elo estimate with its p < 0.05 bounds.
type Estimate struct {
	Min, Mu, Max float64
}

// Error is the half width of the estimate's confidence interval.
func (e Estimate) Error() float64 {
	return (e.Max - e.Min) / 2
}

func (e Estimate) String() string {
	return fmt.Sprintf("%.2f ± %.2f", e.Mu, e.Error())
}

// Hypothesis is the pair of elo differences an SPRT decides between, with
// the type I and type II error probabilities of the test.
type Hypothesis struct {
	Elo0  float64 `yaml:"elo0"`
	Elo1  float64 `yaml:"elo1"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
}

// Bounds returns the log-likelihood ratios at which the test stops.
func (h Hypothesis) Bounds() (lower float64, upper float64) {
	lower = math.Log(h.Beta / (1 - h.Alpha))
	upper = math.Log((1 - h.Beta) / h.Alpha)
	return
}

// Verdict is the state of an SPRT.
type Verdict int

const (
	Continue Verdict = iota
	AcceptH0
	AcceptH1
)

func (v Verdict) String() string {
	switch v {
	case AcceptH0:
		return "H0 accepted"
	case AcceptH1:
		return "H1 accepted"
	default:
		return "running"
	}
}

// Verdict decides the test given the current log-likelihood ratio.
func (h Hypothesis) Verdict(llr float64) Verdict {
	lower, upper := h.Bounds()
	switch {
	case llr <= lower:
		return AcceptH0
	case llr >= upper:
		return AcceptH1
	default:
		return Continue
	}
}

func clampElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

// estimate converts a mean score and its standard deviation to elo.
func estimate(mu, sigma float64) Estimate {
	return Estimate{
		Min: clampElo(mu + phiInv(0.025)*sigma),
		Mu:  clampElo(mu),
		Max: clampElo(mu + phiInv(0.975)*sigma),
	}
}

// moments returns the mean of the given outcome scores weighted by their
// probabilities, and the variance around mean.
func moments(probs, scores []float64) (mean, variance float64) {
	for i, p := range probs {
		mean += p * scores[i]
	}

	return mean, deviation(probs, scores, mean)
}

// deviation returns the variance of the outcome scores around mu.
func deviation(probs, scores []float64, mu float64) float64 {
	var variance float64
	for i, p := range probs {
		variance += p * math.Pow(scores[i]-mu, 2)
	}

	return variance
}

// eloToWDL converts the bayesian elo to its wdl probabilities.
func eloToWDL(elo, dlo float64) (w float64, d float64, l float64) {
	w = 1 / (1 + math.Pow(10, (-elo+dlo)/400)) // win probability sigmoid
	l = 1 / (1 + math.Pow(10, (+elo+dlo)/400)) // loss probability sigmoid
	d = 1 - w - l                              // draw probability curve
	return w, d, l
}

// wdlToElo converts the wdl probabilities to its bayesian elo.
func wdlToElo(w, d, l float64) (elo float64, dlo float64) {
	elo = 200 * math.Log10((w/l)*((1-l)/(1-w)))
	dlo = 200 * math.Log10(((1-l)/l)*((1-w)/w))
	return elo, dlo
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

func nEloToScore(nelo, r float64) float64 {
	return nelo*math.Sqrt2*r/(800/math.Ln10) + 0.5
}
