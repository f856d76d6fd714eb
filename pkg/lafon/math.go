package lafon

import (
	"math"
)

var halfLogTwoPi = 0.5 * math.Log(2*math.Pi)

// LogFactorialApprox approximates ln(n!) with Stirling's formula
// n! ≈ sqrt(2πn) (n/e)^n. Both 0! and 1! are returned as exactly ln(1) = 0;
// negative n yields NaN.
func LogFactorialApprox(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n <= 1 {
		return 0
	}
	x := float64(n)
	return halfLogTwoPi + 0.5*math.Log(x) + x*math.Log(x) - x
}

// PointProbabilityApprox computes Prob(X = k) from Stirling log-factorials.
//
// The ratio f!(T-f)!t!(T-t)! / (T!k!(f-k)!(t-k)!(T-f-t+k)!) is assembled as
// a sum of logarithms and exponentiated once, so every intermediate stays
// small even for corpora in the millions. Accuracy follows Stirling's
// asymptotic error of roughly 1/(12n) per term; use the exact engine for
// small corpora.
func PointProbabilityApprox(f, k, T, t int) (float64, error) {
	if err := validatePoint(f, k, T, t); err != nil {
		return 0, err
	}

	hitsLeft := f - k           // occurrences outside the sample
	missesIn := t - k           // non-occurrences inside the sample
	missesLeft := T - f - t + k // non-occurrences outside the sample
	if hitsLeft < 0 || missesIn < 0 || missesLeft < 0 {
		return 0, nil
	}

	logProb := LogFactorialApprox(f) +
		LogFactorialApprox(T-f) +
		LogFactorialApprox(t) +
		LogFactorialApprox(T-t) -
		LogFactorialApprox(T) -
		LogFactorialApprox(k) -
		LogFactorialApprox(hitsLeft) -
		LogFactorialApprox(missesIn) -
		LogFactorialApprox(missesLeft)

	return math.Exp(logProb), nil
}

// ApproxEngine serves point probabilities from the log-domain approximation
type ApproxEngine struct{}

func (ApproxEngine) Name() string { return "approx" }

func (ApproxEngine) Point(f, k, T, t int) (Probability, error) {
	p, err := PointProbabilityApprox(f, k, T, t)
	if err != nil {
		return Probability{}, err
	}
	return ApproxProbability(p), nil
}
