package lafon

import (
	"fmt"
	"math/big"
)

// tail is the end of one pass over k = 0..K
type tail struct {
	point   Probability // Prob(X = K)
	cum     float64     // Prob(X <= K)
	atLeast float64     // Prob(X >= K)
}

// Cumulative computes Prob(X <= K) by summing point probabilities for
// k = 0..K in increasing order with a single engine. Exact engines are
// summed as rationals and converted to float64 once at the end.
func Cumulative(f, K, T, t int, engine Engine) (float64, error) {
	tl, err := sumRange(f, K, T, t, engine, nil)
	if err != nil {
		return 0, err
	}
	return tl.cum, nil
}

// CumulativeComplement computes Prob(X > K) as 1 - Cumulative with the same
// engine and parameters.
func CumulativeComplement(f, K, T, t int, engine Engine) (float64, error) {
	c, err := Cumulative(f, K, T, t, engine)
	if err != nil {
		return 0, err
	}
	return 1 - c, nil
}

// Distribution calls visit with Prob(X = k) and Prob(X <= k) for each k in
// 0..K. The running value is accumulated exactly as Cumulative does, so the
// last one visited equals Cumulative(f, K, T, t, engine).
func Distribution(f, K, T, t int, engine Engine, visit func(k int, point, cum float64)) error {
	_, err := sumRange(f, K, T, t, engine, visit)
	return err
}

func sumRange(f, K, T, t int, engine Engine, visit func(k int, point, cum float64)) (tail, error) {
	if engine == nil {
		return tail{}, ValidationError{Field: "engine", Message: "no engine given"}
	}
	if err := validateBound(f, K, T, t); err != nil {
		return tail{}, err
	}

	if _, ok := engine.(ExactEngine); ok {
		tl, err := exactRange(f, K, T, t, visit)
		if err != nil {
			return tail{}, fmt.Errorf("%s engine: %w", engine.Name(), err)
		}
		return tl, nil
	}

	var last Probability
	exact := false
	exactSum := new(big.Rat)
	approxSum := 0.0
	for k := 0; k <= K; k++ {
		p, err := engine.Point(f, k, T, t)
		if err != nil {
			return tail{}, fmt.Errorf("%s engine at k=%d: %w", engine.Name(), k, err)
		}
		if r, ok := p.Rat(); ok {
			exact = true
			exactSum.Add(exactSum, r)
		} else {
			approxSum += p.Float64()
		}
		last = p

		if visit != nil {
			running := approxSum
			if exact {
				running, _ = exactSum.Float64()
			}
			visit(k, p.Float64(), running)
		}
	}

	if exact {
		r, _ := last.Rat()
		above := new(big.Rat).Sub(big.NewRat(1, 1), exactSum)
		above.Add(above, r)
		cum, _ := exactSum.Float64()
		atLeast, _ := above.Float64()
		return tail{point: last, cum: cum, atLeast: atLeast}, nil
	}
	return tail{point: last, cum: approxSum, atLeast: 1 - (approxSum - last.Float64())}, nil
}
