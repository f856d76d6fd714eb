package lafon

import (
	"fmt"
	"math/big"
)

// Factorial returns n! as a big integer
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("factorial of %d: %w", n, ErrDomain)
	}
	return new(big.Int).MulRange(1, int64(n)), nil
}

// Binomial returns x! / (y! (x-y)!) exactly.
//
// The numerator is reduced to the falling product over the smaller of y and
// x-y, so for Binomial(61449, 1084) only about a thousand factors are
// multiplied instead of the full 61449!.
func Binomial(x, y int) (*big.Rat, error) {
	c, err := binomialInt(x, y)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).SetInt(c), nil
}

func binomialInt(x, y int) (*big.Int, error) {
	if x < 0 || y < 0 || y > x {
		return nil, fmt.Errorf("binomial(%d, %d): %w", x, y, ErrDomain)
	}

	r := y
	if x-y < r {
		r = x - y
	}

	// x! / (x-r)!
	num := new(big.Int).MulRange(int64(x-r+1), int64(x))
	den, err := Factorial(r)
	if err != nil {
		return nil, err
	}
	return num.Quo(num, den), nil
}

// PointProbability computes Prob(X = k) exactly, where X counts occurrences
// of a word with global frequency f in a sample of size t drawn from a
// corpus of size T.
//
// Impossible outcomes (k above min(f, t), or more non-occurrences in the
// sample than the corpus holds) return exact zero.
func PointProbability(f, k, T, t int) (*big.Rat, error) {
	if err := validatePoint(f, k, T, t); err != nil {
		return nil, err
	}
	if k > MaxK(t, f) || t-k > T-f {
		return new(big.Rat), nil
	}

	hits, err := Binomial(f, k)
	if err != nil {
		return nil, err
	}
	misses, err := Binomial(T-f, t-k)
	if err != nil {
		return nil, err
	}
	total, err := Binomial(T, t)
	if err != nil {
		return nil, err
	}

	p := new(big.Rat).Mul(hits, misses)
	return p.Quo(p, total), nil
}

// exactRange walks k = 0..K over the shared denominator C(T, t). Each
// numerator C(f,k)·C(T-f,t-k) is derived from the previous one with
//
//	n(k+1) = n(k) · (f-k)(t-k) / ((k+1)(T-f-t+k+1))
//
// so the binomials are built once per range instead of once per k. Every
// division is exact. Arguments must already be validated.
func exactRange(f, K, T, t int, visit func(k int, point, cum float64)) (tail, error) {
	den, err := binomialInt(T, t)
	if err != nil {
		return tail{}, err
	}

	lo := MinK(T, f, t)
	num := new(big.Int)
	sum := new(big.Int)
	for k := 0; k <= K; k++ {
		switch {
		case k == lo:
			hits, err := binomialInt(f, k)
			if err != nil {
				return tail{}, err
			}
			misses, err := binomialInt(T-f, t-k)
			if err != nil {
				return tail{}, err
			}
			num.Mul(hits, misses)
		case k > lo:
			num.Mul(num, big.NewInt(int64(f-k+1)))
			num.Mul(num, big.NewInt(int64(t-k+1)))
			num.Quo(num, big.NewInt(int64(k)))
			num.Quo(num, big.NewInt(int64(T-f-t+k)))
		}
		sum.Add(sum, num)

		if visit != nil {
			visit(k, ratioFloat(num, den), ratioFloat(sum, den))
		}
	}

	// Prob(X >= K) = 1 - Prob(X <= K) + Prob(X = K)
	above := new(big.Int).Sub(den, sum)
	above.Add(above, num)

	return tail{
		point:   ExactProbability(new(big.Rat).SetFrac(num, den)),
		cum:     ratioFloat(sum, den),
		atLeast: ratioFloat(above, den),
	}, nil
}

// ratioFloat returns num/den as a float64 without reducing the fraction.
// The quotient carries 64 guard bits beyond the wider operand.
func ratioFloat(num, den *big.Int) float64 {
	prec := uint(max(num.BitLen(), den.BitLen(), 64) + 64)
	x := new(big.Float).SetPrec(prec).SetInt(num)
	y := new(big.Float).SetPrec(prec).SetInt(den)
	f, _ := new(big.Float).SetPrec(prec).Quo(x, y).Float64()
	return f
}

// ExactEngine serves point probabilities as reduced rationals
type ExactEngine struct{}

func (ExactEngine) Name() string { return "exact" }

func (ExactEngine) Point(f, k, T, t int) (Probability, error) {
	r, err := PointProbability(f, k, T, t)
	if err != nil {
		return Probability{}, err
	}
	return ExactProbability(r), nil
}
