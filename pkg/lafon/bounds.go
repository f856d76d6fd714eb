package lafon

import (
	"math/big"
)

// MaxK returns the largest possible local frequency: a sample cannot hold
// more occurrences than its size, nor more than the corpus contains.
func MaxK(t, f int) int {
	return min(t, f)
}

// MinK returns the smallest local frequency with non-zero probability
func MinK(T, f, t int) int {
	return max(0, t+f-T)
}

// ModalTarget returns f*t/T, the expected local frequency around which the
// distribution's mode falls.
func ModalTarget(f, t, T int) (*big.Rat, error) {
	if T == 0 {
		return nil, ValidationError{Field: "corpus_size", Message: "must be positive for a modal target"}
	}
	if err := ValidateParams(Params{CorpusSize: T, GlobalFreq: f, SampleSize: t}); err != nil {
		return nil, err
	}
	ft := new(big.Int).Mul(big.NewInt(int64(f)), big.NewInt(int64(t)))
	return new(big.Rat).SetFrac(ft, big.NewInt(int64(T))), nil
}

// Variance returns t*f*(T-f)*(T-t) / (T²(T-1)). A corpus of a single token
// has zero variance.
func Variance(f, t, T int) (*big.Rat, error) {
	if T == 0 {
		return nil, ValidationError{Field: "corpus_size", Message: "must be positive for a variance"}
	}
	if err := ValidateParams(Params{CorpusSize: T, GlobalFreq: f, SampleSize: t}); err != nil {
		return nil, err
	}
	if T == 1 {
		return new(big.Rat), nil
	}

	num := big.NewInt(int64(t))
	num.Mul(num, big.NewInt(int64(f)))
	num.Mul(num, big.NewInt(int64(T-f)))
	num.Mul(num, big.NewInt(int64(T-t)))

	den := big.NewInt(int64(T))
	den.Mul(den, big.NewInt(int64(T)))
	den.Mul(den, big.NewInt(int64(T-1)))

	return new(big.Rat).SetFrac(num, den), nil
}
