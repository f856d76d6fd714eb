package lafon

import (
	"fmt"
	"math/big"
	"time"
)

// Compute runs Lafon's specificity test for one word in one sample.
// This is the main entry point for the lafon package.
func Compute(req Request) (*Result, error) {
	startTime := time.Now()

	req.Options = withDefaults(req.Options)

	if err := ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if req.Params.CorpusSize == 0 {
		return nil, fmt.Errorf("invalid request: %w", ValidationError{
			Field:   "corpus_size",
			Message: "must be positive",
		})
	}

	f := req.Params.GlobalFreq
	T := req.Params.CorpusSize
	t := req.Params.SampleSize
	k := req.LocalFreq
	debug := req.Options.Debug

	engine, err := SelectEngine(req.Options, req.Params)
	if err != nil {
		return nil, fmt.Errorf("engine selection failed: %w", err)
	}
	if debug {
		fmt.Printf("🔍 T=%d f=%d t=%d k=%d, using %s engine\n", T, f, t, k, engine.Name())
	}

	var visit func(k int, point, cum float64)
	if debug {
		visit = func(k int, point, cum float64) {
			fmt.Printf("  k=%d Prob(X=k)=%.12g Prob(X<=k)=%.12g\n", k, point, cum)
		}
	}

	// One pass yields Prob(X = k), Prob(X <= k) and Prob(X >= k)
	tl, err := sumRange(f, k, T, t, engine, visit)
	if err != nil {
		return nil, fmt.Errorf("cumulative probability failed: %w", err)
	}
	point, cum, atLeast := tl.point, tl.cum, tl.atLeast

	target, err := ModalTarget(f, t, T)
	if err != nil {
		return nil, err
	}
	variance, err := Variance(f, t, T)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Params:       req.Params,
		LocalFreq:    k,
		Engine:       engine.Name(),
		Point:        point,
		PointDecimal: point.Decimal(req.Options.Precision),
		Cumulative:   cum,
		Complement:   1 - cum,
		AtLeast:      atLeast,
		ModalTarget:  target,
		Variance:     variance,
		MinK:         MinK(T, f, t),
		MaxK:         MaxK(t, f),
		Specificity:  classify(k, target, cum, atLeast, req.Options.Threshold),
	}
	result.ProcessingTime = time.Since(startTime)

	if debug {
		fmt.Printf("✅ Prob(X<=k)=%.12g Prob(X>=k)=%.12g target=%s → %s\n",
			cum, atLeast, target.FloatString(4), result.Specificity)
	}

	return result, nil
}

// withDefaults fills unset option fields from DefaultOptions. A zero
// ExactLimit, Precision or Threshold counts as unset.
func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.ExactLimit == 0 {
		opts.ExactLimit = def.ExactLimit
	}
	if opts.Precision == 0 {
		opts.Precision = def.Precision
	}
	if opts.Threshold == 0 {
		opts.Threshold = def.Threshold
	}
	return opts
}

// classify compares the observed frequency against the modal target. Above
// the target the upper tail decides, below it the lower tail.
func classify(k int, target *big.Rat, cum, atLeast, threshold float64) Specificity {
	switch new(big.Rat).SetInt64(int64(k)).Cmp(target) {
	case 1:
		if atLeast < threshold {
			return SpecificityPositive
		}
	case -1:
		if cum < threshold {
			return SpecificityNegative
		}
	}
	return SpecificityBanal
}
