package lafon

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Engine evaluates the hypergeometric point probability with one numeric strategy
type Engine interface {
	Name() string
	Point(f, k, T, t int) (Probability, error)
}

// Probability is a point probability produced by a single engine. Exact
// engines keep the reduced rational, approximate engines a float64.
type Probability struct {
	rat   *big.Rat
	value float64
	exact bool
}

// ExactProbability wraps a rational value. The rational is copied.
func ExactProbability(r *big.Rat) Probability {
	return Probability{rat: new(big.Rat).Set(r), exact: true}
}

// ApproxProbability wraps a floating-point value
func ApproxProbability(v float64) Probability {
	return Probability{value: v}
}

// IsExact reports whether the value came from the exact engine
func (p Probability) IsExact() bool {
	return p.exact
}

// Rat returns a copy of the exact value, or false for approximate values
func (p Probability) Rat() (*big.Rat, bool) {
	if !p.exact {
		return nil, false
	}
	return new(big.Rat).Set(p.rat), true
}

// Float64 returns the nearest float64
func (p Probability) Float64() float64 {
	if p.exact {
		f, _ := p.rat.Float64()
		return f
	}
	return p.value
}

// Decimal renders the probability rounded to the given number of decimal places
func (p Probability) Decimal(places int32) decimal.Decimal {
	if p.exact {
		num := decimal.NewFromBigInt(p.rat.Num(), 0)
		den := decimal.NewFromBigInt(p.rat.Denom(), 0)
		return num.DivRound(den, places)
	}
	return decimal.NewFromFloat(p.value).Round(places)
}

func (p Probability) String() string {
	if p.exact {
		return p.rat.RatString()
	}
	return strconv.FormatFloat(p.value, 'g', -1, 64)
}

func (k EngineKind) String() string {
	switch k {
	case EngineAuto:
		return "auto"
	case EngineExact:
		return "exact"
	case EngineApprox:
		return "approx"
	default:
		return fmt.Sprintf("EngineKind(%d)", int(k))
	}
}

// ParseEngineKind converts a name like "exact" or "approx" into an EngineKind
func ParseEngineKind(name string) (EngineKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return EngineAuto, nil
	case "exact", "rational":
		return EngineExact, nil
	case "approx", "approximate", "stirling":
		return EngineApprox, nil
	default:
		return EngineAuto, ValidationError{
			Field:   "engine",
			Message: fmt.Sprintf("unknown engine '%s' (available: auto, exact, approx)", name),
		}
	}
}

// SelectEngine picks the engine serving a request. Auto mode uses the exact
// engine while min(t, T-t) fits within opts.ExactLimit. That term bounds the
// factorial range of C(T, t) and so the size of every exact numerator.
func SelectEngine(opts Options, p Params) (Engine, error) {
	switch opts.Engine {
	case EngineExact:
		return ExactEngine{}, nil
	case EngineApprox:
		return ApproxEngine{}, nil
	case EngineAuto:
		if min(p.SampleSize, p.CorpusSize-p.SampleSize) <= opts.ExactLimit {
			return ExactEngine{}, nil
		}
		return ApproxEngine{}, nil
	default:
		return nil, ValidationError{
			Field:   "options.engine",
			Message: fmt.Sprintf("unsupported engine %s", opts.Engine),
		}
	}
}
