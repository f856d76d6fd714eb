package lafon

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Params describes the corpus and sample a word is measured against
type Params struct {
	CorpusSize int `json:"corpus_size"` // T: total token count of the corpus
	GlobalFreq int `json:"global_freq"` // f: occurrences of the word in the corpus
	SampleSize int `json:"sample_size"` // t: size of the drawn sample
}

// EngineKind selects the numeric strategy used for a request
type EngineKind int

const (
	EngineAuto EngineKind = iota
	EngineExact
	EngineApprox
)

// Specificity is the outcome of Lafon's specificity test for one word
type Specificity string

const (
	SpecificityPositive Specificity = "positive"
	SpecificityNegative Specificity = "negative"
	SpecificityBanal    Specificity = "banal"
)

// Options configures engine selection and reporting
type Options struct {
	Engine     EngineKind `json:"engine"`      // Numeric strategy (default: auto)
	ExactLimit int        `json:"exact_limit"` // Largest min(t, T-t) auto mode serves exactly (default: 10000)
	Precision  int32      `json:"precision"`   // Decimal places for rendered probabilities (default: 10)
	Threshold  float64    `json:"threshold"`   // Significance threshold for specificity (default: 0.05)
	Debug      bool       `json:"debug"`       // Enable debug output during computation
}

// Request contains everything needed to test one word in one sample
type Request struct {
	Params    Params  `json:"params"`
	LocalFreq int     `json:"local_freq"` // k: occurrences of the word in the sample
	Options   Options `json:"options"`
}

// Result contains the output of a specificity computation
type Result struct {
	Params         Params          `json:"params"`
	LocalFreq      int             `json:"local_freq"`
	Engine         string          `json:"engine"`
	Point          Probability     `json:"-"`
	PointDecimal   decimal.Decimal `json:"point"`
	Cumulative     float64         `json:"cumulative"`      // Prob(X <= k)
	Complement     float64         `json:"complement"`      // Prob(X > k)
	AtLeast        float64         `json:"at_least"`        // Prob(X >= k)
	ModalTarget    *big.Rat        `json:"modal_target"`    // f*t/T
	Variance       *big.Rat        `json:"variance"`
	MinK           int             `json:"min_k"`
	MaxK           int             `json:"max_k"`
	Specificity    Specificity     `json:"specificity"`
	ProcessingTime time.Duration   `json:"processing_time"`
}

// DefaultOptions returns default engine and reporting options
func DefaultOptions() Options {
	return Options{
		Engine:     EngineAuto, // Exact for short factorial ranges, approximate above ExactLimit
		ExactLimit: 10000,      // Exact sums over C(T, t) stay well under a second up to here
		Precision:  10,         // Decimal places for rendered probabilities
		Threshold:  0.05,       // Usual specificity threshold
		Debug:      false,
	}
}
