package lafon

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidParameter is returned for parameters outside the model's domain
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDomain is returned when a factorial or binomial argument is undefined
	ErrDomain = errors.New("domain error")
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return ErrInvalidParameter
}

// ValidationErrors represents multiple validation errors
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (e ValidationErrors) Unwrap() error {
	return ErrInvalidParameter
}

// ValidateParams checks corpus, global frequency and sample size against each other
func ValidateParams(p Params) error {
	var errs []ValidationError

	if p.CorpusSize < 0 {
		errs = append(errs, ValidationError{
			Field:   "corpus_size",
			Message: fmt.Sprintf("must be non-negative, got %d", p.CorpusSize),
		})
	}
	if p.GlobalFreq < 0 {
		errs = append(errs, ValidationError{
			Field:   "global_freq",
			Message: fmt.Sprintf("must be non-negative, got %d", p.GlobalFreq),
		})
	} else if p.GlobalFreq > p.CorpusSize {
		errs = append(errs, ValidationError{
			Field:   "global_freq",
			Message: fmt.Sprintf("%d exceeds corpus size %d", p.GlobalFreq, p.CorpusSize),
		})
	}
	if p.SampleSize < 0 {
		errs = append(errs, ValidationError{
			Field:   "sample_size",
			Message: fmt.Sprintf("must be non-negative, got %d", p.SampleSize),
		})
	} else if p.SampleSize > p.CorpusSize {
		errs = append(errs, ValidationError{
			Field:   "sample_size",
			Message: fmt.Sprintf("%d exceeds corpus size %d", p.SampleSize, p.CorpusSize),
		})
	}

	if len(errs) > 0 {
		return ValidationErrors{Errors: errs}
	}
	return nil
}

// validatePoint checks the arguments of a point probability. A k above the
// support is allowed here: it is an impossible outcome, not a bad parameter.
func validatePoint(f, k, T, t int) error {
	if err := ValidateParams(Params{CorpusSize: T, GlobalFreq: f, SampleSize: t}); err != nil {
		return err
	}
	if k < 0 {
		return ValidationError{
			Field:   "local_freq",
			Message: fmt.Sprintf("must be non-negative, got %d", k),
		}
	}
	return nil
}

// validateBound checks a cumulative bound, which must lie inside the support
func validateBound(f, K, T, t int) error {
	if err := ValidateParams(Params{CorpusSize: T, GlobalFreq: f, SampleSize: t}); err != nil {
		return err
	}
	if K < 0 || K > MaxK(t, f) {
		return ValidationError{
			Field:   "bound",
			Message: fmt.Sprintf("%d outside support [0, %d]", K, MaxK(t, f)),
		}
	}
	return nil
}

// ValidateRequest validates a specificity request for common issues
func ValidateRequest(req Request) error {
	var errs []ValidationError

	if err := ValidateParams(req.Params); err != nil {
		var ve ValidationErrors
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		} else {
			errs = append(errs, ValidationError{Field: "params", Message: err.Error()})
		}
	}

	maxK := MaxK(req.Params.SampleSize, req.Params.GlobalFreq)
	if req.LocalFreq < 0 || req.LocalFreq > maxK {
		errs = append(errs, ValidationError{
			Field:   "local_freq",
			Message: fmt.Sprintf("%d outside support [0, %d]", req.LocalFreq, maxK),
		})
	}

	if req.Options.Threshold < 0 || req.Options.Threshold > 1 {
		errs = append(errs, ValidationError{
			Field:   "options.threshold",
			Message: fmt.Sprintf("must lie in [0, 1], got %g", req.Options.Threshold),
		})
	}
	if req.Options.ExactLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "options.exact_limit",
			Message: fmt.Sprintf("must be non-negative, got %d", req.Options.ExactLimit),
		})
	}
	if req.Options.Precision < 0 {
		errs = append(errs, ValidationError{
			Field:   "options.precision",
			Message: fmt.Sprintf("must be non-negative, got %d", req.Options.Precision),
		})
	}

	if len(errs) > 0 {
		return ValidationErrors{Errors: errs}
	}
	return nil
}
