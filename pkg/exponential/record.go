// Package exponential solves the exponential growth/decay identity
// Rt = R0 * e^(k*t) for whichever parameter is unknown, and keeps all four
// parameters mutually consistent through invariant-preserving updates.
package exponential

import (
	"math"

	"github.com/pkg/errors"
)

// Record is a consistent (principal, rate, time, finalValue) tuple bound by
// finalValue = principal * e^(rate*time). Exactly one field is computed at
// construction from the other three; afterwards every change goes through an
// Update method that re-solves one dependent field, so the identity holds
// after every successful call.
//
// A Record has no internal locking. Callers sharing one instance across
// goroutines must serialize Update calls themselves.
type Record struct {
	principal  float64
	rate       float64
	time       float64
	finalValue float64
}

// New builds a Record from optional inputs, exactly one of which must be nil.
// The nil field is solved from the other three. Zero or more than one nil
// argument returns ErrInvalidInput.
func New(principal, rate, time, finalValue *float64) (*Record, error) {
	missing := 0
	for _, v := range []*float64{principal, rate, time, finalValue} {
		if v == nil {
			missing++
		}
	}
	if missing != 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "%d fields unknown", missing)
	}

	switch {
	case principal == nil:
		return SolvePrincipal(*rate, *time, *finalValue)
	case rate == nil:
		return SolveRate(*principal, *time, *finalValue)
	case time == nil:
		return SolveTime(*principal, *rate, *finalValue)
	default:
		return SolveFinalValue(*principal, *rate, *time)
	}
}

// SolveFinalValue computes finalValue = principal * e^(rate*time).
func SolveFinalValue(principal, rate, time float64) (*Record, error) {
	return &Record{
		principal:  principal,
		rate:       rate,
		time:       time,
		finalValue: principal * math.Exp(rate*time),
	}, nil
}

// SolvePrincipal computes principal = finalValue / e^(rate*time).
func SolvePrincipal(rate, time, finalValue float64) (*Record, error) {
	return &Record{
		principal:  finalValue / math.Exp(rate*time),
		rate:       rate,
		time:       time,
		finalValue: finalValue,
	}, nil
}

// SolveRate computes rate = ln(finalValue/principal) / time.
// Returns ErrDomain when time is zero or the ratio is not positive.
func SolveRate(principal, time, finalValue float64) (*Record, error) {
	if time == 0 {
		return nil, errors.Wrap(ErrDomain, "solve rate: time is zero")
	}
	lr, err := logRatio(finalValue, principal)
	if err != nil {
		return nil, errors.Wrap(err, "solve rate")
	}

	return &Record{
		principal:  principal,
		rate:       lr / time,
		time:       time,
		finalValue: finalValue,
	}, nil
}

// SolveTime computes time = ln(finalValue/principal) / rate.
// Returns ErrDomain when rate is zero or the ratio is not positive.
func SolveTime(principal, rate, finalValue float64) (*Record, error) {
	if rate == 0 {
		return nil, errors.Wrap(ErrDomain, "solve time: rate is zero")
	}
	lr, err := logRatio(finalValue, principal)
	if err != nil {
		return nil, errors.Wrap(err, "solve time")
	}

	return &Record{
		principal:  principal,
		rate:       rate,
		time:       lr / rate,
		finalValue: finalValue,
	}, nil
}

// Principal returns R0.
func (r *Record) Principal() float64 { return r.principal }

// Rate returns the signed rate constant k.
func (r *Record) Rate() float64 { return r.rate }

// Time returns the elapsed time t.
func (r *Record) Time() float64 { return r.time }

// FinalValue returns Rt.
func (r *Record) FinalValue() float64 { return r.finalValue }

// UpdatePrincipal sets a new principal and re-solves the final value,
// holding rate and time fixed.
func (r *Record) UpdatePrincipal(v float64) error {
	r.principal = v
	r.finalValue = r.principal * math.Exp(r.rate*r.time)
	return nil
}

// UpdateRate sets a new rate and re-solves the final value, holding
// principal and time fixed.
func (r *Record) UpdateRate(v float64) error {
	r.rate = v
	r.finalValue = r.principal * math.Exp(r.rate*r.time)
	return nil
}

// UpdateTime sets a new time and re-solves the final value, holding
// principal and rate fixed.
func (r *Record) UpdateTime(v float64) error {
	r.time = v
	r.finalValue = r.principal * math.Exp(r.rate*r.time)
	return nil
}

// UpdateFinalValue sets a new final value and re-solves the time, holding
// principal and rate fixed. Returns ErrDomain when rate is zero or the new
// value makes the ratio non-positive; the record is left untouched on error.
func (r *Record) UpdateFinalValue(v float64) error {
	if r.rate == 0 {
		return errors.Wrap(ErrDomain, "update final value: rate is zero")
	}
	lr, err := logRatio(v, r.principal)
	if err != nil {
		return errors.Wrap(err, "update final value")
	}

	r.finalValue = v
	r.time = lr / r.rate
	return nil
}

// logRatio returns ln(numerator/denominator), rejecting non-positive ratios
// before they reach math.Log.
func logRatio(numerator, denominator float64) (float64, error) {
	if denominator == 0 {
		return 0, errors.Wrap(ErrDomain, "zero denominator in ratio")
	}
	ratio := numerator / denominator
	if ratio <= 0 {
		return 0, errors.Wrapf(ErrDomain, "logarithm of non-positive ratio %.6g", ratio)
	}
	return math.Log(ratio), nil
}
