package exponential

import (
	"math"

	"github.com/pkg/errors"
)

// RatioRecord is the half-life variant of Record for decay problems stated
// as a ratio R0:Rt (carbon dating and similar). It is bound by
// rt = r0 * e^(-decayConstant*time), with decayConstant positive for a
// decaying quantity and always supplied (typically via
// DecayConstantFromHalfLife), never solved for.
//
// Like Record, a RatioRecord carries no internal locking; sharing one
// instance across goroutines needs caller-side serialization of updates.
type RatioRecord struct {
	r0            float64
	decayConstant float64
	time          float64
	rt            float64
}

// NewRatio builds a RatioRecord from optional inputs, exactly one of
// {r0, time, rt} being nil. The nil field is solved from the rest.
func NewRatio(r0 *float64, decayConstant float64, time, rt *float64) (*RatioRecord, error) {
	missing := 0
	for _, v := range []*float64{r0, time, rt} {
		if v == nil {
			missing++
		}
	}
	if missing != 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "%d fields unknown", missing)
	}

	switch {
	case r0 == nil:
		return SolveR0(decayConstant, *time, *rt)
	case time == nil:
		return SolveRatioTime(*r0, decayConstant, *rt)
	default:
		return SolveRT(*r0, decayConstant, *time)
	}
}

// SolveRT computes rt = r0 * e^(-decayConstant*time).
func SolveRT(r0, decayConstant, time float64) (*RatioRecord, error) {
	return &RatioRecord{
		r0:            r0,
		decayConstant: decayConstant,
		time:          time,
		rt:            r0 * math.Exp(-decayConstant*time),
	}, nil
}

// SolveR0 computes r0 = rt * e^(decayConstant*time).
func SolveR0(decayConstant, time, rt float64) (*RatioRecord, error) {
	return &RatioRecord{
		r0:            rt * math.Exp(decayConstant*time),
		decayConstant: decayConstant,
		time:          time,
		rt:            rt,
	}, nil
}

// SolveRatioTime computes time = ln(rt/r0) / (-decayConstant).
// Returns ErrDomain when the decay constant is zero or the ratio is not
// positive.
func SolveRatioTime(r0, decayConstant, rt float64) (*RatioRecord, error) {
	if decayConstant == 0 {
		return nil, errors.Wrap(ErrDomain, "solve time: decay constant is zero")
	}
	lr, err := logRatio(rt, r0)
	if err != nil {
		return nil, errors.Wrap(err, "solve time")
	}

	return &RatioRecord{
		r0:            r0,
		decayConstant: decayConstant,
		time:          lr / -decayConstant,
		rt:            rt,
	}, nil
}

// R0 returns the reference ratio baseline.
func (r *RatioRecord) R0() float64 { return r.r0 }

// DecayConstant returns k.
func (r *RatioRecord) DecayConstant() float64 { return r.decayConstant }

// Time returns the elapsed time t.
func (r *RatioRecord) Time() float64 { return r.time }

// RT returns the resulting ratio.
func (r *RatioRecord) RT() float64 { return r.rt }

// HalfLife returns ln(2)/decayConstant, the half-life implied by the decay
// constant.
func (r *RatioRecord) HalfLife() float64 { return math.Ln2 / r.decayConstant }

// UpdateR0 sets a new baseline ratio and re-solves rt, holding the decay
// constant and time fixed.
func (r *RatioRecord) UpdateR0(v float64) error {
	r.r0 = v
	r.rt = r.r0 * math.Exp(-r.decayConstant*r.time)
	return nil
}

// UpdateDecayConstant sets a new decay constant and re-solves rt, holding r0
// and time fixed.
func (r *RatioRecord) UpdateDecayConstant(v float64) error {
	r.decayConstant = v
	r.rt = r.r0 * math.Exp(-r.decayConstant*r.time)
	return nil
}

// UpdateTime sets a new time and re-solves rt, holding r0 and the decay
// constant fixed.
func (r *RatioRecord) UpdateTime(v float64) error {
	r.time = v
	r.rt = r.r0 * math.Exp(-r.decayConstant*r.time)
	return nil
}

// UpdateRT sets a new resulting ratio and re-solves the time, holding r0 and
// the decay constant fixed. Returns ErrDomain when the decay constant is zero
// or the new ratio is non-positive; the record is left untouched on error.
func (r *RatioRecord) UpdateRT(v float64) error {
	if r.decayConstant == 0 {
		return errors.Wrap(ErrDomain, "update rt: decay constant is zero")
	}
	lr, err := logRatio(v, r.r0)
	if err != nil {
		return errors.Wrap(err, "update rt")
	}

	r.rt = v
	r.time = lr / -r.decayConstant
	return nil
}

// DecayConstantFromHalfLife converts a half-life into the decay constant
// k = ln(2)/halfLife. Returns ErrDomain for a non-positive half-life.
func DecayConstantFromHalfLife(halfLife float64) (float64, error) {
	if halfLife <= 0 {
		return 0, errors.Wrapf(ErrDomain, "non-positive half-life %.6g", halfLife)
	}
	return math.Ln2 / halfLife, nil
}

// HalfLifeFromDecayConstant is the inverse helper: halfLife = ln(2)/k.
// Returns ErrDomain for a non-positive decay constant.
func HalfLifeFromDecayConstant(decayConstant float64) (float64, error) {
	if decayConstant <= 0 {
		return 0, errors.Wrapf(ErrDomain, "non-positive decay constant %.6g", decayConstant)
	}
	return math.Ln2 / decayConstant, nil
}
