// Package scenario executes configured growth/decay problems through the
// exponential solver, renders the worked equations and journals every
// solution.
package scenario

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/koryagin/growthdecay/config"
	"github.com/koryagin/growthdecay/internal/history"
	"github.com/koryagin/growthdecay/pkg/exponential"
)

// Runner solves scenarios one by one. The journal is optional; when nil the
// solutions are only rendered and logged.
type Runner struct {
	logger  *zap.Logger
	journal *history.WALStore
}

func NewRunner(logger *zap.Logger, journal *history.WALStore) *Runner {
	return &Runner{logger: logger, journal: journal}
}

// Run executes every scenario, stopping at the first failure.
func (r *Runner) Run(scenarios []config.Scenario) error {
	for _, sc := range scenarios {
		var err error
		switch sc.Kind {
		case config.KindGrowth:
			err = r.runGrowth(sc)
		case config.KindDecay:
			err = r.runDecay(sc)
		default:
			err = errors.Errorf("unknown kind %q", sc.Kind)
		}
		if err != nil {
			return errors.Wrapf(err, "problem %q failed", sc.Name)
		}
	}

	return nil
}

func (r *Runner) runGrowth(sc config.Scenario) error {
	rec, err := exponential.New(sc.Principal, sc.Rate, sc.Time, sc.FinalValue)
	if err != nil {
		return errors.Wrap(err, "solve")
	}

	if err := r.reportGrowth(sc.Name, growthUnknown(sc), rec); err != nil {
		return err
	}

	if sc.TargetFinalValue != nil {
		if err := rec.UpdateFinalValue(*sc.TargetFinalValue); err != nil {
			return errors.Wrap(err, "apply target final value")
		}
		if err := r.reportGrowth(sc.Name+" (target final value)", "time", rec); err != nil {
			return err
		}
	}

	if sc.TargetTime != nil {
		if err := rec.UpdateTime(*sc.TargetTime); err != nil {
			return errors.Wrap(err, "apply target time")
		}
		if err := r.reportGrowth(sc.Name+" (target time)", "final_value", rec); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) runDecay(sc config.Scenario) error {
	k, err := decayConstant(sc)
	if err != nil {
		return err
	}

	rec, err := exponential.NewRatio(sc.R0, k, sc.Time, sc.RT)
	if err != nil {
		return errors.Wrap(err, "solve")
	}

	if err := r.reportRatio(sc.Name, decayUnknown(sc), rec); err != nil {
		return err
	}

	if sc.TargetFinalValue != nil {
		if err := rec.UpdateRT(*sc.TargetFinalValue); err != nil {
			return errors.Wrap(err, "apply target ratio")
		}
		if err := r.reportRatio(sc.Name+" (target ratio)", "time", rec); err != nil {
			return err
		}
	}

	if sc.TargetTime != nil {
		if err := rec.UpdateTime(*sc.TargetTime); err != nil {
			return errors.Wrap(err, "apply target time")
		}
		if err := r.reportRatio(sc.Name+" (target time)", "rt", rec); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) reportGrowth(name, solvedFor string, rec *exponential.Record) error {
	fmt.Println(renderGrowth(name, solvedFor, rec))

	r.logger.Info("problem solved",
		zap.String("name", name),
		zap.String("kind", string(config.KindGrowth)),
		zap.String("solved_for", solvedFor),
		zap.Float64("principal", rec.Principal()),
		zap.Float64("rate", rec.Rate()),
		zap.Float64("time", rec.Time()),
		zap.Float64("final_value", rec.FinalValue()),
	)

	if r.journal == nil {
		return nil
	}

	return errors.Wrap(r.journal.Save(history.Entry{
		Name:       name,
		Kind:       string(config.KindGrowth),
		SolvedFor:  solvedFor,
		Principal:  rec.Principal(),
		Rate:       rec.Rate(),
		Time:       rec.Time(),
		FinalValue: rec.FinalValue(),
	}), "journal solution")
}

func (r *Runner) reportRatio(name, solvedFor string, rec *exponential.RatioRecord) error {
	fmt.Println(renderRatio(name, solvedFor, rec))

	r.logger.Info("problem solved",
		zap.String("name", name),
		zap.String("kind", string(config.KindDecay)),
		zap.String("solved_for", solvedFor),
		zap.Float64("r0", rec.R0()),
		zap.Float64("decay_constant", rec.DecayConstant()),
		zap.Float64("time", rec.Time()),
		zap.Float64("rt", rec.RT()),
	)

	if r.journal == nil {
		return nil
	}

	return errors.Wrap(r.journal.Save(history.Entry{
		Name:       name,
		Kind:       string(config.KindDecay),
		SolvedFor:  solvedFor,
		Principal:  rec.R0(),
		Rate:       -rec.DecayConstant(),
		Time:       rec.Time(),
		FinalValue: rec.RT(),
	}), "journal solution")
}

func decayConstant(sc config.Scenario) (float64, error) {
	switch {
	case sc.DecayConstant != nil:
		return *sc.DecayConstant, nil
	case sc.HalfLife != nil:
		k, err := exponential.DecayConstantFromHalfLife(*sc.HalfLife)
		return k, errors.Wrap(err, "derive decay constant")
	default:
		return 0, errors.New("decay problems require decay_constant or half_life")
	}
}

func growthUnknown(sc config.Scenario) string {
	switch {
	case sc.Principal == nil:
		return "principal"
	case sc.Rate == nil:
		return "rate"
	case sc.Time == nil:
		return "time"
	default:
		return "final_value"
	}
}

func decayUnknown(sc config.Scenario) string {
	switch {
	case sc.R0 == nil:
		return "r0"
	case sc.Time == nil:
		return "time"
	default:
		return "rt"
	}
}
