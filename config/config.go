package config

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Kind selects which identity a scenario uses.
type Kind string

const (
	KindGrowth Kind = "growth"
	KindDecay  Kind = "decay"
)

// Scenario describes one problem to solve. For growth scenarios exactly one
// of Principal, Rate, Time, FinalValue is nil and is solved for. For decay
// scenarios exactly one of R0, Time, RT is nil, and the decay constant comes
// from DecayConstant or is derived from HalfLife.
//
// TargetFinalValue and TargetTime are optional follow-ups applied through the
// record's update operations after the initial solve.
type Scenario struct {
	Name string
	Kind Kind

	Principal  *float64
	Rate       *float64
	Time       *float64
	FinalValue *float64

	R0            *float64
	DecayConstant *float64
	HalfLife      *float64
	RT            *float64

	TargetFinalValue *float64
	TargetTime       *float64
}

// ScenarioTmp mirrors Scenario for yaml, with numeric fields as strings so an
// omitted field is distinguishable from zero. Values are validated through
// decimal before use.
type ScenarioTmp struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	Principal  string `yaml:"principal,omitempty"`
	Rate       string `yaml:"rate,omitempty"`
	Time       string `yaml:"time,omitempty"`
	FinalValue string `yaml:"final_value,omitempty"`

	R0            string `yaml:"r0,omitempty"`
	DecayConstant string `yaml:"decay_constant,omitempty"`
	HalfLife      string `yaml:"half_life,omitempty"`
	RT            string `yaml:"rt,omitempty"`

	TargetFinalValue string `yaml:"target_final_value,omitempty"`
	TargetTime       string `yaml:"target_time,omitempty"`
}

// Get parses command-line flags. It returns the scenarios to run, or
// setup=true when the interactive wizard was requested. An empty scenario
// list with no error means no problem was specified and the caller should
// fall back to the built-in demo problems.
func Get() (scenarios []Scenario, setup bool, err error) {
	configPath := flag.String("config", "", "path to yaml problems file")
	runSetup := flag.Bool("setup", false, "run the interactive problem wizard")

	kind := flag.String("kind", "", "problem kind: growth or decay")
	principal := flag.String("principal", "", "initial value R0 (empty = solve for it)")
	rate := flag.String("rate", "", "growth/decay rate k (empty = solve for it)")
	timeFlag := flag.String("time", "", "elapsed time (empty = solve for it)")
	finalValue := flag.String("final", "", "final value Rt (empty = solve for it)")
	r0 := flag.String("r0", "", "reference ratio baseline (decay, empty = solve for it)")
	halfLife := flag.String("halflife", "", "half-life to derive the decay constant from (decay)")
	rt := flag.String("rt", "", "resulting ratio (decay, empty = solve for it)")

	flag.Parse()

	if *runSetup {
		return nil, true, nil
	}

	if *configPath != "" {
		scenarios, err = Load(*configPath)
		return scenarios, false, err
	}

	if *kind == "" {
		return nil, false, nil
	}

	sc, err := fromTmp(ScenarioTmp{
		Name:       "cli problem",
		Kind:       *kind,
		Principal:  *principal,
		Rate:       *rate,
		Time:       *timeFlag,
		FinalValue: *finalValue,
		R0:         *r0,
		HalfLife:   *halfLife,
		RT:         *rt,
	})
	if err != nil {
		return nil, false, err
	}

	return []Scenario{sc}, false, nil
}

// Load reads a yaml problems file.
func Load(path string) ([]Scenario, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read problems file %s", path)
	}

	var tmp []ScenarioTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return nil, errors.Wrapf(err, "parse problems file %s", path)
	}

	scenarios := make([]Scenario, 0, len(tmp))
	for _, t := range tmp {
		sc, err := fromTmp(t)
		if err != nil {
			return nil, errors.Wrapf(err, "problem %q", t.Name)
		}
		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}

func fromTmp(t ScenarioTmp) (Scenario, error) {
	kind := Kind(t.Kind)
	if kind != KindGrowth && kind != KindDecay {
		return Scenario{}, errors.Errorf("unknown kind %q, want %q or %q", t.Kind, KindGrowth, KindDecay)
	}

	sc := Scenario{Name: t.Name, Kind: kind}

	fields := []struct {
		raw  string
		name string
		dst  **float64
	}{
		{t.Principal, "principal", &sc.Principal},
		{t.Rate, "rate", &sc.Rate},
		{t.Time, "time", &sc.Time},
		{t.FinalValue, "final_value", &sc.FinalValue},
		{t.R0, "r0", &sc.R0},
		{t.DecayConstant, "decay_constant", &sc.DecayConstant},
		{t.HalfLife, "half_life", &sc.HalfLife},
		{t.RT, "rt", &sc.RT},
		{t.TargetFinalValue, "target_final_value", &sc.TargetFinalValue},
		{t.TargetTime, "target_time", &sc.TargetTime},
	}
	for _, f := range fields {
		v, err := parseOptional(f.raw, f.name)
		if err != nil {
			return Scenario{}, err
		}
		*f.dst = v
	}

	return sc, nil
}

func parseOptional(s, field string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s %q", field, s)
	}
	v := d.InexactFloat64()
	return &v, nil
}
