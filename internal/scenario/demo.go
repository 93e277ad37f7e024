package scenario

import "github.com/koryagin/growthdecay/config"

// DemoProblems returns the worked problems the calculator ships with: the
// classic population, bacteria and depopulation exercises plus carbon dating
// of a sample with the carbon-14 half-life.
func DemoProblems() []config.Scenario {
	f := func(v float64) *float64 { return &v }

	return []config.Scenario{
		{
			Name:             "when does the population reach 2 million",
			Kind:             config.KindGrowth,
			Principal:        f(1_200_000),
			Rate:             f(0.025),
			Time:             f(18),
			TargetFinalValue: f(2_000_000),
		},
		{
			Name:       "how many bacteria remain after 5 hours",
			Kind:       config.KindGrowth,
			Principal:  f(5000),
			FinalValue: f(2000),
			Time:       f(3),
			TargetTime: f(5),
		},
		{
			Name:             "in what year is one person left",
			Kind:             config.KindGrowth,
			Principal:        f(1000),
			FinalValue:       f(100),
			Time:             f(50),
			TargetFinalValue: f(1),
		},
		{
			Name:     "carbon dating a sample aged 8223 years",
			Kind:     config.KindDecay,
			HalfLife: f(5730),
			R0:       f(1),
			Time:     f(8223),
		},
	}
}
