package scenario

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/koryagin/growthdecay/pkg/exponential"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(0, 1).
			Bold(true)

	equationStyle = lipgloss.NewStyle().
			Foreground(subtle).
			MarginLeft(2)

	resultStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginLeft(2)
)

func renderGrowth(name, solvedFor string, rec *exponential.Record) string {
	equation := fmt.Sprintf(
		"Rt = R0 * e^(k*t)\nRt = %g * e^(%g * %g)",
		rec.Principal(), rec.Rate(), rec.Time(),
	)
	result := fmt.Sprintf(
		"%s solved: R0=%.4f  k=%.6f  t=%.4f  Rt=%.4f",
		solvedFor, rec.Principal(), rec.Rate(), rec.Time(), rec.FinalValue(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(name),
		equationStyle.Render(equation),
		resultStyle.Render(result),
	)
}

func renderRatio(name, solvedFor string, rec *exponential.RatioRecord) string {
	equation := fmt.Sprintf(
		"Rt = R0 * e^(-k*t)\nRt = %g * e^(-%g * %g)",
		rec.R0(), rec.DecayConstant(), rec.Time(),
	)
	result := fmt.Sprintf(
		"%s solved: R0=%.4e  k=%.4e  t=%.4f  Rt=%.4e  half-life=%.1f",
		solvedFor, rec.R0(), rec.DecayConstant(), rec.Time(), rec.RT(), rec.HalfLife(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(name),
		equationStyle.Render(equation),
		resultStyle.Render(result),
	)
}
