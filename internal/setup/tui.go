package setup

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/koryagin/growthdecay/config"
)

const outputFile = "problems.gen.yaml"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// RunTUI launches the problem wizard and returns the path of the generated
// problems file.
func RunTUI() (string, error) {
	var (
		name    string
		kind    string
		unknown string
		confirm bool
	)

	name = "my problem"

	// step 1: kind
	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(headerStyle.Render("GROWTH & DECAY WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Describe a problem, leave one field to be solved.\n"))

	fmt.Println(stepStyle.Render("STEP 1: PROBLEM KIND"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Problem name").
				Value(&name),
			huh.NewSelect[string]().
				Title("Which identity does the problem use?").
				Options(
					huh.NewOption("Growth/decay (Rt = R0 * e^(k*t))", string(config.KindGrowth)),
					huh.NewOption("Half-life ratio (Rt = R0 * e^(-k*t))", string(config.KindDecay)),
				).
				Value(&kind),
		),
	).Run()
	if err != nil {
		return "", err
	}

	// step 2: unknown field
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("GROWTH & DECAY WIZARD"))
	fmt.Println(stepStyle.Render("STEP 2: UNKNOWN FIELD"))

	options := []huh.Option[string]{
		huh.NewOption("Final value Rt", "final_value"),
		huh.NewOption("Initial value R0", "principal"),
		huh.NewOption("Rate k", "rate"),
		huh.NewOption("Elapsed time t", "time"),
	}
	if kind == string(config.KindDecay) {
		options = []huh.Option[string]{
			huh.NewOption("Resulting ratio Rt", "rt"),
			huh.NewOption("Baseline ratio R0", "r0"),
			huh.NewOption("Elapsed time t", "time"),
		}
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which field should be solved for?").
				Options(options...).
				Value(&unknown),
		),
	).Run()
	if err != nil {
		return "", err
	}

	// step 3: known values
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("GROWTH & DECAY WIZARD"))
	fmt.Println(stepStyle.Render("STEP 3: KNOWN VALUES"))

	tmp := config.ScenarioTmp{Name: name, Kind: kind}

	var fields []huh.Field
	if kind == string(config.KindGrowth) {
		known := map[string]*string{
			"principal":   &tmp.Principal,
			"rate":        &tmp.Rate,
			"time":        &tmp.Time,
			"final_value": &tmp.FinalValue,
		}
		titles := map[string]string{
			"principal":   "Initial value R0",
			"rate":        "Rate k (negative for decay)",
			"time":        "Elapsed time t",
			"final_value": "Final value Rt",
		}
		for _, f := range []string{"principal", "rate", "time", "final_value"} {
			if f == unknown {
				continue
			}
			fields = append(fields, huh.NewInput().
				Title(titles[f]).
				Value(known[f]).
				Validate(validateNumber))
		}
	} else {
		fields = append(fields, huh.NewInput().
			Title("Half-life (decay constant is derived as ln(2)/half-life)").
			Value(&tmp.HalfLife).
			Validate(validatePositiveNumber))

		known := map[string]*string{
			"r0":   &tmp.R0,
			"time": &tmp.Time,
			"rt":   &tmp.RT,
		}
		titles := map[string]string{
			"r0":   "Baseline ratio R0",
			"time": "Elapsed time t",
			"rt":   "Resulting ratio Rt",
		}
		for _, f := range []string{"r0", "time", "rt"} {
			if f == unknown {
				continue
			}
			fields = append(fields, huh.NewInput().
				Title(titles[f]).
				Value(known[f]).
				Validate(validateNumber))
		}
	}

	err = huh.NewForm(huh.NewGroup(fields...)).Run()
	if err != nil {
		return "", err
	}

	// confirmation
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("GROWTH & DECAY WIZARD"))
	fmt.Println(stepStyle.Render("FINAL CONFIRMATION"))

	summary := fmt.Sprintf(
		"Name: %s\nKind: %s\nSolve for: %s\n",
		name, kind, unknown,
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save problem?").
				Affirmative("Yes, save and solve").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return "", err
	}

	if !confirm {
		return "", fmt.Errorf("setup cancelled by user")
	}

	data, err := yaml.Marshal([]config.ScenarioTmp{tmp})
	if err != nil {
		return "", fmt.Errorf("failed to generate yaml: %w", err)
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save problems file: %w", err)
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(fmt.Sprintf("\n✓ Problem saved to %s\nSolving...", outputFile)))
	return outputFile, nil
}

func validateNumber(s string) error {
	if _, err := decimal.NewFromString(s); err != nil {
		return fmt.Errorf("must be a valid number")
	}
	return nil
}

func validatePositiveNumber(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("must be a valid number")
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}
