// Command growthdecay solves exponential growth and decay problems of the
// form Rt = R0 * e^(k*t), given any three of the four parameters.
//
// Usage:
//
//	growthdecay                          (runs the built-in demo problems)
//	growthdecay --config problems.yaml   (runs problems from a yaml file)
//	growthdecay --setup                  (interactive problem wizard)
//	growthdecay --kind growth --principal 1200000 --rate 0.025 --time 18
//
// Every solved problem is appended to a journal under ./wal/solutions.
package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/koryagin/growthdecay/config"
	"github.com/koryagin/growthdecay/internal/history"
	"github.com/koryagin/growthdecay/internal/scenario"
	"github.com/koryagin/growthdecay/internal/setup"
)

func main() {
	scenarios, runSetup, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	if runSetup {
		path, err := setup.RunTUI()
		if err != nil {
			log.Fatal(err)
		}
		scenarios, err = config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(scenarios) == 0 {
		scenarios = scenario.DemoProblems()
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	journal, err := history.NewWALStore(history.DefaultDir)
	if err != nil {
		log.Fatal(err)
	}
	defer journal.Close()

	runner := scenario.NewRunner(logger, journal)
	if err := runner.Run(scenarios); err != nil {
		log.Fatal(err)
	}
}
