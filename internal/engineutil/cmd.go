/*
Copyright © 2024 the wbe authors.
This file is part of wbe.

wbe is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

wbe is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with wbe.  If not, see <http://www.gnu.org/licenses/>.
*/

package engineutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dpwatershed/wbe"
)

// Root is the top-level command tree, following the reference CLI's
// Cfg-owns-cobra-tree pattern: each subcommand's RunE closes over a
// *Config built from the process's working directory.
var Root = &cobra.Command{
	Use: "wbe",
	Short: "Watershed-scale drought-proofing water-balance engine",
}

func init() {
	Root.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use: "run <scenario_number>",
	Short: "Run one scenario (0 = baseline)",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("scenario_number must be an integer: %w", err)
		}
		return RunScenario(n)
	},
}

// RunScenario loads, simulates, and writes results for one scenario,
// rooted at the current working directory ("master path is the
// current working directory").
func RunScenario(n int) error {
	log := NewLogger()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg := NewConfig(wd, n)

	manifest, err := LoadManifest(cfg.DatasetsPath("manifest.toml"))
	if err != nil {
		return err
	}

	if err := convertTabularInterventionsIfPresent(cfg); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"scenario": n}).Info("loading scenario inputs")
	scenario, err := LoadScenario(cfg)
	if err != nil {
		return err
	}
	if manifest.YearType != "" {
		scenario.YearType = wbe.YearType(manifest.YearType)
	}
	if manifest.Name != "" {
		scenario.Name = manifest.Name
	}

	log.Info("running simulation")
	results, err := wbe.Simulate(scenario)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"out": cfg.OutputDir()}).Info("writing outputs")
	return WriteResults(cfg, scenario, results)
}

// convertTabularInterventionsIfPresent looks for the tabular
// "<interventions file>_correct.csv" sibling of this scenario's
// interventions file and, if present, converts it into the key/value
// form in place before LoadScenario reads it.
func convertTabularInterventionsIfPresent(cfg *Config) error {
	dst := cfg.InterventionsFile()
	src := strings.TrimSuffix(dst, ".csv") + "_correct.csv"
	if _, err := os.Stat(src); err != nil {
		return nil
	}
	return ConvertInterventionTable(src, dst)
}
