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
	"path/filepath"
	"strconv"

	"github.com/lnashier/viper"
)

// Error-kind labels mirrored from wbe.ErrorKind for I/O-layer failures
// raised before a Scenario exists to carry a typed error itself.
const (
	InputMissing = "InputMissing"
	InputMalformed = "InputMalformed"
)

// Config wraps a *viper.Viper pre-loaded from the scenario's key/value
// CSV inputs, following the Cfg-wraps-Viper pattern used throughout the
// reference CLI's configuration layer.
type Config struct {
	Viper *viper.Viper
	MasterPath string
	Scenario int

	paths *pathCache
}

// NewConfig creates an empty, unloaded configuration rooted at
// masterPath (the current working directory per).
func NewConfig(masterPath string, scenario int) *Config {
	return &Config{Viper: viper.New(), MasterPath: masterPath, Scenario: scenario, paths: newPathCache()}
}

// DatasetsPath returns <master>/Datasets/<rel...>, memoising the
// resolved absolute path since a scenario run revisits the same
// directories for every input table.
func (c *Config) DatasetsPath(rel...string) string {
	joined := filepath.Join(append([]string{"Datasets"}, rel...)...)
	abs, err := c.paths.Resolve(joined, c.MasterPath)
	if err != nil {
		return filepath.Join(append([]string{c.MasterPath, "Datasets"}, rel...)...)
	}
	return abs
}

// InputsPath returns <master>/Datasets/Inputs/<rel...>.
func (c *Config) InputsPath(rel...string) string {
	return c.DatasetsPath(append([]string{"Inputs"}, rel...)...)
}

// InterventionsFile returns the key/value interventions file for this
// config's scenario (baseline when Scenario==0).
func (c *Config) InterventionsFile() string {
	if c.Scenario == 0 {
		return c.InputsPath("csv_inputs", "interventions_baseline.csv")
	}
	return c.InputsPath("csv_inputs", "interventions_scenario_"+strconv.Itoa(c.Scenario)+".csv")
}

// OutputDir returns <master>/Datasets/Outputs/<Baseline_Scenario|Scenario_n>.
func (c *Config) OutputDir() string {
	if c.Scenario == 0 {
		return c.DatasetsPath("Outputs", "Baseline_Scenario")
	}
	return c.DatasetsPath("Outputs", "Scenario_"+strconv.Itoa(c.Scenario))
}
