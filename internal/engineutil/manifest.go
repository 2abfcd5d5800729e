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
	"os"

	"github.com/BurntSushi/toml"
)

// Manifest is an optional TOML descriptor (Datasets/manifest.toml).
// RunScenario applies its non-empty YearType and Name over the values
// loaded from the CSV inputs; Notes is read but not used. Its absence
// is not an error; scenarios run fine from the CSV inputs alone.
type Manifest struct {
	Name     string `toml:"name"`
	YearType string `toml:"year_type"`
	Notes    string `toml:"notes"`
}

// LoadManifest reads a scenario manifest if present. A missing file is
// not an error: it returns a zero-value Manifest.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m, nil
	}
	_, err := toml.DecodeFile(path, &m)
	return m, err
}
