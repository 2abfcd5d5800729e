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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
)

// LoadKeyValueCSV reads a two-column (key,value) CSV file and sets each
// pair on v. This is the format used by input.csv and the
// interventions_*.csv files ; the tabular "_correct" form is
// never read here -- it is converted upstream by ConvertInterventionTable.
func LoadKeyValueCSV(v *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", InputMissing, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %s: %w", InputMalformed, path, err)
		}
		if len(rec) < 2 {
			continue
		}
		key := strings.TrimSpace(rec[0])
		value := strings.TrimSpace(rec[1])
		if key == "" {
			continue
		}
		v.Viper.Set(key, value)
	}
	return nil
}

// Float looks up key as a float64, defaulting to 0 for an unset or
// blank value (matching the reference tool's NaN-to-0 convention on
// optional numeric fields).
func (c *Config) Float(key string) float64 {
	raw := c.Viper.GetString(key)
	if raw == "" {
		return 0
	}
	return cast.ToFloat64(raw)
}

// RequiredFloat is Float but fails the run when the key is absent.
func (c *Config) RequiredFloat(key string) (float64, error) {
	if !c.Viper.IsSet(key) {
		return 0, fmt.Errorf("%s: %s", InputMissing, key)
	}
	v, err := cast.ToFloat64E(c.Viper.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", InputMalformed, key, err)
	}
	return v, nil
}

// String looks up key as a trimmed string.
func (c *Config) String(key string) string {
	return strings.TrimSpace(c.Viper.GetString(key))
}
