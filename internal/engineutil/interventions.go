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
)

// ConvertInterventionTable converts the tabular
// "interventions_scenario_{n}_correct.csv" form -- one row per
// intervention type, one column per crop/attribute -- into the
// key,value form the core config loader understands. The core
// itself never reads the tabular form; this conversion is an external
// collaborator.
//
// The tabular file's header row holds attribute names (e.g. "Area",
// "Efficiency", "CostPerArea"); the first column holds the
// intervention name. Each non-header cell becomes a key of the form
// "<Intervention>_<Header>" with its value.
func ConvertInterventionTable(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("%s: %w", InputMissing, err)
	}
	defer src.Close()

	r := csv.NewReader(src)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%s: %s: %w", InputMalformed, srcPath, err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()
	w := csv.NewWriter(dst)
	defer w.Flush()

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %s: %w", InputMalformed, srcPath, err)
		}
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		for i := 1; i < len(row) && i < len(header); i++ {
			val := strings.TrimSpace(row[i])
			if val == "" {
				continue
			}
			key := name + "_" + strings.TrimSpace(header[i])
			if err := w.Write([]string{key, val}); err != nil {
				return err
			}
		}
	}
	return nil
}
