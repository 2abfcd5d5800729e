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
	"path/filepath"
	"strings"
	"testing"
)

func TestConvertInterventionTableProducesKeyValuePairs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "interventions_scenario_1_correct.csv")
	dst := filepath.Join(dir, "interventions_scenario_1.csv")

	body := "Intervention,Area,Efficiency\nDrip,5,90\nSprinkler,,75\n"
	if err := os.WriteFile(src, []byte(body), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := ConvertInterventionTable(src, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "Drip_Area,5") {
		t.Errorf("want Drip_Area,5 in output, got:\n%s", text)
	}
	if !strings.Contains(text, "Drip_Efficiency,90") {
		t.Errorf("want Drip_Efficiency,90 in output, got:\n%s", text)
	}
	if strings.Contains(text, "Sprinkler_Area") {
		t.Errorf("want a blank Area cell to be skipped, got:\n%s", text)
	}
	if !strings.Contains(text, "Sprinkler_Efficiency,75") {
		t.Errorf("want Sprinkler_Efficiency,75 in output, got:\n%s", text)
	}
}

func TestConvertInterventionTableMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := ConvertInterventionTable(filepath.Join(dir, "missing.csv"), filepath.Join(dir, "out.csv")); err == nil {
		t.Error("want error for a nonexistent source file")
	}
}
