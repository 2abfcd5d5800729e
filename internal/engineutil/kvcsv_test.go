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
	"testing"
)

func writeTempCSV(t *testing.T, rows string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	if err := os.WriteFile(path, []byte(rows), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadKeyValueCSVSetsValues(t *testing.T) {
	path := writeTempCSV(t, "economic_life,15\ninterest_rate_pct,8.5\n, should be skipped\n")
	cfg := NewConfig(t.TempDir(), 1)
	if err := LoadKeyValueCSV(cfg, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Float("economic_life"); got != 15 {
		t.Errorf("have %v, want 15", got)
	}
	if got := cfg.Float("interest_rate_pct"); got != 8.5 {
		t.Errorf("have %v, want 8.5", got)
	}
}

func TestLoadKeyValueCSVMissingFile(t *testing.T) {
	cfg := NewConfig(t.TempDir(), 1)
	if err := LoadKeyValueCSV(cfg, filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("want error for a nonexistent file")
	}
}

func TestConfigFloatDefaultsToZero(t *testing.T) {
	cfg := NewConfig(t.TempDir(), 1)
	if got := cfg.Float("never_set"); got != 0 {
		t.Errorf("have %v, want 0 for an unset key", got)
	}
}

func TestConfigRequiredFloatFailsWhenUnset(t *testing.T) {
	cfg := NewConfig(t.TempDir(), 1)
	if _, err := cfg.RequiredFloat("never_set"); err == nil {
		t.Error("want error when a required key is unset")
	}
}

func TestConfigStringTrimsWhitespace(t *testing.T) {
	path := writeTempCSV(t, "name,  Wheat  \n")
	cfg := NewConfig(t.TempDir(), 1)
	if err := LoadKeyValueCSV(cfg, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.String("name"); got != "Wheat" {
		t.Errorf("have %q, want %q", got, "Wheat")
	}
}
