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

package wbe

import (
	"errors"
	"testing"
)

func TestScenarioErrorUnwrap(t *testing.T) {
	e := newErr(InputMalformed, "precip", errNegativeArea)
	if !errors.Is(e, errNegativeArea) {
		t.Error("want errors.Is to see through ScenarioError to its cause")
	}
}

func TestScenarioErrorMessageWithoutCause(t *testing.T) {
	e := newErr(CropNotInDB, "Maize", nil)
	want := "CropNotInDB: Maize"
	if got := e.Error(); got != want {
		t.Errorf("have %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		InputMissing:    "InputMissing",
		InputMalformed:  "InputMalformed",
		CropNotInDB:     "CropNotInDB",
		AreaInvariant:   "AreaInvariant",
		ZeroInEconomics: "ZeroInEconomics",
		ErrorKind(99):   "Unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("kind %d: have %q, want %q", kind, got, want)
		}
	}
}
