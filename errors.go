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

import "fmt"

// ErrorKind classifies a ScenarioError into the fatal-failure taxonomy.
// All kinds are fatal for the run unless noted otherwise.
type ErrorKind int

const (
	// InputMissing marks a required CSV or key absent from the inputs.
	InputMissing ErrorKind = iota
	// InputMalformed marks a non-numeric value where numeric was
	// expected, mis-aligned series lengths, or a missing radiation row.
	InputMalformed
	// CropNotInDB marks a sowing entry that references a crop absent
	// from the crop database.
	CropNotInDB
	// AreaInvariant marks an intervention area exceeding its crop's
	// total area.
	AreaInvariant
	// ZeroInEconomics marks a zero interest rate or time period
	// supplied where an EAC computation was requested.
	ZeroInEconomics
)

func (k ErrorKind) String() string {
	switch k {
	case InputMissing:
		return "InputMissing"
	case InputMalformed:
		return "InputMalformed"
	case CropNotInDB:
		return "CropNotInDB"
	case AreaInvariant:
		return "AreaInvariant"
	case ZeroInEconomics:
		return "ZeroInEconomics"
	default:
		return "Unknown"
	}
}

// ScenarioError is a fatal condition raised while building or running a
// scenario. Name carries the offending key, crop, or field so the
// message is actionable without inspecting the input files again.
type ScenarioError struct {
	Kind ErrorKind
	Name string
	Cause error
}

func (e *ScenarioError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Name)
}

func (e *ScenarioError) Unwrap() error { return e.Cause }

func newErr(kind ErrorKind, name string, cause error) *ScenarioError {
	return &ScenarioError{Kind: kind, Name: name, Cause: cause}
}

var (
	errNegativeArea = fmt.Errorf("area is negative")
	errAreaMismatch = fmt.Errorf("land-use areas do not sum to total area")
	errAreaExceedsCrop = fmt.Errorf("intervention area exceeds crop area")
	errZeroDepthWithVolume = fmt.Errorf("structure has volume but zero depth")
)
