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
	"math"
)

// InterventionCost is one intervention's economic summary: capital
// cost, equivalent annual cost, maintenance, and net present value
// (grounded in the reference tool's economics module).
type InterventionCost struct {
	Name string
	NumberOfUnits float64
	CapitalCost float64
	EAC float64
	MaintenanceCost float64
	NPV float64
}

// NumberOfUnits is ceil(economic_life/life_span), clamped to 0 for a
// non-positive or NaN life span and to at least 1 otherwise.
func NumberOfUnits(economicLife, lifeSpan float64) float64 {
	if lifeSpan <= 0 || math.IsNaN(lifeSpan) {
		return 0
	}
	n := math.Ceil(economicLife / lifeSpan)
	if n < 1 {
		n = 1
	}
	return n
}

// Cost is volume/area times unit cost.
func Cost(quantity, unitCost float64) float64 {
	return quantity * unitCost
}

// EAC is the equivalent annual cost of a capital expenditure amortised
// at interestRatePct over timePeriod years.
func EAC(capital, interestRatePct, timePeriod float64) (float64, error) {
	if interestRatePct == 0 || timePeriod == 0 {
		return 0, fmt.Errorf("%s: interest_rate=%v time_period=%v", ZeroInEconomics, interestRatePct, timePeriod)
	}
	r := interestRatePct / 100
	return (capital * r) / (1 - math.Pow(1+r, -timePeriod)), nil
}

// MaintenanceCost is the EAC-scaled annual maintenance cost summed
// over the unit's life span.
func MaintenanceCost(eac, maintenancePct, timePeriod float64) float64 {
	return eac * (maintenancePct / 100) * timePeriod
}

// NPV is the net present value of the maintenance stream plus the
// capitalised EAC over the interest rate.
func NPV(maintenance, eac, interestRatePct, timePeriod float64) float64 {
	r := interestRatePct / 100
	if r == 0 {
		return maintenance
	}
	return maintenance + (1-math.Pow(1+r, -timePeriod))*(eac/r)
}

// ZeroInEconomics mirrors wbe.ErrorKind's label for the economics
// module's own fatal condition.
const ZeroInEconomics = "ZeroInEconomics"
