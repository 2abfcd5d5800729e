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

import "testing"

func TestBuildCropYearlyYieldFloorClipped(t *testing.T) {
	c := &Crop{Name: "Wheat", IrrigatedArea: 10, RainfedArea: 0, Ky: 1.5, PotentialYield: 2}
	months := []CropMonthly{
		{Key: MonthKey{2020, 1}, ETci: 100, IrrCWRMet: 10, RainfedCWRMet: 0},
		{Key: MonthKey{2020, 2}, ETci: 100, IrrCWRMet: 300, RainfedCWRMet: 0},
	}
	yearly := BuildCropYearly(c, months, map[MonthKey]float64{}, 1, true)
	if len(yearly) != 1 {
		t.Fatalf("want one yearly bucket, got %d", len(yearly))
	}
	cy := yearly[0]
	if cy.IrrYield < 0 || cy.IrrYield > 1 {
		t.Errorf("want clipped irrigated yield in [0,1], got %v", cy.IrrYield)
	}
	if cy.PctIrrCWRMet > 1 {
		t.Errorf("want PctIrrCWRMet clipped to at most 1, got %v", cy.PctIrrCWRMet)
	}
}

func TestBuildCropYearlyYieldNonNegativeUnclipped(t *testing.T) {
	c := &Crop{Name: "Wheat", IrrigatedArea: 10, RainfedArea: 0, Ky: 2, PotentialYield: 2}
	months := []CropMonthly{
		{Key: MonthKey{2020, 1}, ETci: 100, IrrCWRMet: 0, RainfedCWRMet: 0},
	}
	yearly := BuildCropYearly(c, months, map[MonthKey]float64{}, 1, false)
	if yearly[0].IrrYield < 0 {
		t.Errorf("want non-negative yield in calendar mode, got %v", yearly[0].IrrYield)
	}
}

func TestWaterYearStartMonthPicksEarliestSowing(t *testing.T) {
	crops := []*Crop{{SowingMonth: 6}, {SowingMonth: 3}, {SowingMonth: 11}}
	if got := waterYearStartMonth(crops); got != 3 {
		t.Errorf("have %d, want 3", got)
	}
	if got := waterYearStartMonth(nil); got != 1 {
		t.Errorf("have %d, want 1 for an empty crop list", got)
	}
}
