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

func TestWatershedValidateAreaConservation(t *testing.T) {
	w := Watershed{
		NetCropSown: 40, Fallow: 30, BuiltUp: 10, WaterBodies: 5, Pasture: 10, Forest: 5,
		TotalAreaHa: 100,
	}
	if err := w.Validate(); err != nil {
		t.Errorf("want nil error for balanced areas, got %v", err)
	}

	w.TotalAreaHa = 99
	if err := w.Validate(); err == nil {
		t.Error("want error when total area does not match the sum of land-use fractions")
	}
}

func TestWatershedValidateNegativeArea(t *testing.T) {
	w := Watershed{NetCropSown: -1, TotalAreaHa: -1}
	if err := w.Validate(); err == nil {
		t.Error("want error for negative land-use area")
	}
}

func TestInterventionPortfolioValidateAreaExceedsCrop(t *testing.T) {
	crops := []*Crop{{Name: "Wheat", IrrigatedArea: 10, RainfedArea: 0}}
	ip := &InterventionPortfolio{}
	ip.Demand.Drip.AreaByCrop = map[string]float64{"Wheat": 20}
	if err := ip.Validate(crops); err == nil {
		t.Error("want error when an intervention area exceeds its crop's total area")
	}

	ip.Demand.Drip.AreaByCrop = map[string]float64{"Wheat": 10}
	if err := ip.Validate(crops); err != nil {
		t.Errorf("want nil error when intervention area equals crop area, got %v", err)
	}
}

func TestCropSowingDate(t *testing.T) {
	c := &Crop{SowingMonth: 6, SowingWeek: 2}
	d := c.SowingDate(2021)
	if d.Month() != 6 || d.Day() != 8 {
		t.Errorf("have %v, want June 8 (week-2 offset)", d)
	}
}
