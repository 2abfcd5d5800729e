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

func baseScenario() *Scenario {
	return &Scenario{
		Watershed: Watershed{Fallow: 100, TotalAreaHa: 100},
		Soil: SoilProfile{
			Layer1: SoilLayer{Texture: TextureClay, Class: HSCGood, DepthM: 0.5, SharePct: 50},
			Layer2: SoilLayer{Texture: TextureClay, Class: HSCGood, DepthM: 0.5, SharePct: 50},
		},
		CNDefaults: map[string]map[SoilTexture]float64{
			"Fallow": {TextureClay: 75},
		},
	}
}

func TestCurveNumberOrdering(t *testing.T) {
	s := baseScenario()
	climate := dailyClimateFixture([]float64{0, 10, 40})
	phen := BuildPhenology(s, climate.Dates)
	cn := BuildCurveNumbers(s, phen, climate)

	for i := range climate.Dates {
		if !(cn.CN1[i] <= cn.CN2[i]+1e-9 && cn.CN2[i] <= cn.CN3[i]+1e-9) {
			t.Errorf("day %d: want CN1 <= CN2 <= CN3, got %v <= %v <= %v", i, cn.CN1[i], cn.CN2[i], cn.CN3[i])
		}
	}
}

func TestCurveNumberHigherBuiltUpRaisesCN(t *testing.T) {
	low := baseScenario()
	climate := dailyClimateFixture([]float64{5})
	phenLow := BuildPhenology(low, climate.Dates)
	cnLow := BuildCurveNumbers(low, phenLow, climate)

	high := baseScenario()
	high.Watershed = Watershed{BuiltUp: 60, Fallow: 40, TotalAreaHa: 100}
	phenHigh := BuildPhenology(high, climate.Dates)
	cnHigh := BuildCurveNumbers(high, phenHigh, climate)

	if cnHigh.CN2[0] <= cnLow.CN2[0] {
		t.Errorf("want higher built-up share to raise CN2, got low=%v high=%v", cnLow.CN2[0], cnHigh.CN2[0])
	}
}
