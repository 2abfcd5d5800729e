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

func fixtureScenarioOneCrop() (*Scenario, *Crop) {
	crop := &Crop{
		Name: "Wheat", PlotID: "plot_1",
		SowingMonth: 1, SowingWeek: 1,
		IrrigatedArea: 10, RainfedArea: 0,
		StageDays: [4]int{10, 10, 10, 10},
		StageKc:   [4]float64{0.5, 0.8, 1.1, 0.7},
		MinRootDepthM: 0.3, MaxRootDepthM: 0.6,
		DepletionFraction: 0.5,
	}
	plot := &Plot{ID: "plot_1", Crops: []*Crop{crop}}
	s := baseScenario()
	s.Watershed = Watershed{NetCropSown: 10, Fallow: 90, TotalAreaHa: 100}
	s.Crops = []*Crop{crop}
	s.Plots = []*Plot{plot}
	return s, crop
}

func TestSMDStaysZeroUnderHeavyRain(t *testing.T) {
	s, _ := fixtureScenarioOneCrop()
	climate := dailyClimateFixture([]float64{200, 200, 200, 200, 200})
	for i := range climate.Precip {
		climate.ETo[i] = 5
	}
	phen := BuildPhenology(s, climate.Dates)
	capacities := BuildSoilCapacities(s)
	cn := BuildCurveNumbers(s, phen, climate)
	runoff := BuildRunoff(climate, cn)
	smd := BuildSMD(s, climate, phen, capacities, runoff)

	for i, day := range smd.ByPlot["plot_1"] {
		if day.SMD != 0 {
			t.Errorf("day %d: want SMD pinned at 0 under heavy effective rainfall, got %v", i, day.SMD)
		}
	}
}

func TestSaturationImpliesRecharge(t *testing.T) {
	s, _ := fixtureScenarioOneCrop()
	climate := dailyClimateFixture([]float64{0, 0, 300, 0, 0})
	for i := range climate.Precip {
		climate.ETo[i] = 5
	}
	phen := BuildPhenology(s, climate.Dates)
	capacities := BuildSoilCapacities(s)
	cn := BuildCurveNumbers(s, phen, climate)
	runoff := BuildRunoff(climate, cn)
	smd := BuildSMD(s, climate, phen, capacities, runoff)

	for i, day := range smd.ByPlot["plot_1"] {
		if day.GWnr > 0 && day.SMD != 0 {
			t.Errorf("day %d: GWnr > 0 but SMD != 0 (%v)", i, day.SMD)
		}
		if day.SMD == 0 && day.GWnr == 0 {
			t.Errorf("day %d: SMD == 0 but GWnr == 0", i)
		}
	}
}

func TestCalcKeIsStageGated(t *testing.T) {
	kei := KeiFor(ClimateSemiArid)
	if ke := calcKe(0.8, false, kei); ke != 0 {
		t.Errorf("want Ke == 0 outside the initial stage with Kc > 0, got %v", ke)
	}
	if ke := calcKe(0, false, kei); ke != kei {
		t.Errorf("want Ke == kei when Kc == 0, got %v", ke)
	}
	if ke := calcKe(0.8, true, kei); ke != kei {
		t.Errorf("want Ke == kei during the initial growth stage even with Kc > 0, got %v", ke)
	}
}

func TestKeiFor(t *testing.T) {
	if v := KeiFor(ClimateSemiArid); v != 1.05 {
		t.Errorf("want semi-arid kei 1.05, got %v", v)
	}
	if v := KeiFor(ClimateTemperate); v != 1.10 {
		t.Errorf("want temperate kei 1.10, got %v", v)
	}
	if v := KeiFor(ClimateType("")); v != 1.05 {
		t.Errorf("want unset climate to default to semi-arid kei, got %v", v)
	}
}
