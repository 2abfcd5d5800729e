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
	"testing"
	"time"
)

func fixtureFullScenario() *Scenario {
	crop := &Crop{
		Name: "Wheat", PlotID: "plot_1",
		SowingMonth: 1, SowingWeek: 1,
		IrrigatedArea: 10, RainfedArea: 0,
		CoverType: "Row Crop", TreatmentType: "Straight Row",
		StageDays: [4]int{10, 10, 10, 10},
		StageKc:   [4]float64{0.5, 0.8, 1.1, 0.7},
		MinRootDepthM: 0.3, MaxRootDepthM: 0.6,
		DepletionFraction: 0.5,
		Ky: 1.0, PotentialYield: 3, PricePerTonne: 2000,
	}
	plot := &Plot{ID: "plot_1", Crops: []*Crop{crop}}

	precip := make([]DailyPrecip, 0, 60)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		mm := 0.0
		if i%10 == 0 {
			mm = 20
		}
		precip = append(precip, DailyPrecip{Date: start.AddDate(0, 0, i), MM: mm})
	}

	return &Scenario{
		Name:     "smoke",
		Latitude: 20,
		Watershed: Watershed{NetCropSown: 10, Fallow: 90, TotalAreaHa: 100},
		Soil: SoilProfile{
			Layer1: SoilLayer{Texture: TextureClay, Class: HSCGood, DepthM: 0.5, SharePct: 50},
			Layer2: SoilLayer{Texture: TextureClay, Class: HSCGood, DepthM: 0.5, SharePct: 50},
		},
		Plots: []*Plot{plot},
		Crops: []*Crop{crop},
		CropDB: map[string]CropDBEntry{
			"Wheat": {Name: "Wheat"},
		},
		CNDefaults: map[string]map[SoilTexture]float64{
			"Fallow":   {TextureClay: 75},
			"Row Crop": {TextureClay: 78},
		},
		Precip: precip,
		Temperatures: []MonthlyTemperature{
			{Year: 2020, Month: 1, TMax: 28, TMin: 12, TMean: 20},
			{Year: 2020, Month: 2, TMax: 30, TMin: 14, TMean: 22},
		},
		RadiationByMonth: [12]float64{0: 16, 1: 17},
		SurfaceWater:     SurfaceWaterConfig{GWAreaSharePct: 50, SWAreaSharePct: 50, GWEfficiencyPct: 40, SWEfficiencyPct: 35},
		Aquifer:          AquiferConfig{DepthM: 5, StartingLevelM: 1, SpecificYieldPct: 10},
		WithOutSoilCon:   1,
		YearType:         YearTypeCalendar,
	}
}

func TestSimulateEndToEnd(t *testing.T) {
	s := fixtureFullScenario()
	results, err := Simulate(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results.Monthly) != 2 {
		t.Fatalf("want 2 months of results, got %d", len(results.Monthly))
	}
	if len(results.CropMonthly["Wheat"]) != 2 {
		t.Errorf("want 2 months of crop results for Wheat, got %d", len(results.CropMonthly["Wheat"]))
	}
	if len(results.CropYearly["Wheat"]) != 1 {
		t.Errorf("want 1 yearly bucket for Wheat, got %d", len(results.CropYearly["Wheat"]))
	}
	if _, ok := results.DroughtIndexByYear[2020]; !ok {
		t.Error("want a drought-proofing index computed for 2020")
	}
	for _, m := range results.Monthly {
		if m.StorageM3 > m.SCap+1e-6 {
			t.Errorf("month %v: storage exceeds cap", m.Key)
		}
	}
}

func TestSimulateRejectsCropMissingFromDB(t *testing.T) {
	s := fixtureFullScenario()
	s.CropDB = map[string]CropDBEntry{}
	if _, err := Simulate(s); err == nil {
		t.Error("want error when a sown crop has no crop-database entry")
	}
}

func TestSimulateRejectsAreaMismatch(t *testing.T) {
	s := fixtureFullScenario()
	s.Watershed.TotalAreaHa = 5
	if _, err := Simulate(s); err == nil {
		t.Error("want error when land-use areas do not sum to the total area")
	}
}
