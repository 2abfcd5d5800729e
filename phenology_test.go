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

func TestKcOnDayStageBoundaries(t *testing.T) {
	c := &Crop{StageDays: [4]int{10, 10, 10, 10}, StageKc: [4]float64{0.5, 0.8, 1.1, 0.7}}

	cases := []struct {
		day  int
		want float64
	}{
		{0, 0.5}, {9, 0.5},
		{10, 0.8}, {19, 0.8},
		{20, 1.1}, {29, 1.1},
		{30, 0.7}, {39, 0.7},
		{40, 0}, {100, 0},
	}
	for _, tc := range cases {
		if got := kcOnDay(c, tc.day); got != tc.want {
			t.Errorf("day %d: have Kc=%v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestBuildPhenologySownAreaOnlyDuringGrowth(t *testing.T) {
	s, crop := fixtureScenarioOneCrop()
	climate := dailyClimateFixture(make([]float64, 50))
	phen := BuildPhenology(s, climate.Dates)

	days := phen.ByCrop[crop.Name]
	for i, d := range days {
		tgd := crop.TotalGrowthDays()
		inSeason := i < tgd
		if inSeason && d.SownArea == 0 {
			t.Errorf("day %d: want nonzero sown area during the growth window", i)
		}
	}
}
