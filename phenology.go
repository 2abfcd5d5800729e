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

import "time"

// CropDay is one crop's phenology state on one simulation day (C2).
type CropDay struct {
	SownArea float64
	Kc float64
	RootDepth float64 // m
	Depletion float64 // p
	RemainingGrowthDays float64
	// Stage1 is true while the crop is in its initial FAO-56 growth
	// stage, the window in which soil evaporation runs at the kei
	// constant regardless of Kc.
	Stage1 bool
}

// PlotDay is the per-plot aggregation of its crops' phenology on one day.
type PlotDay struct {
	Kc float64
	RootDepth float64
	Depletion float64
	// Stage1 is true if any crop sown on the plot is in its initial
	// growth stage that day.
	Stage1 bool
}

// Phenology holds the full daily phenology series for every crop and
// its per-plot aggregation, aligned to a Dates slice.
type Phenology struct {
	Dates []time.Time
	ByCrop map[string][]CropDay
	ByPlot map[string][]PlotDay
}

func stageBoundaries(c *Crop) [4]int {
	var b [4]int
	running := 0
	for i, d := range c.StageDays {
		running += d
		b[i] = running
	}
	return b
}

func kcOnDay(c *Crop, daysSince int) float64 {
	b := stageBoundaries(c)
	switch {
	case daysSince < b[0]:
		return c.StageKc[StageIni]
	case daysSince < b[1]:
		return c.StageKc[StageDev]
	case daysSince < b[2]:
		return c.StageKc[StageMid]
	case daysSince < b[3]:
		return c.StageKc[StageLate]
	default:
		return 0
	}
}

// inInitialStage reports whether daysSince still falls within the
// crop's StageIni window.
func inInitialStage(c *Crop, daysSince int) bool {
	b := stageBoundaries(c)
	return daysSince < b[0]
}

// BuildPhenology runs the C2 phenology builder over every crop in the
// scenario for the given date series.
func BuildPhenology(s *Scenario, dates []time.Time) *Phenology {
	out := &Phenology{
		Dates: dates,
		ByCrop: make(map[string][]CropDay, len(s.Crops)),
		ByPlot: make(map[string][]PlotDay, len(s.Plots)),
	}
	if len(dates) == 0 {
		return out
	}
	firstYear := dates[0].Year()

	for _, c := range s.Crops {
		tgd := c.TotalGrowthDays()
		days := make([]CropDay, len(dates))
		for i, d := range dates {
			y := d.Year()
			start := c.SowingDate(y)
			if y != firstYear && d.Before(start) {
				start = c.SowingDate(y - 1)
			}
			end := start.AddDate(0, 0, tgd)

			var rg float64
			var active bool
			if !d.Before(start) && d.Before(end) && tgd > 0 {
				daysSince := int(d.Sub(start).Hours() / 24)
				rg = float64(tgd - daysSince - 1)
				if rg < 0 {
					rg = 0
				}
				active = true
			}

			var rec CropDay
			if active {
				daysSince := int(d.Sub(start).Hours() / 24)
				rec.Kc = kcOnDay(c, daysSince)
				rec.Stage1 = inInitialStage(c, daysSince)
				rec.SownArea = c.Area()
				rec.RemainingGrowthDays = rg
				if rg > 0 {
					rec.RootDepth = c.MinRootDepthM + (c.MaxRootDepthM-c.MinRootDepthM)*(float64(tgd)-rg)/float64(tgd)
					rec.Depletion = c.DepletionFraction
				}
			}
			days[i] = rec
		}
		out.ByCrop[c.Name] = days
	}

	for _, p := range s.Plots {
		plotDays := make([]PlotDay, len(dates))
		for i := range dates {
			var pd PlotDay
			for _, c := range p.Crops {
				cd := out.ByCrop[c.Name][i]
				pd.Kc += cd.Kc
				pd.RootDepth += cd.RootDepth
				pd.Depletion += cd.Depletion
				pd.Stage1 = pd.Stage1 || cd.Stage1
			}
			plotDays[i] = pd
		}
		out.ByPlot[p.ID] = plotDays
	}

	return out
}
