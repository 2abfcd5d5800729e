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

// PlotSoilCapacity is the per-plot output of the soil-profile and
// capacity computer (C3). TEW and REW are derived purely from the
// fixed theta/Ze constants, so they are identical across plots, but are
// carried per-plot to keep the downstream recursion's inputs
// self-contained.
type PlotSoilCapacity struct {
	Capacity float64 // conservation-adjusted AWC-capacity, mm/m
	TEW float64 // total evaporable water, mm
	REW float64 // readily evaporable water, mm
}

// TEW and REW are constant across the scenario: θ_FC, θ_WP, and Ze are
// fixed process-wide constants.
func baseTEW() float64 { return (ThetaFC - 0.5*ThetaWP) * Ze }
func baseREW() float64 { return 0.4 * baseTEW() }

// conservationInterventionArea sums the area a crop has under any of
// the five conservation-practice interventions that feed the capacity
// blend.
func conservationInterventionArea(ip *InterventionPortfolio, cropName string) float64 {
	return ip.SoilMoisture.Cover.Area(cropName) +
		ip.SoilMoisture.Mulching.Area(cropName) +
		ip.SoilMoisture.BBF.Area(cropName) +
		ip.SoilMoisture.Bunds.Area(cropName) +
		ip.SoilMoisture.Tillage.Area(cropName)
}

// BuildSoilCapacities runs the C3 computer for every plot in the
// scenario.
func BuildSoilCapacities(s *Scenario) map[string]PlotSoilCapacity {
	rawCapacity := s.Soil.Capacity()
	tew, rew := baseTEW(), baseREW()

	out := make(map[string]PlotSoilCapacity, len(s.Plots))
	for _, p := range s.Plots {
		var treatedArea, treatedWeighted, totalArea float64
		for _, c := range p.Crops {
			area := conservationInterventionArea(&s.Interventions, c.Name)
			treatedArea += area
			// All SM-factors are 100 in the baseline; a scenario may
			// reparameterise them, but this implementation carries the
			// structure rather than a per-factor table.
			treatedWeighted += area * 100
			totalArea += c.Area()
		}

		withOut := s.WithOutSoilCon
		if withOut == 0 {
			withOut = 100
		}
		capacity := rawCapacity * withOut / 100
		if treatedArea > 0 {
			treatedFactor := treatedWeighted / treatedArea / 100
			treatedAWC := treatedFactor * rawCapacity
			untreatedArea := totalArea - treatedArea
			capacity = (treatedArea*treatedAWC + untreatedArea*rawCapacity*withOut/100) / totalArea
		}

		out[p.ID] = PlotSoilCapacity{Capacity: capacity, TEW: tew, REW: rew}
	}
	return out
}

// FallowSoilCapacity returns the plot-mean TEW/REW used by the fallow
// recursion : since TEW/REW are constant across plots, the mean
// is simply that constant.
func FallowSoilCapacity() (tew, rew float64) {
	return baseTEW(), baseREW()
}
