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

import "math"

// lookupCN2 resolves a base CN2 value for (cover, treatment, class,
// texture) with a cascading fallback: drop treatment, then drop HSC,
// then the hardcoded cover x texture default, then 0.
func lookupCN2(s *Scenario, cover, treatment string, class HSC, texture SoilTexture) float64 {
	var coverHSCOnly float64
	var haveCoverHSC bool
	var coverOnly float64
	var haveCoverOnly bool

	for _, row := range s.CNTable {
		if row.CoverType != cover {
			continue
		}
		if row.TreatmentType == treatment && row.Class == class {
			if v, ok := row.CNByTexture[texture]; ok {
				return v
			}
		}
		if row.Class == class && !haveCoverHSC {
			if v, ok := row.CNByTexture[texture]; ok {
				coverHSCOnly, haveCoverHSC = v, true
			}
		}
		if !haveCoverOnly {
			if v, ok := row.CNByTexture[texture]; ok {
				coverOnly, haveCoverOnly = v, true
			}
		}
	}
	if haveCoverHSC {
		return coverHSCOnly
	}
	if haveCoverOnly {
		return coverOnly
	}
	if byTexture, ok := s.CNDefaults[cover]; ok {
		if v, ok := byTexture[texture]; ok {
			return v
		}
	}
	return 0
}

// cnReductionFor returns the soil-moisture intervention's CN-reduction
// constant, with "Tank" reusing the Tillage constant.
func cnReductionFor(ip *InterventionPortfolio, label string) float64 {
	switch label {
	case "Cover":
		return ip.SoilMoisture.Cover.CNReduction
	case "Mulching":
		return ip.SoilMoisture.Mulching.CNReduction
	case "Bunds":
		return ip.SoilMoisture.Bunds.CNReduction
	case "Tillage", "Tank":
		return ip.SoilMoisture.Tillage.CNReduction
	case "BBF":
		return ip.SoilMoisture.BBF.CNReduction
	default:
		return 0
	}
}

func cnAreaFor(ip *InterventionPortfolio, label, cropName string) float64 {
	switch label {
	case "Cover":
		return ip.SoilMoisture.Cover.Area(cropName)
	case "Mulching":
		return ip.SoilMoisture.Mulching.Area(cropName)
	case "Bunds":
		return ip.SoilMoisture.Bunds.Area(cropName)
	case "Tillage":
		return ip.SoilMoisture.Tillage.Area(cropName)
	case "BBF":
		return ip.SoilMoisture.BBF.Area(cropName)
	case "Tank":
		return ip.SoilMoisture.TankDesilting.Area(cropName)
	default:
		return 0
	}
}

// cropCN2 computes the final, intervention-adjusted CN2 for one crop
// (constant across the scenario since areas are static).
func cropCN2(s *Scenario, c *Crop) float64 {
	cn1 := lookupCN2(s, c.CoverType, c.TreatmentType, s.Soil.Layer1.Class, s.Soil.Layer1.Texture)
	cn2 := lookupCN2(s, c.CoverType, c.TreatmentType, s.Soil.Layer2.Class, s.Soil.Layer2.Texture)
	actual := (s.Soil.Layer1.SharePct*cn1 + s.Soil.Layer2.SharePct*cn2) / 100

	var totalIntArea, weightedRed float64
	for _, label := range cnReductionInterventions {
		area := cnAreaFor(&s.Interventions, label, c.Name)
		totalIntArea += area
		weightedRed += area * cnReductionFor(&s.Interventions, label)
	}

	if totalIntArea <= 0 {
		return actual
	}
	redCN2 := weightedRed / totalIntArea
	treatedCN2 := actual - redCN2
	noIntArea := c.Area() - totalIntArea
	if c.Area() <= 0 {
		return 0
	}
	return (totalIntArea*treatedCN2 + noIntArea*actual) / c.Area()
}

func fallowCN2(s *Scenario) float64 {
	def1 := s.CNDefaults["Fallow"][s.Soil.Layer1.Texture]
	def2 := s.CNDefaults["Fallow"][s.Soil.Layer2.Texture]
	return (s.Soil.Layer1.SharePct*def1 + s.Soil.Layer2.SharePct*def2) / 100
}

// CNSeries is the C4/C5-feeding daily curve-number output.
type CNSeries struct {
	CN1, CN2, CN3, CN []float64
	AMC []int
}

// BuildCurveNumbers runs the C4 computer over the date series.
func BuildCurveNumbers(s *Scenario, phen *Phenology, climate *DailyClimate) *CNSeries {
	n := len(climate.Dates)
	out := &CNSeries{
		CN1: make([]float64, n), CN2: make([]float64, n),
		CN3: make([]float64, n), CN: make([]float64, n),
		AMC: make([]int, n),
	}

	cn2ByCrop := make(map[string]float64, len(s.Crops))
	for _, c := range s.Crops {
		cn2ByCrop[c.Name] = cropCN2(s, c)
	}
	fallowCN := fallowCN2(s)

	totalArea := s.Watershed.TotalAreaHa
	slope := Slope / 100 // fixed watershed slope

	for i := range climate.Dates {
		var sownSum, weightedCN2 float64
		anySown := false
		for _, c := range s.Crops {
			cd := phen.ByCrop[c.Name][i]
			if cd.SownArea > 0 {
				anySown = true
				sownSum += cd.SownArea
				weightedCN2 += cd.SownArea * cn2ByCrop[c.Name]
			}
		}
		consolidatedCrop := 0.0
		if sownSum > 0 {
			consolidatedCrop = weightedCN2 / sownSum
			if consolidatedCrop > 100 {
				consolidatedCrop = 100
			}
		}

		var cn2 float64
		if totalArea > 0 {
			cn2 = (s.Watershed.BuiltUp*LULCCN2["Built"] +
				s.Watershed.WaterBodies*LULCCN2["Water"] +
				s.Watershed.Pasture*LULCCN2["Pasture"] +
				s.Watershed.Forest*LULCCN2["Forest"] +
				s.Watershed.NetCropSown*consolidatedCrop +
				s.Watershed.Fallow*fallowCN) / totalArea
		}

		cn2Adj := math.Min(100, cn2*(1.9274*slope+2.1327)/(slope+2.1791))
		cn1 := safeDiv(cn2Adj, 2.281-0.01281*cn2Adj)
		cn3 := safeDiv(cn2Adj, 0.427+0.00573*cn2Adj)

		rain5 := climate.Rain5[i]
		var amc int
		if anySown {
			switch {
			case rain5 < 36:
				amc = 1
			case rain5 > 53:
				amc = 3
			default:
				amc = 2
			}
		} else {
			switch {
			case rain5 < 13:
				amc = 1
			case rain5 > 28:
				amc = 3
			default:
				amc = 2
			}
		}

		out.CN1[i], out.CN2[i], out.CN3[i] = cn1, cn2Adj, cn3
		out.AMC[i] = amc
		switch amc {
		case 1:
			out.CN[i] = cn1
		case 3:
			out.CN[i] = cn3
		default:
			out.CN[i] = cn2Adj
		}
	}
	return out
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
