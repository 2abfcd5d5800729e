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

// CropEfficiency is the C9 output for one crop: its final blended
// irrigation efficiency and the static inputs used to reach it.
type CropEfficiency struct {
	FinalEfficiency float64
	IrrigatedArea float64
}

func baseEfficiency(s *Scenario) float64 {
	nsa := s.Watershed.NetCropSown
	if nsa <= 0 {
		return 0
	}
	gwArea := s.SurfaceWater.GWAreaSharePct / 100 * nsa
	swArea := s.SurfaceWater.SWAreaSharePct / 100 * nsa
	return (gwArea*s.SurfaceWater.GWEfficiencyPct/100 + swArea*s.SurfaceWater.SWEfficiencyPct/100) / nsa
}

func weightedEff(areas []float64, effs []float64) (area, eff float64) {
	var totalArea, weighted float64
	for i, a := range areas {
		totalArea += a
		weighted += a * effs[i]
	}
	if totalArea <= 0 {
		return 0, 0
	}
	return totalArea, weighted / totalArea
}

// BuildIrrigationEfficiency runs the C9 mixer for every crop.
func BuildIrrigationEfficiency(s *Scenario) map[string]CropEfficiency {
	base := baseEfficiency(s)
	out := make(map[string]CropEfficiency, len(s.Crops))

	for _, c := range s.Crops {
		ip := &s.Interventions
		heAreas := []float64{ip.Demand.Drip.Area(c.Name), ip.Demand.Sprinkler.Area(c.Name), ip.SoilMoisture.BBF.Area(c.Name)}
		heEffs := []float64{ip.Demand.Drip.EfficiencyPct, ip.Demand.Sprinkler.EfficiencyPct, ip.SoilMoisture.BBF.EfficiencyPct}
		heArea, heEff := weightedEff(heAreas, heEffs)

		wsAreas := []float64{ip.Demand.LandLevelling.Area(c.Name), ip.Demand.DSR.Area(c.Name), ip.Demand.AWD.Area(c.Name),
			ip.Demand.SRI.Area(c.Name), ip.Demand.RidgeFurrow.Area(c.Name), ip.Demand.Deficit.Area(c.Name)}
		wsEffs := []float64{ip.Demand.LandLevelling.EfficiencyPct, ip.Demand.DSR.EfficiencyPct, ip.Demand.AWD.EfficiencyPct,
			ip.Demand.SRI.EfficiencyPct, ip.Demand.RidgeFurrow.EfficiencyPct, ip.Demand.Deficit.EfficiencyPct}
		wsArea, wsEff := weightedEff(wsAreas, wsEffs)

		irrArea := c.IrrigatedArea
		uncovered := irrArea - heArea - wsArea
		var overall float64
		if uncovered < 0 {
			overall = math.NaN()
		} else if irrArea > 0 {
			overall = (heArea*heEff/100 + uncovered*base) / irrArea
		}

		wsFrac := EffDefaultWaterSaved / 100
		if wsArea > 0 {
			wsFrac = wsEff / 100
		}
		effAfterWS := overall + (1-overall)*wsFrac

		gwRF, swRF := returnFlowFor(c.Name)
		returnFlow := s.SurfaceWater.GWAreaSharePct/100*gwRF + s.SurfaceWater.SWAreaSharePct/100*swRF
		finalEff := (1-effAfterWS)*returnFlow + effAfterWS

		if irrArea <= 0 {
			finalEff = DefaultIrrigationEfficiency / 100
		}

		out[c.Name] = CropEfficiency{FinalEfficiency: finalEff, IrrigatedArea: irrArea}
	}
	return out
}

// IrrWaterNeedM3 converts a crop's monthly IWR sum (mm) into the
// monthly irrigation water demand in cubic meters.
func IrrWaterNeedM3(eff CropEfficiency, monthlyIWRmm float64) float64 {
	if eff.FinalEfficiency == 0 {
		return 0
	}
	return (monthlyIWRmm / 1000 * eff.IrrigatedArea * 10000) / eff.FinalEfficiency
}
