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

// StressRegime is the 4-state classification driving actual-ET
// reduction in the soil-moisture-deficit recursion (design
// notes: encode as a tagged variant, never bare integers at call sites).
type StressRegime int

// Stress regimes, in the order the recursion evaluates them.
const (
	// RegimeInactive applies when the driving coefficient (Ke or Kc) is
	// zero: there is nothing to evaporate or transpire.
	RegimeInactive StressRegime = iota
	// RegimeWellWatered applies below the readily-available threshold:
	// actual ET proceeds at the potential rate (Ks=1).
	RegimeWellWatered
	// RegimeTransitional applies between the readily- and totally-
	// available thresholds: Ks ramps linearly to zero.
	RegimeTransitional
	// RegimeDepleted applies above the totally-available threshold:
	// Ks=0, actual ET is limited to effective rainfall.
	RegimeDepleted
)

func classifyRegime(driver, shifted, readyThreshold, totalThreshold float64) StressRegime {
	switch {
	case driver == 0:
		return RegimeInactive
	case shifted < readyThreshold:
		return RegimeWellWatered
	case shifted > readyThreshold && shifted < totalThreshold:
		return RegimeTransitional
	default:
		return RegimeDepleted
	}
}

func ksFor(regime StressRegime, shifted, readyThreshold, totalThreshold float64) float64 {
	switch regime {
	case RegimeWellWatered:
		return 1
	case RegimeTransitional:
		return safeDiv(totalThreshold-shifted, totalThreshold-readyThreshold)
	default:
		return 0
	}
}

// calcKe is the soil-evaporation coefficient. It is not a continuous
// function of Kc: Ke equals the climate's kei constant whenever the
// plot has no crop coefficient yet or is still in its initial growth
// stage, and zero otherwise.
func calcKe(kc float64, stage1 bool, kei float64) float64 {
	if kc == 0 || stage1 {
		return kei
	}
	return 0
}

// finalEvapRed is the plot's area-weighted evaporation-reduction
// multiplier from conservation practices; 1 when none are configured
//.
func finalEvapRed(s *Scenario, p *Plot) float64 {
	var totalArea, weighted, coveredArea float64
	for _, c := range p.Crops {
		totalArea += c.Area()
		for _, label := range soilConservationInterventions {
			area := cnAreaFor(&s.Interventions, label, c.Name)
			red := evapReductionFor(&s.Interventions, label)
			weighted += area * (1 - red/100)
			coveredArea += area
		}
	}
	if totalArea <= 0 {
		return 1
	}
	uncovered := totalArea - coveredArea
	return (weighted + uncovered) / totalArea
}

func evapReductionFor(ip *InterventionPortfolio, label string) float64 {
	switch label {
	case "Cover":
		return ip.SoilMoisture.Cover.EvapReductionPct
	case "Mulching":
		return ip.SoilMoisture.Mulching.EvapReductionPct
	case "BBF":
		return ip.SoilMoisture.BBF.EvapReductionPct
	case "Bunds":
		return ip.SoilMoisture.Bunds.EvapReductionPct
	case "Tillage":
		return ip.SoilMoisture.Tillage.EvapReductionPct
	default:
		return 0
	}
}

// PlotSMDDay is one day's soil-moisture-deficit state for one plot
//.
type PlotSMDDay struct {
	SMD float64
	Kc, Ke float64
	ETc, ES float64
	AESoil, AECrop float64
	GWnr float64
	TAW, RAW, TEW, REW float64
	SoilRegime, CropRegime StressRegime
}

// CropSMDDay is the per-crop redistribution of a plot's AE values plus
// the resulting irrigation water requirement.
type CropSMDDay struct {
	AESoil, AECrop, IWR, ETc float64
}

// SMDResult holds the per-plot and per-crop daily series produced by
// the C6 recursion.
type SMDResult struct {
	ByPlot map[string][]PlotSMDDay
	ByCrop map[string][]CropSMDDay
}

// BuildSMD runs the C6 per-plot soil-moisture-deficit recursion
//. capacities must come from BuildSoilCapacities; phen from
// BuildPhenology.
func BuildSMD(s *Scenario, climate *DailyClimate, phen *Phenology, capacities map[string]PlotSoilCapacity, runoff *DailyRunoff) *SMDResult {
	n := len(climate.Dates)
	res := &SMDResult{
		ByPlot: make(map[string][]PlotSMDDay, len(s.Plots)),
		ByCrop: make(map[string][]CropSMDDay, len(s.Crops)),
	}

	kei := KeiFor(s.Climate)
	for _, p := range s.Plots {
		cap := capacities[p.ID]
		evapRed := finalEvapRed(s, p)
		days := make([]PlotSMDDay, n)

		var smdPrev float64
		for i := 0; i < n; i++ {
			pd := phen.ByPlot[p.ID][i]
			eto := climate.ETo[i]
			peff := runoff.Peff[i]

			kc := pd.Kc
			ke := calcKe(kc, pd.Stage1, kei)
			etc := eto * kc
			es := eto * ke

			taw := cap.Capacity * pd.RootDepth
			raw := pd.Depletion * taw
			tew, rew := cap.TEW, cap.REW

			soilRegime := classifyRegime(ke, smdPrev, rew, tew)
			ksSoil := ksFor(soilRegime, smdPrev, rew, tew)

			var aeSoil float64
			switch {
			case soilRegime == RegimeWellWatered || peff > es:
				aeSoil = es * evapRed
			case soilRegime == RegimeTransitional && peff < es:
				aeSoil = (peff + ksSoil*(es-peff)) * evapRed
			case soilRegime == RegimeDepleted && peff < es:
				aeSoil = peff * evapRed
			}

			cropRegime := classifyRegime(kc, smdPrev, raw, taw)
			ksCrop := ksFor(cropRegime, smdPrev, raw, taw)

			var aeCrop float64
			switch {
			case cropRegime == RegimeWellWatered || peff > etc:
				aeCrop = etc
			case cropRegime == RegimeTransitional && peff < etc:
				aeCrop = peff + ksCrop*(etc-peff)
			case cropRegime == RegimeDepleted && peff < etc:
				aeCrop = peff
			}

			smd := smdPrev + aeSoil + aeCrop - peff
			if smd < 0 {
				smd = 0
			}
			var gwnr float64
			if smd == 0 {
				gwnr = math.Abs(smdPrev + aeCrop + aeSoil - peff)
			}

			days[i] = PlotSMDDay{
				SMD: smd, Kc: kc, Ke: ke, ETc: etc, ES: es,
				AESoil: aeSoil, AECrop: aeCrop, GWnr: gwnr,
				TAW: taw, RAW: raw, TEW: tew, REW: rew,
				SoilRegime: soilRegime, CropRegime: cropRegime,
			}
			smdPrev = smd
		}
		res.ByPlot[p.ID] = days
	}

	for _, p := range s.Plots {
		plotDays := res.ByPlot[p.ID]
		for _, c := range p.Crops {
			cropDays := make([]CropSMDDay, n)
			for i := 0; i < n; i++ {
				pdDay := plotDays[i]
				cd := phen.ByCrop[c.Name][i]
				etcCrop := climate.ETo[i] * cd.Kc
				iwr := math.Max(0, etcCrop-pdDay.AECrop)
				cropDays[i] = CropSMDDay{AESoil: pdDay.AESoil, AECrop: pdDay.AECrop, IWR: iwr, ETc: etcCrop}
			}
			res.ByCrop[c.Name] = cropDays
		}
	}

	return res
}
