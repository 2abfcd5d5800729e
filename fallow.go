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

// FallowSMDDay is one day's soil-moisture-deficit state for the
// aggregate non-crop land cover (fallow+built+water+pasture+forest),
// the second independent SMD recursion alongside the per-plot one.
type FallowSMDDay struct {
	SMD float64
	ES float64
	AESoil float64
	GWnr float64
	Regime StressRegime
}

// BuildFallowSMD runs the C7 fallow recursion. Kc_Fallow is always 0,
// so the fallow bucket evaporates at the climate's kei constant every
// day, unconditionally.
func BuildFallowSMD(climate *DailyClimate, runoff *DailyRunoff, kei float64) []FallowSMDDay {
	tew, rew := FallowSoilCapacity()
	n := len(climate.Dates)
	out := make([]FallowSMDDay, n)

	var smdPrev float64
	for i := 0; i < n; i++ {
		eto := climate.ETo[i]
		peff := runoff.Peff[i]
		es := eto * kei

		regime := classifyRegime(kei, smdPrev, rew, tew)
		ks := ksFor(regime, smdPrev, rew, tew)

		var aeSoil float64
		switch {
		case regime == RegimeWellWatered || peff > es:
			aeSoil = es
		case regime == RegimeTransitional && peff < es:
			aeSoil = peff + ks*(es-peff)
		case regime == RegimeDepleted && peff < es:
			aeSoil = peff
		}

		smd := smdPrev + aeSoil - peff
		if smd < 0 {
			smd = 0
		}
		var gwnr float64
		if smd == 0 {
			gwnr = math.Abs(smdPrev + aeSoil - peff)
		}

		out[i] = FallowSMDDay{SMD: smd, ES: es, AESoil: aeSoil, GWnr: gwnr, Regime: regime}
		smdPrev = smd
	}
	return out
}

// DailyRecharge computes the area-weighted daily recharge that feeds
// the monthly storage router.
func DailyRecharge(s *Scenario, smd *SMDResult, fallow []FallowSMDDay) []float64 {
	n := len(fallow)
	out := make([]float64, n)

	fallowArea := s.Watershed.FallowAreaRecharge()
	var cropAreaTotal float64
	for _, c := range s.Crops {
		cropAreaTotal += c.Area()
	}
	denom := cropAreaTotal + fallowArea

	for i := 0; i < n; i++ {
		var plotSum float64
		for _, p := range s.Plots {
			plotSum += p.NSA() * smd.ByPlot[p.ID][i].GWnr
		}
		if denom <= 0 {
			continue
		}
		out[i] = (plotSum + fallowArea*fallow[i].GWnr) / denom
	}
	return out
}
