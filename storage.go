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

// MonthKey identifies a calendar month in the simulation series.
type MonthKey struct {
	Year, Month int
}

// MonthlyInputs is the pre-aggregated, component-independent monthly
// summary feeding the storage router.
type MonthlyInputs struct {
	Key MonthKey
	Days int
	RainMM float64
	EToMM float64
	QomMM float64 // sum of daily runoff
	RechargeMM float64 // sum of daily area-weighted recharge
	IrrNeedM3 float64 // total crop irrigation need before canal/GW
	IrrNeedByCrop map[string]float64
	ETBiological float64
}

// AggregateMonthly rolls the daily series up to months (leaf
// dependency). It must be called after BuildSMD and BuildFallowSMD.
func AggregateMonthly(s *Scenario, climate *DailyClimate, runoff *DailyRunoff, recharge []float64,
	smd *SMDResult, fallow []FallowSMDDay, eff map[string]CropEfficiency) []MonthlyInputs {

	order := []MonthKey{}
	byMonth := map[MonthKey]*MonthlyInputs{}

	fallowArea := s.Watershed.FallowAreaRecharge()
	var cropAreaTotal float64
	for _, c := range s.Crops {
		cropAreaTotal += c.Area()
	}
	denom := cropAreaTotal + fallowArea

	for i, d := range climate.Dates {
		key := MonthKey{d.Year(), int(d.Month())}
		mi, ok := byMonth[key]
		if !ok {
			mi = &MonthlyInputs{Key: key, Days: daysInMonth(key.Year, key.Month), IrrNeedByCrop: map[string]float64{}}
			byMonth[key] = mi
			order = append(order, key)
		}
		mi.RainMM += climate.Precip[i]
		mi.EToMM += climate.ETo[i]
		mi.QomMM += runoff.Q[i]
		mi.RechargeMM += recharge[i]

		var bioNum float64
		for _, p := range s.Plots {
			for _, c := range p.Crops {
				cd := smd.ByCrop[c.Name][i]
				bioNum += c.Area() * (cd.AECrop + cd.AESoil)
				mi.IrrNeedByCrop[c.Name] += cd.IWR
			}
		}
		bioNum += fallowArea * fallow[i].AESoil
		if denom > 0 {
			mi.ETBiological += bioNum / denom
		}
	}

	out := make([]MonthlyInputs, 0, len(order))
	for _, key := range order {
		mi := byMonth[key]
		var total float64
		for name, mm := range mi.IrrNeedByCrop {
			e := eff[name]
			m3 := IrrWaterNeedM3(e, mm)
			mi.IrrNeedByCrop[name] = m3
			total += m3
		}
		mi.IrrNeedM3 = total
		out = append(out, *mi)
	}
	return out
}

func pondSurfaceArea(ssi SupplySideIntervention) (float64, error) {
	if ssi.DepthM == 0 {
		if ssi.VolumeM3 > 0 {
			return 0, newErr(InputMalformed, "surface_area", errZeroDepthWithVolume)
		}
		return 0, nil
	}
	return ssi.VolumeM3 / ssi.DepthM, nil
}

// MonthlyResult is the full C8 router output for one month.
type MonthlyResult struct {
	MonthlyInputs

	SCap, ARCap, AquiferCap float64

	DomesticNeedM3, OtherNeedM3, GWNeedM3, SWNeedM3 float64
	SWAbstractedM3 float64
	PotentialRechargeM3, PotentialETM3, IWRAfterCanalM3 float64
	StorageM3 float64
	ActRechargeM3, ActETM3, ActIWRM3 float64
	RunoffCapturedM3, RunoffLeftM3, RunoffInGWStrM3 float64
	AddedMonthlyRechargeM3 float64
	CumAquiferM3, GWAbstractedM3, CumAfterDomM3 float64
	GWExtractedM3, CumAfterCropM3 float64
	RejectedRechargeM3, GWLeftAfterRejectedM3 float64

	FinalRunoffMM, FinalRechargeMM, FinalETMM float64
	PctIWRMet float64
}

// RunStorageRouter runs the C8 monthly recursion.
func RunStorageRouter(s *Scenario, months []MonthlyInputs) ([]MonthlyResult, error) {
	totalArea := s.Watershed.TotalAreaHa
	aquiferCap := s.Aquifer.DepthM * (s.Aquifer.SpecificYieldPct / 100) * totalArea * 10000

	var irrigatedTotal float64
	for _, c := range s.Crops {
		irrigatedTotal += c.IrrigatedArea
	}

	out := make([]MonthlyResult, len(months))

	var prevStorage, prevActRecharge, prevActET, prevActIWR, prevRejected, prevResidual float64
	prevResidual = s.Aquifer.SpecificYieldPct / 100 * s.Aquifer.StartingLevelM * totalArea * 10000

	for m, mi := range months {
		days := float64(mi.Days)

		rechargeStructAreaM3, err := structureInfiltration(&s.Interventions.Supply.FarmPondUnlined, days)
		if err != nil {
			return nil, err
		}
		r2, err := structureInfiltration(&s.Interventions.Supply.FarmPondLined, days)
		if err != nil {
			return nil, err
		}
		r3, err := structureInfiltration(&s.Interventions.Supply.CheckDam, days)
		if err != nil {
			return nil, err
		}
		potentialRecharge := rechargeStructAreaM3 + r2 + r3

		volSum := s.Interventions.Supply.FarmPondUnlined.VolumeM3 + s.Interventions.Supply.FarmPondLined.VolumeM3 + s.Interventions.Supply.CheckDam.VolumeM3
		sCap := volSum - potentialRecharge

		infilPondRecharge, err := structureInfiltration(&s.Interventions.Supply.InfiltrationPond, days)
		if err != nil {
			return nil, err
		}
		injectionRecharge := s.Interventions.Supply.InjectionWells.VolumeM3 * s.Interventions.Supply.InjectionWells.NumberOfUnits * 30
		arCap := infilPondRecharge + injectionRecharge

		var evapArea float64
		for _, ssi := range []*SupplySideIntervention{&s.Interventions.Supply.FarmPondUnlined, &s.Interventions.Supply.FarmPondLined, &s.Interventions.Supply.CheckDam} {
			a, err := pondSurfaceArea(*ssi)
			if err != nil {
				return nil, err
			}
			evapArea += a
		}
		potentialET := mi.EToMM / 1000 * evapArea

		domNeed := s.Demographics.Population * s.Demographics.PerCapitaLPD * days / 1000
		otherNeed := s.Demographics.OtherUseLPD * days / 1000
		gwNeed := s.Demographics.GWDependencyPct / 100 * (domNeed + otherNeed)
		swNeed := domNeed + otherNeed - gwNeed

		qomM3 := mi.QomMM * totalArea * 10

		if m == 0 {
			prevStorage, prevActRecharge, prevActET, prevActIWR = 0, 0, 0, 0
		}

		vrr := prevRejected + qomM3
		swAbstracted := math.Min(qomM3, swNeed)
		vAfterDomSW := qomM3 - swAbstracted

		sM := math.Min(sCap, prevStorage-prevActRecharge-prevActET-prevActIWR+vrr-swAbstracted)

		canalSupply := s.CanalSupplyM3[(mi.Key.Month-1)%12]
		iwrAfterCanal := math.Max(0, mi.IrrNeedM3-canalSupply)

		d := potentialRecharge + potentialET + iwrAfterCanal
		var actRecharge, actET, actIWR float64
		if d > sM {
			actRecharge = safeDiv(sM*potentialRecharge, d)
			actET = safeDiv(sM*potentialET, d)
			actIWR = safeDiv(sM*iwrAfterCanal, d)
		} else {
			actRecharge, actET, actIWR = potentialRecharge, potentialET, iwrAfterCanal
		}

		var runoffCaptured float64
		if m == 0 {
			runoffCaptured = sM
		} else {
			runoffCaptured = sM - (prevStorage - prevActRecharge - prevActET - prevActIWR)
		}
		runoffLeft := vAfterDomSW - runoffCaptured
		runoffInGWStr := math.Max(0, math.Min(arCap, runoffLeft))
		addedRecharge := actRecharge + runoffInGWStr

		naturalRechargeM3 := mi.RechargeMM * totalArea * 10
		cum := prevResidual + addedRecharge + naturalRechargeM3

		gwAbstracted := math.Min(cum, gwNeed)
		cumAfterDom := math.Max(0, cum-gwAbstracted)

		var gwExtracted float64
		if mi.IrrNeedM3 > 0 && actIWR < mi.IrrNeedM3 {
			gwExtracted = math.Min(mi.IrrNeedM3-actIWR, cumAfterDom)
		}
		cumAfterCrop := cumAfterDom - gwExtracted
		rejected := math.Max(0, cumAfterCrop-aquiferCap)
		gwLeftAfterRejected := cumAfterCrop - rejected

		toMM := func(v float64) float64 {
			if totalArea <= 0 {
				return 0
			}
			return v / (totalArea * 10)
		}
		runoffToRecharge := toMM(actRecharge) + toMM(runoffInGWStr)
		capturedRunoffMM := toMM(runoffCaptured) + toMM(runoffInGWStr)
		finalRO := math.Max(0, mi.QomMM-capturedRunoffMM)
		finalRunoff := finalRO + toMM(rejected)
		finalRecharge := math.Max(0, mi.RechargeMM-toMM(rejected)+runoffToRecharge)
		finalET := math.Max(0, mi.RainMM-finalRunoff-finalRecharge)

		var pctIWRMet float64
		switch {
		case irrigatedTotal <= 0:
			pctIWRMet = 0
		case mi.IrrNeedM3 == 0:
			pctIWRMet = 1
		default:
			pctIWRMet = (actIWR + gwExtracted) / mi.IrrNeedM3
		}

		out[m] = MonthlyResult{
			MonthlyInputs: mi,
			SCap: sCap, ARCap: arCap, AquiferCap: aquiferCap,
			DomesticNeedM3: domNeed, OtherNeedM3: otherNeed, GWNeedM3: gwNeed, SWNeedM3: swNeed,
			SWAbstractedM3: swAbstracted,
			PotentialRechargeM3: potentialRecharge, PotentialETM3: potentialET, IWRAfterCanalM3: iwrAfterCanal,
			StorageM3: sM,
			ActRechargeM3: actRecharge, ActETM3: actET, ActIWRM3: actIWR,
			RunoffCapturedM3: runoffCaptured, RunoffLeftM3: runoffLeft, RunoffInGWStrM3: runoffInGWStr,
			AddedMonthlyRechargeM3: addedRecharge,
			CumAquiferM3: cum, GWAbstractedM3: gwAbstracted, CumAfterDomM3: cumAfterDom,
			GWExtractedM3: gwExtracted, CumAfterCropM3: cumAfterCrop,
			RejectedRechargeM3: rejected, GWLeftAfterRejectedM3: gwLeftAfterRejected,
			FinalRunoffMM: finalRunoff, FinalRechargeMM: finalRecharge, FinalETMM: finalET,
			PctIWRMet: pctIWRMet,
		}

		prevStorage, prevActRecharge, prevActET, prevActIWR = sM, actRecharge, actET, actIWR
		prevRejected = rejected
		prevResidual = gwLeftAfterRejected
	}

	return out, nil
}

func structureInfiltration(ssi *SupplySideIntervention, days float64) (float64, error) {
	area, err := pondSurfaceArea(*ssi)
	if err != nil {
		return 0, err
	}
	return ssi.InfiltrationRateMMPerDay * days * area / 1000, nil
}
