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

// CropMonthly is one crop's monthly water-requirement summary (// tail).
type CropMonthly struct {
	Key MonthKey
	ETci float64
	IWR float64
	AECrop, AESoil float64
	IrrCWRMet float64
	RainfedCWRMet float64
}

// BuildCropMonthly aggregates the per-crop daily SMD series to months
// and applies the shared monthly Pct_IWR_met from the storage router
// (tail).
func BuildCropMonthly(s *Scenario, climate *DailyClimate, smd *SMDResult, monthly []MonthlyResult) map[string][]CropMonthly {
	pctByMonth := make(map[MonthKey]float64, len(monthly))
	for _, m := range monthly {
		pctByMonth[m.Key] = m.PctIWRMet
	}

	order := []MonthKey{}
	seen := map[MonthKey]bool{}
	for _, d := range climate.Dates {
		k := MonthKey{d.Year(), int(d.Month())}
		if !seen[k] {
			seen[k] = true
			order = append(order, k)
		}
	}

	out := make(map[string][]CropMonthly, len(s.Crops))
	for _, c := range s.Crops {
		byMonth := make(map[MonthKey]*CropMonthly, len(order))
		for _, k := range order {
			byMonth[k] = &CropMonthly{Key: k}
		}
		days := smd.ByCrop[c.Name]
		for i, d := range climate.Dates {
			k := MonthKey{d.Year(), int(d.Month())}
			cm := byMonth[k]
			cd := days[i]
			cm.ETci += cd.ETc
			cm.IWR += cd.IWR
			cm.AECrop += cd.AECrop
			cm.AESoil += cd.AESoil
		}
		rows := make([]CropMonthly, len(order))
		for i, k := range order {
			cm := *byMonth[k]
			pct := pctByMonth[k]
			cm.IrrCWRMet = (cm.ETci - cm.IWR) + cm.IWR*pct
			cm.RainfedCWRMet = cm.ETci - cm.IWR
			rows[i] = cm
		}
		out[c.Name] = rows
	}
	return out
}

// CropYearly is one crop's yearly yield and production summary
//.
type CropYearly struct {
	Year int

	ETci, IWR, AECrop, AESoil float64
	IrrCWRMet, RainfedCWRMet float64
	ETBiological float64

	PctIrrCWRMet, PctRainfedCWRMet float64
	IrrYield, RainfedYield float64
	AvgYield float64

	ProductionPerHa float64
	ProductionTotal float64
	WaterProductivity float64
}

// yearBucket returns the bucket key (a year number) for month k under
// the given water-year start month; startMonth=1 is plain calendar
// year.
func yearBucket(k MonthKey, startMonth int) int {
	if startMonth <= 1 {
		return k.Year
	}
	if k.Month >= startMonth {
		return k.Year
	}
	return k.Year - 1
}

// BuildCropYearly rolls up a crop's monthly series to years, clipping
// CWR-met ratios to 1 when clip is true (the water-year variant,
//).
func BuildCropYearly(c *Crop, months []CropMonthly, etBioByMonth map[MonthKey]float64, startMonth int, clip bool) []CropYearly {
	order := []int{}
	byYear := map[int]*CropYearly{}
	for _, m := range months {
		y := yearBucket(m.Key, startMonth)
		cy, ok := byYear[y]
		if !ok {
			cy = &CropYearly{Year: y}
			byYear[y] = cy
			order = append(order, y)
		}
		cy.ETci += m.ETci
		cy.IWR += m.IWR
		cy.AECrop += m.AECrop
		cy.AESoil += m.AESoil
		cy.IrrCWRMet += m.IrrCWRMet
		cy.RainfedCWRMet += m.RainfedCWRMet
		cy.ETBiological += etBioByMonth[m.Key]
	}

	out := make([]CropYearly, len(order))
	for i, y := range order {
		cy := *byYear[y]

		if c.IrrigatedArea > 0 && cy.ETci != 0 {
			cy.PctIrrCWRMet = cy.IrrCWRMet / cy.ETci
		}
		if c.RainfedArea > 0 && cy.ETci != 0 {
			cy.PctRainfedCWRMet = cy.RainfedCWRMet / cy.ETci
		}
		if clip {
			cy.PctIrrCWRMet = math.Min(1, cy.PctIrrCWRMet)
			cy.PctRainfedCWRMet = math.Min(1, cy.PctRainfedCWRMet)
		}

		cy.IrrYield = math.Max(0, 1-c.Ky*(1-cy.PctIrrCWRMet))
		cy.RainfedYield = math.Max(0, 1-c.Ky*(1-cy.PctRainfedCWRMet))
		if clip {
			cy.IrrYield = math.Min(1, cy.IrrYield)
			cy.RainfedYield = math.Min(1, cy.RainfedYield)
		}

		total := c.Area()
		if total > 0 {
			cy.AvgYield = (cy.IrrYield*c.IrrigatedArea + cy.RainfedYield*c.RainfedArea) / total
		}
		cy.ProductionPerHa = cy.AvgYield * c.PotentialYield
		cy.ProductionTotal = cy.ProductionPerHa * total

		waterM3 := (cy.AECrop + cy.AESoil) * total * 10
		if waterM3 > 0 {
			cy.WaterProductivity = cy.ProductionTotal * 1000 / waterM3
		}
		out[i] = cy
	}
	return out
}

// DroughtProofingIndex computes the watershed-wide area-weighted yield
// index for one year across every crop.
func DroughtProofingIndex(crops []*Crop, yearlyByName map[string][]CropYearly, year int) float64 {
	var numerator, denom float64
	for _, c := range crops {
		for _, cy := range yearlyByName[c.Name] {
			if cy.Year != year {
				continue
			}
			numerator += cy.IrrYield*c.IrrigatedArea + cy.RainfedYield*c.RainfedArea
			denom += c.IrrigatedArea + c.RainfedArea
		}
	}
	if denom == 0 {
		return 0
	}
	return numerator / denom
}

func etBiologicalByMonth(monthly []MonthlyResult) map[MonthKey]float64 {
	out := make(map[MonthKey]float64, len(monthly))
	for _, m := range monthly {
		out[m.Key] = m.ETBiological
	}
	return out
}

// waterYearStartMonth picks the earliest sowing month among the
// scenario's crops, used as the water-year boundary when
// YearType=="crop".
func waterYearStartMonth(crops []*Crop) int {
	start := 13
	for _, c := range crops {
		if c.SowingMonth < start {
			start = c.SowingMonth
		}
	}
	if start == 13 {
		return 1
	}
	return start
}
