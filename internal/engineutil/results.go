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

package engineutil

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/dpwatershed/wbe"
)

// WriteResults serialises a simulation's daily, monthly, per-crop, and
// yearly tables to <OutputDir>/*.csv, one file per artefact.
func WriteResults(c *Config, scenario *wbe.Scenario, r *wbe.Results) error {
	dir := c.OutputDir()

	if err := WriteCSV(filepath.Join(dir, "df_dd.csv"), dailyTable(r)); err != nil {
		return err
	}
	if err := WriteCSV(filepath.Join(dir, "df_mm.csv"), monthlyTable(r)); err != nil {
		return err
	}
	wbMM := waterBalanceTable(r)
	if err := WriteCSV(filepath.Join(dir, "df_wb_mm_output.csv"), wbMM); err != nil {
		return err
	}
	if err := WriteCSV(filepath.Join(dir, "df_wb_yr_output.csv"), waterBalanceYearlyTable(r, wbMM)); err != nil {
		return err
	}
	for _, c2 := range scenario.Crops {
		if err := WriteCSV(filepath.Join(dir, "df_crop_"+c2.Name+".csv"), cropMonthlyTable(r, c2.Name)); err != nil {
			return err
		}
	}
	if err := WriteCSV(filepath.Join(dir, "df_cwr_output.csv"), cwrTable(scenario, r)); err != nil {
		return err
	}
	if err := WriteCSV(filepath.Join(dir, "df_cwr_met_output.csv"), cwrMetTable(scenario, r)); err != nil {
		return err
	}
	if err := WriteCSV(filepath.Join(dir, "df_cc.csv"), cropCharacteristicsTable(scenario)); err != nil {
		return err
	}
	if err := WriteCSV(filepath.Join(dir, "df_yield_output.csv"), yieldTable(scenario, r)); err != nil {
		return err
	}
	if err := WriteCSV(filepath.Join(dir, "df_drought_output.csv"), droughtTable(r)); err != nil {
		return err
	}
	if scenario.YearType == wbe.YearTypeCrop {
		if err := WriteCSV(filepath.Join(dir, "df_crop_yr_wateryear.csv"), cropYearlyWaterYearTable(scenario, r)); err != nil {
			return err
		}
		if err := WriteCSV(filepath.Join(dir, "df_drought_output_wateryear.csv"), droughtWaterYearTable(r)); err != nil {
			return err
		}
	}
	if err := WriteCSV(filepath.Join(dir, "df_int.csv"), interventionEconomicsTable(c, scenario)); err != nil {
		return err
	}
	if err := WriteCSV(filepath.Join(dir, "df_rainfall_output.csv"), rainfallTable(scenario)); err != nil {
		return err
	}
	return nil
}

// interventionEconomicsTable computes the capital/annualised/NPV cost of
// every configured intervention (df_int), grounded in the reference
// tool's economics module.
func interventionEconomicsTable(c *Config, scenario *wbe.Scenario) CSVTable {
	economicLife := c.Float("economic_life")
	interestRate := c.Float("interest_rate_pct")

	var names []string
	var quantity, unitCost, lifeSpan, maintPct []float64

	addSupply := func(name string, ssi wbe.SupplySideIntervention) {
		if ssi.VolumeM3 <= 0 {
			return
		}
		names = append(names, name)
		quantity = append(quantity, ssi.VolumeM3)
		unitCost = append(unitCost, ssi.CostPerM3)
		lifeSpan = append(lifeSpan, ssi.LifeSpanYears)
		maintPct = append(maintPct, ssi.MaintenancePct)
	}
	addSupply("FarmPondUnlined", scenario.Interventions.Supply.FarmPondUnlined)
	addSupply("FarmPondLined", scenario.Interventions.Supply.FarmPondLined)
	addSupply("CheckDam", scenario.Interventions.Supply.CheckDam)
	addSupply("InfiltrationPond", scenario.Interventions.Supply.InfiltrationPond)
	addSupply("InjectionWells", scenario.Interventions.Supply.InjectionWells)

	addPerCrop := func(name string, pci wbe.PerCropIntervention) {
		var area float64
		for _, a := range pci.AreaByCrop {
			area += a
		}
		if area <= 0 {
			return
		}
		names = append(names, name)
		quantity = append(quantity, area)
		unitCost = append(unitCost, pci.CostPerArea)
		lifeSpan = append(lifeSpan, pci.LifeSpanYears)
		maintPct = append(maintPct, pci.MaintenancePct)
	}
	d := scenario.Interventions.Demand
	addPerCrop("Drip", d.Drip)
	addPerCrop("Sprinkler", d.Sprinkler)
	addPerCrop("LandLevelling", d.LandLevelling)
	addPerCrop("DSR", d.DSR)
	addPerCrop("AWD", d.AWD)
	addPerCrop("SRI", d.SRI)
	addPerCrop("RidgeFurrow", d.RidgeFurrow)
	addPerCrop("Deficit", d.Deficit)
	sm := scenario.Interventions.SoilMoisture
	addPerCrop("Cover", sm.Cover)
	addPerCrop("Mulching", sm.Mulching)
	addPerCrop("BBF", sm.BBF)
	addPerCrop("Bunds", sm.Bunds)
	addPerCrop("Tillage", sm.Tillage)
	addPerCrop("TankDesilting", sm.TankDesilting)

	cols := []string{"NumberOfUnits", "CapitalCost", "EAC", "MaintenanceCost", "NPV"}
	data := make([][]float64, len(cols))
	for i := range data {
		data[i] = make([]float64, len(names))
	}
	for i := range names {
		units := NumberOfUnits(economicLife, lifeSpan[i])
		capital := Cost(quantity[i], unitCost[i]) * units
		eac, err := EAC(capital, interestRate, lifeSpan[i])
		if err != nil {
			eac = 0
		}
		maint := MaintenanceCost(eac, maintPct[i], lifeSpan[i])
		npv := NPV(maint, eac, interestRate, lifeSpan[i])
		data[0][i] = units
		data[1][i] = capital
		data[2][i] = eac
		data[3][i] = maint
		data[4][i] = npv
	}
	return CSVTable{Index: names, Columns: cols, Data: data}
}

func rainfallTable(scenario *wbe.Scenario) CSVTable {
	rows := ClassifyRainfall(scenario.Precip)
	cols := []string{"TotalMM", "DeparturePct"}
	data := make([][]float64, len(cols))
	for i := range data {
		data[i] = make([]float64, len(rows))
	}
	idx := make([]string, len(rows))
	for i, y := range rows {
		idx[i] = strconv.Itoa(y.Year) + "_" + string(y.Category)
		data[0][i] = y.TotalMM
		data[1][i] = y.DeparturePct
	}
	return CSVTable{Index: idx, Columns: cols, Data: data}
}

func dateLabels(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	return out
}

func dailyTable(r *wbe.Results) CSVTable {
	n := len(r.Climate.Dates)
	cols := []string{"Precip", "ETo", "Rain5", "CN", "AMC", "Runoff", "Peff"}
	data := make([][]float64, len(cols))
	for i := range data {
		data[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		data[0][i] = r.Climate.Precip[i]
		data[1][i] = r.Climate.ETo[i]
		data[2][i] = r.Climate.Rain5[i]
		data[3][i] = r.CurveNumbers.CN[i]
		data[4][i] = float64(r.CurveNumbers.AMC[i])
		data[5][i] = r.Runoff.Q[i]
		data[6][i] = r.Runoff.Peff[i]
	}
	return CSVTable{Index: dateLabels(r.Climate.Dates), Columns: cols, Data: data}
}

func monthKeyLabel(k wbe.MonthKey) string {
	return strconv.Itoa(k.Year) + "-" + pad2(k.Month)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func monthlyTable(r *wbe.Results) CSVTable {
	n := len(r.Monthly)
	cols := []string{"Rain", "ETo", "Qom", "StorageM3", "ActRechargeM3", "ActETM3", "ActIWRM3",
		"RejectedRechargeM3", "FinalRunoffMM", "FinalRechargeMM", "FinalETMM", "PctIWRMet", "ETBiological"}
	data := make([][]float64, len(cols))
	for i := range data {
		data[i] = make([]float64, n)
	}
	idx := make([]string, n)
	for i, m := range r.Monthly {
		idx[i] = monthKeyLabel(m.Key)
		data[0][i] = m.RainMM
		data[1][i] = m.EToMM
		data[2][i] = m.QomMM
		data[3][i] = m.StorageM3
		data[4][i] = m.ActRechargeM3
		data[5][i] = m.ActETM3
		data[6][i] = m.ActIWRM3
		data[7][i] = m.RejectedRechargeM3
		data[8][i] = m.FinalRunoffMM
		data[9][i] = m.FinalRechargeMM
		data[10][i] = m.FinalETMM
		data[11][i] = m.PctIWRMet
		data[12][i] = m.ETBiological
	}
	return CSVTable{Index: idx, Columns: cols, Data: data}
}

func waterBalanceTable(r *wbe.Results) CSVTable {
	n := len(r.Monthly)
	cols := []string{"Rain", "FinalRunoff", "FinalRecharge", "FinalET"}
	data := make([][]float64, len(cols))
	for i := range data {
		data[i] = make([]float64, n)
	}
	idx := make([]string, n)
	for i, m := range r.Monthly {
		idx[i] = monthKeyLabel(m.Key)
		data[0][i] = m.RainMM
		data[1][i] = m.FinalRunoffMM
		data[2][i] = m.FinalRechargeMM
		data[3][i] = m.FinalETMM
	}
	return CSVTable{Index: idx, Columns: cols, Data: data}
}

// waterBalanceYearlyTable rolls the monthly water-balance table up to
// years by summing each column's rows within a year with the CSV
// writer's ColumnTotal helper.
func waterBalanceYearlyTable(r *wbe.Results, monthly CSVTable) CSVTable {
	order := []int{}
	rowsByYear := map[int][]int{}
	for i, m := range r.Monthly {
		y := m.Key.Year
		if _, ok := rowsByYear[y]; !ok {
			order = append(order, y)
		}
		rowsByYear[y] = append(rowsByYear[y], i)
	}

	idx := make([]string, len(order))
	data := make([][]float64, len(monthly.Columns))
	for i := range data {
		data[i] = make([]float64, len(order))
	}
	for yi, y := range order {
		idx[yi] = strconv.Itoa(y)
		yearRows := rowsByYear[y]
		sub := CSVTable{Columns: monthly.Columns, Data: make([][]float64, len(monthly.Columns))}
		for ci := range monthly.Columns {
			col := make([]float64, len(yearRows))
			for ri, row := range yearRows {
				col[ri] = monthly.Data[ci][row]
			}
			sub.Data[ci] = col
		}
		for ci, col := range monthly.Columns {
			data[ci][yi] = ColumnTotal(sub, col)
		}
	}
	return CSVTable{Index: idx, Columns: monthly.Columns, Data: data}
}

// cwrTable is the per-crop-year total crop-water-requirement (ETci),
// the unclipped denominator that df_cwr_met_output expresses as a
// fraction of.
func cwrTable(scenario *wbe.Scenario, r *wbe.Results) CSVTable {
	cols := []string{"CWRTotal"}
	var idx []string
	var vals []float64
	for _, c := range scenario.Crops {
		for _, cy := range r.CropYearly[c.Name] {
			idx = append(idx, c.Name+"_"+strconv.Itoa(cy.Year))
			vals = append(vals, cy.ETci)
		}
	}
	return CSVTable{Index: idx, Columns: cols, Data: [][]float64{vals}}
}

// cwrMetTable is the per-crop-year fraction of CWR met by irrigation
// vs rainfall.
func cwrMetTable(scenario *wbe.Scenario, r *wbe.Results) CSVTable {
	cols := []string{"PctIrrCWRMet", "PctRainfedCWRMet"}
	var idx []string
	data := make([][]float64, len(cols))
	for _, c := range scenario.Crops {
		for _, cy := range r.CropYearly[c.Name] {
			idx = append(idx, c.Name+"_"+strconv.Itoa(cy.Year))
			data[0] = append(data[0], cy.PctIrrCWRMet)
			data[1] = append(data[1], cy.PctRainfedCWRMet)
		}
	}
	return CSVTable{Index: idx, Columns: cols, Data: data}
}

// cropCharacteristicsTable is the static per-crop reference table
// (df_cc), index preserved as crop name.
func cropCharacteristicsTable(scenario *wbe.Scenario) CSVTable {
	cols := []string{"Ky", "PotentialYield", "PricePerTonne", "MinRootDepthM", "MaxRootDepthM", "IrrigatedArea", "RainfedArea"}
	idx := make([]string, len(scenario.Crops))
	data := make([][]float64, len(cols))
	for i := range data {
		data[i] = make([]float64, len(scenario.Crops))
	}
	for i, c := range scenario.Crops {
		idx[i] = c.Name
		data[0][i] = c.Ky
		data[1][i] = c.PotentialYield
		data[2][i] = c.PricePerTonne
		data[3][i] = c.MinRootDepthM
		data[4][i] = c.MaxRootDepthM
		data[5][i] = c.IrrigatedArea
		data[6][i] = c.RainfedArea
	}
	return CSVTable{Index: idx, Columns: cols, Data: data}
}

func cropMonthlyTable(r *wbe.Results, cropName string) CSVTable {
	rows := r.CropMonthly[cropName]
	cols := []string{"ETci", "IWR", "AECrop", "AESoil", "IrrCWRMet", "RainfedCWRMet"}
	data := make([][]float64, len(cols))
	for i := range data {
		data[i] = make([]float64, len(rows))
	}
	idx := make([]string, len(rows))
	for i, m := range rows {
		idx[i] = monthKeyLabel(m.Key)
		data[0][i] = m.ETci
		data[1][i] = m.IWR
		data[2][i] = m.AECrop
		data[3][i] = m.AESoil
		data[4][i] = m.IrrCWRMet
		data[5][i] = m.RainfedCWRMet
	}
	return CSVTable{Index: idx, Columns: cols, Data: data}
}

func yieldTable(scenario *wbe.Scenario, r *wbe.Results) CSVTable {
	cols := []string{"IrrYield", "RainfedYield", "AvgYield", "ProductionTotal", "WaterProductivity"}
	var idx []string
	data := make([][]float64, len(cols))
	for _, c := range scenario.Crops {
		for _, cy := range r.CropYearly[c.Name] {
			idx = append(idx, c.Name+"_"+strconv.Itoa(cy.Year))
			data[0] = append(data[0], cy.IrrYield)
			data[1] = append(data[1], cy.RainfedYield)
			data[2] = append(data[2], cy.AvgYield)
			data[3] = append(data[3], cy.ProductionTotal)
			data[4] = append(data[4], cy.WaterProductivity)
		}
	}
	return CSVTable{Index: idx, Columns: cols, Data: data}
}

func droughtTable(r *wbe.Results) CSVTable {
	cols := []string{"DroughtProofingIndex"}
	var idx []string
	var vals []float64
	for year, v := range r.DroughtIndexByYear {
		idx = append(idx, strconv.Itoa(year))
		vals = append(vals, v)
	}
	return CSVTable{Index: idx, Columns: cols, Data: [][]float64{vals}}
}

// cropYearlyWaterYearTable is the water-year counterpart of the
// calendar-year yield/CWR tables, read from CropYearlyWaterYear so a
// scenario configured with YearTypeCrop can be compared side by side
// against the calendar-year rollup.
func cropYearlyWaterYearTable(scenario *wbe.Scenario, r *wbe.Results) CSVTable {
	cols := []string{"CWRTotal", "PctIrrCWRMet", "PctRainfedCWRMet",
		"IrrYield", "RainfedYield", "AvgYield", "ProductionTotal", "WaterProductivity"}
	var idx []string
	data := make([][]float64, len(cols))
	for _, c := range scenario.Crops {
		for _, cy := range r.CropYearlyWaterYear[c.Name] {
			idx = append(idx, c.Name+"_"+strconv.Itoa(cy.Year))
			data[0] = append(data[0], cy.ETci)
			data[1] = append(data[1], cy.PctIrrCWRMet)
			data[2] = append(data[2], cy.PctRainfedCWRMet)
			data[3] = append(data[3], cy.IrrYield)
			data[4] = append(data[4], cy.RainfedYield)
			data[5] = append(data[5], cy.AvgYield)
			data[6] = append(data[6], cy.ProductionTotal)
			data[7] = append(data[7], cy.WaterProductivity)
		}
	}
	return CSVTable{Index: idx, Columns: cols, Data: data}
}

// droughtWaterYearTable is the water-year counterpart of droughtTable,
// read from DroughtIndexByWaterYear.
func droughtWaterYearTable(r *wbe.Results) CSVTable {
	cols := []string{"DroughtProofingIndex"}
	var idx []string
	var vals []float64
	for year, v := range r.DroughtIndexByWaterYear {
		idx = append(idx, strconv.Itoa(year))
		vals = append(vals, v)
	}
	return CSVTable{Index: idx, Columns: cols, Data: [][]float64{vals}}
}
