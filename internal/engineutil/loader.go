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
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dpwatershed/wbe"
)

// LoadScenario assembles a wbe.Scenario from the on-disk input layout:
// input.csv (watershed/soil/demographic parameters),
// interventions_*.csv (portfolio), pcp.csv/temp.csv/irrigation.csv
// (climate series), crop_db.csv and radiation_db.csv (static tables).
func LoadScenario(c *Config) (*wbe.Scenario, error) {
	if err := LoadKeyValueCSV(c, c.InputsPath("csv_inputs", "input.csv")); err != nil {
		return nil, err
	}
	if err := LoadKeyValueCSV(c, c.InterventionsFile()); err != nil {
		return nil, err
	}

	s := &wbe.Scenario{
		Latitude: c.Float("latitude"),
		Watershed: wbe.Watershed{
			NetCropSown: c.Float("net_crop_sown_area"),
			Fallow: c.Float("fallow_area"),
			BuiltUp: c.Float("built_up_area"),
			WaterBodies: c.Float("water_bodies_area"),
			Pasture: c.Float("pasture_area"),
			Forest: c.Float("forest_area"),
			TotalAreaHa: c.Float("total_area"),
		},
		Soil: wbe.SoilProfile{
			Layer1: wbe.SoilLayer{
				Texture: wbe.SoilTexture(c.String("soil_texture_1")),
				Class: wbe.HSC(c.String("hsc_1")),
				DepthM: c.Float("soil_depth_1"),
				SharePct: c.Float("soil_dist_1"),
			},
			Layer2: wbe.SoilLayer{
				Texture: wbe.SoilTexture(c.String("soil_texture_2")),
				Class: wbe.HSC(c.String("hsc_2")),
				DepthM: c.Float("soil_depth_2"),
				SharePct: c.Float("soil_dist_2"),
			},
		},
		Demographics: wbe.Demographics{
			Population: c.Float("population"),
			PerCapitaLPD: c.Float("per_capita_water_use_lpd"),
			OtherUseLPD: c.Float("other_water_use_lpd"),
			GWDependencyPct: c.Float("gw_dependency_pct"),
		},
		SurfaceWater: wbe.SurfaceWaterConfig{
			GWAreaSharePct: c.Float("gw_area_share_pct"),
			SWAreaSharePct: c.Float("sw_area_share_pct"),
			GWEfficiencyPct: c.Float("gw_efficiency_pct"),
			SWEfficiencyPct: c.Float("sw_efficiency_pct"),
		},
		Aquifer: wbe.AquiferConfig{
			DepthM: c.Float("aquifer_depth"),
			StartingLevelM: c.Float("aquifer_starting_level"),
			SpecificYieldPct: c.Float("specific_yield_pct"),
		},
		WithOutSoilCon: withDefault(c.Float("with_out_soil_con"), 100),
		Climate: wbe.ClimateType(withDefaultStr(c.String("climate"), string(wbe.ClimateSemiArid))),
		YearType: wbe.YearType(withDefaultStr(c.String("year_type"), "calendar")),
	}

	precip, err := loadPrecip(c)
	if err != nil {
		return nil, err
	}
	s.Precip = precip

	temps, err := loadTemps(c)
	if err != nil {
		return nil, err
	}
	s.Temperatures = temps

	radiation, err := loadRadiation(c, s.Latitude)
	if err != nil {
		return nil, err
	}
	s.RadiationByMonth = radiation

	canal, err := loadCanal(c)
	if err != nil {
		return nil, err
	}
	s.CanalSupplyM3 = canal

	cropDB, cnTable, cnDefaults, err := loadCropDB(c)
	if err != nil {
		return nil, err
	}
	s.CropDB = cropDB
	s.CNTable = cnTable
	s.CNDefaults = cnDefaults

	crops, plots, err := buildCrops(c, cropDB)
	if err != nil {
		return nil, err
	}
	s.Crops = crops
	s.Plots = plots
	s.Interventions = loadInterventions(c, crops)

	return s, nil
}

func loadSupplySide(c *Config, prefix string) wbe.SupplySideIntervention {
	return wbe.SupplySideIntervention{
		VolumeM3: c.Float(prefix + "_volume"),
		DepthM: c.Float(prefix + "_depth"),
		InfiltrationRateMMPerDay: c.Float(prefix + "_infiltration_rate"),
		CostPerM3: c.Float(prefix + "_cost"),
		LifeSpanYears: c.Float(prefix + "_life_span"),
		MaintenancePct: c.Float(prefix + "_maintenance_pct"),
		NumberOfUnits: withDefault(c.Float(prefix+"_number_of_units"), 1),
	}
}

func loadPerCrop(c *Config, prefix string, crops []*wbe.Crop) wbe.PerCropIntervention {
	pci := wbe.PerCropIntervention{
		AreaByCrop: map[string]float64{},
		EfficiencyPct: c.Float(prefix + "_efficiency_pct"),
		CNReduction: c.Float(prefix + "_cn_reduction"),
		EvapReductionPct: c.Float(prefix + "_evap_reduction_pct"),
		CostPerArea: c.Float(prefix + "_cost_per_area"),
		LifeSpanYears: c.Float(prefix + "_life_span"),
		MaintenancePct: c.Float(prefix + "_maintenance_pct"),
	}
	for _, crop := range crops {
		area := c.Float(prefix + "_area_" + crop.Name)
		if area > 0 {
			pci.AreaByCrop[crop.Name] = area
		}
	}
	return pci
}

// loadInterventions builds the intervention portfolio from the
// key/value interventions file already merged into c.Viper.
func loadInterventions(c *Config, crops []*wbe.Crop) wbe.InterventionPortfolio {
	return wbe.InterventionPortfolio{
		Supply: wbe.SupplySidePortfolio{
			FarmPondUnlined: loadSupplySide(c, "farm_pond_unlined"),
			FarmPondLined: loadSupplySide(c, "farm_pond_lined"),
			CheckDam: loadSupplySide(c, "check_dam"),
			InfiltrationPond: loadSupplySide(c, "infiltration_pond"),
			InjectionWells: loadSupplySide(c, "injection_wells"),
		},
		Demand: wbe.DemandSidePortfolio{
			Drip: loadPerCrop(c, "drip", crops),
			Sprinkler: loadPerCrop(c, "sprinkler", crops),
			LandLevelling: loadPerCrop(c, "land_levelling", crops),
			DSR: loadPerCrop(c, "dsr", crops),
			AWD: loadPerCrop(c, "awd", crops),
			SRI: loadPerCrop(c, "sri", crops),
			RidgeFurrow: loadPerCrop(c, "ridge_furrow", crops),
			Deficit: loadPerCrop(c, "deficit", crops),
		},
		SoilMoisture: wbe.SoilMoisturePortfolio{
			Cover: loadPerCrop(c, "cover", crops),
			Mulching: loadPerCrop(c, "mulching", crops),
			BBF: loadPerCrop(c, "bbf", crops),
			Bunds: loadPerCrop(c, "bunds", crops),
			Tillage: loadPerCrop(c, "tillage", crops),
			TankDesilting: loadPerCrop(c, "tank_desilting", crops),
		},
	}
}

// buildCrops reads the numbered crop_N_* keys set by input.csv's
// cropping-pattern section and merges each against its static
// crop_db.csv row. One plot is created per crop (one crop per
// plot in this implementation).
func buildCrops(c *Config, cropDB map[string]wbe.CropDBEntry) ([]*wbe.Crop, []*wbe.Plot, error) {
	var crops []*wbe.Crop
	var plots []*wbe.Plot
	for i := 1; ; i++ {
		prefix := "crop_" + strconv.Itoa(i) + "_"
		name := c.String(prefix + "name")
		if name == "" {
			break
		}
		entry, ok := cropDB[name]
		if !ok {
			return nil, nil, &loaderError{"CropNotInDB", name}
		}
		crop := &wbe.Crop{
			Name: name,
			PlotID: "plot_" + strconv.Itoa(i),
			SowingMonth: int(c.Float(prefix + "sowing_month")),
			SowingWeek: int(c.Float(prefix + "sowing_week")),
			IrrigatedArea: c.Float(prefix + "irrigated_area"),
			RainfedArea: c.Float(prefix + "rainfed_area"),
			CoverType: withDefaultStr(c.String(prefix+"cover_type"), name),
			TreatmentType: c.String(prefix + "treatment_type"),
			Ky: entry.Ky,
			PotentialYield: entry.PotentialYield,
			PricePerTonne: entry.PricePerTonne,
			StageDays: entry.StageDays,
			StageKc: entry.StageKc,
			MinRootDepthM: entry.MinRootDepthM,
			MaxRootDepthM: entry.MaxRootDepthM,
			DepletionFraction: withDefault(c.Float(prefix+"depletion_fraction"), 0.5),
		}
		plot := &wbe.Plot{ID: crop.PlotID, Crops: []*wbe.Crop{crop}}
		crops = append(crops, crop)
		plots = append(plots, plot)
	}
	return crops, plots, nil
}

func withDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func withDefaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func loadPrecip(c *Config) ([]wbe.DailyPrecip, error) {
	f, err := os.Open(c.InputsPath("mandatory_inputs", "pcp.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	var out []wbe.DailyPrecip
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			continue
		}
		d, err := time.Parse("01/02/2006", strings.TrimSpace(rec[0]))
		if err != nil {
			continue // header row
		}
		mm, _ := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		out = append(out, wbe.DailyPrecip{Date: d, MM: mm})
	}
	return out, nil
}

func loadTemps(c *Config) ([]wbe.MonthlyTemperature, error) {
	f, err := os.Open(c.InputsPath("mandatory_inputs", "temp.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	var out []wbe.MonthlyTemperature
	for i, rec := range rows {
		if i == 0 || len(rec) < 5 {
			continue
		}
		year, _ := strconv.Atoi(strings.TrimSpace(rec[0]))
		month, _ := strconv.Atoi(strings.TrimSpace(rec[1]))
		tmax, _ := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		tmin, _ := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
		tmean, _ := strconv.ParseFloat(strings.TrimSpace(rec[4]), 64)
		out = append(out, wbe.MonthlyTemperature{Year: year, Month: month, TMax: tmax, TMin: tmin, TMean: tmean})
	}
	return out, nil
}

func loadRadiation(c *Config, latitude float64) ([12]float64, error) {
	var out [12]float64
	f, err := os.Open(c.InputsPath("static_inputs", "radiation_db.csv"))
	if err != nil {
		return out, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return out, err
	}
	closest := -1
	bestDiff := -1.0
	for i, rec := range rows {
		if i == 0 || len(rec) < 13 {
			continue
		}
		lat, _ := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		diff := lat - latitude
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			bestDiff, closest = diff, i
		}
	}
	if closest < 0 {
		return out, errRadiationMissing
	}
	for m := 0; m < 12; m++ {
		v, _ := strconv.ParseFloat(strings.TrimSpace(rows[closest][m+1]), 64)
		out[m] = v
	}
	return out, nil
}

func loadCanal(c *Config) ([12]float64, error) {
	var out [12]float64
	f, err := os.Open(c.InputsPath("mandatory_inputs", "irrigation.csv"))
	if err != nil {
		return out, nil // optional; NaN/absent => 0
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return out, err
	}
	for i := 0; i < 12 && i < len(rows); i++ {
		if len(rows[i]) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rows[i][len(rows[i])-1]), 64)
		if err == nil {
			out[i] = v
		}
	}
	return out, nil
}

// soilTextureColumns is the fixed texture order used by crop_db.csv's
// trailing CN columns.
var soilTextureColumns = []wbe.SoilTexture{
	wbe.TextureSand, wbe.TextureSandyLoam, wbe.TextureLoam, wbe.TextureClayeyLoam, wbe.TextureClay,
}

// loadCropDB reads the static per-crop phenology/yield/CN table. Each
// row carries cover_type/treatment_type plus a CN2 value per soil
// texture, applied identically to both HSC classes: the reference
// table does not vary treatment-level CNs by HSC within one crop.
func loadCropDB(c *Config) (map[string]wbe.CropDBEntry, []wbe.CNTableRow, map[string]map[wbe.SoilTexture]float64, error) {
	f, err := os.Open(c.InputsPath("static_inputs", "crop_db.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	out := map[string]wbe.CropDBEntry{}
	var cnRows []wbe.CNTableRow
	cnDefaults := map[string]map[wbe.SoilTexture]float64{}

	for i, rec := range rows {
		if i == 0 || len(rec) < 20 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		stageDays := func(s string) int {
			v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
			n := int(v)
			if v-float64(n) > 0.5 {
				n++
			}
			return n
		}
		lIni := stageDays(rec[1])
		lDev := stageDays(rec[2])
		lMid := stageDays(rec[3])
		lLate := stageDays(rec[4])
		kcIni, _ := strconv.ParseFloat(strings.TrimSpace(rec[5]), 64)
		kcMid, _ := strconv.ParseFloat(strings.TrimSpace(rec[6]), 64)
		kcEnd, _ := strconv.ParseFloat(strings.TrimSpace(rec[7]), 64)
		minRd, _ := strconv.ParseFloat(strings.TrimSpace(rec[8]), 64)
		maxRd, _ := strconv.ParseFloat(strings.TrimSpace(rec[9]), 64)
		ky, _ := strconv.ParseFloat(strings.TrimSpace(rec[10]), 64)
		yield, _ := strconv.ParseFloat(strings.TrimSpace(rec[11]), 64)
		price, _ := strconv.ParseFloat(strings.TrimSpace(rec[12]), 64)
		coverType := strings.TrimSpace(rec[13])
		treatmentType := strings.TrimSpace(rec[14])

		cnByTexture := map[wbe.SoilTexture]float64{}
		for j, tex := range soilTextureColumns {
			if 15+j >= len(rec) {
				break
			}
			v, _ := strconv.ParseFloat(strings.TrimSpace(rec[15+j]), 64)
			cnByTexture[tex] = v
		}

		out[name] = wbe.CropDBEntry{
			Name: name,
			CoverType: coverType,
			TreatmentType: treatmentType,
			StageDays: [4]int{lIni, lDev, lMid, lLate},
			StageKc: [4]float64{kcIni, (kcIni + kcMid) / 2, kcMid, kcEnd},
			MinRootDepthM: minRd,
			MaxRootDepthM: maxRd,
			Ky: ky,
			PotentialYield: yield,
			PricePerTonne: price,
		}
		for _, class := range []wbe.HSC{wbe.HSCPoor, wbe.HSCGood} {
			cnRows = append(cnRows, wbe.CNTableRow{
				CoverType: coverType, TreatmentType: treatmentType, Class: class, CNByTexture: cnByTexture,
			})
		}
		if _, ok := cnDefaults[coverType]; !ok {
			cnDefaults[coverType] = cnByTexture
		}
	}
	return out, cnRows, cnDefaults, nil
}

var errRadiationMissing = &loaderError{"InputMalformed", "radiation row missing for configured latitude"}

type loaderError struct {
	kind, msg string
}

func (e *loaderError) Error() string { return e.kind + ": " + e.msg }
