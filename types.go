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

// ClimateType selects the regional climate used to pick the kei soil-
// evaporation constant.
type ClimateType string

// Climate options recognised by the kei lookup.
const (
	ClimateSemiArid  ClimateType = "semi arid"
	ClimateTemperate ClimateType = "temperate"
)

// SoilTexture is one of the five textures the reference soil-capacity
// lookup recognises.
type SoilTexture string

// Soil textures recognised by the AWC lookup.
const (
	TextureSand       SoilTexture = "Sand"
	TextureSandyLoam  SoilTexture = "Sandy Loam"
	TextureLoam       SoilTexture = "Loam"
	TextureClayeyLoam SoilTexture = "Clayey Loam"
	TextureClay       SoilTexture = "Clay"
)

// HSC is the hydrologic soil class used by the curve-number lookup.
type HSC string

// Hydrologic soil classes.
const (
	HSCPoor HSC = "Poor"
	HSCGood HSC = "Good"
)

// SoilLayer describes one of the two layers of a SoilProfile.
type SoilLayer struct {
	Texture  SoilTexture
	Class    HSC
	DepthM   float64 // layer depth, meters
	SharePct float64 // percentage of the profile occupied by this layer
}

// AWC returns the available-water-capacity (mm/m) of the layer's texture.
func (l SoilLayer) AWC() float64 {
	return AWC[l.Texture]
}

// SoilProfile is the two-layer soil description of the watershed.
type SoilProfile struct {
	Layer1, Layer2 SoilLayer
}

// Capacity returns the depth/share-weighted available water capacity of
// the profile: Σ(depth·AWC·share)/100.
func (s SoilProfile) Capacity() float64 {
	c1 := s.Layer1.DepthM * s.Layer1.AWC() * s.Layer1.SharePct
	c2 := s.Layer2.DepthM * s.Layer2.AWC() * s.Layer2.SharePct
	return (c1 + c2) / 100
}

// Watershed holds the land-use fractions of the basin. All values
// are hectares.
type Watershed struct {
	NetCropSown float64
	Fallow      float64
	BuiltUp     float64
	WaterBodies float64
	Pasture     float64
	Forest      float64

	// TotalAreaHa is the configured total area, which must equal the
	// sum of the land-use fractions within 1e-6 ha.
	TotalAreaHa float64
}

// SumAreas returns the sum of the six land-use fractions.
func (w Watershed) SumAreas() float64 {
	return w.NetCropSown + w.Fallow + w.BuiltUp + w.WaterBodies + w.Pasture + w.Forest
}

// FallowAreaRecharge is the combined area of all non-crop land cover
// that is routed through the fallow SMD recursion.
func (w Watershed) FallowAreaRecharge() float64 {
	return w.Fallow + w.BuiltUp + w.WaterBodies + w.Pasture + w.Forest
}

// Validate checks the area-conservation invariant.
func (w Watershed) Validate() error {
	for name, v := range map[string]float64{
		"NetCropSown": w.NetCropSown, "Fallow": w.Fallow, "BuiltUp": w.BuiltUp,
		"WaterBodies": w.WaterBodies, "Pasture": w.Pasture, "Forest": w.Forest,
	} {
		if v < 0 {
			return newErr(InputMalformed, name, errNegativeArea)
		}
	}
	if diff := w.SumAreas() - w.TotalAreaHa; diff > 1e-6 || diff < -1e-6 {
		return newErr(InputMalformed, "TotalAreaHa", errAreaMismatch)
	}
	return nil
}

// CropStage indexes the four FAO-56 growth stages.
type CropStage int

// Growth stages, in chronological order.
const (
	StageIni CropStage = iota
	StageDev
	StageMid
	StageLate
	numStages
)

// Crop is a single crop grown on one Plot.
type Crop struct {
	Name           string
	PlotID         string
	SowingMonth    int // 1-12
	SowingWeek     int // 1-4, week-of-month
	IrrigatedArea  float64
	RainfedArea    float64
	CoverType      string
	TreatmentType  string
	Ky             float64
	PotentialYield float64 // t/ha
	PricePerTonne  float64

	// StageDays holds the rounded stage lengths in days, indexed by
	// CropStage (fractional > 0.5 rounds up, else down).
	StageDays [numStages]int
	// StageKc holds the crop coefficient for each stage.
	StageKc [numStages]float64

	MinRootDepthM float64
	MaxRootDepthM float64

	// DepletionFraction is the constant readily-available-water
	// depletion fraction p.
	DepletionFraction float64
}

// Area returns the crop's total sown area (irrigated + rainfed).
func (c *Crop) Area() float64 { return c.IrrigatedArea + c.RainfedArea }

// TotalGrowthDays returns the sum of the four stage lengths.
func (c *Crop) TotalGrowthDays() int {
	total := 0
	for _, d := range c.StageDays {
		total += d
	}
	return total
}

// SowingDate returns the sowing date for the crop in the given calendar
// year: first day of sowing month + (week-1)*7 days.
func (c *Crop) SowingDate(year int) time.Time {
	first := time.Date(year, time.Month(c.SowingMonth), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 0, (c.SowingWeek-1)*7)
}

// Plot is a logical grouping of crops that share a root zone. This
// implementation is one-crop-per-plot, but the aggregation formulas
// are written as sums over Crops to preserve multi-crop semantics if
// the portfolio grows.
type Plot struct {
	ID    string
	Crops []*Crop
}

// NSA returns the plot's net sown area: the sum of its crops' total
// areas. It is constant across the simulation.
func (p *Plot) NSA() float64 {
	var total float64
	for _, c := range p.Crops {
		total += c.Area()
	}
	return total
}

// SupplySideIntervention describes one supply-side structure.
type SupplySideIntervention struct {
	VolumeM3                 float64
	DepthM                   float64
	InfiltrationRateMMPerDay float64
	CostPerM3                float64
	LifeSpanYears            float64
	MaintenancePct           float64
	// NumberOfUnits is only meaningful for Injection Wells, where the
	// monthly added-recharge capacity depends on the well count.
	NumberOfUnits float64
}

// SupplySidePortfolio holds the four supply-side structure types.
type SupplySidePortfolio struct {
	FarmPondUnlined  SupplySideIntervention
	FarmPondLined    SupplySideIntervention
	CheckDam         SupplySideIntervention
	InfiltrationPond SupplySideIntervention
	InjectionWells   SupplySideIntervention
}

// PerCropIntervention is a demand-side or soil-moisture intervention
// type: a portfolio-wide efficiency/CN-reduction constant plus an area
// assigned per crop.
type PerCropIntervention struct {
	AreaByCrop map[string]float64

	// EfficiencyPct is used by demand-side interventions.
	EfficiencyPct float64
	// CNReduction and EvapReductionPct are used by soil-moisture
	// interventions.
	CNReduction      float64
	EvapReductionPct float64

	CostPerArea    float64
	LifeSpanYears  float64
	MaintenancePct float64
}

// Area returns the area assigned to cropName, or 0 if none.
func (p PerCropIntervention) Area(cropName string) float64 {
	if p.AreaByCrop == nil {
		return 0
	}
	return p.AreaByCrop[cropName]
}

// DemandSidePortfolio holds the eight efficiency-improvement
// interventions.
type DemandSidePortfolio struct {
	Drip          PerCropIntervention
	Sprinkler     PerCropIntervention
	LandLevelling PerCropIntervention
	DSR           PerCropIntervention
	AWD           PerCropIntervention
	SRI           PerCropIntervention
	RidgeFurrow   PerCropIntervention
	Deficit       PerCropIntervention
}

// all returns the eight demand-side intervention types in a stable
// order, for iteration.
func (d *DemandSidePortfolio) all() []*PerCropIntervention {
	return []*PerCropIntervention{&d.Drip, &d.Sprinkler, &d.LandLevelling, &d.DSR,
		&d.AWD, &d.SRI, &d.RidgeFurrow, &d.Deficit}
}

// SoilMoisturePortfolio holds the six soil-moisture-conservation
// interventions.
type SoilMoisturePortfolio struct {
	Cover         PerCropIntervention
	Mulching      PerCropIntervention
	BBF           PerCropIntervention
	Bunds         PerCropIntervention
	Tillage       PerCropIntervention
	TankDesilting PerCropIntervention
}

func (s *SoilMoisturePortfolio) all() []*PerCropIntervention {
	return []*PerCropIntervention{&s.Cover, &s.Mulching, &s.BBF, &s.Bunds, &s.Tillage, &s.TankDesilting}
}

// InterventionPortfolio is the full set of interventions configured for
// a scenario. A baseline scenario has an empty portfolio.
type InterventionPortfolio struct {
	Supply       SupplySidePortfolio
	Demand       DemandSidePortfolio
	SoilMoisture SoilMoisturePortfolio
}

// Validate enforces the area invariant: no single intervention's area
// for a crop may exceed that crop's total area.
func (ip *InterventionPortfolio) Validate(crops []*Crop) error {
	areaByName := make(map[string]float64, len(crops))
	for _, c := range crops {
		areaByName[c.Name] = c.Area()
	}
	check := func(label string, pci PerCropIntervention) error {
		for cropName, area := range pci.AreaByCrop {
			total, ok := areaByName[cropName]
			if !ok {
				return newErr(CropNotInDB, cropName, nil)
			}
			if area > total+1e-9 {
				return newErr(AreaInvariant, label+"/"+cropName, errAreaExceedsCrop)
			}
		}
		return nil
	}
	demandLabels := []string{"Drip", "Sprinkler", "LandLevelling", "DSR", "AWD", "SRI", "RidgeFurrow", "Deficit"}
	for i, pci := range ip.Demand.all() {
		if err := check(demandLabels[i], *pci); err != nil {
			return err
		}
	}
	soilLabels := []string{"Cover", "Mulching", "BBF", "Bunds", "Tillage", "TankDesilting"}
	for i, pci := range ip.SoilMoisture.all() {
		if err := check(soilLabels[i], *pci); err != nil {
			return err
		}
	}
	return nil
}

// CropDBEntry is one row of the static crop database.
type CropDBEntry struct {
	Name              string
	CoverType         string
	TreatmentType     string
	StageDays         [numStages]int
	StageKc           [numStages]float64
	MinRootDepthM     float64
	MaxRootDepthM     float64
	DepletionFraction float64
	Ky                float64
	PotentialYield    float64
	PricePerTonne     float64
}

// CNTableRow is one row of the static curve-number reference table,
// keyed by (cover_type, treatment_type, HSC) with a CN2 value per soil
// texture.
type CNTableRow struct {
	CoverType     string
	TreatmentType string
	Class         HSC
	CNByTexture   map[SoilTexture]float64
}

// MonthlyTemperature holds one month's temperature inputs.
type MonthlyTemperature struct {
	Year              int
	Month             int
	TMax, TMin, TMean float64
}

// DailyPrecip holds one day's precipitation input.
type DailyPrecip struct {
	Date time.Time
	MM   float64
}

// Demographics holds population and water-use-rate inputs that drive
// domestic/other demand in the monthly storage router.
type Demographics struct {
	Population      float64
	PerCapitaLPD    float64 // liters per person per day
	OtherUseLPD     float64 // other (non-domestic) use, liters per day, watershed-wide
	GWDependencyPct float64 // percent of domestic+other need met from groundwater
}

// SurfaceWaterConfig holds the watershed's surface/groundwater supply
// mix and efficiency inputs feeding C9.
type SurfaceWaterConfig struct {
	GWAreaSharePct  float64 // percent of NetCropSown irrigated from groundwater
	SWAreaSharePct  float64
	GWEfficiencyPct float64
	SWEfficiencyPct float64
}

// AquiferConfig holds the shallow-aquifer parameters.
type AquiferConfig struct {
	DepthM           float64
	StartingLevelM   float64
	SpecificYieldPct float64
}

// YearType selects the yearly-rollup boundary used by the output
// aggregators. "calendar" uses Jan-Dec; "crop" uses the earliest
// Kharif/Rabi/Summer sowing month as the water-year start.
type YearType string

// Year-type options.
const (
	YearTypeCalendar YearType = "calendar"
	YearTypeCrop     YearType = "crop"
)

// Scenario is the complete, self-contained input to one simulation run.
// It owns the watershed, soil, plots, crops, interventions, and climate
// series for a single baseline or intervention scenario.
type Scenario struct {
	Name string

	Latitude      float64
	Watershed     Watershed
	Soil          SoilProfile
	Plots         []*Plot
	Crops         []*Crop
	CropDB        map[string]CropDBEntry
	CNTable       []CNTableRow
	// CNDefaults is the hardcoded cover_type x texture fallback used
	// when no CNTable row matches even after dropping HSC.
	CNDefaults    map[string]map[SoilTexture]float64
	Interventions InterventionPortfolio

	Precip       []DailyPrecip
	Temperatures []MonthlyTemperature
	// RadiationByMonth holds the extraterrestrial radiation Ra for this
	// scenario's latitude, indexed 0-11 for Jan-Dec.
	RadiationByMonth [12]float64

	// CanalSupplyM3 holds twelve months of canal water availability,
	// indexed 0-11 for the first year of the series; the router cycles
	// through it by calendar month.
	CanalSupplyM3 [12]float64

	Demographics Demographics
	SurfaceWater SurfaceWaterConfig
	Aquifer      AquiferConfig

	// WithOutSoilCon scales the untreated-area AWC in the
	// conservation-practice capacity blend, as a percent; 100 in
	// baseline.
	WithOutSoilCon float64

	// Climate selects the kei constant used by the soil-evaporation
	// coefficient; defaults to semi-arid when unset.
	Climate ClimateType

	YearType YearType
}
