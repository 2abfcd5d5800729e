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

// Physical and process-wide constants from the reference water-balance
// tool. These are read-only; scenario-specific adjustments (such as
// with_out_soil_con) are parameterised through Scenario fields, never by
// mutating these values.
const (
	// Slope is the watershed slope in percent, fixed at 0 for this
	// implementation (no distributed routing).
	Slope = 0.0

	// KGWR is the fraction of daily rainfall that is diverted to the
	// groundwater-recharge share before runoff generation.
	KGWR = 0.13

	// ThetaFC and ThetaWP are field-capacity and wilting-point moisture
	// contents in mm/m, used to derive TEW/REW.
	ThetaFC = 420.0
	ThetaWP = 300.0

	// Ze is the surface evaporation layer depth in meters.
	Ze = 0.1

	// IaCoeff is the initial-abstraction ratio (Ia/S), constant across
	// all three AMC classes.
	IaCoeff = 0.2

	// DefaultIrrigationEfficiency is the efficiency (percent) applied to
	// a crop with no irrigated area.
	DefaultIrrigationEfficiency = 50.0

	// EffDefaultWaterSaved is the default water-saving-practice
	// efficiency contribution when none is configured.
	EffDefaultWaterSaved = 0.0
)

// KeiByClimate gives the soil-evaporation coefficient kei used whenever
// a plot has no crop cover or is still in a crop's initial growth
// stage, keyed by the scenario's regional climate.
var KeiByClimate = map[ClimateType]float64{
	ClimateSemiArid:  1.05,
	ClimateTemperate: 1.10,
}

// KeiFor returns the kei constant for climate, falling back to the
// semi-arid value when climate is empty or unrecognised.
func KeiFor(climate ClimateType) float64 {
	if v, ok := KeiByClimate[climate]; ok {
		return v
	}
	return KeiByClimate[ClimateSemiArid]
}

// AWC is the available-water-capacity lookup (mm/m) by soil texture.
var AWC = map[SoilTexture]float64{
	TextureSand:       90,
	TextureSandyLoam:  125,
	TextureLoam:       175,
	TextureClayeyLoam: 200,
	TextureClay:       215,
}

// LULCCN2 holds the constant curve numbers for non-crop, non-fallow land
// use categories.
var LULCCN2 = map[string]float64{
	"Built":   90,
	"Water":   0,
	"Pasture": 79,
	"Forest":  70,
}

// cropReturnFlow holds the per-crop GW/SW return-flow fractions used by
// the irrigation-efficiency mixer. Rice has a distinct pair; all other
// crops share the default.
var cropReturnFlow = map[string][2]float64{
	"Rice": {0.325, 0.375},
}

const defaultReturnFlowGW = 0.15
const defaultReturnFlowSW = 0.20

func returnFlowFor(cropName string) (gw, sw float64) {
	if rf, ok := cropReturnFlow[cropName]; ok {
		return rf[0], rf[1]
	}
	return defaultReturnFlowGW, defaultReturnFlowSW
}

// soilConservationInterventions lists the conservation practices whose
// per-crop areas feed the soil-evaporation reduction multiplier.
var soilConservationInterventions = []string{"BBF", "Cover", "Mulching", "Bunds", "Tillage"}

// cnReductionInterventions lists intervention types whose area and
// CN-reduction constant feed the curve-number reduction. "Tank" reuses
// the "Tillage" reduction constant.
var cnReductionInterventions = []string{"Cover", "Mulching", "Bunds", "Tillage", "BBF", "Tank"}
