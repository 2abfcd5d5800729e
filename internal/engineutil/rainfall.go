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

import "github.com/dpwatershed/wbe"

// RainfallCategory classifies a year's total rainfall against the
// series' long-term average, following the conventional IMD
// departure bands. This is a post-analysis layer the core
// specification treats as an external collaborator.
type RainfallCategory string

// Rainfall departure categories.
const (
	CategoryDrought RainfallCategory = "Drought"
	CategoryBelowNormal RainfallCategory = "Below Normal"
	CategoryNormal RainfallCategory = "Normal"
	CategoryAboveNormal RainfallCategory = "Above Normal"
	CategoryExcess RainfallCategory = "Excess"
)

// YearlyRainfall is one year's total precipitation and its departure
// category.
type YearlyRainfall struct {
	Year         int
	TotalMM      float64
	DeparturePct float64
	Category     RainfallCategory
}

func categorize(departurePct float64) RainfallCategory {
	switch {
	case departurePct <= -20:
		return CategoryDrought
	case departurePct < -10:
		return CategoryBelowNormal
	case departurePct <= 10:
		return CategoryNormal
	case departurePct <= 20:
		return CategoryAboveNormal
	default:
		return CategoryExcess
	}
}

// ClassifyRainfall runs the rainfall-category post-analysis over a
// daily precipitation series.
func ClassifyRainfall(precip []wbe.DailyPrecip) []YearlyRainfall {
	totals := map[int]float64{}
	order := []int{}
	for _, dp := range precip {
		y := dp.Date.Year()
		if _, ok := totals[y]; !ok {
			order = append(order, y)
		}
		totals[y] += dp.MM
	}
	if len(order) == 0 {
		return nil
	}

	var sum float64
	for _, y := range order {
		sum += totals[y]
	}
	avg := sum / float64(len(order))

	out := make([]YearlyRainfall, len(order))
	for i, y := range order {
		var departure float64
		if avg != 0 {
			departure = (totals[y] - avg) / avg * 100
		}
		out[i] = YearlyRainfall{Year: y, TotalMM: totals[y], DeparturePct: departure, Category: categorize(departure)}
	}
	return out
}
