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

import (
	"fmt"
	"math"
	"time"
)

// DailyClimate is the output of the climate preprocessor (C1): reference
// ET and rolling rainfall aligned one-to-one with the scenario's
// precipitation series.
type DailyClimate struct {
	Dates []time.Time
	Precip []float64
	ETo []float64 // EToi_d, mm/day
	Rain5 []float64 // trailing 5-day sum of Pi, right-closed, min_periods=1
}

type yearMonth struct {
	year, month int
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildClimate runs the C1 preprocessor over the scenario's
// precipitation series.
func BuildClimate(s *Scenario) (*DailyClimate, error) {
	if len(s.Precip) == 0 {
		return nil, newErr(InputMissing, "Precip", nil)
	}

	tempByMonth := make(map[yearMonth]MonthlyTemperature, len(s.Temperatures))
	for _, t := range s.Temperatures {
		tempByMonth[yearMonth{t.Year, t.Month}] = t
	}

	etomCache := make(map[yearMonth]float64)
	etoFor := func(ym yearMonth) (float64, error) {
		if v, ok := etomCache[ym]; ok {
			return v, nil
		}
		t, ok := tempByMonth[ym]
		if !ok {
			return 0, newErr(InputMissing, fmt.Sprintf("temperature %04d-%02d", ym.year, ym.month), nil)
		}
		ra := s.RadiationByMonth[ym.month-1]
		dim := daysInMonth(ym.year, ym.month)
		etom := 0.0023 * ra * math.Sqrt(math.Max(0, t.TMax-t.TMin)) * (t.TMean + 17.8) * float64(dim)
		etomCache[ym] = etom
		return etom, nil
	}

	n := len(s.Precip)
	out := &DailyClimate{
		Dates: make([]time.Time, n),
		Precip: make([]float64, n),
		ETo: make([]float64, n),
		Rain5: make([]float64, n),
	}

	for i, dp := range s.Precip {
		out.Dates[i] = dp.Date
		out.Precip[i] = dp.MM

		ym := yearMonth{dp.Date.Year(), int(dp.Date.Month())}
		etom, err := etoFor(ym)
		if err != nil {
			return nil, err
		}
		out.ETo[i] = etom / float64(daysInMonth(ym.year, ym.month))

		window := 5
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for j := start; j <= i; j++ {
			sum += s.Precip[j].MM
		}
		out.Rain5[i] = sum
	}

	return out, nil
}
