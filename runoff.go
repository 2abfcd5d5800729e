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

// DailyRunoff is the C5 output: SCS-CN runoff generation.
type DailyRunoff struct {
	S, Ia, Q, Peff, EffRain []float64
}

// BuildRunoff runs the C5 generator over the curve-number and
// precipitation series.
func BuildRunoff(climate *DailyClimate, cn *CNSeries) *DailyRunoff {
	n := len(climate.Dates)
	out := &DailyRunoff{
		S: make([]float64, n), Ia: make([]float64, n),
		Q: make([]float64, n), Peff: make([]float64, n), EffRain: make([]float64, n),
	}
	for i := range climate.Dates {
		p := climate.Precip[i]
		s := 25400/cn.CN[i] - 254
		ia := s * IaCoeff

		rechargeSrc := p * KGWR
		rainSrc := p - rechargeSrc

		den := p + s - ia
		var q float64
		if den != 0 {
			q = (p - ia) * (p - ia) / den
		}
		if rainSrc < ia {
			q = 0
		}

		out.S[i] = s
		out.Ia[i] = ia
		out.Q[i] = q
		out.Peff[i] = p - q
		out.EffRain[i] = rainSrc - q
	}
	return out
}
