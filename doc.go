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

// Package wbe is a watershed-scale drought-proofing water-balance engine.
//
// It simulates the coupled movement of water through three linked storage
// buckets -- surface runoff and on-land storage, an unsaturated soil/root-zone
// column, and a shallow aquifer -- driven by daily precipitation, monthly
// temperature, crop phenology, land use, soil profile, and a portfolio of
// supply-side, demand-side, and soil-moisture interventions.
//
// This package holds the pure numerical core: no file I/O, no CLI, no
// logging. Callers assemble a Scenario from their own input loading and call
// Simulate to obtain daily, monthly, and per-crop results.
package wbe
