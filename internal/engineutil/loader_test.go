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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func fixtureInputTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "Datasets", "Inputs", "csv_inputs", "input.csv"), strings.TrimLeft(`
latitude,20
net_crop_sown_area,10
fallow_area,90
total_area,100
soil_texture_1,Clay
hsc_1,Good
soil_depth_1,0.5
soil_dist_1,50
soil_texture_2,Clay
hsc_2,Good
soil_depth_2,0.5
soil_dist_2,50
crop_1_name,Wheat
crop_1_sowing_month,1
crop_1_sowing_week,1
crop_1_irrigated_area,10
crop_1_rainfed_area,0
`, "\n"))

	writeFile(t, filepath.Join(root, "Datasets", "Inputs", "csv_inputs", "interventions_baseline.csv"), "")

	writeFile(t, filepath.Join(root, "Datasets", "Inputs", "mandatory_inputs", "pcp.csv"), strings.TrimLeft(`
date,mm
01/01/2020,0
01/02/2020,20
`, "\n"))

	writeFile(t, filepath.Join(root, "Datasets", "Inputs", "mandatory_inputs", "temp.csv"), strings.TrimLeft(`
year,month,tmax,tmin,tmean
2020,1,28,12,20
2020,2,30,14,22
`, "\n"))

	writeFile(t, filepath.Join(root, "Datasets", "Inputs", "static_inputs", "radiation_db.csv"), strings.TrimLeft(`
lat,jan,feb,mar,apr,may,jun,jul,aug,sep,oct,nov,dec
20,16,17,18,19,20,21,22,21,20,19,18,17
`, "\n"))

	writeFile(t, filepath.Join(root, "Datasets", "Inputs", "static_inputs", "crop_db.csv"), strings.TrimLeft(`
name,l_ini,l_dev,l_mid,l_late,kc_ini,kc_mid,kc_end,min_rd,max_rd,ky,yield,price,cover_type,treatment_type,cn_sand,cn_sandyloam,cn_loam,cn_clayeyloam,cn_clay
Wheat,10,10,10,10,0.5,1.1,0.7,0.3,0.6,1.0,3,2000,Row Crop,Straight Row,60,65,70,75,78
`, "\n"))

	return root
}

func TestLoadScenarioBuildsCompleteScenario(t *testing.T) {
	root := fixtureInputTree(t)
	cfg := NewConfig(root, 0)
	scenario, err := LoadScenario(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scenario.Latitude != 20 {
		t.Errorf("have latitude %v, want 20", scenario.Latitude)
	}
	if len(scenario.Crops) != 1 || scenario.Crops[0].Name != "Wheat" {
		t.Fatalf("want one Wheat crop, got %+v", scenario.Crops)
	}
	if len(scenario.Precip) != 2 {
		t.Errorf("want 2 precip rows, got %d", len(scenario.Precip))
	}
	if _, ok := scenario.CropDB["Wheat"]; !ok {
		t.Error("want a Wheat entry in the crop database")
	}
	if scenario.RadiationByMonth[0] != 16 {
		t.Errorf("have January radiation %v, want 16", scenario.RadiationByMonth[0])
	}
}

func TestLoadScenarioRejectsUnknownCrop(t *testing.T) {
	root := fixtureInputTree(t)
	writeFile(t, filepath.Join(root, "Datasets", "Inputs", "csv_inputs", "input.csv"), strings.TrimLeft(`
latitude,20
net_crop_sown_area,10
fallow_area,90
total_area,100
crop_1_name,Mystery
crop_1_sowing_month,1
crop_1_sowing_week,1
crop_1_irrigated_area,10
`, "\n"))
	cfg := NewConfig(root, 0)
	if _, err := LoadScenario(cfg); err == nil {
		t.Error("want error for a crop absent from crop_db.csv")
	}
}
