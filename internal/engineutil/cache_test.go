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

import "testing"

func TestPathCacheResolveAbsolute(t *testing.T) {
	c := newPathCache()
	got, err := c.Resolve("/abs/path/input.csv", "/master")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/abs/path/input.csv" {
		t.Errorf("have %q, want the absolute path unchanged", got)
	}
}

func TestPathCacheResolveRelativeJoinsMaster(t *testing.T) {
	c := newPathCache()
	got, err := c.Resolve("Datasets/input.csv", "/master")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "/master/Datasets/input.csv"
	if got != want {
		t.Errorf("have %q, want %q", got, want)
	}
}

func TestPathCacheResolveMemoizes(t *testing.T) {
	c := newPathCache()
	first, _ := c.Resolve("Datasets/input.csv", "/master")
	c.cache[[2]string{"Datasets/input.csv", "/master"}] = "/overridden"
	second, _ := c.Resolve("Datasets/input.csv", "/master")
	if second != "/overridden" {
		t.Errorf("want the memoized value to be returned on the second call, got %q (first was %q)", second, first)
	}
}
