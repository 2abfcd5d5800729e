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
	"sync"
)

// pathCache memoises the resolved absolute path for a (source,
// masterPath) pair. It is a pure function of its inputs: no
// cross-scenario state survives a run, so a fresh cache is created per
// invocation rather than shared as a package-level global.
type pathCache struct {
	mu sync.Mutex
	cache map[[2]string]string
}

func newPathCache() *pathCache {
	return &pathCache{cache: make(map[[2]string]string)}
}

// Resolve returns the absolute path of source relative to masterPath,
// memoising the result.
func (p *pathCache) Resolve(source, masterPath string) (string, error) {
	key := [2]string{source, masterPath}
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.cache[key]; ok {
		return v, nil
	}
	if filepath.IsAbs(source) {
		p.cache[key] = source
		return source, nil
	}
	abs, err := filepath.Abs(filepath.Join(masterPath, source))
	if err != nil {
		return "", err
	}
	p.cache[key] = abs
	return abs, nil
}
