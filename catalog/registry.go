// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// entry is one named complex; param is true when the name takes ":n".
type entry struct {
	param bool
	build func(n int) Constructor
	usage string
}

var registry = map[string]entry{
	"point":            {build: func(int) Constructor { return Point() }, usage: "point"},
	"torus":            {build: func(int) Constructor { return Torus() }, usage: "torus"},
	"klein":            {build: func(int) Constructor { return KleinBottle() }, usage: "klein"},
	"rp2":              {build: func(int) Constructor { return ProjectivePlane() }, usage: "rp2"},
	"sphere":           {param: true, build: Sphere, usage: "sphere:<n>"},
	"lens":             {param: true, build: Lens, usage: "lens:<p>"},
	"simplex":          {param: true, build: Simplex, usage: "simplex:<n>"},
	"simplex-boundary": {param: true, build: SimplexBoundary, usage: "simplex-boundary:<n>"},
}

// Names lists the accepted forms of Parse, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.usage)
	}
	slices.Sort(out)

	return out
}

// Parse resolves a name such as "torus" or "sphere:3" to its Constructor.
//
// Errors:
//   - ErrUnknownComplex for a name not in Names.
//   - ErrParameter when the ":n" suffix is missing, extra or not an integer.
func Parse(name string) (Constructor, error) {
	base, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(name)), ":")
	e, ok := registry[base]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownComplex)
	}
	if e.param != hasArg {
		return nil, fmt.Errorf("%q: expected %s: %w", name, e.usage, ErrParameter)
	}
	n := 0
	if hasArg {
		var err error
		if n, err = strconv.Atoi(arg); err != nil {
			return nil, fmt.Errorf("%q: expected %s: %w", name, e.usage, ErrParameter)
		}
	}

	return e.build(n), nil
}
