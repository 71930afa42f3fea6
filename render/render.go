// SPDX-License-Identifier: MIT

// Package render formats homology groups for people: a raw list form, LaTeX,
// a terminal table and Markdown.
//
// Every renderer takes the ring's short name ("Z", "Z2", "Z7", …) and
// prints coefficients with fmt, so any element type with a String method
// renders naturally.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homology/chain"
)

const (
	integersName = "Z"
	directSum    = " ⊕ "
)

// Plain renders Betti numbers and torsion coefficients as two lists,
// e.g. "[1, 1, 0], [[], [2], []]".
func Plain[T any](h *chain.Homology[T]) string {
	var betti, tor []string
	for _, g := range h.All() {
		betti = append(betti, fmt.Sprint(g.FreeRank()))
		ts := make([]string, 0)
		for _, t := range g.Torsion() {
			ts = append(ts, fmt.Sprint(t))
		}
		tor = append(tor, "["+strings.Join(ts, ", ")+"]")
	}

	return "[" + strings.Join(betti, ", ") + "], [" + strings.Join(tor, ", ") + "]"
}

// Group renders one homology group in plain text, e.g. "Z^2 ⊕ Z/2" or "0".
func Group[T any](g chain.Group[T], ring string) string {
	var parts []string
	switch k := g.FreeRank(); {
	case k == 1:
		parts = append(parts, ring)
	case k > 1:
		parts = append(parts, fmt.Sprintf("%s^%d", ring, k))
	}
	for _, t := range g.Torsion() {
		if ring == integersName {
			parts = append(parts, fmt.Sprintf("Z/%v", t))
		} else {
			parts = append(parts, fmt.Sprintf("%s/(%v)", ring, t))
		}
	}
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, directSum)
}

// torsionList joins torsion coefficients with commas.
func torsionList[T any](g chain.Group[T]) string {
	ts := g.Torsion()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = fmt.Sprint(t)
	}

	return strings.Join(out, ", ")
}
