// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homology/chain"
)

// HomologySymbol is the group name used by LaTeX.
const HomologySymbol = "H"

const (
	latexPreamble = `\documentclass{article}
\usepackage[T1]{fontenc}
\usepackage[english]{babel}
\usepackage{amsmath}
\usepackage{amsfonts}

\begin{document}

`
	latexPostamble = `

\end{document}
`
)

// LaTeXRing maps a short ring name to its LaTeX symbol: "Z" → \mathbb{Z},
// "Zp" → \mathbb{Z}_{p}. Other names are returned unchanged.
func LaTeXRing(ring string) string {
	if ring == integersName {
		return `\mathbb{Z}`
	}
	if p, ok := strings.CutPrefix(ring, integersName); ok && isDigits(p) {
		return `\mathbb{Z}_{` + p + `}`
	}

	return ring
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// LaTeX renders h as an align* block with one line per dimension:
//
//	\begin{align*}
//	    H_{0} &= \mathbb{Z}
//	    H_{1} &= \mathbb{Z}_{2}
//	\end{align*}
//
// Free parts print as R or R^{k}, torsion as \oplus \mathbb{Z}_{t} over Z.
// Homology with no dimensions renders as "H &= 0".
func LaTeX[T any](h *chain.Homology[T], ring string) string {
	var b strings.Builder
	b.WriteString("\\begin{align*}\n")
	if h.Len() == 0 {
		fmt.Fprintf(&b, "    %s &= 0\n", HomologySymbol)
	}
	sym := LaTeXRing(ring)
	for n, g := range h.All() {
		var parts []string
		switch k := g.FreeRank(); {
		case k == 1:
			parts = append(parts, sym)
		case k > 1:
			parts = append(parts, fmt.Sprintf("%s^{%d}", sym, k))
		}
		for _, t := range g.Torsion() {
			if ring == integersName {
				parts = append(parts, fmt.Sprintf(`\mathbb{Z}_{%v}`, t))
			} else {
				parts = append(parts, fmt.Sprintf(`%s/(%v)`, sym, t))
			}
		}
		rhs := "0"
		if len(parts) > 0 {
			rhs = strings.Join(parts, ` \oplus `)
		}
		fmt.Fprintf(&b, "    %s_{%d} &= %s\n", HomologySymbol, n, rhs)
	}
	b.WriteString(`\end{align*}`)

	return b.String()
}

// Document wraps body in a standalone LaTeX article.
func Document(body string) string {
	return latexPreamble + body + latexPostamble
}
