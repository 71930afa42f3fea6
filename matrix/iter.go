// SPDX-License-Identifier: MIT

package matrix

import "iter"

// Values yields every entry in row-major order.
// The sequence is lazy, finite and can be ranged over repeatedly; it reflects
// the matrix contents at the time each entry is reached.
func (m *Dense[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(m.data); i++ {
			if !yield(m.data[i]) {
				return
			}
		}
	}
}

// Backward yields every entry in reverse row-major order.
func (m *Dense[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(m.data) - 1; i >= 0; i-- {
			if !yield(m.data[i]) {
				return
			}
		}
	}
}

// All yields (Index, value) pairs in row-major order.
func (m *Dense[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i := 0; i < m.r; i++ {
			for j := 0; j < m.c; j++ {
				if !yield(Index{Row: i, Col: j}, m.data[i*m.c+j]) {
					return
				}
			}
		}
	}
}
