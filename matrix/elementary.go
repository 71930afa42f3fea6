// SPDX-License-Identifier: MIT

// Package matrix - elementary row and column operations.
//
// These mutate the receiver in place and are the only primitives the
// reductions in matrix/ops need. Each one is invertible over the ring as long
// as the scalars involved are units (ScaleRow) or form a unimodular 2×2 block
// (CombineRows/CombineCols); the callers are responsible for that.
//
// Complexity: O(c) per row operation, O(r) per column operation.

package matrix

// SwapRows exchanges rows i and j.
func (m *Dense[T]) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// SwapCols exchanges columns i and j.
func (m *Dense[T]) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return denseErrorf(ctxSwapCols, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for r := 0; r < m.r; r++ {
		base := r * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}

// AddRowMultiple performs row[dst] += k * row[src]. dst must differ from src.
func (m *Dense[T]) AddRowMultiple(dst, src int, k T) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r || dst == src {
		return denseErrorf(ctxAddRow, dst, src, ErrOutOfRange)
	}
	rd, rs := m.data[dst*m.c:(dst+1)*m.c], m.data[src*m.c:(src+1)*m.c]
	for j := range rd {
		rd[j] = m.ring.Add(rd[j], m.ring.Mul(k, rs[j]))
	}

	return nil
}

// AddColMultiple performs col[dst] += k * col[src]. dst must differ from src.
func (m *Dense[T]) AddColMultiple(dst, src int, k T) error {
	if dst < 0 || dst >= m.c || src < 0 || src >= m.c || dst == src {
		return denseErrorf(ctxAddCol, dst, src, ErrOutOfRange)
	}
	for r := 0; r < m.r; r++ {
		base := r * m.c
		m.data[base+dst] = m.ring.Add(m.data[base+dst], m.ring.Mul(k, m.data[base+src]))
	}

	return nil
}

// ScaleRow performs row[i] *= k.
func (m *Dense[T]) ScaleRow(i int, k T) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxScaleRow, i, 0, ErrOutOfRange)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] = m.ring.Mul(k, row[j])
	}

	return nil
}

// CombineRows replaces rows i and j simultaneously:
//
//	row[i] ← a·row[i] + b·row[j]
//	row[j] ← c·row[i] + d·row[j]
func (m *Dense[T]) CombineRows(i, j int, a, b, c, d T) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r || i == j {
		return denseErrorf(ctxCombRows, i, j, ErrOutOfRange)
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := range ri {
		x, y := ri[k], rj[k]
		ri[k] = m.ring.Add(m.ring.Mul(a, x), m.ring.Mul(b, y))
		rj[k] = m.ring.Add(m.ring.Mul(c, x), m.ring.Mul(d, y))
	}

	return nil
}

// CombineCols replaces columns i and j simultaneously:
//
//	col[i] ← a·col[i] + c·col[j]
//	col[j] ← b·col[i] + d·col[j]
//
// which is right multiplication by [[a, b], [c, d]] on the (i, j) columns.
func (m *Dense[T]) CombineCols(i, j int, a, b, c, d T) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c || i == j {
		return denseErrorf(ctxCombCols, i, j, ErrOutOfRange)
	}
	for r := 0; r < m.r; r++ {
		base := r * m.c
		x, y := m.data[base+i], m.data[base+j]
		m.data[base+i] = m.ring.Add(m.ring.Mul(a, x), m.ring.Mul(c, y))
		m.data[base+j] = m.ring.Add(m.ring.Mul(b, x), m.ring.Mul(d, y))
	}

	return nil
}
