// SPDX-License-Identifier: MIT

// Package sample draws reproducible pseudo-random test inputs (integer
// matrices and voxel sets) from a SHAKE-128 stream keyed by a seed.
package sample

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"golang.org/x/crypto/sha3"

	"github.com/katalvlaran/homology/cubical"
	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/matrix"
)

// rate is the SHAKE-128 block size in bytes.
const rate = 168

// ErrInvalidParameter indicates a negative size or bound, or a density
// outside [0, 1].
var ErrInvalidParameter = errors.New("sample: invalid parameter")

// Sampler is a deterministic byte stream. Equal seeds give equal outputs.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	h   sha3.ShakeHash
	buf [rate]byte
	pos int
	end int
}

// New returns a sampler keyed by seed.
func New(seed []byte) *Sampler {
	h := sha3.NewShake128()
	_, _ = h.Write(seed)

	return &Sampler{h: h}
}

// Uint64 returns the next 8 bytes of the stream, little-endian.
func (s *Sampler) Uint64() uint64 {
	if s.pos+8 > s.end {
		leftover := s.end - s.pos
		copy(s.buf[:leftover], s.buf[s.pos:s.end])
		n, _ := s.h.Read(s.buf[leftover:])
		s.pos = 0
		s.end = leftover + n
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8

	return v
}

// Intn returns a uniform value in [0, n) by rejection sampling. n must be > 0.
func (s *Sampler) Intn(n int) int {
	if n <= 0 {
		panic("sample: Intn with n <= 0")
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		if v := s.Uint64(); v < limit {
			return int(v % bound)
		}
	}
}

// Float64 returns a uniform value in [0, 1).
func (s *Sampler) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// IntegerMatrix returns a rows×cols matrix with entries uniform in
// [-bound, bound].
func (s *Sampler) IntegerMatrix(rows, cols int, bound int64) (*matrix.Dense[integer.Integer], error) {
	if bound < 0 || bound > math.MaxInt32 {
		return nil, fmt.Errorf("IntegerMatrix bound %d: %w", bound, ErrInvalidParameter)
	}
	m, err := matrix.NewDense[integer.Integer](integer.Z, rows, cols)
	if err != nil {
		return nil, err
	}
	span := int(2*bound + 1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := int64(s.Intn(span)) - bound
			if err = m.Set(i, j, integer.FromInt64(v)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Voxels keeps each cell of the size×size×size cube independently with
// probability density and returns the kept voxels in z, y, x order.
func (s *Sampler) Voxels(size int, density float64) ([]cubical.Voxel, error) {
	if size < 0 || density < 0 || density > 1 || math.IsNaN(density) {
		return nil, fmt.Errorf("Voxels(%d, %g): %w", size, density, ErrInvalidParameter)
	}
	var out []cubical.Voxel
	for z := 0; z < size; z++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if s.Float64() < density {
					out = append(out, cubical.Voxel{X: x, Y: y, Z: z})
				}
			}
		}
	}

	return out, nil
}
