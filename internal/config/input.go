// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/homology/cubical"
	"github.com/katalvlaran/homology/integer"
	"github.com/katalvlaran/homology/matrix"
)

// MaxInputSize bounds input files (16 MiB).
const MaxInputSize int64 = 16 << 20

//go:embed complex_schema.cue
var complexSchema string

// MatrixSpec is a boundary matrix as written in an input file. Entries are
// row-major and may be numbers or decimal strings (use strings for values
// beyond 64 bits).
type MatrixSpec struct {
	Rows    int   `json:"rows" toml:"rows"`
	Cols    int   `json:"cols" toml:"cols"`
	Entries []any `json:"entries" toml:"entries"`
}

// BoundsSpec is a half-open clipping box for voxel inputs.
type BoundsSpec struct {
	Lower []int `json:"lower" toml:"lower"`
	Upper []int `json:"upper" toml:"upper"`
}

// Input is a decoded complex description. Exactly one of Boundaries and
// Voxels is set.
type Input struct {
	Name         string       `json:"name,omitempty" toml:"name"`
	Coefficients string       `json:"coefficients,omitempty" toml:"coefficients"`
	Boundaries   []MatrixSpec `json:"boundaries,omitempty" toml:"boundaries"`
	Voxels       [][]int      `json:"voxels,omitempty" toml:"voxels"`
	Bounds       *BoundsSpec  `json:"bounds,omitempty" toml:"bounds"`
}

// LoadInput reads and validates the complex description at path. The format
// follows the extension: .cue or .toml.
//
// Errors:
//   - ErrUnknownInput for other extensions.
//   - ErrInvalidInput for schema or consistency violations.
//   - ErrInvalidInput for files larger than MaxInputSize.
//   - I/O errors from opening or reading the file.
func LoadInput(path string) (*Input, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".cue" && ext != ".toml" {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownInput)
	}
	data, err := readLimited(path)
	if err != nil {
		return nil, err
	}

	if ext == ".cue" {
		return ParseCUE(data, path)
	}

	return ParseTOML(data, path)
}

// readLimited reads at most MaxInputSize bytes of path and fails if the file
// holds more.
func readLimited(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	if int64(len(data)) > MaxInputSize {
		return nil, fmt.Errorf("%s: exceeds %d bytes: %w", path, MaxInputSize, ErrInvalidInput)
	}

	return data, nil
}

// ParseCUE compiles data, unifies it with the #Complex schema and decodes it.
// filename is only used in error messages.
func ParseCUE(data []byte, filename string) (*Input, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(complexSchema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile complex schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, fmt.Errorf("%s: %v: %w", filename, userValue.Err(), ErrInvalidInput)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Complex"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", filename, err, ErrInvalidInput)
	}

	var in Input
	if err := unified.Decode(&in); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", filename, err, ErrInvalidInput)
	}
	if err := in.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &in, nil
}

// ParseTOML decodes data with go-toml/v2, rejecting unknown keys.
func ParseTOML(data []byte, filename string) (*Input, error) {
	var in Input
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", filename, err, ErrInvalidInput)
	}
	if err := in.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &in, nil
}

// validate enforces what the schema cannot express, and everything for TOML.
func (in *Input) validate() error {
	hasB, hasV := len(in.Boundaries) > 0, len(in.Voxels) > 0
	if hasB == hasV {
		return fmt.Errorf("exactly one of boundaries and voxels must be given: %w", ErrInvalidInput)
	}
	if in.Coefficients != "" {
		if _, _, err := ParseCoefficients(in.Coefficients, 0); err != nil {
			return err
		}
	}
	for n, m := range in.Boundaries {
		if m.Rows < 0 || m.Cols < 0 {
			return fmt.Errorf("boundary %d: negative shape %dx%d: %w", n, m.Rows, m.Cols, ErrInvalidInput)
		}
		if m.Cols != 0 && m.Rows > math.MaxInt/m.Cols {
			return fmt.Errorf("boundary %d: shape %dx%d is too large: %w", n, m.Rows, m.Cols, ErrInvalidInput)
		}
		if len(m.Entries) != m.Rows*m.Cols {
			return fmt.Errorf("boundary %d: %d entries for a %dx%d matrix: %w",
				n, len(m.Entries), m.Rows, m.Cols, ErrInvalidInput)
		}
	}
	for i, v := range in.Voxels {
		if len(v) != 3 {
			return fmt.Errorf("voxel %d: want 3 coordinates, got %d: %w", i, len(v), ErrInvalidInput)
		}
	}
	if b := in.Bounds; b != nil {
		if len(b.Lower) != 3 || len(b.Upper) != 3 {
			return fmt.Errorf("bounds: want 3 coordinates per corner: %w", ErrInvalidInput)
		}
	}

	return nil
}

// IntegerBoundaries converts the boundary specs into integer matrices.
func (in *Input) IntegerBoundaries() ([]*matrix.Dense[integer.Integer], error) {
	out := make([]*matrix.Dense[integer.Integer], len(in.Boundaries))
	for n, m := range in.Boundaries {
		vals := make([]integer.Integer, len(m.Entries))
		for k, e := range m.Entries {
			v, err := toInteger(e)
			if err != nil {
				return nil, fmt.Errorf("boundary %d entry %d: %w", n, k, err)
			}
			vals[k] = v
		}
		d, err := matrix.NewFromValues[integer.Integer](integer.Z, m.Rows, m.Cols, vals)
		if err != nil {
			return nil, fmt.Errorf("boundary %d: %w", n, err)
		}
		out[n] = d
	}

	return out, nil
}

// VoxelList returns the voxels of a voxel input.
func (in *Input) VoxelList() []cubical.Voxel {
	out := make([]cubical.Voxel, len(in.Voxels))
	for i, v := range in.Voxels {
		out[i] = cubical.Voxel{X: v[0], Y: v[1], Z: v[2]}
	}

	return out
}

// VoxelOptions returns the cubical options encoded in the input (bounds).
func (in *Input) VoxelOptions() []cubical.Option {
	if in.Bounds == nil {
		return nil
	}
	lo, hi := in.Bounds.Lower, in.Bounds.Upper

	return []cubical.Option{cubical.WithBounds(
		cubical.Voxel{X: lo[0], Y: lo[1], Z: lo[2]},
		cubical.Voxel{X: hi[0], Y: hi[1], Z: hi[2]},
	)}
}

// toInteger accepts the scalar types CUE and TOML decode numbers and strings to.
func toInteger(x any) (integer.Integer, error) {
	switch v := x.(type) {
	case string:
		return integer.Parse(v)
	case int:
		return integer.FromInt64(int64(v)), nil
	case int64:
		return integer.FromInt64(v), nil
	case uint64:
		return integer.FromBig(new(big.Int).SetUint64(v)), nil
	case *big.Int:
		return integer.FromBig(v), nil
	case json.Number:
		return integer.Parse(v.String())
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return integer.Integer{}, fmt.Errorf("%v is not an exact integer: %w", v, ErrInvalidInput)
		}

		return integer.FromInt64(int64(v)), nil
	}

	return integer.Integer{}, fmt.Errorf("unsupported entry %v (%T): %w", x, x, ErrInvalidInput)
}
