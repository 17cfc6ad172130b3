// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/rowmajor/matrix"
	"gopkg.in/yaml.v3"
)

// Real is the subset of matrix.Number both document formats can represent.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// document is the on-disk shape of a matrix.
type document[T Real] struct {
	Rows int   `json:"rows" yaml:"rows"`
	Cols int   `json:"cols" yaml:"cols"`
	Data [][]T `json:"data" yaml:"data"`
}

func toDocument[T Real](m *matrix.Matrix[T]) document[T] {
	return document[T]{Rows: m.Rows(), Cols: m.Cols(), Data: m.ToRows()}
}

// shapeMatches reports whether the declared shape agrees with m.
// An absent shape (0x0) matches anything; a declared zero-area shape such as
// 3x0 matches the empty matrix it normalises to.
func (d document[T]) shapeMatches(m *matrix.Matrix[T]) bool {
	switch {
	case d.Rows < 0 || d.Cols < 0:
		return false
	case d.Rows == 0 && d.Cols == 0:
		return true
	case d.Rows == 0 || d.Cols == 0:
		return m.Empty()
	default:
		return d.Rows == m.Rows() && d.Cols == m.Cols()
	}
}

// toMatrix validates a decoded document and builds the matrix.
func (d document[T]) toMatrix() (*matrix.Matrix[T], error) {
	m, err := matrix.FromRows(d.Data)
	if err != nil {
		return nil, err
	}
	if !d.shapeMatches(m) {
		return nil, fmt.Errorf("declared %dx%d, data is %dx%d: %w",
			d.Rows, d.Cols, m.Rows(), m.Cols(), ErrShapeConflict)
	}

	return m, nil
}

// Encode writes m to w as a single document in format f.
func Encode[T Real](w io.Writer, f Format, m *matrix.Matrix[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return codecErrorf("encode", f, err)
	}
	doc := toDocument(m)

	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return codecErrorf("encode", f, err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return codecErrorf("encode", f, err)
		}
		if err := enc.Close(); err != nil {
			return codecErrorf("encode", f, err)
		}
	default:
		return fmt.Errorf("encode %q: %w", string(f), ErrUnknownFormat)
	}

	return nil
}

// Decode reads one document in format f from r.
// An empty stream yields the empty matrix.
func Decode[T Real](r io.Reader, f Format) (*matrix.Matrix[T], error) {
	var doc document[T]
	var err error

	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&doc)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("decode %q: %w", string(f), ErrUnknownFormat)
	}
	if errors.Is(err, io.EOF) {
		return matrix.Empty[T](), nil
	}
	if err != nil {
		return nil, codecErrorf("decode", f, err)
	}

	m, err := doc.toMatrix()
	if err != nil {
		return nil, codecErrorf("decode", f, err)
	}

	return m, nil
}

// Marshal returns the encoding of m in format f.
func Marshal[T Real](f Format, m *matrix.Matrix[T]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes data in format f.
func Unmarshal[T Real](f Format, data []byte) (*matrix.Matrix[T], error) {
	return Decode[T](bytes.NewReader(data), f)
}

// LoadFile reads a matrix from path, inferring the format from its extension.
// The path "-" reads JSON from standard input.
func LoadFile[T Real](path string) (*matrix.Matrix[T], error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if path == "-" {
		return Decode[T](os.Stdin, f)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: open: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode[T](file, f)
}

// SaveFile writes m to path, inferring the format from its extension.
func SaveFile[T Real](path string, m *matrix.Matrix[T]) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if path == "-" {
		return Encode(os.Stdout, f, m)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: create: %w", err)
	}
	if err := Encode(file, f, m); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
