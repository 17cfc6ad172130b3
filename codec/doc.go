// SPDX-License-Identifier: MIT

// Package codec reads and writes matrix.Matrix values as JSON or YAML documents.
//
// A document carries the shape next to the nested rows:
//
//	{"rows": 2, "cols": 3, "data": [[1, 2, 3], [4, 5, 6]]}
//
// rows and cols are optional on input; when present they must agree with
// the shape of data. Row lengths are validated by matrix.FromRows, so a
// ragged document fails with matrix.ErrInvalidLiteral. An empty input
// stream decodes to the empty matrix.
//
// JSON goes through github.com/goccy/go-json, YAML through gopkg.in/yaml.v3.
// Only real element types are supported; complex numbers have no portable
// representation in either format.
package codec
