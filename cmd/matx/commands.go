// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rowmajor/matrix"
	"github.com/urfave/cli/v3"
)

type binaryOp func(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error)

var (
	addOp      binaryOp = matrix.Add[float64]
	subOp      binaryOp = matrix.Sub[float64]
	mulOp      binaryOp = matrix.Mul[float64]
	hadamardOp binaryOp = matrix.Hadamard[float64]
)

func showCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the shape and elements of a matrix",
		ArgsUsage: "FILE",
		Flags:     commonFlags(o),
		Action: o.action(func(ctx context.Context, c *cli.Command) error {
			files, err := args(c, 1)
			if err != nil {
				return err
			}
			m, err := load(ctx, files[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(o.out, "%dx%d\n%s", m.Rows(), m.Cols(), m)

			return err
		}),
	}
}

func binaryCmd(o *options, name, usage string, op binaryOp) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "A B",
		Flags:     commonFlags(o),
		Action: o.action(func(ctx context.Context, c *cli.Command) error {
			files, err := args(c, 2)
			if err != nil {
				return err
			}
			a, err := load(ctx, files[0])
			if err != nil {
				return err
			}
			b, err := load(ctx, files[1])
			if err != nil {
				return err
			}
			res, err := op(a, b)
			if err != nil {
				return err
			}

			return o.emit(ctx, res)
		}),
	}
}

func scaleCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:      "scale",
		Usage:     "Multiply every element by a scalar",
		ArgsUsage: "FILE",
		Flags:     commonFlags(o, byFlag(o)),
		Action: o.action(func(ctx context.Context, c *cli.Command) error {
			files, err := args(c, 1)
			if err != nil {
				return err
			}
			m, err := load(ctx, files[0])
			if err != nil {
				return err
			}

			return o.emit(ctx, m.ScaleInPlace(o.by))
		}),
	}
}

func transposeCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:      "transpose",
		Usage:     "Swap rows and columns",
		ArgsUsage: "FILE",
		Flags:     commonFlags(o),
		Action: o.action(func(ctx context.Context, c *cli.Command) error {
			files, err := args(c, 1)
			if err != nil {
				return err
			}
			m, err := load(ctx, files[0])
			if err != nil {
				return err
			}
			t, err := matrix.Transpose(m)
			if err != nil {
				return err
			}

			return o.emit(ctx, t)
		}),
	}
}

// rowCmd prints one row as a 1×cols matrix.
func rowCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:      "row",
		Usage:     "Extract one row",
		ArgsUsage: "FILE",
		Flags:     commonFlags(o, indexFlag(o, "row index")),
		Action: o.action(func(ctx context.Context, c *cli.Command) error {
			files, err := args(c, 1)
			if err != nil {
				return err
			}
			m, err := load(ctx, files[0])
			if err != nil {
				return err
			}
			v, err := m.ConstRow(o.index)
			if err != nil {
				return err
			}
			out, err := matrix.FromSlice(1, v.Len(), v.Slice())
			if err != nil {
				return err
			}

			return o.emit(ctx, out)
		}),
	}
}

// colCmd prints one column as a rows×1 matrix.
func colCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:      "col",
		Usage:     "Extract one column",
		ArgsUsage: "FILE",
		Flags:     commonFlags(o, indexFlag(o, "column index")),
		Action: o.action(func(ctx context.Context, c *cli.Command) error {
			files, err := args(c, 1)
			if err != nil {
				return err
			}
			m, err := load(ctx, files[0])
			if err != nil {
				return err
			}
			v, err := m.ConstCol(o.index)
			if err != nil {
				return err
			}
			out, err := matrix.FromSlice(v.Len(), 1, v.Slice())
			if err != nil {
				return err
			}

			return o.emit(ctx, out)
		}),
	}
}

func scaleRowCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:      "scale-row",
		Usage:     "Multiply one row in place and print the matrix",
		ArgsUsage: "FILE",
		Flags:     commonFlags(o, indexFlag(o, "row index"), byFlag(o)),
		Action: o.action(func(ctx context.Context, c *cli.Command) error {
			files, err := args(c, 1)
			if err != nil {
				return err
			}
			m, err := load(ctx, files[0])
			if err != nil {
				return err
			}
			row, err := m.Row(o.index)
			if err != nil {
				return err
			}
			row.Scale(o.by)

			return o.emit(ctx, m)
		}),
	}
}

func scaleColCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:      "scale-col",
		Usage:     "Multiply one column in place and print the matrix",
		ArgsUsage: "FILE",
		Flags:     commonFlags(o, indexFlag(o, "column index"), byFlag(o)),
		Action: o.action(func(ctx context.Context, c *cli.Command) error {
			files, err := args(c, 1)
			if err != nil {
				return err
			}
			m, err := load(ctx, files[0])
			if err != nil {
				return err
			}
			col, err := m.Col(o.index)
			if err != nil {
				return err
			}
			col.Scale(o.by)

			return o.emit(ctx, m)
		}),
	}
}
