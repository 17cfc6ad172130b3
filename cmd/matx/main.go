// SPDX-License-Identifier: MIT

// Command matx runs dense matrix arithmetic over JSON and YAML documents.
//
//	matx add a.json b.json
//	matx --format yaml mul a.yaml b.yaml
//	matx scale-col --index 1 --by 5 m.json
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the command tree. Documents go to out, logs to logOut.
func newApp(out, logOut io.Writer) *cli.Command {
	opts := &options{out: out, logOut: logOut}

	return &cli.Command{
		Name:  "matx",
		Usage: "Dense row-major matrix arithmetic on JSON/YAML documents",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			showCmd(opts),
			binaryCmd(opts, "add", "element-wise sum A + B", addOp),
			binaryCmd(opts, "sub", "element-wise difference A - B", subOp),
			binaryCmd(opts, "mul", "matrix product A × B", mulOp),
			binaryCmd(opts, "hadamard", "element-wise product A ⊙ B", hadamardOp),
			scaleCmd(opts),
			transposeCmd(opts),
			rowCmd(opts),
			colCmd(opts),
			scaleRowCmd(opts),
			scaleColCmd(opts),
		},
	}
}
