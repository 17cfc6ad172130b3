// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rowmajor/codec"
	"github.com/katalvlaran/rowmajor/internal/logger"
	"github.com/katalvlaran/rowmajor/matrix"
	"github.com/urfave/cli/v3"
)

// prepare resolves config, builds the logger and validates the output format.
// It runs inside each action, after all flags are parsed.
func (o *options) prepare(ctx context.Context, c *cli.Command) (context.Context, error) {
	path := o.configPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return ctx, err
	}
	applyConfig(c, cfg, o)

	log, err := logger.NewWithFormat(o.logOut, o.logFormat, o.logLevel)
	if err != nil {
		return ctx, err
	}
	if _, err := codec.ParseFormat(o.format); err != nil {
		return ctx, err
	}

	return logger.WithContext(ctx, log.With("cmd", c.Name)), nil
}

// args returns exactly n positional arguments or a usage error.
func args(c *cli.Command, n int) ([]string, error) {
	got := c.Args().Slice()
	if len(got) != n {
		return nil, fmt.Errorf("%s: expected %d file argument(s), got %d (usage: %s %s)",
			c.Name, n, len(got), c.Name, c.ArgsUsage)
	}

	return got, nil
}

// load reads a float64 matrix and logs its shape.
func load(ctx context.Context, path string) (*matrix.Matrix[float64], error) {
	m, err := codec.LoadFile[float64](path)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("loaded", "path", path, "rows", m.Rows(), "cols", m.Cols())

	return m, nil
}

// emit writes m to --output when given, otherwise to the app writer in --format.
func (o *options) emit(ctx context.Context, m *matrix.Matrix[float64]) error {
	log := logger.FromContext(ctx)
	if o.output != "" {
		if err := codec.SaveFile(o.output, m); err != nil {
			return err
		}
		log.Info("wrote", "path", o.output, "rows", m.Rows(), "cols", m.Cols())

		return nil
	}

	f, err := codec.ParseFormat(o.format)
	if err != nil {
		return err
	}

	return codec.Encode(o.out, f, m)
}

// action wraps a command body with setup and failure logging.
func (o *options) action(body func(ctx context.Context, c *cli.Command) error) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ctx, err := o.prepare(ctx, c)
		if err != nil {
			return err
		}
		if err := body(ctx, c); err != nil {
			logger.FromContext(ctx).Error("failed", "err", err)
			return err
		}

		return nil
	}
}
