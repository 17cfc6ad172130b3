// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/urfave/cli/v3"
)

// options holds the flag destinations shared by every subcommand of one app.
type options struct {
	format     string
	output     string
	logLevel   string
	logFormat  string
	configPath string

	index int
	by    float64

	out    io.Writer
	logOut io.Writer
}

func outputFlags(o *options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "output document format (json, yaml)",
			Value:       "json",
			Destination: &o.format,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "write the result to a file; format follows its extension",
			Destination: &o.output,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml (default: $XDG_CONFIG_HOME/matx/config.yaml)",
			Destination: &o.configPath,
		},
	}
}

func loggingFlags(o *options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Destination: &o.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json)",
			Value:       "text",
			Destination: &o.logFormat,
		},
	}
}

func commonFlags(o *options, extra ...cli.Flag) []cli.Flag {
	flags := append(outputFlags(o), loggingFlags(o)...)
	return append(flags, extra...)
}

func indexFlag(o *options, usage string) cli.Flag {
	return &cli.IntFlag{
		Name:        "index",
		Aliases:     []string{"i"},
		Usage:       usage,
		Required:    true,
		Destination: &o.index,
	}
}

func byFlag(o *options) cli.Flag {
	return &cli.FloatFlag{
		Name:        "by",
		Usage:       "scalar factor",
		Required:    true,
		Destination: &o.by,
	}
}
