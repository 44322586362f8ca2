// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/lehnberg/slatepack/armor"
)

type metadata struct {
	file    string
	config  *Configuration
	codec   *armor.Codec
	verbose bool
	r       io.Reader
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "slatepack"
	app.Usage = "armor transaction slates for text channels"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "variant, V",
			Value: "",
			Usage: " frame `VARIANT` for output [qualified|bare]",
		},
		cli.IntFlag{
			Name:  "word-length, w",
			Value: 0,
			Usage: " characters per word in output `COUNT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "armor",
			Usage:     "armor a slate",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " `FILE` of slate data [default: stdin]",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write armored text to `FILE` [default: stdout]",
				},
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " minify JSON slate before armoring",
				},
			},
			Action: runArmor,
		},
		{
			Name:      "dearmor",
			Usage:     "recover a slate from armored text",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " `FILE` of armored text [default: stdin]",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write slate to `FILE` [default: stdout]",
				},
			},
			Action: runDearmor,
		},
		{
			Name:      "verify",
			Usage:     "check armored text and display its frame",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " `FILE` of armored text [default: stdin]",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "fingerprint",
			Usage:     "fingerprint the slate inside armored text",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " `FILE` of armored text [default: stdin]",
				},
			},
			Action: runFingerprint,
		},
		{
			Name:      "watch",
			Usage:     "convert slate files appearing in a directory",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "directory, d",
					Value: "",
					Usage: " `DIR` to watch [default: data_directory]",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display slatepack version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		file := c.GlobalString("config")
		if verbose && "" != file {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}

		// command line overrides
		if v := c.GlobalString("variant"); "" != v {
			configuration.Armor.Variant = v
		}
		if n := c.GlobalInt("word-length"); 0 != n {
			configuration.Armor.WordLength = n
		}

		codec, err := armor.New(&configuration.Armor, nil)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  configuration,
			codec:   codec,
			verbose: verbose,
			r:       r,
			e:       e,
			w:       c.App.Writer,
		}

		return nil
	}

	return app
}
