// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/steemtx/chain"
	"github.com/bitmark-inc/steemtx/configuration"
	"github.com/bitmark-inc/steemtx/fault"
)

type metadata struct {
	config  *configuration.Configuration
	chain   *chain.Context
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
	r       io.Reader
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr, os.Stdin, true)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

// separate from main so tests can run commands without owning the
// global logger
func newApp(w io.Writer, e io.Writer, r io.Reader, initialiseLogging bool) *cli.App {

	app := cli.NewApp()
	app.Name = "steem-cli"
	app.Usage = "steem transaction tool"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "chain, n",
			Value: "",
			Usage: " select `CHAIN` [steem|test|hive]",
		},
		cli.StringFlag{
			Name:  "url, u",
			Value: "",
			Usage: " node JSON RPC `URL`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}

	wifFlag := cli.StringSliceFlag{
		Name:  "wif, w",
		Usage: " signing key `WIF`, may be repeated",
	}

	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "convert transaction hex to JSON",
			ArgsUsage: "HEX",
			Action:    runDecode,
		},
		{
			Name:      "encode",
			Usage:     "convert transaction JSON to hex",
			ArgsUsage: "JSON",
			Action:    runEncode,
		},
		{
			Name:      "digest",
			Usage:     "show transaction id and signing digest",
			ArgsUsage: "JSON",
			Action:    runDigest,
		},
		{
			Name:      "sign",
			Usage:     "sign a transaction offline",
			ArgsUsage: "JSON",
			Flags: []cli.Flag{
				wifFlag,
			},
			Action: runSign,
		},
		{
			Name:      "pubkey",
			Usage:     "public key of a private key",
			ArgsUsage: "WIF",
			Action:    runPublicKey,
		},
		{
			Name:      "broadcast",
			Usage:     "prepare, sign and broadcast operations",
			ArgsUsage: "JSON list of operations",
			Flags: []cli.Flag{
				wifFlag,
				cli.BoolFlag{
					Name:  "pretend, p",
					Usage: " only verify the signed transaction",
				},
				cli.IntFlag{
					Name:  "expiration, x",
					Value: 0,
					Usage: " expiration window in `SECONDS`",
				},
			},
			Action: runBroadcast,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		conf := configuration.Default()
		if file := c.GlobalString("config"); "" != file {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			var err error
			conf, err = configuration.GetConfiguration(file)
			if nil != err {
				return err
			}
		} else if initialiseLogging {
			dir, err := os.UserCacheDir()
			if nil != err {
				return err
			}
			conf.Logging.Directory = filepath.Join(dir, app.Name)
		}

		if s := c.GlobalString("chain"); "" != s {
			conf.Chain = s
		}
		if s := c.GlobalString("url"); "" != s {
			conf.NodeURL = s
		}
		if err := conf.Validate(); nil != err {
			return err
		}

		ch, err := conf.ChainContext()
		if nil != err {
			return err
		}

		if initialiseLogging {
			if err := os.MkdirAll(conf.Logging.Directory, 0700); nil != err {
				return err
			}
			if err := logger.Initialise(conf.Logging); nil != err {
				return err
			}
			if err := fault.Initialise(); nil != err {
				return err
			}
		}

		c.App.Metadata["config"] = &metadata{
			config:  conf,
			chain:   ch,
			log:     logger.New("steem-cli"),
			verbose: verbose,
			e:       e,
			w:       w,
			r:       r,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok && initialiseLogging {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	return app
}
