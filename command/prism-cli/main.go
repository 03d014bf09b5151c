// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/prismpapers/prismd/chain"
	"github.com/prismpapers/prismd/command/prism-cli/configuration"
	"github.com/prismpapers/prismd/wallet"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	funds   *wallet.File
	save    bool
	opened  bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "prism-cli"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to prism `NETWORK` [prism|testing|local]",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " node configuration `FILE` for ledger commands",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise prism-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: " using existing privateKey `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file, set it as default",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: " using existing privateKey `KEY`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive-only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "init-user",
			Usage:     "register the identity's profile and vault on the ledger",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, d",
					Value: "",
					Usage: "*display `NAME` for the profile",
				},
			},
			Action: runInitUser,
		},
		{
			Name:      "publish",
			Usage:     "publish a priced research paper",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*paper title `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*paper description `STRING`",
				},
				cli.StringFlag{
					Name:  "price, P",
					Value: "",
					Usage: "*access price in `TOKENS`",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "*encrypted content `URL`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*content encryption `KEY`",
				},
			},
			Action: runPublish,
		},
		{
			Name:      "update",
			Usage:     "update the metadata of a published paper",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "paper, a",
					Value: "",
					Usage: "*paper `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*paper title `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*paper description `STRING`",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "*encrypted content `URL`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*content encryption `KEY`",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "purchase",
			Usage:     "buy access to a paper",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "paper, a",
					Value: "",
					Usage: "*paper `ADDRESS`",
				},
			},
			Action: runPurchase,
		},
		{
			Name:      "review",
			Usage:     "submit a peer review for a purchased paper",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "paper, a",
					Value: "",
					Usage: "*paper `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "*review content `URL`",
				},
				cli.StringFlag{
					Name:  "reward, r",
					Value: "0",
					Usage: " proposed reward in `TOKENS`",
				},
			},
			Action: runReview,
		},
		{
			Name:      "verify",
			Usage:     "accept or reject a pending review of an owned paper",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "review, r",
					Value: "",
					Usage: "*review `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "accept, y",
					Usage: " accept the review and pay the proposed reward",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "withdraw",
			Usage:     "move funds from the identity's vault to its wallet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*amount in `TOKENS`",
				},
				cli.BoolFlag{
					Name:  "platform, P",
					Usage: " withdraw from the platform vault (admin only)",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:      "deposit",
			Usage:     "add funds to the identity's wallet (test networks only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*amount in `TOKENS`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:   "balance",
			Usage:  "display wallet and vault balances",
			Action: runBalance,
		},
		{
			Name:      "profile",
			Usage:     "display a ledger profile",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name `ACCOUNT` default is global identity",
				},
			},
			Action: runProfile,
		},
		{
			Name:      "paper",
			Usage:     "display a published paper",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "paper, a",
					Value: "",
					Usage: " paper `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "author, o",
					Value: "",
					Usage: " author identity `NAME`",
				},
			},
			Action: runPaper,
		},
		{
			Name:  "version",
			Usage: "display prism-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file for certain commands
		command := c.Args().Get(0)
		if "version" == command || "generate" == command {
			c.App.Metadata["config"] = &metadata{
				testnet: "prism" != c.GlobalString("network"),
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "prism", "live":
			network = chain.Prism
		case "", "testing", "test":
			network = chain.Testing
		case "local", "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be prism/testing/local", network)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != chain.Prism,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			config, err := configuration.Load(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  config,
				testnet: config.TestNet,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		closeLedger(m)
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
