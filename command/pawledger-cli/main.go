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
)

type metadata struct {
	connect string
	caller  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "pawledger-cli"
	app.Usage = "client for the pawledgerd token ledger"
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
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " pawledgerd host/IP and port, `HOST:PORT`",
			EnvVar: "PAWLEDGER_CONNECT",
		},
		cli.StringFlag{
			Name:   "caller, a",
			Value:  "",
			Usage:  " identity making the request `ADDRESS`",
			EnvVar: "PAWLEDGER_CALLER",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display token parameters and state",
			Action: runInfo,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (default account is the caller)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, o",
					Value: "",
					Usage: " account to query `ADDRESS`",
				},
			},
			Action: runBalance,
		},
		{
			Name:  "transactions",
			Usage: "list transaction records oldest first",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "start, s",
					Value: 0,
					Usage: " index of first record `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to list `COUNT`",
				},
			},
			Action: runTransactions,
		},
		{
			Name:   "admins",
			Usage:  "list the owner and admin set",
			Action: runAdmins,
		},
		{
			Name:      "transfer",
			Usage:     "transfer value from the caller to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*decimal amount in tokens `AMOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "mint",
			Usage:     "create new value, caller must be an admin",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: " receiving account `ADDRESS` [default caller]",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*decimal amount in tokens `AMOUNT`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "burn",
			Usage:     "destroy value from the caller's balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*decimal amount in tokens `AMOUNT`",
				},
			},
			Action: runBurn,
		},
		{
			Name:      "deposit",
			Usage:     "move value from the caller into the treasury",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*decimal amount in tokens `AMOUNT`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "move value out of the treasury, caller must be the owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*decimal amount in tokens `AMOUNT`",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:   "treasury",
			Usage:  "display the treasury balance",
			Action: runTreasury,
		},
		{
			Name:      "add-admin",
			Usage:     "grant admin rights, caller must be the owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, o",
					Value: "",
					Usage: "*account to grant `ADDRESS`",
				},
			},
			Action: runAddAdmin,
		},
		{
			Name:      "remove-admin",
			Usage:     "revoke admin rights, caller must be the owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, o",
					Value: "",
					Usage: "*account to revoke `ADDRESS`",
				},
			},
			Action: runRemoveAdmin,
		},
		{
			Name:   "pause",
			Usage:  "pause value transfers, caller must be the owner",
			Action: runPause,
		},
		{
			Name:   "unpause",
			Usage:  "resume value transfers, caller must be the owner",
			Action: runUnpause,
		},
		{
			Name:  "version",
			Usage: "display pawledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			caller:  c.GlobalString("caller"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
		}
		c.App.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	return app
}
