package main

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/blockparty-sh/cpp-slp-graph-search/model"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch"
	"github.com/blockparty-sh/cpp-slp-graph-search/services/graphsearch/graphsearch_api"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/bsv-blockchain/go-bt/v2/bscript"
	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/urfave/cli/v2"
)

// clientFactory opens a backend client for the address given with --bind.
type clientFactory func(ctx context.Context, tSettings *settings.Settings) (graphsearch.ClientI, error)

func newClient(ctx context.Context, tSettings *settings.Settings) (graphsearch.ClientI, error) {
	return graphsearch.NewClient(ctx, ulogger.New("gscli", ulogger.WithLevel("ERROR")), tSettings)
}

func newApp(tSettings *settings.Settings, factory clientFactory, out, errOut io.Writer) *cli.App {
	c := &commands{
		settings: tSettings,
		factory:  factory,
	}

	return &cli.App{
		Name:      "gscli",
		Usage:     "Query a gs++ graph search backend directly over gRPC",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "bind",
				Usage: "backend address as host:port",
				Value: tSettings.GraphSearch.GRPCAddress,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "graphsearch",
				Usage:     "Print the base64 encoded transactions of the graph behind TXID",
				ArgsUsage: "TXID",
				Action:    c.graphSearch,
			},
			{
				Name:      "utxo",
				Usage:     "Look up unspent outputs by outpoint",
				ArgsUsage: "TXID:VOUT [TXID:VOUT...]",
				Action:    c.utxo,
			},
			{
				Name:      "utxo-scriptpubkey",
				Usage:     "List the unspent outputs locked by a hex encoded script",
				ArgsUsage: "SCRIPTPUBKEY",
				Flags:     []cli.Flag{limitFlag(tSettings)},
				Action:    c.utxoScriptPubKey,
			},
			{
				Name:      "balance-scriptpubkey",
				Usage:     "Print the balance of a hex encoded script",
				ArgsUsage: "SCRIPTPUBKEY",
				Action:    c.balanceScriptPubKey,
			},
			{
				Name:      "utxo-address",
				Usage:     "List the unspent outputs of a cashaddr or legacy address",
				ArgsUsage: "ADDRESS",
				Flags:     []cli.Flag{limitFlag(tSettings)},
				Action:    c.utxoAddress,
			},
			{
				Name:      "balance-address",
				Usage:     "Print the balance of a cashaddr or legacy address",
				ArgsUsage: "ADDRESS",
				Action:    c.balanceAddress,
			},
		},
	}
}

func limitFlag(tSettings *settings.Settings) cli.Flag {
	return &cli.IntFlag{
		Name:  "limit",
		Usage: fmt.Sprintf("maximum number of outputs, at most %d", settings.MaxUtxoLimit),
		Value: tSettings.GraphSearch.UtxoLimit,
	}
}

type commands struct {
	settings *settings.Settings
	factory  clientFactory
}

func (cmd *commands) withClient(c *cli.Context, fn func(client graphsearch.ClientI) error) error {
	tSettings := *cmd.settings
	tSettings.GraphSearch.GRPCAddress = c.String("bind")

	client, err := cmd.factory(c.Context, &tSettings)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	return fn(client)
}

func (cmd *commands) graphSearch(c *cli.Context) error {
	txid, err := singleArg(c, "TXID")
	if err != nil {
		return err
	}

	if _, err = model.NewTxIDFromHex(txid); err != nil {
		return err
	}

	return cmd.withClient(c, func(client graphsearch.ClientI) error {
		txdata, err := client.GraphSearch(c.Context, txid)
		if err != nil {
			return err
		}

		for _, tx := range txdata {
			fmt.Fprintln(c.App.Writer, base64.StdEncoding.EncodeToString(tx))
		}

		return nil
	})
}

func (cmd *commands) utxo(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.NewInvalidArgumentError("expected at least one TXID:VOUT")
	}

	outpoints, err := model.ParseOutpoints(strings.Join(c.Args().Slice(), ","))
	if err != nil {
		return err
	}

	return cmd.withClient(c, func(client graphsearch.ClientI) error {
		outputs, err := client.UtxoSearchByOutpoints(c.Context, outpoints)
		if err != nil {
			return err
		}

		for _, output := range outputs {
			fmt.Fprintf(c.App.Writer, "%s:%d\n\theight:       %d\n\tvalue:        %d\n\tscriptpubkey: %s\n",
				model.WireToHex(output.GetPrevTxId()),
				output.GetPrevOutIdx(),
				output.GetHeight(),
				output.GetValue(),
				hex.EncodeToString(output.GetScriptpubkey()),
			)
		}

		return nil
	})
}

func (cmd *commands) utxoScriptPubKey(c *cli.Context) error {
	script, err := scriptArg(c)
	if err != nil {
		return err
	}

	return cmd.printScriptUtxos(c, script)
}

func (cmd *commands) balanceScriptPubKey(c *cli.Context) error {
	script, err := scriptArg(c)
	if err != nil {
		return err
	}

	return cmd.printBalance(c, script)
}

func (cmd *commands) utxoAddress(c *cli.Context) error {
	script, err := cmd.addressArg(c)
	if err != nil {
		return err
	}

	return cmd.printScriptUtxos(c, script)
}

func (cmd *commands) balanceAddress(c *cli.Context) error {
	script, err := cmd.addressArg(c)
	if err != nil {
		return err
	}

	return cmd.printBalance(c, script)
}

func (cmd *commands) printScriptUtxos(c *cli.Context, script *bscript.Script) error {
	limit, err := safeconversion.IntToUint32(c.Int("limit"))
	if err != nil || limit == 0 || limit > settings.MaxUtxoLimit {
		return errors.NewInvalidArgumentError("limit must be between 1 and %d, got %d", settings.MaxUtxoLimit, c.Int("limit"))
	}

	return cmd.withClient(c, func(client graphsearch.ClientI) error {
		outputs, err := client.UtxoSearchByScriptPubKey(c.Context, script, limit)
		if err != nil {
			return err
		}

		printScriptOutputs(c.App.Writer, outputs)

		return nil
	})
}

func (cmd *commands) printBalance(c *cli.Context, script *bscript.Script) error {
	return cmd.withClient(c, func(client graphsearch.ClientI) error {
		balance, err := client.BalanceByScriptPubKey(c.Context, script)
		if err != nil {
			return err
		}

		fmt.Fprintln(c.App.Writer, balance)

		return nil
	})
}

func (cmd *commands) addressArg(c *cli.Context) (*bscript.Script, error) {
	address, err := singleArg(c, "ADDRESS")
	if err != nil {
		return nil, err
	}

	addr, err := model.DecodeAddress(address, cmd.settings.ChainCfgParams)
	if err != nil {
		return nil, err
	}

	if addr.Type == model.AddressTypeUnknown {
		fmt.Fprintf(c.App.ErrWriter, "warning: %s has an unknown type, searching by its P2SH script\n", address)
	}

	return addr.LockingScript(), nil
}

func printScriptOutputs(w io.Writer, outputs []*graphsearch_api.Output) {
	for _, output := range outputs {
		fmt.Fprintf(w, "%s:%d\n\theight: %d\n\tvalue:  %d\n",
			model.WireToHex(output.GetPrevTxId()),
			output.GetPrevOutIdx(),
			output.GetHeight(),
			output.GetValue(),
		)
	}
}

func singleArg(c *cli.Context, name string) (string, error) {
	if c.NArg() != 1 {
		return "", errors.NewInvalidArgumentError("expected exactly one %s argument, got %d", name, c.NArg())
	}

	return c.Args().First(), nil
}

func scriptArg(c *cli.Context) (*bscript.Script, error) {
	s, err := singleArg(c, "SCRIPTPUBKEY")
	if err != nil {
		return nil, err
	}

	script, err := bscript.NewFromHexString(s)
	if err != nil {
		return nil, errors.NewMalformedHexError("%q is not a valid hex script", s, err)
	}

	return script, nil
}
