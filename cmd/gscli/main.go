// Command gscli queries a gs++ graph search backend directly, bypassing the
// REST gateway. Transaction ids are given in display order, scripts as hex and
// addresses in cashaddr or legacy form.
//
// Usage:
//
//	gscli [--bind host:port] graphsearch TXID
//	gscli utxo TXID:VOUT [TXID:VOUT...]
//	gscli utxo-scriptpubkey [--limit N] SCRIPTPUBKEY
//	gscli balance-scriptpubkey SCRIPTPUBKEY
//	gscli utxo-address [--limit N] ADDRESS
//	gscli balance-address ADDRESS
package main

import (
	"log"
	"os"

	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
)

func main() {
	app := newApp(settings.NewSettings(), newClient, os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
