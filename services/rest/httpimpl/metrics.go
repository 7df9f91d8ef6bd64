package httpimpl

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Each counter carries a "function" label (OK or the error class) and an
// "operation" label (the HTTP status code written).
var (
	prometheusRestHttpGraphSearch            *prometheus.CounterVec
	prometheusRestHttpGetUtxos               *prometheus.CounterVec
	prometheusRestHttpGetUtxosByScriptPubKey *prometheus.CounterVec
	prometheusRestHttpGetAddressUtxos        *prometheus.CounterVec
	prometheusRestHttpGetAddressBalance      *prometheus.CounterVec
	prometheusRestHttpGetScriptPubKeyBalance *prometheus.CounterVec
)

var (
	prometheusMetricsInitOnce sync.Once
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusRestHttpGraphSearch = newRestCounter("http_graph_search", "Number of graph search ops")
	prometheusRestHttpGetUtxos = newRestCounter("http_get_utxos", "Number of utxo by outpoint ops")
	prometheusRestHttpGetUtxosByScriptPubKey = newRestCounter("http_get_utxos_by_scriptpubkey", "Number of utxo by scriptpubkey ops")
	prometheusRestHttpGetAddressUtxos = newRestCounter("http_get_address_utxos", "Number of utxo by address ops")
	prometheusRestHttpGetAddressBalance = newRestCounter("http_get_address_balance", "Number of balance by address ops")
	prometheusRestHttpGetScriptPubKeyBalance = newRestCounter("http_get_scriptpubkey_balance", "Number of balance by scriptpubkey ops")
}

func newRestCounter(name, help string) *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gsrest",
			Subsystem: "rest",
			Name:      name,
			Help:      help,
		},
		[]string{
			"function",  // function tracking the operation
			"operation", // type of operation achieved
		},
	)
}
