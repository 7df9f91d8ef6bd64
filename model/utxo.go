package model

// UtxoRecord is an unspent output as returned by the REST API. Address is nil
// when the locking script is not a standard template.
type UtxoRecord struct {
	PrevTxID   string  `json:"prevTxId"`
	PrevOutIdx uint32  `json:"prevOutIdx"`
	Height     int32   `json:"height"`
	Value      uint64  `json:"value"`
	PkScript   []byte  `json:"pkScript"`
	Address    *string `json:"address"`
}

// ScriptUtxo is the reduced record returned when searching by script, the caller
// already knows the script.
type ScriptUtxo struct {
	PrevTxID   string `json:"prevTxId"`
	PrevOutIdx uint32 `json:"prevOutIdx"`
	Height     int32  `json:"height"`
	Value      uint64 `json:"value"`
}
