package solana

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// TxStatus is the observed status of a submitted transaction.
type TxStatus int

const (
	// TxStatusPending means the network has not yet reported the
	// signature, or reports it below the confirmed commitment.
	TxStatusPending TxStatus = iota
	// TxStatusConfirmed means the transaction reached at least the
	// confirmed commitment without an execution error.
	TxStatusConfirmed
	// TxStatusFailed means the network reports an on-chain execution
	// error for the transaction.
	TxStatusFailed
)

func (s TxStatus) String() string {
	switch s {
	case TxStatusPending:
		return "pending"
	case TxStatusConfirmed:
		return "confirmed"
	case TxStatusFailed:
		return "failed"
	}
	return "unknown"
}

// statusFromResult maps an RPC signature status to a TxStatus.
// A nil result means the network does not know the signature yet.
func statusFromResult(res *rpc.SignatureStatusesResult) TxStatus {
	if res == nil {
		return TxStatusPending
	}
	if res.Err != nil {
		return TxStatusFailed
	}
	switch res.ConfirmationStatus {
	case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
		return TxStatusConfirmed
	}
	return TxStatusPending
}

// WalletBalance is one wallet's balance at query time.
type WalletBalance struct {
	Address  solana.PublicKey `json:"address"`
	Lamports uint64           `json:"lamports"`
	SOL      float64          `json:"sol"`
}

// LamportsPerSOL is the lamport denomination of one SOL.
const LamportsPerSOL = 1_000_000_000
