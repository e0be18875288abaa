package stream

import (
	"fmt"
	"time"

	"github.com/brojonat/blockpulse/gen/geyser"
)

// Commitment is the confirmation depth at which a slot is considered
// settled enough to act on. The numeric values match the status field
// on slot updates from the geyser stream.
type Commitment uint64

const (
	CommitmentProcessed Commitment = 0
	CommitmentConfirmed Commitment = 1
	CommitmentFinalized Commitment = 2
)

// ParseCommitment converts a config string into a Commitment.
func ParseCommitment(s string) (Commitment, error) {
	switch s {
	case "processed":
		return CommitmentProcessed, nil
	case "confirmed":
		return CommitmentConfirmed, nil
	case "finalized":
		return CommitmentFinalized, nil
	default:
		return 0, fmt.Errorf("unknown commitment %q (want processed, confirmed, or finalized)", s)
	}
}

func (c Commitment) String() string {
	switch c {
	case CommitmentProcessed:
		return "processed"
	case CommitmentConfirmed:
		return "confirmed"
	case CommitmentFinalized:
		return "finalized"
	}
	return fmt.Sprintf("commitment(%d)", uint64(c))
}

// UpdateKind identifies which variant of the subscription update a
// decoded event carries.
type UpdateKind string

const (
	KindAccount     UpdateKind = "account"
	KindSlot        UpdateKind = "slot"
	KindTransaction UpdateKind = "transaction"
	KindBlock       UpdateKind = "block"
	KindBlockMeta   UpdateKind = "block_meta"
	KindEntry       UpdateKind = "entry"
	KindPing        UpdateKind = "ping"
)

// UpdateEvent is a decoded subscription update. Exactly one of the
// variant pointers is non-nil, indicated by Kind. Events are immutable
// once decoded.
type UpdateEvent struct {
	Kind        UpdateKind
	Account     *geyser.SubscribeUpdateAccount
	Slot        *geyser.SubscribeUpdateSlot
	Transaction *geyser.SubscribeUpdateTransaction
	Block       *geyser.SubscribeUpdateBlock
	BlockMeta   *geyser.SubscribeUpdateBlockMeta
	Entry       *geyser.SubscribeUpdateEntry
	Ping        *geyser.SubscribeUpdatePing
	ReceivedAt  time.Time
}

// Decode classifies a raw wire update into an UpdateEvent. An update
// with no variant set is malformed and returns an error; the caller
// skips the event and keeps the stream alive.
func Decode(u *geyser.SubscribeUpdate, receivedAt time.Time) (UpdateEvent, error) {
	ev := UpdateEvent{ReceivedAt: receivedAt}
	switch v := u.GetUpdate().(type) {
	case *geyser.SubscribeUpdate_Account:
		ev.Kind, ev.Account = KindAccount, v.Account
	case *geyser.SubscribeUpdate_Slot:
		ev.Kind, ev.Slot = KindSlot, v.Slot
	case *geyser.SubscribeUpdate_Transaction:
		ev.Kind, ev.Transaction = KindTransaction, v.Transaction
	case *geyser.SubscribeUpdate_Block:
		ev.Kind, ev.Block = KindBlock, v.Block
	case *geyser.SubscribeUpdate_BlockMeta:
		ev.Kind, ev.BlockMeta = KindBlockMeta, v.BlockMeta
	case *geyser.SubscribeUpdate_Entry:
		ev.Kind, ev.Entry = KindEntry, v.Entry
	case *geyser.SubscribeUpdate_Ping:
		ev.Kind, ev.Ping = KindPing, v.Ping
	default:
		return UpdateEvent{}, fmt.Errorf("update carries no variant")
	}
	return ev, nil
}

// QualifyingEvent is a slot or block update that reached the configured
// commitment and should trigger a transfer batch.
type QualifyingEvent struct {
	Slot       uint64
	Blockhash  string
	Kind       UpdateKind
	ReceivedAt time.Time
}

// Qualify decides whether an event triggers dispatch. Slot updates
// qualify once their status reaches the configured commitment; block
// and block-meta updates always qualify. Everything else is routed to
// the observability sink by the caller. Pure function, no state.
func Qualify(ev UpdateEvent, commitment Commitment) (QualifyingEvent, bool) {
	switch ev.Kind {
	case KindSlot:
		if Commitment(ev.Slot.GetStatus()) < commitment {
			return QualifyingEvent{}, false
		}
		return QualifyingEvent{
			Slot:       ev.Slot.GetSlot(),
			Kind:       KindSlot,
			ReceivedAt: ev.ReceivedAt,
		}, true
	case KindBlock:
		return QualifyingEvent{
			Slot:       ev.Block.GetSlot(),
			Blockhash:  ev.Block.GetBlockhash(),
			Kind:       KindBlock,
			ReceivedAt: ev.ReceivedAt,
		}, true
	case KindBlockMeta:
		return QualifyingEvent{
			Slot:       ev.BlockMeta.GetSlot(),
			Blockhash:  ev.BlockMeta.GetBlockhash(),
			Kind:       KindBlockMeta,
			ReceivedAt: ev.ReceivedAt,
		}, true
	}
	return QualifyingEvent{}, false
}
