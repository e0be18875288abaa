package trigger

import (
	"fmt"
	"log/slog"

	solanasvc "github.com/brojonat/blockpulse/service/solana"
	"github.com/brojonat/blockpulse/service/stream"
	"github.com/gagliardetto/solana-go"
)

// Instruction is one transfer to perform: move Lamports from Source to
// Destination. Instructions are value types and never mutated.
type Instruction struct {
	Source      solana.PublicKey
	Destination solana.PublicKey
	Lamports    uint64
}

// Transfer is the raw (source, destination, amount) tuple from the
// transfer plan, before validation.
type Transfer struct {
	Source         string `yaml:"source"`
	Destination    string `yaml:"destination"`
	AmountLamports uint64 `yaml:"amount_lamports"`
}

// Policy turns qualifying stream events into transfer batches. Every
// qualifying event produces one full pass over the configured transfer
// list. The policy is immutable after construction and safe for
// concurrent use.
type Policy struct {
	transfers []Instruction
	logger    *slog.Logger
}

// NewPolicy validates the transfer plan against the keyring. A transfer
// naming an unknown source wallet, an unparseable destination, or a
// zero amount is a configuration error and fails construction.
func NewPolicy(transfers []Transfer, keys *solanasvc.Keyring, logger *slog.Logger) (*Policy, error) {
	out := make([]Instruction, 0, len(transfers))
	for i, t := range transfers {
		source, err := solana.PublicKeyFromBase58(t.Source)
		if err != nil {
			return nil, fmt.Errorf("transfer %d: invalid source address %q: %w", i, t.Source, err)
		}
		if !keys.Has(source) {
			return nil, fmt.Errorf("transfer %d: source wallet %s has no configured keypair", i, t.Source)
		}
		destination, err := solana.PublicKeyFromBase58(t.Destination)
		if err != nil {
			return nil, fmt.Errorf("transfer %d: invalid destination address %q: %w", i, t.Destination, err)
		}
		if t.AmountLamports == 0 {
			return nil, fmt.Errorf("transfer %d: amount must be greater than zero", i)
		}
		out = append(out, Instruction{
			Source:      source,
			Destination: destination,
			Lamports:    t.AmountLamports,
		})
	}
	return &Policy{transfers: out, logger: logger}, nil
}

// BatchFor returns the batch of instructions triggered by one
// qualifying event. An empty transfer plan yields an empty batch, which
// is a no-op rather than an error. The returned slice is a fresh copy;
// callers own it outright.
func (p *Policy) BatchFor(ev stream.QualifyingEvent) []Instruction {
	batch := make([]Instruction, len(p.transfers))
	copy(batch, p.transfers)
	p.logger.Debug("triggered batch",
		"slot", ev.Slot,
		"kind", string(ev.Kind),
		"instructions", len(batch),
	)
	return batch
}

// Size returns the number of instructions per batch.
func (p *Policy) Size() int {
	return len(p.transfers)
}
