package config

import (
	"fmt"
	"os"

	"github.com/brojonat/blockpulse/service/trigger"
	"gopkg.in/yaml.v3"
)

// Wallet is one source wallet with its signing key, as declared in the
// transfer plan file.
type Wallet struct {
	Address   string `yaml:"address"`
	SecretKey string `yaml:"secret_key"`
}

// Plan is the transfer plan loaded from the YAML file named by
// TRANSFER_PLAN_PATH: the source wallets we hold keys for, and the
// (source, destination, amount) tuples dispatched per qualifying event.
type Plan struct {
	Wallets   []Wallet           `yaml:"wallets"`
	Transfers []trigger.Transfer `yaml:"transfers"`
}

// LoadPlan reads and validates a transfer plan file. Key material and
// addresses are validated later against the keyring; this only checks
// the structural invariants the file itself can violate.
func LoadPlan(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transfer plan: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse transfer plan: %w", err)
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks the plan's structural invariants.
func (p *Plan) Validate() error {
	var errs []error

	if len(p.Wallets) == 0 {
		errs = append(errs, fmt.Errorf("transfer plan declares no wallets"))
	}

	seen := make(map[string]struct{}, len(p.Wallets))
	for i, w := range p.Wallets {
		if w.Address == "" {
			errs = append(errs, fmt.Errorf("wallet %d has no address", i))
		}
		if w.SecretKey == "" {
			errs = append(errs, fmt.Errorf("wallet %d (%s) has no secret key", i, w.Address))
		}
		if _, dup := seen[w.Address]; dup {
			errs = append(errs, fmt.Errorf("wallet %s declared more than once", w.Address))
		}
		seen[w.Address] = struct{}{}
	}

	// An empty transfer list is allowed: every qualifying event then
	// yields an empty batch, a no-op rather than an error.
	for i, t := range p.Transfers {
		if t.Source == "" || t.Destination == "" {
			errs = append(errs, fmt.Errorf("transfer %d is missing source or destination", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("transfer plan validation failed: %v", errs)
	}
	return nil
}

// WalletSecrets returns the address-to-secret map used to build the keyring.
func (p *Plan) WalletSecrets() map[string]string {
	out := make(map[string]string, len(p.Wallets))
	for _, w := range p.Wallets {
		out[w.Address] = w.SecretKey
	}
	return out
}

// WalletAddresses returns the declared wallet addresses in plan order.
func (p *Plan) WalletAddresses() []string {
	out := make([]string, 0, len(p.Wallets))
	for _, w := range p.Wallets {
		out = append(out, w.Address)
	}
	return out
}
