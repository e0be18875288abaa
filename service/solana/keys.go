package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Keyring holds the signing keys for the configured source wallets,
// indexed by their base58 address.
type Keyring struct {
	keys map[solana.PublicKey]solana.PrivateKey
}

// NewKeyring decodes base58 secret keys and verifies each against its
// declared address. A mismatch or undecodable key is a configuration
// error and fails construction.
func NewKeyring(wallets map[string]string) (*Keyring, error) {
	keys := make(map[solana.PublicKey]solana.PrivateKey, len(wallets))
	for address, secret := range wallets {
		pub, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet address %q: %w", address, err)
		}
		key, err := solana.PrivateKeyFromBase58(secret)
		if err != nil {
			return nil, fmt.Errorf("invalid secret key for wallet %s: %w", address, err)
		}
		if !key.PublicKey().Equals(pub) {
			return nil, fmt.Errorf("secret key for wallet %s does not match its address", address)
		}
		keys[pub] = key
	}
	return &Keyring{keys: keys}, nil
}

// Key returns the signing key for an address, if the keyring holds it.
func (k *Keyring) Key(address solana.PublicKey) (solana.PrivateKey, bool) {
	key, ok := k.keys[address]
	return key, ok
}

// Has reports whether the keyring holds a key for the address.
func (k *Keyring) Has(address solana.PublicKey) bool {
	_, ok := k.keys[address]
	return ok
}

// Addresses returns all wallet addresses in the keyring.
func (k *Keyring) Addresses() []solana.PublicKey {
	out := make([]solana.PublicKey, 0, len(k.keys))
	for pub := range k.keys {
		out = append(out, pub)
	}
	return out
}

// Len returns the number of wallets in the keyring.
func (k *Keyring) Len() int {
	return len(k.keys)
}
