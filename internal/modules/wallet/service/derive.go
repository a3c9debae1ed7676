package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DeriveAddress returns the EIP-55 address of the platform wallet at index.
// The private key is HMAC-SHA256(seed, "wallet/<index>") read as a secp256k1 scalar and is never kept.
func DeriveAddress(seed []byte, index int) (string, error) {
	if len(seed) == 0 {
		return "", fmt.Errorf("empty wallet seed")
	}
	if index < 0 {
		return "", fmt.Errorf("negative wallet index %d", index)
	}

	mac := hmac.New(sha256.New, seed)
	mac.Write([]byte("wallet/" + strconv.Itoa(index)))

	key, err := crypto.ToECDSA(mac.Sum(nil))
	if err != nil {
		return "", fmt.Errorf("derive wallet %d: %w", index, err)
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

// NormalizeAddress validates a hex address and returns its checksummed form.
func NormalizeAddress(address string) (string, bool) {
	if !common.IsHexAddress(address) {
		return "", false
	}
	return common.HexToAddress(address).Hex(), true
}
