package eip712

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/wippyai/walletcore/errors"
)

// SignatureLength is the size of an r ‖ s ‖ v signature.
const SignatureLength = crypto.SignatureLength

// Signer signs a 32-byte digest, returning r ‖ s ‖ v with v in {27, 28}.
type Signer interface {
	Sign(hash common.Hash) ([]byte, error)
}

// KeySigner signs with an in-memory secp256k1 key.
type KeySigner struct {
	key *ecdsa.PrivateKey
}

func NewKeySigner(key *ecdsa.PrivateKey) *KeySigner {
	return &KeySigner{key: key}
}

// Address returns the account address of the signing key.
func (s *KeySigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

func (s *KeySigner) Sign(hash common.Hash) ([]byte, error) {
	if s.key == nil {
		return nil, errors.InvalidInput(errors.PhaseSign, nil, "no signing key")
	}
	sig, err := crypto.Sign(hash[:], s.key)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSign, errors.KindInvalidInput, err, "sign digest")
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// SignTypedDataJSON computes the digest of typed data JSON and signs it.
func SignTypedDataJSON(data []byte, signer Signer) (common.Hash, []byte, error) {
	digest, err := HashStructJSON(data)
	if err != nil {
		return common.Hash{}, nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return common.Hash{}, nil, err
	}
	return digest, sig, nil
}

// RecoverAddress returns the address whose key produced sig over hash. v may
// be 0/1 or 27/28.
func RecoverAddress(hash common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, errors.LengthMismatch(errors.PhaseSign, nil, "signature", SignatureLength, len(sig))
	}
	rsv := make([]byte, SignatureLength)
	copy(rsv, sig)
	if rsv[crypto.RecoveryIDOffset] >= 27 {
		rsv[crypto.RecoveryIDOffset] -= 27
	}
	if rsv[crypto.RecoveryIDOffset] > 1 {
		return common.Address{}, errors.InvalidInput(errors.PhaseSign, nil, "invalid recovery id")
	}

	pub, err := crypto.SigToPub(hash[:], rsv)
	if err != nil {
		return common.Address{}, errors.Wrap(errors.PhaseSign, errors.KindInvalidData, err, "recover public key")
	}
	return crypto.PubkeyToAddress(*pub), nil
}
