package eip712

import (
	"bytes"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/wippyai/walletcore/abi"
	"github.com/wippyai/walletcore/errors"
	"github.com/wippyai/walletcore/keccak"
)

// digestPrefix is prepended to the domain separator and message hash.
var digestPrefix = []byte{0x19, 0x01}

// HashStruct returns keccak256(typeHash ‖ enc(field1) ‖ ...). A struct with no
// field values, or whose definition has no fields, hashes to the zero hash.
func HashStruct(s *abi.Struct) common.Hash {
	if s.IsEmpty() || len(s.Def().Fields) == 0 {
		return common.Hash{}
	}

	typeHash := TypeHash(s.Def())
	fields := s.Fields()
	buf := make([]byte, 0, common.HashLength*(len(fields)+1))
	buf = append(buf, typeHash[:]...)
	for _, f := range fields {
		buf = append(buf, encodeData(f.Value)...)
	}
	return keccak.Sum256(buf)
}

// encodeData returns the 32-byte contribution of one field value.
func encodeData(v abi.Value) []byte {
	switch x := v.(type) {
	case *abi.Struct:
		h := HashStruct(x)
		return h[:]
	case *abi.Bytes:
		h := keccak.Sum256(x.Val())
		return h[:]
	case *abi.String:
		h := keccak.Sum256([]byte(x.Val()))
		return h[:]
	case *abi.DynArray, *abi.FixedArray, *abi.Tuple:
		members := abi.Members(v)
		buf := make([]byte, 0, common.HashLength*len(members))
		for _, m := range members {
			buf = append(buf, encodeData(m)...)
		}
		h := keccak.Sum256(buf)
		return h[:]
	default:
		return abi.EncodeWord(v)
	}
}

// TypedData is resolved typed data: the registry plus the domain and
// message values.
type TypedData struct {
	Types       *Registry
	PrimaryType string
	Domain      *abi.Struct
	Message     *abi.Struct
}

// ParseTypedData validates the four top-level keys of typed data JSON and
// resolves the domain and message against the declared types.
func ParseTypedData(data []byte) (*TypedData, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errors.InvalidInput(errors.PhaseParse, nil, "typed data must be a JSON object")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Cause(err).
			Detail("malformed typed data").
			Build()
	}
	for _, key := range []string{"types", "primaryType", "domain", "message"} {
		if v, ok := top[key]; !ok || isNull(bytes.TrimSpace(v)) {
			return nil, errors.FieldMissing(errors.PhaseParse, nil, key)
		}
	}

	var primary string
	if err := json.Unmarshal(top["primaryType"], &primary); err != nil || primary == "" {
		return nil, errors.InvalidInput(errors.PhaseParse, []string{"primaryType"}, "primaryType must be a non-empty string")
	}

	reg, err := MakeTypes(top["types"])
	if err != nil {
		return nil, err
	}
	domain, err := reg.MakeStruct(DomainType, top["domain"])
	if err != nil {
		return nil, err
	}
	message, err := reg.MakeStruct(primary, top["message"])
	if err != nil {
		return nil, err
	}

	return &TypedData{
		Types:       reg,
		PrimaryType: primary,
		Domain:      domain,
		Message:     message,
	}, nil
}

// DomainSeparator returns hashStruct(domain).
func (td *TypedData) DomainSeparator() common.Hash {
	return HashStruct(td.Domain)
}

// MessageHash returns hashStruct(message).
func (td *TypedData) MessageHash() common.Hash {
	return HashStruct(td.Message)
}

// Hash returns keccak256(0x19 ‖ 0x01 ‖ domainSeparator ‖ hashStruct(message)),
// the digest that gets signed.
func (td *TypedData) Hash() common.Hash {
	domain := td.DomainSeparator()
	message := td.MessageHash()
	digest := keccak.Sum256(digestPrefix, domain[:], message[:])

	Logger().Debug("eip712 digest",
		zap.String("primaryType", td.PrimaryType),
		zap.Stringer("domain", domain),
		zap.Stringer("digest", digest))
	return digest
}

// HashStructJSON parses typed data JSON and returns its signing digest.
func HashStructJSON(data []byte) (common.Hash, error) {
	td, err := ParseTypedData(data)
	if err != nil {
		return common.Hash{}, err
	}
	return td.Hash(), nil
}

// DomainSeparator parses typed data JSON and returns the hash of its domain.
func DomainSeparator(data []byte) (common.Hash, error) {
	td, err := ParseTypedData(data)
	if err != nil {
		return common.Hash{}, err
	}
	return td.DomainSeparator(), nil
}
