package contract

import (
	"math/big"

	"github.com/wippyai/walletcore/abi"
	"github.com/wippyai/walletcore/errors"
	"github.com/wippyai/walletcore/keccak"
)

// Standard names the interface a method belongs to.
type Standard string

const (
	StandardERC20   Standard = "erc20"
	StandardERC721  Standard = "erc721"
	StandardERC1155 Standard = "erc1155"
	StandardAccount Standard = "account"
)

// Method describes a known contract method.
type Method struct {
	Standard Standard
	Name     string
	Inputs   []abi.FieldDef
	Outputs  []abi.FieldDef
}

// Signature returns "name(type1,...)".
func (m Method) Signature() string {
	ts := make([]*abi.Type, len(m.Inputs))
	for i, in := range m.Inputs {
		ts[i] = in.Type
	}
	return abi.Signature(m.Name, ts...)
}

func (m Method) Selector() [abi.SelectorSize]byte {
	return keccak.Selector(m.Signature())
}

func field(name string, t *abi.Type) abi.FieldDef {
	return abi.FieldDef{Name: name, Type: t}
}

var (
	addressT = abi.AddressType()
	uint256T = abi.UintType(256)
	bytesT   = abi.BytesType()
	boolT    = abi.BoolType()
)

// Known methods. Overloads share a name and differ in inputs.
var (
	MethodERC20Transfer = Method{StandardERC20, "transfer",
		[]abi.FieldDef{field("to", addressT), field("amount", uint256T)},
		[]abi.FieldDef{field("", boolT)}}
	MethodERC20Approve = Method{StandardERC20, "approve",
		[]abi.FieldDef{field("spender", addressT), field("amount", uint256T)},
		[]abi.FieldDef{field("", boolT)}}
	MethodERC20TransferFrom = Method{StandardERC20, "transferFrom",
		[]abi.FieldDef{field("from", addressT), field("to", addressT), field("amount", uint256T)},
		[]abi.FieldDef{field("", boolT)}}
	MethodERC20BalanceOf = Method{StandardERC20, "balanceOf",
		[]abi.FieldDef{field("owner", addressT)},
		[]abi.FieldDef{field("balance", uint256T)}}
	MethodERC20Allowance = Method{StandardERC20, "allowance",
		[]abi.FieldDef{field("owner", addressT), field("spender", addressT)},
		[]abi.FieldDef{field("remaining", uint256T)}}

	MethodERC721TransferFrom = Method{StandardERC721, "transferFrom",
		[]abi.FieldDef{field("from", addressT), field("to", addressT), field("tokenId", uint256T)},
		nil}
	MethodERC721SafeTransferFrom = Method{StandardERC721, "safeTransferFrom",
		[]abi.FieldDef{field("from", addressT), field("to", addressT), field("tokenId", uint256T)},
		nil}
	MethodERC721SafeTransferFromData = Method{StandardERC721, "safeTransferFrom",
		[]abi.FieldDef{field("from", addressT), field("to", addressT), field("tokenId", uint256T), field("data", bytesT)},
		nil}
	MethodERC721OwnerOf = Method{StandardERC721, "ownerOf",
		[]abi.FieldDef{field("tokenId", uint256T)},
		[]abi.FieldDef{field("owner", addressT)}}
	MethodSetApprovalForAll = Method{StandardERC721, "setApprovalForAll",
		[]abi.FieldDef{field("operator", addressT), field("approved", boolT)},
		nil}

	MethodERC1155SafeTransferFrom = Method{StandardERC1155, "safeTransferFrom",
		[]abi.FieldDef{field("from", addressT), field("to", addressT), field("id", uint256T), field("amount", uint256T), field("data", bytesT)},
		nil}
	MethodERC1155SafeBatchTransferFrom = Method{StandardERC1155, "safeBatchTransferFrom",
		[]abi.FieldDef{field("from", addressT), field("to", addressT), field("ids", abi.ArrayType(uint256T)), field("amounts", abi.ArrayType(uint256T)), field("data", bytesT)},
		nil}
	MethodERC1155BalanceOf = Method{StandardERC1155, "balanceOf",
		[]abi.FieldDef{field("owner", addressT), field("id", uint256T)},
		[]abi.FieldDef{field("balance", uint256T)}}

	MethodExecute = Method{StandardAccount, "execute",
		[]abi.FieldDef{field("dest", addressT), field("value", uint256T), field("func", bytesT)},
		nil}
	MethodExecuteBatch = Method{StandardAccount, "executeBatch",
		[]abi.FieldDef{field("dest", abi.ArrayType(addressT)), field("value", abi.ArrayType(uint256T)), field("func", abi.ArrayType(bytesT))},
		nil}
)

// ERC-20 transferFrom and ERC-721 transferFrom share a signature; the table
// reports the ERC-20 reading.
var methodsBySelector = func() map[[abi.SelectorSize]byte]Method {
	all := []Method{
		MethodERC20Transfer, MethodERC20Approve, MethodERC20TransferFrom,
		MethodERC20BalanceOf, MethodERC20Allowance,
		MethodERC721SafeTransferFrom, MethodERC721SafeTransferFromData,
		MethodERC721OwnerOf, MethodSetApprovalForAll,
		MethodERC1155SafeTransferFrom, MethodERC1155SafeBatchTransferFrom,
		MethodERC1155BalanceOf,
		MethodExecute, MethodExecuteBatch,
	}
	m := make(map[[abi.SelectorSize]byte]Method, len(all))
	for _, method := range all {
		m[method.Selector()] = method
	}
	return m
}()

// Identify returns the known method whose selector starts data.
func Identify(data []byte) (Method, bool) {
	if len(data) < abi.SelectorSize {
		return Method{}, false
	}
	var sel [abi.SelectorSize]byte
	copy(sel[:], data)
	m, ok := methodsBySelector[sel]
	return m, ok
}

// DecodeCall identifies data and decodes its arguments.
func DecodeCall(data []byte) (Method, abi.ParamSet, error) {
	if len(data) < abi.SelectorSize {
		return Method{}, nil, errors.OutOfBounds(errors.PhaseDecode, nil, abi.SelectorSize, len(data))
	}
	m, ok := Identify(data)
	if !ok {
		return Method{}, nil, errors.New(errors.PhaseDecode, errors.KindNotFound).
			Detail("unknown selector %x", data[:abi.SelectorSize]).
			Build()
	}
	args, err := abi.DecodeParams(data[abi.SelectorSize:], m.Inputs)
	if err != nil {
		return Method{}, nil, err
	}
	return m, args, nil
}

// call binds values to the inputs of m. Values must already have the input
// types.
func (m Method) call(values ...abi.Value) *abi.Function {
	fn := &abi.Function{Name: m.Name, Outputs: m.Outputs}
	for i, in := range m.Inputs {
		fn.Inputs.Add(in.Name, values[i])
	}
	return fn
}

// uint256 validates an amount argument.
func uint256(name string, v *big.Int) (abi.Value, error) {
	if v == nil {
		return abi.NewUint64(256, 0), nil
	}
	if v.Sign() < 0 || v.BitLen() > 256 {
		return nil, errors.Overflow(errors.PhaseConstruct, []string{name}, v, "uint256")
	}
	return abi.NewUint(256, v), nil
}

func uint256s(name string, vs []*big.Int) (abi.Value, error) {
	arr := abi.NewDynArray(uint256T)
	for _, v := range vs {
		u, err := uint256(name, v)
		if err != nil {
			return nil, err
		}
		if err := arr.Append(u); err != nil {
			return nil, err
		}
	}
	return arr, nil
}
