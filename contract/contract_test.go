package contract

import (
	"bytes"
	"encoding/hex"
	stderrors "errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/wippyai/walletcore/abi"
	"github.com/wippyai/walletcore/errors"
)

var (
	alice  = common.HexToAddress("0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826")
	bob    = common.HexToAddress("0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB")
	oneEth = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

func TestSelectors(t *testing.T) {
	tests := []struct {
		method    Method
		signature string
		selector  string
	}{
		{MethodERC20Transfer, "transfer(address,uint256)", "a9059cbb"},
		{MethodERC20Approve, "approve(address,uint256)", "095ea7b3"},
		{MethodERC20TransferFrom, "transferFrom(address,address,uint256)", "23b872dd"},
		{MethodERC20BalanceOf, "balanceOf(address)", "70a08231"},
		{MethodERC20Allowance, "allowance(address,address)", "dd62ed3e"},
		{MethodERC721TransferFrom, "transferFrom(address,address,uint256)", "23b872dd"},
		{MethodERC721SafeTransferFrom, "safeTransferFrom(address,address,uint256)", "42842e0e"},
		{MethodERC721SafeTransferFromData, "safeTransferFrom(address,address,uint256,bytes)", "b88d4fde"},
		{MethodERC721OwnerOf, "ownerOf(uint256)", "6352211e"},
		{MethodSetApprovalForAll, "setApprovalForAll(address,bool)", "a22cb465"},
		{MethodERC1155SafeTransferFrom, "safeTransferFrom(address,address,uint256,uint256,bytes)", "f242432a"},
		{MethodERC1155SafeBatchTransferFrom, "safeBatchTransferFrom(address,address,uint256[],uint256[],bytes)", "2eb2c2d6"},
		{MethodERC1155BalanceOf, "balanceOf(address,uint256)", "00fdd58e"},
		{MethodExecute, "execute(address,uint256,bytes)", "b61d27f6"},
		{MethodExecuteBatch, "executeBatch(address[],uint256[],bytes[])", "47e1da2a"},
	}

	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			if got := tt.method.Signature(); got != tt.signature {
				t.Errorf("Signature = %q, want %q", got, tt.signature)
			}
			sel := tt.method.Selector()
			if got := hex.EncodeToString(sel[:]); got != tt.selector {
				t.Errorf("Selector = %s, want %s", got, tt.selector)
			}
		})
	}
}

func TestERC20TransferCallData(t *testing.T) {
	fn, err := ERC20Transfer(bob, oneEth)
	if err != nil {
		t.Fatalf("ERC20Transfer: %v", err)
	}
	want := "0xa9059cbb" +
		"000000000000000000000000bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" +
		"0000000000000000000000000000000000000000000000000de0b6b3a7640000"
	if got := fn.EncodeCallHex(); got != want {
		t.Errorf("EncodeCallHex =\n%s\nwant\n%s", got, want)
	}

	ret, err := fn.DecodeOutput(abi.Encode(abi.NewBool(true)))
	if err != nil {
		t.Fatalf("DecodeOutput: %v", err)
	}
	if len(ret) != 1 || ret[0].Value.String() != "true" {
		t.Errorf("DecodeOutput = %v", ret)
	}
}

func TestBuildersRoundTrip(t *testing.T) {
	mustFn := func(fn *abi.Function, err error) *abi.Function {
		t.Helper()
		if err != nil {
			t.Fatalf("builder: %v", err)
		}
		return fn
	}

	tests := []struct {
		name string
		fn   *abi.Function
		want Method
		args map[string]string
	}{
		{"erc20 transfer", mustFn(ERC20Transfer(bob, oneEth)), MethodERC20Transfer,
			map[string]string{"to": bob.Hex(), "amount": "1000000000000000000"}},
		{"erc20 approve", mustFn(ERC20Approve(bob, nil)), MethodERC20Approve,
			map[string]string{"spender": bob.Hex(), "amount": "0"}},
		{"erc20 transferFrom", mustFn(ERC20TransferFrom(alice, bob, big.NewInt(5))), MethodERC20TransferFrom,
			map[string]string{"from": alice.Hex(), "to": bob.Hex(), "amount": "5"}},
		{"erc20 balanceOf", ERC20BalanceOf(alice), MethodERC20BalanceOf,
			map[string]string{"owner": alice.Hex()}},
		{"erc20 allowance", ERC20Allowance(alice, bob), MethodERC20Allowance,
			map[string]string{"owner": alice.Hex(), "spender": bob.Hex()}},
		{"erc721 safeTransferFrom", mustFn(ERC721SafeTransferFrom(alice, bob, big.NewInt(42), nil)), MethodERC721SafeTransferFrom,
			map[string]string{"tokenId": "42"}},
		{"erc721 safeTransferFrom data", mustFn(ERC721SafeTransferFrom(alice, bob, big.NewInt(42), []byte{1, 2})), MethodERC721SafeTransferFromData,
			map[string]string{"tokenId": "42", "data": "0x0102"}},
		{"erc721 ownerOf", mustFn(ERC721OwnerOf(big.NewInt(9))), MethodERC721OwnerOf,
			map[string]string{"tokenId": "9"}},
		{"setApprovalForAll", SetApprovalForAll(bob, true), MethodSetApprovalForAll,
			map[string]string{"operator": bob.Hex(), "approved": "true"}},
		{"erc1155 safeTransferFrom", mustFn(ERC1155SafeTransferFrom(alice, bob, big.NewInt(3), big.NewInt(10), nil)), MethodERC1155SafeTransferFrom,
			map[string]string{"id": "3", "amount": "10", "data": "0x"}},
		{"erc1155 batch", mustFn(ERC1155SafeBatchTransferFrom(alice, bob,
			[]*big.Int{big.NewInt(1), big.NewInt(2)}, []*big.Int{big.NewInt(10), big.NewInt(20)}, []byte("hi"))),
			MethodERC1155SafeBatchTransferFrom,
			map[string]string{"ids": "[1,2]", "amounts": "[10,20]", "data": "0x6869"}},
		{"erc1155 balanceOf", mustFn(ERC1155BalanceOf(alice, big.NewInt(3))), MethodERC1155BalanceOf,
			map[string]string{"owner": alice.Hex(), "id": "3"}},
		{"execute", mustFn(Execute(Call{To: bob, Value: oneEth, Data: []byte{0xca, 0xfe}})), MethodExecute,
			map[string]string{"dest": bob.Hex(), "value": "1000000000000000000", "func": "0xcafe"}},
		{"executeBatch", mustFn(ExecuteBatch([]Call{
			{To: alice, Data: []byte{1}},
			{To: bob, Value: big.NewInt(7)},
		})), MethodExecuteBatch,
			map[string]string{"dest": "[" + alice.Hex() + "," + bob.Hex() + "]", "value": "[0,7]", "func": "[0x01,0x]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.fn.EncodeCall()
			m, args, err := DecodeCall(data)
			if err != nil {
				t.Fatalf("DecodeCall: %v", err)
			}
			if m.Selector() != tt.want.Selector() || m.Standard != tt.want.Standard {
				t.Errorf("identified %s (%s), want %s (%s)", m.Signature(), m.Standard, tt.want.Signature(), tt.want.Standard)
			}
			for name, want := range tt.args {
				v, ok := args.Get(name)
				if !ok {
					t.Errorf("argument %s missing", name)
					continue
				}
				if v.String() != want {
					t.Errorf("%s = %s, want %s", name, v, want)
				}
			}
			if !bytes.Equal(abi.EncodeParams(args), data[abi.SelectorSize:]) {
				t.Error("re-encoding decoded arguments differs")
			}
		})
	}
}

func TestTransferFromIdentifiesAsERC20(t *testing.T) {
	fn, err := ERC721TransferFrom(alice, bob, big.NewInt(1))
	if err != nil {
		t.Fatal(err)
	}
	m, ok := Identify(fn.EncodeCall())
	if !ok || m.Standard != StandardERC20 {
		t.Errorf("Identify = %v, %v", m, ok)
	}
}

func TestBuilderErrors(t *testing.T) {
	negative := big.NewInt(-1)
	huge := new(big.Int).Lsh(big.NewInt(1), 256)

	tests := []struct {
		name string
		err  error
		kind errors.Kind
	}{
		{"negative amount", second(ERC20Transfer(bob, negative)), errors.KindOverflow},
		{"huge amount", second(ERC20Approve(bob, huge)), errors.KindOverflow},
		{"huge token id", second(ERC721TransferFrom(alice, bob, huge)), errors.KindOverflow},
		{"negative batch id", second(ERC1155SafeBatchTransferFrom(alice, bob, []*big.Int{negative}, []*big.Int{big.NewInt(1)}, nil)), errors.KindOverflow},
		{"batch length", second(ERC1155SafeBatchTransferFrom(alice, bob, []*big.Int{big.NewInt(1)}, nil, nil)), errors.KindLengthMismatch},
		{"negative call value", second(ExecuteBatch([]Call{{To: bob, Value: negative}})), errors.KindOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e *errors.Error
			if !stderrors.As(tt.err, &e) {
				t.Fatalf("error = %v, want *errors.Error", tt.err)
			}
			if e.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", e.Kind, tt.kind)
			}
		})
	}
}

func second(_ *abi.Function, err error) error { return err }

func TestDecodeCallErrors(t *testing.T) {
	if _, _, err := DecodeCall([]byte{0xa9, 0x05}); err == nil {
		t.Error("short call data accepted")
	}
	if _, _, err := DecodeCall([]byte{0xde, 0xad, 0xbe, 0xef}); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindNotFound}) {
		t.Errorf("unknown selector error = %v", err)
	}

	fn, _ := ERC20Transfer(bob, oneEth)
	data := fn.EncodeCall()
	if _, _, err := DecodeCall(data[:len(data)-1]); err == nil {
		t.Error("truncated call data accepted")
	}
	if _, ok := Identify(data); !ok {
		t.Error("Identify failed on transfer call data")
	}
	if !strings.HasPrefix(fn.EncodeCallHex(), "0xa9059cbb") {
		t.Error("unexpected selector")
	}
}
