package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/wippyai/walletcore/abi"
	"github.com/wippyai/walletcore/errors"
)

func ERC1155SafeTransferFrom(from, to common.Address, id, amount *big.Int, data []byte) (*abi.Function, error) {
	idV, err := uint256("id", id)
	if err != nil {
		return nil, err
	}
	amountV, err := uint256("amount", amount)
	if err != nil {
		return nil, err
	}
	return MethodERC1155SafeTransferFrom.call(
		abi.NewAddress(from), abi.NewAddress(to), idV, amountV, abi.NewBytes(data),
	), nil
}

// ERC1155SafeBatchTransferFrom requires one amount per id.
func ERC1155SafeBatchTransferFrom(from, to common.Address, ids, amounts []*big.Int, data []byte) (*abi.Function, error) {
	if len(ids) != len(amounts) {
		return nil, errors.LengthMismatch(errors.PhaseConstruct, []string{"amounts"}, "uint256[]", len(ids), len(amounts))
	}
	idsV, err := uint256s("ids", ids)
	if err != nil {
		return nil, err
	}
	amountsV, err := uint256s("amounts", amounts)
	if err != nil {
		return nil, err
	}
	return MethodERC1155SafeBatchTransferFrom.call(
		abi.NewAddress(from), abi.NewAddress(to), idsV, amountsV, abi.NewBytes(data),
	), nil
}

func ERC1155BalanceOf(owner common.Address, id *big.Int) (*abi.Function, error) {
	idV, err := uint256("id", id)
	if err != nil {
		return nil, err
	}
	return MethodERC1155BalanceOf.call(abi.NewAddress(owner), idV), nil
}
