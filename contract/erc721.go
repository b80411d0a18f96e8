package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/wippyai/walletcore/abi"
)

func ERC721TransferFrom(from, to common.Address, tokenID *big.Int) (*abi.Function, error) {
	id, err := uint256("tokenId", tokenID)
	if err != nil {
		return nil, err
	}
	return MethodERC721TransferFrom.call(abi.NewAddress(from), abi.NewAddress(to), id), nil
}

// ERC721SafeTransferFrom builds safeTransferFrom. A nil data selects the
// three-argument overload.
func ERC721SafeTransferFrom(from, to common.Address, tokenID *big.Int, data []byte) (*abi.Function, error) {
	id, err := uint256("tokenId", tokenID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return MethodERC721SafeTransferFrom.call(abi.NewAddress(from), abi.NewAddress(to), id), nil
	}
	return MethodERC721SafeTransferFromData.call(abi.NewAddress(from), abi.NewAddress(to), id, abi.NewBytes(data)), nil
}

func ERC721OwnerOf(tokenID *big.Int) (*abi.Function, error) {
	id, err := uint256("tokenId", tokenID)
	if err != nil {
		return nil, err
	}
	return MethodERC721OwnerOf.call(id), nil
}

// SetApprovalForAll is shared by ERC-721 and ERC-1155.
func SetApprovalForAll(operator common.Address, approved bool) *abi.Function {
	return MethodSetApprovalForAll.call(abi.NewAddress(operator), abi.NewBool(approved))
}
