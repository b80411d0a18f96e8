package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/wippyai/walletcore/abi"
)

// ERC20Transfer builds transfer(address to, uint256 amount).
func ERC20Transfer(to common.Address, amount *big.Int) (*abi.Function, error) {
	v, err := uint256("amount", amount)
	if err != nil {
		return nil, err
	}
	return MethodERC20Transfer.call(abi.NewAddress(to), v), nil
}

// ERC20Approve builds approve(address spender, uint256 amount).
func ERC20Approve(spender common.Address, amount *big.Int) (*abi.Function, error) {
	v, err := uint256("amount", amount)
	if err != nil {
		return nil, err
	}
	return MethodERC20Approve.call(abi.NewAddress(spender), v), nil
}

// ERC20TransferFrom builds transferFrom(address from, address to, uint256 amount).
func ERC20TransferFrom(from, to common.Address, amount *big.Int) (*abi.Function, error) {
	v, err := uint256("amount", amount)
	if err != nil {
		return nil, err
	}
	return MethodERC20TransferFrom.call(abi.NewAddress(from), abi.NewAddress(to), v), nil
}

func ERC20BalanceOf(owner common.Address) *abi.Function {
	return MethodERC20BalanceOf.call(abi.NewAddress(owner))
}

func ERC20Allowance(owner, spender common.Address) *abi.Function {
	return MethodERC20Allowance.call(abi.NewAddress(owner), abi.NewAddress(spender))
}
