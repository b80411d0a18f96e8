package contract

import (
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/wippyai/walletcore/abi"
)

// Call is one operation executed by a smart account.
type Call struct {
	To    common.Address
	Value *big.Int
	Data  []byte
}

// Execute builds execute(address dest, uint256 value, bytes func).
func Execute(c Call) (*abi.Function, error) {
	v, err := uint256("value", c.Value)
	if err != nil {
		return nil, err
	}
	return MethodExecute.call(abi.NewAddress(c.To), v, abi.NewBytes(c.Data)), nil
}

// ExecuteBatch builds executeBatch(address[] dest, uint256[] value, bytes[] func)
// from calls, splitting them into the three parallel arrays.
func ExecuteBatch(calls []Call) (*abi.Function, error) {
	dests := make([]abi.Value, len(calls))
	values := make([]abi.Value, len(calls))
	datas := make([]abi.Value, len(calls))
	for i, c := range calls {
		v, err := uint256("value["+strconv.Itoa(i)+"]", c.Value)
		if err != nil {
			return nil, err
		}
		dests[i] = abi.NewAddress(c.To)
		values[i] = v
		datas[i] = abi.NewBytes(c.Data)
	}
	return MethodExecuteBatch.call(
		abi.NewDynArray(addressT, dests...),
		abi.NewDynArray(uint256T, values...),
		abi.NewDynArray(bytesT, datas...),
	), nil
}
