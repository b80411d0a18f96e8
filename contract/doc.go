// Package contract builds and recognizes call data for common token and
// smart-account methods.
//
// Builders return an *abi.Function carrying named, typed inputs:
//
//	fn, err := contract.ERC20Transfer(to, amount)
//	data := fn.EncodeCall() // a9059cbb ‖ to ‖ amount
//
// Identify and DecodeCall go the other way, looking the selector up in a
// table of known methods and decoding the arguments:
//
//	m, args, err := contract.DecodeCall(data)
//	m.Name            // "transfer"
//	args.Get("amount")
package contract
