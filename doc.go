// Package walletcore provides the Ethereum encoding primitives a wallet needs
// to build, inspect and sign contract interactions.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	walletcore/          Root package (documentation only)
//	├── abi/             Solidity ABI value model, type parser, encoder and decoder
//	├── eip712/          Typed structured data: type resolution, hashing, signing
//	├── contract/        Selectors and call builders for ERC-20/721/1155 and accounts
//	├── keccak/          Keccak-256 digests and 4-byte selectors
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Build ERC-20 transfer call data:
//
//	fn, err := contract.ERC20Transfer(to, amount)
//	if err != nil {
//	    return err
//	}
//	data := fn.EncodeCall()
//
// Decode call data of unknown origin:
//
//	method, args, err := contract.DecodeCall(data)
//
// Hash and sign eth_signTypedData_v4 input:
//
//	digest, sig, err := eip712.SignTypedDataJSON(typedDataJSON, eip712.NewKeySigner(key))
//
// # Error Handling
//
// All packages return *errors.Error, which records the phase and kind of the
// failure together with the path of the offending field:
//
//	var e *errors.Error
//	if stderrors.As(err, &e) {
//	    fmt.Println(e.Phase, e.Kind, e.Path)
//	}
//
// Errors compare by phase and kind with errors.Is:
//
//	stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds})
//
// # Logging
//
// The abi and eip712 packages log at debug level through zap. Both default to
// a no-op logger; install one with abi.SetLogger and eip712.SetLogger.
package walletcore
