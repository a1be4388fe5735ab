package urplanner

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Router ABI method names. The ABI parser renames the second overload.
const (
	executeMethod             = "execute"
	executeWithDeadlineMethod = "execute0"
)

// routerABIJSON is the subset of the router ABI this package encodes calls for.
const routerABIJSON = `[
	{
		"name": "execute",
		"type": "function",
		"stateMutability": "payable",
		"inputs": [
			{"name": "commands", "type": "bytes"},
			{"name": "inputs", "type": "bytes[]"}
		],
		"outputs": []
	},
	{
		"name": "execute",
		"type": "function",
		"stateMutability": "payable",
		"inputs": [
			{"name": "commands", "type": "bytes"},
			{"name": "inputs", "type": "bytes[]"},
			{"name": "deadline", "type": "uint256"}
		],
		"outputs": []
	}
]`

// RouterABI is the parsed ABI of the router's execute entry points.
var RouterABI = MustParseABI(routerABIJSON)

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}

// Calldata packs the batch into a call of the router's execute function.
// A nil deadline selects the overload without a deadline.
func (b *CompiledBatch) Calldata(deadline *big.Int) ([]byte, error) {
	if deadline == nil {
		data, err := RouterABI.Pack(executeMethod, b.Commands, b.inputsForPack())
		if err != nil {
			return nil, &EncodingError{Value: b, Err: err}
		}
		return data, nil
	}

	if deadline.Sign() < 0 {
		return nil, fmt.Errorf("%w: deadline %s", ErrNegativeAmount, deadline)
	}
	data, err := RouterABI.Pack(executeWithDeadlineMethod, b.Commands, b.inputsForPack(), deadline)
	if err != nil {
		return nil, &EncodingError{Value: b, Err: err}
	}
	return data, nil
}

// inputsForPack returns the payloads with nil slices replaced by empty ones.
func (b *CompiledBatch) inputsForPack() [][]byte {
	out := make([][]byte, len(b.Inputs))
	for i, in := range b.Inputs {
		out[i] = nonNilBytes(in)
	}
	return out
}

// DecodeCalldata unpacks calldata produced by Calldata back into a batch and
// its deadline (nil for the overload without one).
func DecodeCalldata(data []byte) (*CompiledBatch, *big.Int, error) {
	if len(data) < 4 {
		return nil, nil, ErrMalformedEncoding
	}

	method, err := RouterABI.MethodById(data[:4])
	if err != nil {
		return nil, nil, &EncodingError{Value: data, Err: err}
	}

	vals, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, nil, &EncodingError{Value: data, Err: err}
	}

	commands, ok := vals[0].([]byte)
	if !ok {
		return nil, nil, ErrMalformedEncoding
	}
	inputs, ok := vals[1].([][]byte)
	if !ok {
		return nil, nil, ErrMalformedEncoding
	}

	var deadline *big.Int
	if len(vals) == 3 {
		if deadline, ok = vals[2].(*big.Int); !ok {
			return nil, nil, ErrMalformedEncoding
		}
	}

	return &CompiledBatch{Commands: commands, Inputs: inputs}, deadline, nil
}
