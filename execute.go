package urplanner

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ExecuteCall is a compiled batch addressed to a router deployment.
// ExecuteCall is immutable - modifier methods return new instances.
type ExecuteCall struct {
	router   common.Address
	batch    *CompiledBatch
	deadline *big.Int // nil selects execute(bytes,bytes[])
	value    *big.Int // native value sent with the call
}

// NewExecuteCall creates an ExecuteCall for batch on the router at address.
func NewExecuteCall(router common.Address, batch *CompiledBatch) *ExecuteCall {
	return &ExecuteCall{
		router: router,
		batch:  batch,
	}
}

// Router returns the router address.
func (c *ExecuteCall) Router() common.Address {
	return c.router
}

// Batch returns the compiled batch.
func (c *ExecuteCall) Batch() *CompiledBatch {
	return c.batch
}

// Deadline returns the deadline, or nil if none is set.
func (c *ExecuteCall) Deadline() *big.Int {
	return c.deadline
}

// Value returns the native value to send with the call. Never nil.
func (c *ExecuteCall) Value() *big.Int {
	if c.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(c.value)
}

// WithDeadline sets a unix-timestamp deadline after which the router rejects
// the batch.
//
// Returns a new ExecuteCall with the deadline set.
func (c *ExecuteCall) WithDeadline(deadline *big.Int) *ExecuteCall {
	clone := c.clone()
	if deadline != nil {
		clone.deadline = new(big.Int).Set(deadline)
	} else {
		clone.deadline = nil
	}
	return clone
}

// WithValue attaches native value to the call, needed when the batch wraps
// native tokens.
//
// Returns a new ExecuteCall with the value set.
func (c *ExecuteCall) WithValue(amount *big.Int) *ExecuteCall {
	clone := c.clone()
	if amount != nil {
		clone.value = new(big.Int).Set(amount)
	} else {
		clone.value = nil
	}
	return clone
}

// Calldata returns the packed execute call.
func (c *ExecuteCall) Calldata() ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c.batch.Calldata(c.deadline)
}

// clone creates a shallow copy of the ExecuteCall.
func (c *ExecuteCall) clone() *ExecuteCall {
	clone := *c
	return &clone
}

// validate checks the call before encoding.
func (c *ExecuteCall) validate() error {
	if c.batch == nil {
		return fmt.Errorf("%w: no batch", ErrMalformedEncoding)
	}
	if c.value != nil && c.value.Sign() < 0 {
		return fmt.Errorf("%w: value %s", ErrNegativeAmount, c.value)
	}
	return nil
}
