// Package urplanner compiles router commands into the batch format consumed
// by universal-router style contracts.
//
// A batch is two parallel values: an opcode stream with one byte per command,
// and a list of ABI-encoded payloads, one per opcode. The router executes the
// commands in order within a single transaction.
//
// # Basic Usage
//
// Build a plan from typed commands and compile it:
//
//	path := urplanner.MustPath(
//	    []common.Address{weth, usdc},
//	    []urplanner.FeeTier{urplanner.FeeV3Low},
//	)
//
//	planner := urplanner.New()
//	planner.Add(&urplanner.WrapETH{Recipient: urplanner.AddressThis, AmountMin: amountIn})
//	planner.Add(&urplanner.V3SwapExactIn{
//	    Recipient:    urplanner.MsgSender,
//	    AmountIn:     amountIn,
//	    AmountOutMin: minOut,
//	    Path:         path,
//	})
//
//	batch, err := planner.Plan()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// execute(bytes commands, bytes[] inputs, uint256 deadline)
//	calldata, err := batch.Calldata(deadline)
//
// # Commands
//
// Command is a sealed interface; every variant carries its own typed fields
// and maps to exactly one opcode and payload schema. Amounts are 256-bit
// unsigned integers (github.com/holiman/uint256). Fields narrower than 256
// bits, such as Permit2 uint160 amounts, are range checked when the batch is
// compiled and fail with EncodingOverflowError instead of being truncated.
//
// # Paths
//
// Concentrated-liquidity swaps take a packed path of alternating tokens and
// 3-byte fee tiers: token0 ++ fee0 ++ token1 ++ ... ++ tokenN. Use EncodePath
// or NewPath; DecodePath reverses the layout for inspection.
//
// # Opcodes
//
// The low six bits of an opcode select the command. Setting FlagAllowRevert
// (Planner.AddAllowRevert) lets the batch continue if that command reverts.
// The remaining bit (ReservedBits) is always zero.
//
// Compile, EncodePath, DecodePath and DecodeBatch are pure functions and safe
// for concurrent use. A Planner is a single-goroutine builder.
package urplanner
