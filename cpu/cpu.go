// Package cpu implements the decode-and-execute core of a MOS 6502
// (NMOS) microprocessor: register file, status flags, addressing-mode
// resolution, and the instruction set, driven one instruction at a time
// against a host-supplied memory.Bus.
package cpu

import (
	"fmt"

	"github.com/lanyon6502/core/memory"
)

// Status register bits (NV-BDIZC, bit 7 down to bit 0).
const (
	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Unused bit. Always reads as 1.
	P_B         = uint8(0x10) // Forced set in the copy of SR pushed by BRK/PHP and by RTI; PLP restores it from the stack.
	P_DECIMAL   = uint8(0x8)
	P_INTERRUPT = uint8(0x4)
	P_ZERO      = uint8(0x2)
	P_CARRY     = uint8(0x1)
)

// Fixed memory map locations this core depends on.
const (
	StackBase = uint16(0x0100)
	IRQVector = uint16(0xFFFE)
)

// Chip is an instance of 6502 architected state: the register file plus
// the bus it's wired to. Create one with Init, bring it to a known
// state with Reset, then drive it with Step.
type Chip struct {
	PC uint16 // Program counter.
	A  uint8  // Accumulator.
	X  uint8  // Index X.
	Y  uint8  // Index Y.
	SP uint8  // Stack pointer (stack lives in page 1).
	SR uint8  // Status register, bit-packed NV-BDIZC.

	bus         memory.Bus
	strictReset bool
}

// ChipDef configures a new Chip.
type ChipDef struct {
	// Bus is the host-supplied memory bus. Required.
	Bus memory.Bus
	// StrictReset, if true, makes Reset also set the I (interrupt
	// disable) flag, matching real silicon. The default (false) matches
	// this core's validated reference, which leaves I clear after
	// Reset. See Open Question 1 in DESIGN.md.
	StrictReset bool
}

// InvalidCPUState reports a Chip that cannot be built as configured.
// Init returns it when the ChipDef or its Bus is nil.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// IllegalOpcode is returned by Step when the opcode at PC has no entry
// in the dispatch table. It is fatal: the core does not recover or
// retry, and Chip state at the time of failure is left untouched for
// inspection.
type IllegalOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}

// Init creates a new Chip wired to the given bus. The Chip is not
// usable until Reset is called.
func Init(def *ChipDef) (*Chip, error) {
	if def == nil || def.Bus == nil {
		return nil, InvalidCPUState{Reason: "ChipDef.Bus must not be nil"}
	}
	return &Chip{
		bus:         def.Bus,
		strictReset: def.StrictReset,
	}, nil
}

// Reset initializes architected state to this core's post-reset values:
// PC is set to entryPC (the reset vector at 0xFFFC/0xFFFD is a host
// concern, not read by this core — see memory map assumptions),
// AC/X/Y are cleared, SP is set to 0xFD, and SR is cleared except for
// the always-set bit 5. I is left clear unless ChipDef.StrictReset was
// set at Init time.
func (c *Chip) Reset(entryPC uint16) {
	c.PC = entryPC
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.SR = P_S1
	if c.strictReset {
		c.SR |= P_INTERRUPT
	}
}

// Step fetches, decodes, and executes exactly one instruction, mutating
// Chip state and issuing zero or more bus accesses. It returns
// IllegalOpcode if the opcode at PC is undefined.
func (c *Chip) Step() error {
	opcodePC := c.PC
	op := c.fetch()
	entry := opcodeTable[op]
	if entry.run == nil {
		c.PC = opcodePC
		return IllegalOpcode{Opcode: op, PC: opcodePC}
	}
	return entry.run(c)
}

// read issues a bus read.
func (c *Chip) read(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// write issues a bus write.
func (c *Chip) write(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// fetch reads the byte at PC and advances PC by one. Used for the
// opcode byte itself and for every operand byte an addressing mode
// consumes.
func (c *Chip) fetch() uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

// push writes val to the stack and decrements SP, wrapping modulo 256.
func (c *Chip) push(val uint8) {
	c.bus.Write(StackBase+uint16(c.SP), val)
	c.SP--
}

// pop increments SP, wrapping modulo 256, then reads the stack.
func (c *Chip) pop() uint8 {
	c.SP++
	return c.bus.Read(StackBase + uint16(c.SP))
}

// zeroCheck sets the Z flag based on v.
func (c *Chip) zeroCheck(v uint8) {
	c.SR &^= P_ZERO
	if v == 0 {
		c.SR |= P_ZERO
	}
}

// negativeCheck sets the N flag from bit 7 of v.
func (c *Chip) negativeCheck(v uint8) {
	c.SR &^= P_NEGATIVE
	if v&P_NEGATIVE != 0 {
		c.SR |= P_NEGATIVE
	}
}

// carryCheck sets the C flag if an 8 bit ALU result (passed as the
// wider intermediate sum) carried out, i.e. is >= 0x100.
func (c *Chip) carryCheck(res uint16) {
	c.SR &^= P_CARRY
	if res >= 0x100 {
		c.SR |= P_CARRY
	}
}

// overflowCheck sets the V flag when reg and arg share a sign that
// differs from the result's sign — a two's complement sign change.
func (c *Chip) overflowCheck(reg, arg, res uint8) {
	c.SR &^= P_OVERFLOW
	if (reg^res)&(arg^res)&0x80 != 0 {
		c.SR |= P_OVERFLOW
	}
}
