package cpu

// opcodeEntry is one slot of the dispatch table: a single closure that
// performs whatever addressing-mode resolution and instruction logic
// that opcode requires. An entry with a nil run is undefined.
type opcodeEntry struct {
	run func(c *Chip) error
}

// implied wraps a zero-operand instruction (register/flag ops, stack
// ops, the control-transfer instructions that resolve their own
// operand internally).
func implied(f func(c *Chip)) opcodeEntry {
	return opcodeEntry{run: func(c *Chip) error {
		f(c)
		return nil
	}}
}

// ld wraps a read instruction: resolve the effective address, read the
// operand, and hand it to f.
func ld(addr addrFunc, f loadFunc) opcodeEntry {
	return opcodeEntry{run: func(c *Chip) error {
		f(c, c.read(addr(c)))
		return nil
	}}
}

// ldImm wraps a read instruction whose operand is the immediate byte at
// PC rather than a resolved address.
func ldImm(f loadFunc) opcodeEntry {
	return opcodeEntry{run: func(c *Chip) error {
		f(c, c.fetch())
		return nil
	}}
}

// st wraps a store instruction: resolve the effective address and write
// the named register to it.
func st(addr addrFunc, get func(c *Chip) uint8) opcodeEntry {
	return opcodeEntry{run: func(c *Chip) error {
		c.write(addr(c), get(c))
		return nil
	}}
}

// rmw wraps a read-modify-write instruction against a memory operand:
// resolve the effective address, read the old value, run f, write back
// whatever f returns.
func rmw(addr addrFunc, f rmwFunc) opcodeEntry {
	return opcodeEntry{run: func(c *Chip) error {
		ea := addr(c)
		c.write(ea, f(c, c.read(ea)))
		return nil
	}}
}

// rmwAcc wraps a read-modify-write instruction whose operand is the
// accumulator itself (the ACCUMULATOR addressing mode).
func rmwAcc(f rmwFunc) opcodeEntry {
	return opcodeEntry{run: func(c *Chip) error {
		c.A = f(c, c.A)
		return nil
	}}
}

// branch wraps one of the eight conditional branches.
func branch(test branchFunc) opcodeEntry {
	return opcodeEntry{run: func(c *Chip) error {
		c.performBranch(test)
		return nil
	}}
}

// opcodeTable is the full decode table for this core's 151 official
// opcodes. Slots left at their zero value have a nil run and are
// reported by Step as IllegalOpcode; this core does not implement any
// of the NMOS undefined/unofficial opcodes real silicon happens to
// execute.
var opcodeTable = [256]opcodeEntry{
	// 0x00-0x0E: BRK, ORA, ASL, PHP
	0x00: implied(iBRK),
	0x01: ld((*Chip).eaIndirectX, iORA),
	0x05: ld((*Chip).eaZeroPage, iORA),
	0x06: rmw((*Chip).eaZeroPage, iASL),
	0x08: implied(iPHP),
	0x09: ldImm(iORA),
	0x0A: rmwAcc(iASL),
	0x0D: ld((*Chip).eaAbsolute, iORA),
	0x0E: rmw((*Chip).eaAbsolute, iASL),

	// 0x10-0x1E: BPL, ORA, ASL, CLC
	0x10: branch(testBPL),
	0x11: ld((*Chip).eaIndirectY, iORA),
	0x15: ld((*Chip).eaZeroPageX, iORA),
	0x16: rmw((*Chip).eaZeroPageX, iASL),
	0x18: implied(iCLC),
	0x19: ld((*Chip).eaAbsoluteY, iORA),
	0x1D: ld((*Chip).eaAbsoluteX, iORA),
	0x1E: rmw((*Chip).eaAbsoluteX, iASL),

	// 0x20-0x2E: JSR, AND, BIT, ROL, PLP
	0x20: implied(iJSR),
	0x21: ld((*Chip).eaIndirectX, iAND),
	0x24: ld((*Chip).eaZeroPage, iBIT),
	0x25: ld((*Chip).eaZeroPage, iAND),
	0x26: rmw((*Chip).eaZeroPage, iROL),
	0x28: implied(iPLP),
	0x29: ldImm(iAND),
	0x2A: rmwAcc(iROL),
	0x2C: ld((*Chip).eaAbsolute, iBIT),
	0x2D: ld((*Chip).eaAbsolute, iAND),
	0x2E: rmw((*Chip).eaAbsolute, iROL),

	// 0x30-0x3E: BMI, AND, ROL, SEC
	0x30: branch(testBMI),
	0x31: ld((*Chip).eaIndirectY, iAND),
	0x35: ld((*Chip).eaZeroPageX, iAND),
	0x36: rmw((*Chip).eaZeroPageX, iROL),
	0x38: implied(iSEC),
	0x39: ld((*Chip).eaAbsoluteY, iAND),
	0x3D: ld((*Chip).eaAbsoluteX, iAND),
	0x3E: rmw((*Chip).eaAbsoluteX, iROL),

	// 0x40-0x4E: RTI, EOR, LSR, PHA, JMP
	0x40: implied(iRTI),
	0x41: ld((*Chip).eaIndirectX, iEOR),
	0x45: ld((*Chip).eaZeroPage, iEOR),
	0x46: rmw((*Chip).eaZeroPage, iLSR),
	0x48: implied(iPHA),
	0x49: ldImm(iEOR),
	0x4A: rmwAcc(iLSR),
	0x4C: implied(iJMP),
	0x4D: ld((*Chip).eaAbsolute, iEOR),
	0x4E: rmw((*Chip).eaAbsolute, iLSR),

	// 0x50-0x5E: BVC, EOR, LSR, CLI
	0x50: branch(testBVC),
	0x51: ld((*Chip).eaIndirectY, iEOR),
	0x55: ld((*Chip).eaZeroPageX, iEOR),
	0x56: rmw((*Chip).eaZeroPageX, iLSR),
	0x58: implied(iCLI),
	0x59: ld((*Chip).eaAbsoluteY, iEOR),
	0x5D: ld((*Chip).eaAbsoluteX, iEOR),
	0x5E: rmw((*Chip).eaAbsoluteX, iLSR),

	// 0x60-0x6E: RTS, ADC, ROR, PLA, JMP (indirect)
	0x60: implied(iRTS),
	0x61: ld((*Chip).eaIndirectX, iADC),
	0x65: ld((*Chip).eaZeroPage, iADC),
	0x66: rmw((*Chip).eaZeroPage, iROR),
	0x68: implied(iPLA),
	0x69: ldImm(iADC),
	0x6A: rmwAcc(iROR),
	0x6C: implied(iJMPIndirect),
	0x6D: ld((*Chip).eaAbsolute, iADC),
	0x6E: rmw((*Chip).eaAbsolute, iROR),

	// 0x70-0x7E: BVS, ADC, ROR, SEI
	0x70: branch(testBVS),
	0x71: ld((*Chip).eaIndirectY, iADC),
	0x75: ld((*Chip).eaZeroPageX, iADC),
	0x76: rmw((*Chip).eaZeroPageX, iROR),
	0x78: implied(iSEI),
	0x79: ld((*Chip).eaAbsoluteY, iADC),
	0x7D: ld((*Chip).eaAbsoluteX, iADC),
	0x7E: rmw((*Chip).eaAbsoluteX, iROR),

	// 0x81-0x8E: STA, STY, STX, DEY, TXA
	0x81: st((*Chip).eaIndirectX, getA),
	0x84: st((*Chip).eaZeroPage, getY),
	0x85: st((*Chip).eaZeroPage, getA),
	0x86: st((*Chip).eaZeroPage, getX),
	0x88: implied(iDEY),
	0x8A: implied(iTXA),
	0x8C: st((*Chip).eaAbsolute, getY),
	0x8D: st((*Chip).eaAbsolute, getA),
	0x8E: st((*Chip).eaAbsolute, getX),

	// 0x90-0x9D: BCC, STA, STY, STX, TYA, TXS
	0x90: branch(testBCC),
	0x91: st((*Chip).eaIndirectY, getA),
	0x94: st((*Chip).eaZeroPageX, getY),
	0x95: st((*Chip).eaZeroPageX, getA),
	0x96: st((*Chip).eaZeroPageY, getX),
	0x98: implied(iTYA),
	0x99: st((*Chip).eaAbsoluteY, getA),
	0x9A: implied(iTXS),
	0x9D: st((*Chip).eaAbsoluteX, getA),

	// 0xA0-0xAE: LDY, LDA, LDX, TAY, TAX
	0xA0: ldImm(iLDY),
	0xA1: ld((*Chip).eaIndirectX, iLDA),
	0xA2: ldImm(iLDX),
	0xA4: ld((*Chip).eaZeroPage, iLDY),
	0xA5: ld((*Chip).eaZeroPage, iLDA),
	0xA6: ld((*Chip).eaZeroPage, iLDX),
	0xA8: implied(iTAY),
	0xA9: ldImm(iLDA),
	0xAA: implied(iTAX),
	0xAC: ld((*Chip).eaAbsolute, iLDY),
	0xAD: ld((*Chip).eaAbsolute, iLDA),
	0xAE: ld((*Chip).eaAbsolute, iLDX),

	// 0xB0-0xBE: BCS, LDA, LDY, LDX, CLV, TSX
	0xB0: branch(testBCS),
	0xB1: ld((*Chip).eaIndirectY, iLDA),
	0xB4: ld((*Chip).eaZeroPageX, iLDY),
	0xB5: ld((*Chip).eaZeroPageX, iLDA),
	0xB6: ld((*Chip).eaZeroPageY, iLDX),
	0xB8: implied(iCLV),
	0xB9: ld((*Chip).eaAbsoluteY, iLDA),
	0xBA: implied(iTSX),
	0xBC: ld((*Chip).eaAbsoluteX, iLDY),
	0xBD: ld((*Chip).eaAbsoluteX, iLDA),
	0xBE: ld((*Chip).eaAbsoluteY, iLDX),

	// 0xC0-0xCE: CPY, CMP, DEC, INY, DEX
	0xC0: ldImm(iCPY),
	0xC1: ld((*Chip).eaIndirectX, iCMP),
	0xC4: ld((*Chip).eaZeroPage, iCPY),
	0xC5: ld((*Chip).eaZeroPage, iCMP),
	0xC6: rmw((*Chip).eaZeroPage, iDEC),
	0xC8: implied(iINY),
	0xC9: ldImm(iCMP),
	0xCA: implied(iDEX),
	0xCC: ld((*Chip).eaAbsolute, iCPY),
	0xCD: ld((*Chip).eaAbsolute, iCMP),
	0xCE: rmw((*Chip).eaAbsolute, iDEC),

	// 0xD0-0xDE: BNE, CMP, DEC, CLD
	0xD0: branch(testBNE),
	0xD1: ld((*Chip).eaIndirectY, iCMP),
	0xD5: ld((*Chip).eaZeroPageX, iCMP),
	0xD6: rmw((*Chip).eaZeroPageX, iDEC),
	0xD8: implied(iCLD),
	0xD9: ld((*Chip).eaAbsoluteY, iCMP),
	0xDD: ld((*Chip).eaAbsoluteX, iCMP),
	0xDE: rmw((*Chip).eaAbsoluteX, iDEC),

	// 0xE0-0xEE: CPX, SBC, INC, INX, NOP
	0xE0: ldImm(iCPX),
	0xE1: ld((*Chip).eaIndirectX, iSBC),
	0xE4: ld((*Chip).eaZeroPage, iCPX),
	0xE5: ld((*Chip).eaZeroPage, iSBC),
	0xE6: rmw((*Chip).eaZeroPage, iINC),
	0xE8: implied(iINX),
	0xE9: ldImm(iSBC),
	0xEA: implied(iNOP),
	0xEC: ld((*Chip).eaAbsolute, iCPX),
	0xED: ld((*Chip).eaAbsolute, iSBC),
	0xEE: rmw((*Chip).eaAbsolute, iINC),

	// 0xF0-0xFE: BEQ, SBC, INC, SED
	0xF0: branch(testBEQ),
	0xF1: ld((*Chip).eaIndirectY, iSBC),
	0xF5: ld((*Chip).eaZeroPageX, iSBC),
	0xF6: rmw((*Chip).eaZeroPageX, iINC),
	0xF8: implied(iSED),
	0xF9: ld((*Chip).eaAbsoluteY, iSBC),
	0xFD: ld((*Chip).eaAbsoluteX, iSBC),
	0xFE: rmw((*Chip).eaAbsoluteX, iINC),
}
