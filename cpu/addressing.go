package cpu

// addrFunc resolves one of the twelve addressing modes to an effective
// address, consuming whatever operand bytes the mode requires from PC
// along the way. IMMEDIATE and ACCUMULATOR have no effective address
// and are handled directly by the instruction wrappers in dispatch.go
// instead of through this type.

type addrFunc func(c *Chip) uint16

// eaZeroPage implements ZEROPAGE: EA = byte at PC.
func (c *Chip) eaZeroPage() uint16 {
	return uint16(c.fetch())
}

// eaZeroPageX implements ZEROPAGE_X: EA = (byte + X) mod 256.
func (c *Chip) eaZeroPageX() uint16 {
	return uint16(c.fetch() + c.X)
}

// eaZeroPageY implements ZEROPAGE_Y: EA = (byte + Y) mod 256.
func (c *Chip) eaZeroPageY() uint16 {
	return uint16(c.fetch() + c.Y)
}

// eaAbsolute implements ABSOLUTE: EA = lo || hi, little-endian.
func (c *Chip) eaAbsolute() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// eaAbsoluteX implements ABSOLUTE_X: EA = (lo || hi) + X, wrapping mod
// 65536 via uint16 arithmetic.
func (c *Chip) eaAbsoluteX() uint16 {
	return c.eaAbsolute() + uint16(c.X)
}

// eaAbsoluteY implements ABSOLUTE_Y: EA = (lo || hi) + Y.
func (c *Chip) eaAbsoluteY() uint16 {
	return c.eaAbsolute() + uint16(c.Y)
}

// eaIndirect implements INDIRECT: pointer P = lo || hi; EA = read(P) ||
// read(P+1). This core does not reproduce the page-wrap bug real NMOS
// silicon has when the pointer's low byte is 0xFF — P+1 always wraps
// across the full 16-bit space, per spec's default validated behavior.
func (c *Chip) eaIndirect() uint16 {
	ptr := c.eaAbsolute()
	lo := c.read(ptr)
	hi := c.read(ptr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// eaIndirectX implements INDIRECT_X: P = (byte + X) mod 256; EA =
// read(P) || read((P+1) mod 256).
func (c *Chip) eaIndirectX() uint16 {
	zp := c.fetch() + c.X
	lo := c.read(uint16(zp))
	hi := c.read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// eaIndirectY implements INDIRECT_Y: P = byte; EA = (read(P) ||
// read((P+1) mod 256)) + Y.
func (c *Chip) eaIndirectY() uint16 {
	zp := c.fetch()
	lo := c.read(uint16(zp))
	hi := c.read(uint16(zp + 1))
	return (uint16(hi)<<8 | uint16(lo)) + uint16(c.Y)
}

// eaRelative implements RELATIVE: EA = (PC after fetch) +
// sign_extend_8(byte). Used by branch instructions via performBranch.
func (c *Chip) eaRelative() uint16 {
	offset := c.fetch()
	return c.PC + uint16(int16(int8(offset)))
}
