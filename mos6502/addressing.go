package mos6502

// 6502 Addressing Modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	Implicit = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // Indexed Indirect: (zp,X)
	IndirectY // Indirect Indexed: (zp),Y
)

// modeBytes is how many operand bytes follow the opcode byte itself, used
// to advance PC for instructions that don't redirect it (branches/jumps).
var modeBytes = [...]uint8{
	Implicit:    0,
	Accumulator: 0,
	Immediate:   1,
	ZeroPage:    1,
	ZeroPageX:   1,
	ZeroPageY:   1,
	Relative:    1,
	Absolute:    2,
	AbsoluteX:   2,
	AbsoluteY:   2,
	Indirect:    2,
	IndirectX:   1,
	IndirectY:   1,
}

// pageCrossed reports whether a and b live on different 256-byte pages.
func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// operand resolves the address referenced by mode, assuming PC currently
// points at the first operand byte. For the indexed modes it records
// whether a page boundary was crossed so callers that are penalized for it
// (reads, not stores/RMW, whose worst-case cycle count is already baked
// into the opcode table) can add the extra cycle themselves via
// addExtraIfCrossed.
func (c *CPU) operand(mode uint8) uint16 {
	c.crossed = false
	switch mode {
	case Immediate, Relative:
		return c.PC
	case ZeroPage:
		return uint16(c.read(c.PC))
	case ZeroPageX:
		return uint16(c.read(c.PC) + c.X)
	case ZeroPageY:
		return uint16(c.read(c.PC) + c.Y)
	case Absolute:
		return c.read16(c.PC)
	case AbsoluteX:
		base := c.read16(c.PC)
		addr := base + uint16(c.X)
		c.crossed = pageCrossed(base, addr)
		return addr
	case AbsoluteY:
		base := c.read16(c.PC)
		addr := base + uint16(c.Y)
		c.crossed = pageCrossed(base, addr)
		return addr
	case Indirect:
		return c.read16Wrapped(c.read16(c.PC))
	case IndirectX:
		ptr := uint16(c.read(c.PC) + c.X)
		return c.read16Wrapped(ptr)
	case IndirectY:
		ptr := uint16(c.read(c.PC))
		base := c.read16Wrapped(ptr)
		addr := base + uint16(c.Y)
		c.crossed = pageCrossed(base, addr)
		return addr
	default:
		panic("mos6502: addressing mode has no operand address")
	}
}

// addExtraIfCrossed adds the conditional +1 cycle for read instructions in
// AbsoluteX/AbsoluteY/IndirectY whose base cycle count assumes no crossing.
func (c *CPU) addExtraIfCrossed() {
	if c.crossed {
		c.extraCyc++
	}
}

// branch adjusts PC when the status bits in mask, tested against
// predicate, call for a jump (e.g. branch(FlagCarry, false) branches when
// carry is clear). Taken branches cost +1 cycle, +1 more if the branch
// lands on a different page.
func (c *CPU) branch(mask uint8, predicate bool) {
	target := c.PC + 1 + uint16(int8(c.read(c.PC)))
	if (c.P&mask != 0) == predicate {
		c.extraCyc++
		if pageCrossed(c.PC+1, target) {
			c.extraCyc++
		}
		c.PC = target
	} else {
		c.PC++
	}
}
