package mos6502

// opcodeEntry is one decode-table slot: the mnemonic (for the monitor),
// the addressing mode, the base cycle count, and the handler itself. A
// function-pointer table replaces the reflection-based dispatch used
// elsewhere in the wider pack; reflect has no business running per-cycle.
type opcodeEntry struct {
	name   string
	mode   uint8
	cycles uint8
	fn     func(c *CPU, mode uint8)
	isKil  bool
}

// opcodeTable is indexed directly by opcode byte. Unofficial opcodes that
// are widely relied on by test ROMs and a handful of commercial games are
// included alongside the documented 151; true KIL/JAM opcodes halt the
// instruction stream rather than panicking on an unrecognized byte.
var opcodeTable = [256]opcodeEntry{
	0x00: {"BRK", Implicit, 7, (*CPU).BRK, false},
	0x01: {"ORA", IndirectX, 6, (*CPU).ORA, false},
	0x02: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0x03: {"SLO", IndirectX, 8, (*CPU).SLO, false},
	0x04: {"NOP", ZeroPage, 3, (*CPU).NOP, false},
	0x05: {"ORA", ZeroPage, 3, (*CPU).ORA, false},
	0x06: {"ASL", ZeroPage, 5, (*CPU).ASL, false},
	0x07: {"SLO", ZeroPage, 5, (*CPU).SLO, false},
	0x08: {"PHP", Implicit, 3, (*CPU).PHP, false},
	0x09: {"ORA", Immediate, 2, (*CPU).ORA, false},
	0x0A: {"ASL", Accumulator, 2, (*CPU).ASL, false},
	0x0B: {"ANC", Immediate, 2, (*CPU).ANC, false},
	0x0C: {"NOP", Absolute, 4, (*CPU).NOP, false},
	0x0D: {"ORA", Absolute, 4, (*CPU).ORA, false},
	0x0E: {"ASL", Absolute, 6, (*CPU).ASL, false},
	0x0F: {"SLO", Absolute, 6, (*CPU).SLO, false},

	0x10: {"BPL", Relative, 2, (*CPU).BPL, false},
	0x11: {"ORA", IndirectY, 5, (*CPU).ORA, false},
	0x12: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0x13: {"SLO", IndirectY, 8, (*CPU).SLO, false},
	0x14: {"NOP", ZeroPageX, 4, (*CPU).NOP, false},
	0x15: {"ORA", ZeroPageX, 4, (*CPU).ORA, false},
	0x16: {"ASL", ZeroPageX, 6, (*CPU).ASL, false},
	0x17: {"SLO", ZeroPageX, 6, (*CPU).SLO, false},
	0x18: {"CLC", Implicit, 2, (*CPU).CLC, false},
	0x19: {"ORA", AbsoluteY, 4, (*CPU).ORA, false},
	0x1A: {"NOP", Implicit, 2, (*CPU).NOP, false},
	0x1B: {"SLO", AbsoluteY, 7, (*CPU).SLO, false},
	0x1C: {"NOP", AbsoluteX, 4, (*CPU).NOP, false},
	0x1D: {"ORA", AbsoluteX, 4, (*CPU).ORA, false},
	0x1E: {"ASL", AbsoluteX, 7, (*CPU).ASL, false},
	0x1F: {"SLO", AbsoluteX, 7, (*CPU).SLO, false},

	0x20: {"JSR", Absolute, 6, (*CPU).JSR, false},
	0x21: {"AND", IndirectX, 6, (*CPU).AND, false},
	0x22: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0x23: {"RLA", IndirectX, 8, (*CPU).RLA, false},
	0x24: {"BIT", ZeroPage, 3, (*CPU).BIT, false},
	0x25: {"AND", ZeroPage, 3, (*CPU).AND, false},
	0x26: {"ROL", ZeroPage, 5, (*CPU).ROL, false},
	0x27: {"RLA", ZeroPage, 5, (*CPU).RLA, false},
	0x28: {"PLP", Implicit, 4, (*CPU).PLP, false},
	0x29: {"AND", Immediate, 2, (*CPU).AND, false},
	0x2A: {"ROL", Accumulator, 2, (*CPU).ROL, false},
	0x2B: {"ANC", Immediate, 2, (*CPU).ANC, false},
	0x2C: {"BIT", Absolute, 4, (*CPU).BIT, false},
	0x2D: {"AND", Absolute, 4, (*CPU).AND, false},
	0x2E: {"ROL", Absolute, 6, (*CPU).ROL, false},
	0x2F: {"RLA", Absolute, 6, (*CPU).RLA, false},

	0x30: {"BMI", Relative, 2, (*CPU).BMI, false},
	0x31: {"AND", IndirectY, 5, (*CPU).AND, false},
	0x32: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0x33: {"RLA", IndirectY, 8, (*CPU).RLA, false},
	0x34: {"NOP", ZeroPageX, 4, (*CPU).NOP, false},
	0x35: {"AND", ZeroPageX, 4, (*CPU).AND, false},
	0x36: {"ROL", ZeroPageX, 6, (*CPU).ROL, false},
	0x37: {"RLA", ZeroPageX, 6, (*CPU).RLA, false},
	0x38: {"SEC", Implicit, 2, (*CPU).SEC, false},
	0x39: {"AND", AbsoluteY, 4, (*CPU).AND, false},
	0x3A: {"NOP", Implicit, 2, (*CPU).NOP, false},
	0x3B: {"RLA", AbsoluteY, 7, (*CPU).RLA, false},
	0x3C: {"NOP", AbsoluteX, 4, (*CPU).NOP, false},
	0x3D: {"AND", AbsoluteX, 4, (*CPU).AND, false},
	0x3E: {"ROL", AbsoluteX, 7, (*CPU).ROL, false},
	0x3F: {"RLA", AbsoluteX, 7, (*CPU).RLA, false},

	0x40: {"RTI", Implicit, 6, (*CPU).RTI, false},
	0x41: {"EOR", IndirectX, 6, (*CPU).EOR, false},
	0x42: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0x43: {"SRE", IndirectX, 8, (*CPU).SRE, false},
	0x44: {"NOP", ZeroPage, 3, (*CPU).NOP, false},
	0x45: {"EOR", ZeroPage, 3, (*CPU).EOR, false},
	0x46: {"LSR", ZeroPage, 5, (*CPU).LSR, false},
	0x47: {"SRE", ZeroPage, 5, (*CPU).SRE, false},
	0x48: {"PHA", Implicit, 3, (*CPU).PHA, false},
	0x49: {"EOR", Immediate, 2, (*CPU).EOR, false},
	0x4A: {"LSR", Accumulator, 2, (*CPU).LSR, false},
	0x4B: {"ALR", Immediate, 2, (*CPU).ALR, false},
	0x4C: {"JMP", Absolute, 3, (*CPU).JMP, false},
	0x4D: {"EOR", Absolute, 4, (*CPU).EOR, false},
	0x4E: {"LSR", Absolute, 6, (*CPU).LSR, false},
	0x4F: {"SRE", Absolute, 6, (*CPU).SRE, false},

	0x50: {"BVC", Relative, 2, (*CPU).BVC, false},
	0x51: {"EOR", IndirectY, 5, (*CPU).EOR, false},
	0x52: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0x53: {"SRE", IndirectY, 8, (*CPU).SRE, false},
	0x54: {"NOP", ZeroPageX, 4, (*CPU).NOP, false},
	0x55: {"EOR", ZeroPageX, 4, (*CPU).EOR, false},
	0x56: {"LSR", ZeroPageX, 6, (*CPU).LSR, false},
	0x57: {"SRE", ZeroPageX, 6, (*CPU).SRE, false},
	0x58: {"CLI", Implicit, 2, (*CPU).CLI, false},
	0x59: {"EOR", AbsoluteY, 4, (*CPU).EOR, false},
	0x5A: {"NOP", Implicit, 2, (*CPU).NOP, false},
	0x5B: {"SRE", AbsoluteY, 7, (*CPU).SRE, false},
	0x5C: {"NOP", AbsoluteX, 4, (*CPU).NOP, false},
	0x5D: {"EOR", AbsoluteX, 4, (*CPU).EOR, false},
	0x5E: {"LSR", AbsoluteX, 7, (*CPU).LSR, false},
	0x5F: {"SRE", AbsoluteX, 7, (*CPU).SRE, false},

	0x60: {"RTS", Implicit, 6, (*CPU).RTS, false},
	0x61: {"ADC", IndirectX, 6, (*CPU).ADC, false},
	0x62: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0x63: {"RRA", IndirectX, 8, (*CPU).RRA, false},
	0x64: {"NOP", ZeroPage, 3, (*CPU).NOP, false},
	0x65: {"ADC", ZeroPage, 3, (*CPU).ADC, false},
	0x66: {"ROR", ZeroPage, 5, (*CPU).ROR, false},
	0x67: {"RRA", ZeroPage, 5, (*CPU).RRA, false},
	0x68: {"PLA", Implicit, 4, (*CPU).PLA, false},
	0x69: {"ADC", Immediate, 2, (*CPU).ADC, false},
	0x6A: {"ROR", Accumulator, 2, (*CPU).ROR, false},
	0x6B: {"ARR", Immediate, 2, (*CPU).ARR, false},
	0x6C: {"JMP", Indirect, 5, (*CPU).JMP, false},
	0x6D: {"ADC", Absolute, 4, (*CPU).ADC, false},
	0x6E: {"ROR", Absolute, 6, (*CPU).ROR, false},
	0x6F: {"RRA", Absolute, 6, (*CPU).RRA, false},

	0x70: {"BVS", Relative, 2, (*CPU).BVS, false},
	0x71: {"ADC", IndirectY, 5, (*CPU).ADC, false},
	0x72: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0x73: {"RRA", IndirectY, 8, (*CPU).RRA, false},
	0x74: {"NOP", ZeroPageX, 4, (*CPU).NOP, false},
	0x75: {"ADC", ZeroPageX, 4, (*CPU).ADC, false},
	0x76: {"ROR", ZeroPageX, 6, (*CPU).ROR, false},
	0x77: {"RRA", ZeroPageX, 6, (*CPU).RRA, false},
	0x78: {"SEI", Implicit, 2, (*CPU).SEI, false},
	0x79: {"ADC", AbsoluteY, 4, (*CPU).ADC, false},
	0x7A: {"NOP", Implicit, 2, (*CPU).NOP, false},
	0x7B: {"RRA", AbsoluteY, 7, (*CPU).RRA, false},
	0x7C: {"NOP", AbsoluteX, 4, (*CPU).NOP, false},
	0x7D: {"ADC", AbsoluteX, 4, (*CPU).ADC, false},
	0x7E: {"ROR", AbsoluteX, 7, (*CPU).ROR, false},
	0x7F: {"RRA", AbsoluteX, 7, (*CPU).RRA, false},

	0x80: {"NOP", Immediate, 2, (*CPU).NOP, false},
	0x81: {"STA", IndirectX, 6, (*CPU).STA, false},
	0x82: {"NOP", Immediate, 2, (*CPU).NOP, false},
	0x83: {"SAX", IndirectX, 6, (*CPU).SAX, false},
	0x84: {"STY", ZeroPage, 3, (*CPU).STY, false},
	0x85: {"STA", ZeroPage, 3, (*CPU).STA, false},
	0x86: {"STX", ZeroPage, 3, (*CPU).STX, false},
	0x87: {"SAX", ZeroPage, 3, (*CPU).SAX, false},
	0x88: {"DEY", Implicit, 2, (*CPU).DEY, false},
	0x89: {"NOP", Immediate, 2, (*CPU).NOP, false},
	0x8A: {"TXA", Implicit, 2, (*CPU).TXA, false},
	0x8C: {"STY", Absolute, 4, (*CPU).STY, false},
	0x8D: {"STA", Absolute, 4, (*CPU).STA, false},
	0x8E: {"STX", Absolute, 4, (*CPU).STX, false},
	0x8F: {"SAX", Absolute, 4, (*CPU).SAX, false},

	0x90: {"BCC", Relative, 2, (*CPU).BCC, false},
	0x91: {"STA", IndirectY, 6, (*CPU).STA, false},
	0x92: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0x94: {"STY", ZeroPageX, 4, (*CPU).STY, false},
	0x95: {"STA", ZeroPageX, 4, (*CPU).STA, false},
	0x96: {"STX", ZeroPageY, 4, (*CPU).STX, false},
	0x97: {"SAX", ZeroPageY, 4, (*CPU).SAX, false},
	0x98: {"TYA", Implicit, 2, (*CPU).TYA, false},
	0x99: {"STA", AbsoluteY, 5, (*CPU).STA, false},
	0x9A: {"TXS", Implicit, 2, (*CPU).TXS, false},
	0x9D: {"STA", AbsoluteX, 5, (*CPU).STA, false},

	0xA0: {"LDY", Immediate, 2, (*CPU).LDY, false},
	0xA1: {"LDA", IndirectX, 6, (*CPU).LDA, false},
	0xA2: {"LDX", Immediate, 2, (*CPU).LDX, false},
	0xA3: {"LAX", IndirectX, 6, (*CPU).LAX, false},
	0xA4: {"LDY", ZeroPage, 3, (*CPU).LDY, false},
	0xA5: {"LDA", ZeroPage, 3, (*CPU).LDA, false},
	0xA6: {"LDX", ZeroPage, 3, (*CPU).LDX, false},
	0xA7: {"LAX", ZeroPage, 3, (*CPU).LAX, false},
	0xA8: {"TAY", Implicit, 2, (*CPU).TAY, false},
	0xA9: {"LDA", Immediate, 2, (*CPU).LDA, false},
	0xAA: {"TAX", Implicit, 2, (*CPU).TAX, false},
	0xAC: {"LDY", Absolute, 4, (*CPU).LDY, false},
	0xAD: {"LDA", Absolute, 4, (*CPU).LDA, false},
	0xAE: {"LDX", Absolute, 4, (*CPU).LDX, false},
	0xAF: {"LAX", Absolute, 4, (*CPU).LAX, false},

	0xB0: {"BCS", Relative, 2, (*CPU).BCS, false},
	0xB1: {"LDA", IndirectY, 5, (*CPU).LDA, false},
	0xB2: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0xB3: {"LAX", IndirectY, 5, (*CPU).LAX, false},
	0xB4: {"LDY", ZeroPageX, 4, (*CPU).LDY, false},
	0xB5: {"LDA", ZeroPageX, 4, (*CPU).LDA, false},
	0xB6: {"LDX", ZeroPageY, 4, (*CPU).LDX, false},
	0xB7: {"LAX", ZeroPageY, 4, (*CPU).LAX, false},
	0xB8: {"CLV", Implicit, 2, (*CPU).CLV, false},
	0xB9: {"LDA", AbsoluteY, 4, (*CPU).LDA, false},
	0xBA: {"TSX", Implicit, 2, (*CPU).TSX, false},
	0xBC: {"LDY", AbsoluteX, 4, (*CPU).LDY, false},
	0xBD: {"LDA", AbsoluteX, 4, (*CPU).LDA, false},
	0xBE: {"LDX", AbsoluteY, 4, (*CPU).LDX, false},
	0xBF: {"LAX", AbsoluteY, 4, (*CPU).LAX, false},

	0xC0: {"CPY", Immediate, 2, (*CPU).CPY, false},
	0xC1: {"CMP", IndirectX, 6, (*CPU).CMP, false},
	0xC2: {"NOP", Immediate, 2, (*CPU).NOP, false},
	0xC3: {"DCP", IndirectX, 8, (*CPU).DCP, false},
	0xC4: {"CPY", ZeroPage, 3, (*CPU).CPY, false},
	0xC5: {"CMP", ZeroPage, 3, (*CPU).CMP, false},
	0xC6: {"DEC", ZeroPage, 5, (*CPU).DEC, false},
	0xC7: {"DCP", ZeroPage, 5, (*CPU).DCP, false},
	0xC8: {"INY", Implicit, 2, (*CPU).INY, false},
	0xC9: {"CMP", Immediate, 2, (*CPU).CMP, false},
	0xCA: {"DEX", Implicit, 2, (*CPU).DEX, false},
	0xCB: {"AXS", Immediate, 2, (*CPU).AXS, false},
	0xCC: {"CPY", Absolute, 4, (*CPU).CPY, false},
	0xCD: {"CMP", Absolute, 4, (*CPU).CMP, false},
	0xCE: {"DEC", Absolute, 6, (*CPU).DEC, false},
	0xCF: {"DCP", Absolute, 6, (*CPU).DCP, false},

	0xD0: {"BNE", Relative, 2, (*CPU).BNE, false},
	0xD1: {"CMP", IndirectY, 5, (*CPU).CMP, false},
	0xD2: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0xD3: {"DCP", IndirectY, 8, (*CPU).DCP, false},
	0xD4: {"NOP", ZeroPageX, 4, (*CPU).NOP, false},
	0xD5: {"CMP", ZeroPageX, 4, (*CPU).CMP, false},
	0xD6: {"DEC", ZeroPageX, 6, (*CPU).DEC, false},
	0xD7: {"DCP", ZeroPageX, 6, (*CPU).DCP, false},
	0xD8: {"CLD", Implicit, 2, (*CPU).CLD, false},
	0xD9: {"CMP", AbsoluteY, 4, (*CPU).CMP, false},
	0xDA: {"NOP", Implicit, 2, (*CPU).NOP, false},
	0xDB: {"DCP", AbsoluteY, 7, (*CPU).DCP, false},
	0xDC: {"NOP", AbsoluteX, 4, (*CPU).NOP, false},
	0xDD: {"CMP", AbsoluteX, 4, (*CPU).CMP, false},
	0xDE: {"DEC", AbsoluteX, 7, (*CPU).DEC, false},
	0xDF: {"DCP", AbsoluteX, 7, (*CPU).DCP, false},

	0xE0: {"CPX", Immediate, 2, (*CPU).CPX, false},
	0xE1: {"SBC", IndirectX, 6, (*CPU).SBC, false},
	0xE2: {"NOP", Immediate, 2, (*CPU).NOP, false},
	0xE3: {"ISC", IndirectX, 8, (*CPU).ISC, false},
	0xE4: {"CPX", ZeroPage, 3, (*CPU).CPX, false},
	0xE5: {"SBC", ZeroPage, 3, (*CPU).SBC, false},
	0xE6: {"INC", ZeroPage, 5, (*CPU).INC, false},
	0xE7: {"ISC", ZeroPage, 5, (*CPU).ISC, false},
	0xE8: {"INX", Implicit, 2, (*CPU).INX, false},
	0xE9: {"SBC", Immediate, 2, (*CPU).SBC, false},
	0xEA: {"NOP", Implicit, 2, (*CPU).NOP, false},
	0xEB: {"SBC", Immediate, 2, (*CPU).SBC, false},
	0xEC: {"CPX", Absolute, 4, (*CPU).CPX, false},
	0xED: {"SBC", Absolute, 4, (*CPU).SBC, false},
	0xEE: {"INC", Absolute, 6, (*CPU).INC, false},
	0xEF: {"ISC", Absolute, 6, (*CPU).ISC, false},

	0xF0: {"BEQ", Relative, 2, (*CPU).BEQ, false},
	0xF1: {"SBC", IndirectY, 5, (*CPU).SBC, false},
	0xF2: {"JAM", Implicit, 2, (*CPU).KIL, true},
	0xF3: {"ISC", IndirectY, 8, (*CPU).ISC, false},
	0xF4: {"NOP", ZeroPageX, 4, (*CPU).NOP, false},
	0xF5: {"SBC", ZeroPageX, 4, (*CPU).SBC, false},
	0xF6: {"INC", ZeroPageX, 6, (*CPU).INC, false},
	0xF7: {"ISC", ZeroPageX, 6, (*CPU).ISC, false},
	0xF8: {"SED", Implicit, 2, (*CPU).SED, false},
	0xF9: {"SBC", AbsoluteY, 4, (*CPU).SBC, false},
	0xFA: {"NOP", Implicit, 2, (*CPU).NOP, false},
	0xFB: {"ISC", AbsoluteY, 7, (*CPU).ISC, false},
	0xFC: {"NOP", AbsoluteX, 4, (*CPU).NOP, false},
	0xFD: {"SBC", AbsoluteX, 4, (*CPU).SBC, false},
	0xFE: {"INC", AbsoluteX, 7, (*CPU).INC, false},
	0xFF: {"ISC", AbsoluteX, 7, (*CPU).ISC, false},
}

// A handful of unofficial opcodes (0x8B, 0x93, 0x9B, 0x9C, 0x9E, 0x9F,
// 0xBB and similar) have unstable, bus-conflict-dependent behavior on real
// hardware and no two documented references agree on them. Rather than
// guess, every slot left unfilled above decodes as a 2-cycle no-op: no
// byte value may panic the decoder, and nothing in the supported mapper
// set relies on these opcodes' exact semantics.
func init() {
	for i := range opcodeTable {
		if opcodeTable[i].fn == nil {
			opcodeTable[i] = opcodeEntry{"NOP", Implicit, 2, (*CPU).NOP, false}
		}
	}
}
