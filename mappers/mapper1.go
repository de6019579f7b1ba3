package mappers

import "github.com/bdwalton/gintendo/nesrom"

func init() {
	RegisterMapper(1, &mapper1{baseMapper: newBaseMapper(1, "MMC1")})
}

// mapper1 implements MMC1: a 5-bit serial shift register loaded one bit at
// a time over consecutive writes to $8000-$FFFF (LSB first), which then
// latches into one of four internal registers selected by the address
// used for the 5th write. A write with bit 7 set resets the shift
// register and forces PRG mode 3 (16KB switchable at $8000, fixed last
// bank at $C000), matching real MMC1 reset behavior.
// https://www.nesdev.org/wiki/MMC1
type mapper1 struct {
	*baseMapper

	shift      uint8
	shiftCount uint8

	control uint8 // mirroring (bits0-1), PRG mode (bits2-3), CHR mode (bit4)
	chrBank0 uint8
	chrBank1 uint8
	prgBank  uint8
}

func (m *mapper1) New() Mapper {
	nm := &mapper1{baseMapper: newBaseMapper(1, "MMC1")}
	nm.control = 0x0C // power-on: PRG mode 3, CHR mode 0
	return nm
}

func (m *mapper1) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	m.control = 0x0C
}

func (m *mapper1) prgBankCount() int {
	return m.rom.PrgSize() / 0x4000
}

func (m *mapper1) PrgRead(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.readSaveRAM(addr)
	case addr >= 0x8000:
		return m.rom.PrgReadAbs(m.prgOffset(addr))
	}
	return 0
}

func (m *mapper1) prgOffset(addr uint16) int {
	bankCount := m.prgBankCount()
	sel := int(m.prgBank & 0x0F)
	mode := (m.control >> 2) & 0x03

	switch mode {
	case 0, 1: // 32KB switch, ignoring the low bit of the bank number
		base := (sel &^ 1) * 0x4000
		return base + int(addr-0x8000)
	case 2: // fixed first bank at $8000, switchable at $C000
		if addr < 0xC000 {
			return int(addr - 0x8000)
		}
		return sel*0x4000 + int(addr-0xC000)
	default: // 3: switchable at $8000, fixed last bank at $C000
		if addr < 0xC000 {
			return sel*0x4000 + int(addr-0x8000)
		}
		return (bankCount-1)*0x4000 + int(addr-0xC000)
	}
}

func (m *mapper1) PrgWrite(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.writeSaveRAM(addr, val)
		return
	}
	if addr < 0x8000 {
		return
	}

	if val&0x80 != 0 {
		m.shift = 0
		m.shiftCount = 0
		m.control |= 0x0C
		return
	}

	m.shift |= (val & 1) << m.shiftCount
	m.shiftCount++

	if m.shiftCount < 5 {
		return
	}

	result := m.shift
	m.shift = 0
	m.shiftCount = 0

	switch {
	case addr < 0xA000:
		m.control = result
	case addr < 0xC000:
		m.chrBank0 = result
	case addr < 0xE000:
		m.chrBank1 = result
	default:
		m.prgBank = result & 0x0F
	}
}

func (m *mapper1) chrOffset(addr uint16) int {
	if m.control&0x10 == 0 { // 8KB CHR mode
		base := int(m.chrBank0&^1) * 0x1000
		return base + int(addr)
	}
	// 4KB CHR mode: two independently selected 4KB windows
	if addr < 0x1000 {
		return int(m.chrBank0)*0x1000 + int(addr)
	}
	return int(m.chrBank1)*0x1000 + int(addr-0x1000)
}

func (m *mapper1) ChrRead(addr uint16) uint8 {
	return m.rom.ChrReadAbs(m.chrOffset(addr))
}

func (m *mapper1) ChrWrite(addr uint16, val uint8) {
	if m.rom.IsCHRRAM() {
		m.rom.ChrWriteAbs(m.chrOffset(addr), val)
	}
}

func (m *mapper1) MirroringMode() uint8 {
	switch m.control & 0x03 {
	case 2:
		return nesrom.MIRROR_VERTICAL
	case 3:
		return nesrom.MIRROR_HORIZONTAL
	default:
		// One-screen mirroring (bit0 selects which physical nametable);
		// approximated as horizontal, the closer of the two fixed modes
		// this mapper interface can express.
		return nesrom.MIRROR_HORIZONTAL
	}
}
