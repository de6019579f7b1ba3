package mappers

func init() {
	RegisterMapper(2, &mapper2{baseMapper: newBaseMapper(2, "UxROM")})
}

// mapper2 implements UxROM: a 16KB PRG bank switchable at $8000-$BFFF,
// selected by the low bits of the value most recently written anywhere in
// $8000-$FFFF, with the last 16KB bank fixed at $C000-$FFFF. CHR is
// always RAM on UxROM boards.
// https://www.nesdev.org/wiki/UxROM
type mapper2 struct {
	*baseMapper

	prgBank uint8
}

func (m *mapper2) New() Mapper {
	return &mapper2{baseMapper: newBaseMapper(2, "UxROM")}
}

func (m *mapper2) PrgRead(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.readSaveRAM(addr)
	case addr >= 0x8000 && addr < 0xC000:
		return m.rom.PrgReadAbs(int(m.prgBank)*0x4000 + int(addr-0x8000))
	case addr >= 0xC000:
		lastBank := m.rom.PrgSize()/0x4000 - 1
		return m.rom.PrgReadAbs(lastBank*0x4000 + int(addr-0xC000))
	}
	return 0
}

func (m *mapper2) PrgWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		m.writeSaveRAM(addr, val)
	case addr >= 0x8000:
		// Bus conflicts aside, only the low bits select a bank; real
		// boards wire anywhere from 2 to 4 bits depending on PRG size.
		m.prgBank = val & 0x0F
	}
}

func (m *mapper2) ChrRead(addr uint16) uint8 {
	return m.rom.ChrReadAbs(int(addr))
}

func (m *mapper2) ChrWrite(addr uint16, val uint8) {
	m.rom.ChrWriteAbs(int(addr), val)
}
