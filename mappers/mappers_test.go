package mappers

import (
	"bytes"
	"testing"

	"github.com/bdwalton/gintendo/nesrom"
)

// buildROM assembles a minimal well-formed iNES image in memory, encoding
// mapperID across the high nibbles of flags6/flags7.
func buildROM(mapperID uint8, flags6extra uint8, prgBlocks, chrBlocks uint8) []byte {
	var buf bytes.Buffer
	flags6 := flags6extra | (mapperID&0x0F)<<4
	flags7 := (mapperID & 0xF0)
	buf.Write([]byte{'N', 'E', 'S', 0x1A, prgBlocks, chrBlocks, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0})
	buf.Write(make([]byte, int(prgBlocks)*nesrom.PRG_BLOCK_SIZE))
	if chrBlocks > 0 {
		buf.Write(make([]byte, int(chrBlocks)*nesrom.CHR_BLOCK_SIZE))
	}
	return buf.Bytes()
}

func loadROM(t *testing.T, mapperID uint8, flags6extra uint8, prgBlocks, chrBlocks uint8) *nesrom.ROM {
	t.Helper()
	rom, err := nesrom.New(bytes.NewReader(buildROM(mapperID, flags6extra, prgBlocks, chrBlocks)))
	if err != nil {
		t.Fatalf("couldn't build test ROM: %v", err)
	}
	return rom
}

func TestGetUnknownMapper(t *testing.T) {
	rom := loadROM(t, 0xFE, 0, 1, 1)
	if _, err := Get(rom); err == nil {
		t.Error("expected an error for an unregistered mapper id")
	}
}

func TestGetReturnsFreshInstances(t *testing.T) {
	rom := loadROM(t, 0, 0, 1, 1)
	m1, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	m1.PrgWrite(0x6000, 0x42)

	m2, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := m2.PrgRead(0x6000); got != 0 {
		t.Errorf("fresh mapper instance saw stale save RAM state: got %02x, want 0", got)
	}
}

func TestMapper0PrgMirroring(t *testing.T) {
	rom := loadROM(t, 0, 0, 1, 1) // 16KB PRG, mirrored across the 32KB window
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	rom.PrgWriteAbs(0, 0xAB)
	if got := m.PrgRead(0x8000); got != 0xAB {
		t.Errorf("PrgRead(0x8000) = %02x, want ab", got)
	}
	if got := m.PrgRead(0xC000); got != 0xAB {
		t.Errorf("PrgRead(0xC000) = %02x, want ab (16KB mirrored)", got)
	}
}

func TestMapper0SaveRAM(t *testing.T) {
	rom := loadROM(t, 0, nesrom.BATTERY_BACKED_SRAM, 1, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	m.PrgWrite(0x6123, 0x99)
	if got := m.PrgRead(0x6123); got != 0x99 {
		t.Errorf("save RAM round trip = %02x, want 99", got)
	}
}

func TestMapper0CHRRAM(t *testing.T) {
	rom := loadROM(t, 0, 0, 1, 0)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	m.ChrWrite(0x0010, 0x55)
	if got := m.ChrRead(0x0010); got != 0x55 {
		t.Errorf("CHR RAM round trip = %02x, want 55", got)
	}
}

func loadShift(m Mapper, addr uint16, val uint8) {
	for i := 0; i < 5; i++ {
		m.PrgWrite(addr, (val>>uint(i))&1)
	}
}

func TestMapper1ControlAndMirroring(t *testing.T) {
	rom := loadROM(t, 1, 0, 4, 1) // 64KB PRG: 4 16KB banks
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	loadShift(m, 0x8000, 0x02) // control = 2 -> vertical mirroring, PRG mode 0
	if got := m.MirroringMode(); got != nesrom.MIRROR_VERTICAL {
		t.Errorf("MirroringMode = %d, want vertical", got)
	}
}

func TestMapper1PrgBankSwitch16KFixedLast(t *testing.T) {
	rom := loadROM(t, 1, 0, 4, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// control mode 3: switchable 16K at $8000, fixed last bank at $C000
	loadShift(m, 0x8000, 0x0C)

	rom.PrgWriteAbs(1*0x4000, 0x11)  // bank 1
	rom.PrgWriteAbs(3*0x4000, 0x33) // last bank (index 3)

	loadShift(m, 0xE000, 0x01) // select PRG bank 1 for the switchable window

	if got := m.PrgRead(0x8000); got != 0x11 {
		t.Errorf("PrgRead(0x8000) = %02x, want 11 (switchable bank 1)", got)
	}
	if got := m.PrgRead(0xC000); got != 0x33 {
		t.Errorf("PrgRead(0xC000) = %02x, want 33 (fixed last bank)", got)
	}
}

func TestMapper1ShiftResetOnHighBit(t *testing.T) {
	rom := loadROM(t, 1, 0, 4, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	m.PrgWrite(0x8000, 1)
	m.PrgWrite(0x8000, 0)
	m.PrgWrite(0x8000, 0x80) // reset mid-sequence
	loadShift(m, 0x8000, 0x0C)

	rom.PrgWriteAbs(3*0x4000, 0x7E)
	if got := m.PrgRead(0xC000); got != 0x7E {
		t.Errorf("PrgRead(0xC000) after shift reset = %02x, want 7e", got)
	}
}

func TestMapper2PrgBankSwitch(t *testing.T) {
	rom := loadROM(t, 2, 0, 4, 0) // 64KB PRG: 4 16KB banks, CHR RAM
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	rom.PrgWriteAbs(2*0x4000, 0x77)
	rom.PrgWriteAbs(3*0x4000, 0x99) // last bank, always fixed at $C000

	m.PrgWrite(0x8000, 2)
	if got := m.PrgRead(0x8000); got != 0x77 {
		t.Errorf("PrgRead(0x8000) = %02x, want 77 (switchable bank 2)", got)
	}
	if got := m.PrgRead(0xC000); got != 0x99 {
		t.Errorf("PrgRead(0xC000) = %02x, want 99 (fixed last bank)", got)
	}
}

func TestMapper2CHRRAMWrite(t *testing.T) {
	rom := loadROM(t, 2, 0, 2, 0)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	m.ChrWrite(0x0042, 0xEE)
	if got := m.ChrRead(0x0042); got != 0xEE {
		t.Errorf("CHR RAM round trip = %02x, want ee", got)
	}
}
