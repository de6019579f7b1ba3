package nesrom

import (
	"bytes"
	"testing"
)

// buildROM assembles a minimal well-formed iNES image in memory: a
// 16-byte header, optional trainer, and prgBlocks/chrBlocks of filler
// data, so tests don't depend on a real cartridge dump being present.
func buildROM(flags6, flags7 uint8, prgBlocks, chrBlocks uint8) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{'N', 'E', 'S', 0x1A, prgBlocks, chrBlocks, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0})
	if flags6&TRAINER != 0 {
		buf.Write(make([]byte, TRAINER_SIZE))
	}
	buf.Write(make([]byte, int(prgBlocks)*PRG_BLOCK_SIZE))
	if chrBlocks > 0 {
		buf.Write(make([]byte, int(chrBlocks)*CHR_BLOCK_SIZE))
	}
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	raw := buildROM(0x01, 0x00, 2, 1)
	rom, err := New(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("couldn't parse ROM: %v", err)
	}
	if rom.NumPrgBlocks() != 2 {
		t.Errorf("NumPrgBlocks = %d, want 2", rom.NumPrgBlocks())
	}
	if rom.PrgSize() != 2*PRG_BLOCK_SIZE {
		t.Errorf("PrgSize = %d, want %d", rom.PrgSize(), 2*PRG_BLOCK_SIZE)
	}
	if rom.MirroringMode() != MIRROR_VERTICAL {
		t.Errorf("MirroringMode = %d, want vertical", rom.MirroringMode())
	}
}

func TestNewWithTrainer(t *testing.T) {
	raw := buildROM(TRAINER, 0x00, 1, 1)
	rom, err := New(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("couldn't parse ROM with trainer: %v", err)
	}
	if len(rom.trainer) != TRAINER_SIZE {
		t.Errorf("trainer size = %d, want %d", len(rom.trainer), TRAINER_SIZE)
	}
}

func TestNewCHRRAM(t *testing.T) {
	raw := buildROM(0x00, 0x00, 1, 0)
	rom, err := New(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("couldn't parse CHR-RAM ROM: %v", err)
	}
	if !rom.chrRAM {
		t.Error("expected chrRAM true when header chrSize is 0")
	}
	if rom.ChrSize() != CHR_BLOCK_SIZE {
		t.Errorf("ChrSize = %d, want one bank of backing CHR RAM", rom.ChrSize())
	}
}

func TestTruncatedHeaderErrors(t *testing.T) {
	if _, err := New(bytes.NewReader([]byte{0x4e, 0x45, 0x53})); err == nil {
		t.Error("expected error parsing a truncated header")
	}
}

func TestBadMagicErrors(t *testing.T) {
	raw := buildROM(0x00, 0x00, 1, 1)
	raw[0] = 'X' // corrupt the "NES\x1A" magic
	if _, err := New(bytes.NewReader(raw)); err == nil {
		t.Error("expected error parsing a header with bad magic")
	}
}

func TestMapperNumRoundTrip(t *testing.T) {
	// Mapper 1 (MMC1): low nibble in flags6 bits 4-7.
	raw := buildROM(0x10, 0x00, 1, 1)
	rom, err := New(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("couldn't parse ROM: %v", err)
	}
	if rom.MapperNum() != 1 {
		t.Errorf("MapperNum = %d, want 1", rom.MapperNum())
	}
}
