package nesrom

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type PlayChoicePROM struct {
	Data       [16]byte
	CounterOut [16]byte
}

// ROM is a parsed iNES/NES 2.0 cartridge image: header plus trainer, PRG,
// and CHR payloads.
type ROM struct {
	path      string
	h         *header
	trainer   []byte          // if present
	prg       []byte          // 16384 * x bytes; x from header
	chr       []byte          // 8192 * y bytes; y from header
	chrRAM    bool             // true when chrSize == 0 (board supplies CHR RAM instead)
	pcInstRom []byte          // if present
	pcPROM    *PlayChoicePROM // if present; often missing, see PC10 ROM-Images
}

const (
	TRAINER_SIZE   = 512
	PRG_BLOCK_SIZE = 16384
	CHR_BLOCK_SIZE = 8192
	PC_INST_SIZE   = 8192
	PC_PROM_SIZE   = 32
)

// Load opens path and parses it as an iNES/NES 2.0 ROM image.
func Load(path string) (*ROM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open ROM file %q: %w", path, err)
	}
	defer f.Close()

	r, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse ROM file %q: %w", path, err)
	}
	r.path = path
	return r, nil
}

// New parses an iNES/NES 2.0 ROM image from r.
func New(r io.Reader) (*ROM, error) {
	hbytes := make([]byte, 16)
	if n, err := io.ReadFull(r, hbytes); n != 16 || err != nil {
		return nil, fmt.Errorf("couldn't read header: %w", err)
	}

	rom := &ROM{h: parseHeader(hbytes)}
	if !rom.h.isINesFormat() {
		return nil, fmt.Errorf("bad header magic %q, not an iNES/NES 2.0 ROM", rom.h.constant)
	}

	if rom.h.hasTrainer() {
		rom.trainer = make([]byte, TRAINER_SIZE)
		if n, err := io.ReadFull(r, rom.trainer); n != TRAINER_SIZE || err != nil {
			return nil, fmt.Errorf("error reading trainer data: %w", err)
		}
	}

	s := PRG_BLOCK_SIZE * int(rom.h.prgSize)
	rom.prg = make([]byte, s)
	if n, err := io.ReadFull(r, rom.prg); n != s || err != nil {
		return nil, fmt.Errorf("error reading PRG ROM (read %d, wanted %d): %w", n, s, err)
	}

	if rom.h.chrSize == 0 {
		rom.chrRAM = true
		rom.chr = make([]byte, CHR_BLOCK_SIZE)
	} else {
		s = CHR_BLOCK_SIZE * int(rom.h.chrSize)
		rom.chr = make([]byte, s)
		if n, err := io.ReadFull(r, rom.chr); n != s || err != nil {
			return nil, fmt.Errorf("error reading CHR ROM (read %d, wanted %d): %w", n, s, err)
		}
	}

	if rom.h.hasPlayChoice() {
		rom.pcInstRom = make([]byte, PC_INST_SIZE)
		if n, err := io.ReadFull(r, rom.pcInstRom); n != PC_INST_SIZE || err != nil {
			return nil, fmt.Errorf("error reading PlayChoice Inst ROM (n=%d; wanted %d): %w", n, PC_INST_SIZE, err)
		}

		pcprom := make([]byte, PC_PROM_SIZE)
		if n, err := io.ReadFull(r, pcprom); n != PC_PROM_SIZE || err != nil {
			return nil, fmt.Errorf("error reading PlayChoice PROM (n=%d, wanted %d): %w", n, PC_PROM_SIZE, err)
		}
		rom.pcPROM = &PlayChoicePROM{}
		copy(rom.pcPROM.Data[:], pcprom)
	}

	return rom, nil
}

func (r *ROM) NumPrgBlocks() uint8 {
	return r.h.prgSize
}

func (r *ROM) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", r.h))
	if r.h.hasTrainer() {
		sb.WriteString(fmt.Sprintf("Trainer: %d bytes\n", len(r.trainer)))
	}
	sb.WriteString(fmt.Sprintf("PRG: %d bytes\n", len(r.prg)))
	sb.WriteString(fmt.Sprintf("CHR: %d bytes (RAM: %t)\n", len(r.chr), r.chrRAM))
	return sb.String()
}

// PrgSize returns the total addressable size of PRG ROM, for mappers that
// need to compute bank counts.
func (r *ROM) PrgSize() int { return len(r.prg) }

// ChrSize returns the total addressable size of CHR memory (ROM or RAM).
func (r *ROM) ChrSize() int { return len(r.chr) }

func (r *ROM) PrgRead(addr uint16) uint8 {
	return r.prg[int(addr)%len(r.prg)]
}

func (r *ROM) PrgWrite(addr uint16, val uint8) {
	r.prg[int(addr)%len(r.prg)] = val
}

func (r *ROM) ChrRead(addr uint16) uint8 {
	return r.chr[int(addr)%len(r.chr)]
}

func (r *ROM) ChrWrite(addr uint16, val uint8) {
	// CHR ROM is read-only on cartridges that don't supply CHR RAM;
	// writes are only meaningful when chrRAM is true, but accepting
	// them unconditionally keeps this symmetric with PrgWrite and
	// matches how real CHR-RAM boards are wired (no write-protect line).
	r.chr[int(addr)%len(r.chr)] = val
}

// PrgReadAbs/PrgWriteAbs/ChrReadAbs/ChrWriteAbs take a plain int offset
// into the whole PRG/CHR image rather than a uint16 cpu-address, since
// bank-switching mappers (MMC1 and friends) can address PRG images larger
// than 64KB.
func (r *ROM) PrgReadAbs(offset int) uint8       { return r.prg[offset%len(r.prg)] }
func (r *ROM) PrgWriteAbs(offset int, val uint8) { r.prg[offset%len(r.prg)] = val }
func (r *ROM) ChrReadAbs(offset int) uint8       { return r.chr[offset%len(r.chr)] }
func (r *ROM) ChrWriteAbs(offset int, val uint8) { r.chr[offset%len(r.chr)] = val }

// IsCHRRAM reports whether this cartridge supplies CHR RAM rather than
// CHR ROM (header chrSize == 0).
func (r *ROM) IsCHRRAM() bool { return r.chrRAM }

func (r *ROM) MapperNum() uint8 {
	return r.h.mapperNum()
}

func (r *ROM) MirroringMode() uint8 {
	return r.h.mirroringMode()
}

func (r *ROM) HasSaveRAM() bool {
	return r.h.hasPrgRAM()
}

// PrgRAMSize returns the size of battery-backed PRG RAM in 8KB units.
func (r *ROM) PrgRAMSize() uint8 {
	return r.h.prgRAMSize()
}
