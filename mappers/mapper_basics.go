// Package mappers implements and registers cartridge mappers, referenced
// numerically by iNES and NES 2.0 ROM files.
package mappers

import (
	"fmt"

	"github.com/bdwalton/gintendo/nesrom"
)

// allMappers is a global registry of mapper prototypes, keyed by mapper id.
var allMappers = map[uint8]Mapper{}

func RegisterMapper(id uint8, m Mapper) {
	if om, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("can't re-register mapper id %d, it's used by %q", id, om.Name()))
	}
	allMappers[id] = m
}

// Get returns a mapper instance wired to rom, or an error if no mapper is
// registered for rom's mapper id.
func Get(rom *nesrom.ROM) (Mapper, error) {
	id := rom.MapperNum()
	proto, ok := allMappers[id]
	if !ok {
		return nil, fmt.Errorf("unknown mapper id %d", id)
	}

	m := proto.New()
	m.Init(rom)
	return m, nil
}

// Mapper is the interface the bus coordinator drives for cartridge access.
// CPU-bus addresses passed to PrgRead/PrgWrite are absolute ($0000-$FFFF);
// PPU-bus addresses passed to ChrRead/ChrWrite are pattern-table-relative
// ($0000-$1FFF). The console owns the 2KB built-in console RAM itself
// (console.Bus.ram); the mapper only ever sees cartridge-space addresses.
type Mapper interface {
	ID() uint16
	New() Mapper // returns a fresh, un-initialized instance of this mapper kind
	Init(*nesrom.ROM)
	Name() string
	PrgRead(uint16) uint8       // read PRG data ($4020-$FFFF)
	PrgWrite(uint16, uint8)     // write PRG data (bank-select registers or save RAM)
	ChrRead(uint16) uint8       // read CHR data
	ChrWrite(uint16, uint8)     // write CHR data
	MirroringMode() uint8       // which mirroring mode nametable data should use
	HasSaveRAM() bool           // whether the cartridge exposes save RAM at $6000-$7FFF
	IRQ() bool                  // whether the mapper is asserting its IRQ line (scanline-counter mappers)
	SaveRAM() []uint8           // the raw battery-backed save RAM contents, for persistence
	LoadSaveRAM([]uint8)        // restores save RAM contents loaded from a previous session
}

type baseMapper struct {
	id      uint16
	rom     *nesrom.ROM
	name    string
	saveRAM []uint8
}

func newBaseMapper(id uint16, name string) *baseMapper {
	return &baseMapper{
		id:      id,
		name:    name,
		saveRAM: make([]uint8, 0x2000),
	}
}

func (bm *baseMapper) ID() uint16            { return bm.id }
func (bm *baseMapper) String() string        { return bm.name }
func (bm *baseMapper) Name() string          { return bm.name }
func (bm *baseMapper) Init(r *nesrom.ROM)    { bm.rom = r }
func (bm *baseMapper) MirroringMode() uint8  { return bm.rom.MirroringMode() }
func (bm *baseMapper) HasSaveRAM() bool      { return bm.rom.HasSaveRAM() }
func (bm *baseMapper) IRQ() bool             { return false }

func (bm *baseMapper) readSaveRAM(addr uint16) uint8       { return bm.saveRAM[addr-0x6000] }
func (bm *baseMapper) writeSaveRAM(addr uint16, val uint8) { bm.saveRAM[addr-0x6000] = val }

// SaveRAM returns the raw contents of battery-backed PRG-RAM so the shell
// can persist it across sessions. https://www.nesdev.org/wiki/Battery_backed_save
func (bm *baseMapper) SaveRAM() []uint8 {
	return bm.saveRAM
}

// LoadSaveRAM restores previously-persisted save RAM contents. A short or
// long buffer is copied as far as it matches; it never resizes saveRAM.
func (bm *baseMapper) LoadSaveRAM(data []uint8) {
	copy(bm.saveRAM, data)
}
