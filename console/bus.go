// Package console wires the CPU, PPU, APU, controllers and cartridge
// mapper together into the single coherent memory bus the rest of the
// system talks through, and exposes the ebiten.Game loop that drives it.
package console

import (
	"context"
	"image/color"
	"log"
	"math"

	"github.com/bdwalton/gintendo/apu"
	"github.com/bdwalton/gintendo/controller"
	"github.com/bdwalton/gintendo/mappers"
	"github.com/bdwalton/gintendo/mos6502"
	"github.com/bdwalton/gintendo/ppu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	NES_BASE_MEMORY = 0x800 // 2KB built in RAM

	MAX_ADDRESS          = math.MaxUint16
	MEM_SIZE             = MAX_ADDRESS + 1
	MAX_NES_BASE_RAM     = 0x1FFF
	MAX_PPU_REG_MIRRORED = 0x3FFF
	MAX_IO_REG           = 0x4020
)

// CPU-facing I/O register addresses in the $4000-$4017 range that
// aren't APU registers.
const (
	OAMDMA     = 0x4014
	JOY1       = 0x4016
	JOY2       = 0x4017
)

// Bus is the NES system bus: it owns the CPU, PPU, APU, two controller
// ports and the cartridge mapper, and implements ebiten.Game so it can
// be handed straight to ebiten.RunGame.
type Bus struct {
	cpu    *mos6502.CPU
	ppu    *ppu.PPU
	apu    *apu.APU
	mapper mappers.Mapper
	ram    []uint8

	pad1, pad2 *controller.Controller

	mute        bool
	soundStream *soundStream
	player      *audio.Player
	audioAccum  float32
	audioCount  int
}

// New constructs a fully wired Bus for the given cartridge mapper and
// sets up the ebiten window.
func New(m mappers.Mapper) *Bus {
	b := &Bus{
		mapper: m,
		ram:    make([]uint8, NES_BASE_MEMORY),
		pad1:   controller.New(),
		pad2:   controller.New(),
	}

	b.cpu = mos6502.New(b)
	b.ppu = ppu.New(b)
	b.ppu.SetMirrorMode(m.MirroringMode())
	b.apu = apu.New(b)

	w, h := b.ppu.GetResolution()
	ebiten.SetWindowSize(w*2, h*2) // Start with 2x the screen size
	ebiten.SetWindowTitle("Gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := b.initAudio(); err != nil {
		log.Printf("audio disabled: %v", err)
	}

	return b
}

// SetMute silences APU output without stopping emulation (used by the
// -mute CLI flag).
func (b *Bus) SetMute(mute bool) {
	b.mute = mute
}

// ChrRead is used by the PPU to access CHR-ROM/RAM through the loaded
// mapper.
func (b *Bus) ChrRead(addr uint16) uint8 {
	return b.mapper.ChrRead(addr)
}

// ChrWrite is used by the PPU to write CHR-RAM through the loaded
// mapper (a no-op on CHR-ROM boards).
func (b *Bus) ChrWrite(addr uint16, val uint8) {
	b.mapper.ChrWrite(addr, val)
}

// Read implements the CPU-visible memory map.
// https://www.nesdev.org/wiki/CPU_memory_map
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= MAX_NES_BASE_RAM:
		// 0x800-0x1FFF mirrors 0x0000-0x07FF
		return b.ram[addr&0x07FF]
	case addr <= MAX_PPU_REG_MIRRORED:
		// PPU registers are mirrored every 8 bytes between 0x2000 and 0x4000
		return b.ppu.ReadReg(0x2000 + addr&0x0007)
	case addr == JOY1:
		return b.pad1.Read()
	case addr == JOY2:
		return b.pad2.Read()
	case addr < MAX_IO_REG:
		return b.apu.Read(addr)
	case addr <= MAX_ADDRESS:
		return b.mapper.PrgRead(addr)
	}

	panic("should never happen") // hah, prod crashes await!
}

// ClearMem zeroes built-in RAM, used by the monitor's reset path.
func (b *Bus) ClearMem() {
	b.ram = make([]uint8, len(b.ram))
}

// Write implements the CPU-visible memory map's write side.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= MAX_NES_BASE_RAM:
		b.ram[addr&0x07FF] = val
	case addr <= MAX_PPU_REG_MIRRORED:
		b.ppu.WriteReg(0x2000+addr&0x0007, val)
	case addr == OAMDMA:
		b.startOAMDMA(val)
	case addr == JOY1:
		b.pad1.Write(val)
		b.pad2.Write(val)
	case addr < MAX_IO_REG:
		b.apu.Write(addr, val)
	case addr <= MAX_ADDRESS:
		b.mapper.PrgWrite(addr, val)
	}
}

// startOAMDMA copies 256 bytes of CPU memory, starting at val<<8, into
// the PPU's OAM and stalls the CPU for 513 cycles (514 if the DMA began
// on an odd CPU cycle), matching real hardware's alignment wait.
// https://www.nesdev.org/wiki/DMA
func (b *Bus) startOAMDMA(val uint8) {
	base := uint16(val) << 8
	for i := uint16(0); i < 256; i++ {
		b.ppu.WriteOAMByte(b.Read(base + i))
	}

	cycles := 513
	if b.cpu.Cycles()%2 != 0 {
		cycles = 514
	}
	b.cpu.AddStall(cycles)
}

// AddStall forwards CPU stall cycles requested by the APU's DMC sample
// fetches to the CPU.
func (b *Bus) AddStall(cycles int) {
	b.cpu.AddStall(cycles)
}

// SetButtons1 sets the first controller port's physical button state
// (bitmask per controller.A/B/Select/Start/Up/Down/Left/Right).
func (b *Bus) SetButtons1(buttons uint8) {
	b.pad1.SetButtons(buttons)
}

// SetButtons2 sets the second controller port's physical button state.
func (b *Bus) SetButtons2(buttons uint8) {
	b.pad2.SetButtons(buttons)
}

// MirrorMode returns the cartridge's nametable mirroring selection.
func (b *Bus) MirrorMode() uint8 {
	return b.mapper.MirroringMode()
}

// HasSaveRAM reports whether the loaded cartridge has battery-backed
// PRG-RAM worth persisting across sessions.
func (b *Bus) HasSaveRAM() bool {
	return b.mapper.HasSaveRAM()
}

// SaveRAM returns the cartridge's current battery-backed PRG-RAM
// contents, for the shell to write out at shutdown.
func (b *Bus) SaveRAM() []uint8 {
	return b.mapper.SaveRAM()
}

// LoadSaveRAM restores battery-backed PRG-RAM contents read back in by
// the shell at startup.
func (b *Bus) LoadSaveRAM(data []uint8) {
	b.mapper.LoadSaveRAM(data)
}

// Layout returns the constant resolution of the NES and is part of the
// ebiten.Game interface. By returning constants here, we force ebiten to
// scale the display when the window size changes.
func (b *Bus) Layout(w, h int) (int, int) {
	return b.ppu.GetResolution()
}

// Draw updates the displayed ebiten window with the current contents of
// the PPU framebuffer, resolving palette indices through the system
// palette.
func (b *Bus) Draw(screen *ebiten.Image) {
	w, h := b.ppu.GetResolution()
	fb := b.ppu.Frame()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl := ppu.RGB(fb[y*w+x])
			screen.Set(x, y, color.RGBA{r, g, bl, 0xff})
		}
	}
}

// Update polls the keyboard into the first controller port; the second
// port is only set through SetButtons2. It is called by
// ebiten roughly every 1/60s; the actual emulation runs on its own
// goroutine via Run so frame pacing here only needs to service input.
func (b *Bus) Update() error {
	b.pad1.SetButtons(pollKeyboard())
	return nil
}

// Run drives the system clock: each CPU instruction (or stall cycle)
// advances the PPU three times and the APU once per CPU cycle consumed,
// keeping the classic 1:3 CPU:PPU ratio and the APU's CPU-cycle rate.
func (b *Bus) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			b.Step()
		}
	}
}

// Step advances the system by exactly one CPU instruction (or one stall
// cycle, if the CPU is mid-OAM-DMA), ticking the PPU and APU in lockstep,
// and returns the CPU cycle count it consumed. It is exported so the
// debug monitor can single-step the whole system, not just the CPU.
func (b *Bus) Step() int {
	// Mappers like MMC1 can change nametable mirroring at runtime via
	// bank-select writes, so the PPU's mirroring mode is refreshed every
	// instruction rather than only once at construction.
	b.ppu.SetMirrorMode(b.mapper.MirroringMode())

	n := b.cpu.Step()

	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			b.ppu.Tick()
			b.cpu.SetNMILine(b.ppu.NMI())
		}

		sample := b.apu.Step()
		if !b.mute {
			b.emitSample(sample)
		}
		b.cpu.SetIRQLine(b.apu.IRQ() || b.mapper.IRQ())
	}

	return n
}

// CPUStatus renders the CPU's register state, for the debug monitor.
func (b *Bus) CPUStatus() string {
	return b.cpu.String()
}

// PPUStatus renders the PPU's internal state, for the debug monitor.
func (b *Bus) PPUStatus() string {
	return b.ppu.String()
}

// StackAddr returns the CPU's current stack pointer as an absolute
// address, for the debug monitor's stack dump.
func (b *Bus) StackAddr() uint16 {
	return b.cpu.StackAddr()
}

// PC returns the CPU's current program counter, for the debug monitor.
func (b *Bus) PC() uint16 {
	return b.cpu.PC
}

// SetPC forces the CPU's program counter, for the debug monitor.
func (b *Bus) SetPC(addr uint16) {
	b.cpu.PC = addr
}

// Reset re-initializes the CPU from the RESET vector, for the debug
// monitor's reset command.
func (b *Bus) Reset() {
	b.cpu.Reset()
}
