// Package apu implements the NES Audio Processing Unit: two pulse
// channels, a triangle channel, noise, and DMC, mixed through the
// documented two-term approximation of the real analog mixer.
// https://www.nesdev.org/wiki/APU
package apu

import "math"

// CPU-facing register addresses.
const (
	Pulse1Reg0 = 0x4000
	Pulse1Reg1 = 0x4001
	Pulse1Reg2 = 0x4002
	Pulse1Reg3 = 0x4003
	Pulse2Reg0 = 0x4004
	Pulse2Reg1 = 0x4005
	Pulse2Reg2 = 0x4006
	Pulse2Reg3 = 0x4007
	TriReg0    = 0x4008
	TriReg2    = 0x400A
	TriReg3    = 0x400B
	NoiseReg0  = 0x400C
	NoiseReg2  = 0x400E
	NoiseReg3  = 0x400F
	DMCReg0    = 0x4010
	DMCReg1    = 0x4011
	DMCReg2    = 0x4012
	DMCReg3    = 0x4013
	Status     = 0x4015
	FrameCount = 0x4017
)

// Bus is the CPU memory interface the DMC channel reads sample data
// through; OAM-DMA-style CPU stalls for DMC fetches are the host bus's
// responsibility, signalled via AddStall.
type Bus interface {
	Read(addr uint16) uint8
	AddStall(cycles int)
}

// frame-sequencer milestones, in APU cycles (one APU cycle = two CPU
// cycles), per the canonical NTSC frame-counter timing table.
const (
	step1 = 3729
	step2 = 7457
	step3 = 11186
	step4 = 14915
	step5 = 18641
)

// APU drives the five sound channels and mixes their output into a single
// sample per Step call.
type APU struct {
	bus Bus

	pulse1, pulse2 pulse
	triangle       triangle
	noise          noise
	dmc            dmc

	frameMode       uint8 // 0: 4-step, 1: 5-step
	frameIRQInhibit bool
	frameIRQ        bool
	frameCounter    uint32

	halfCycle bool // toggles each Step call; pulse/noise clock on the high half
}

// New constructs an APU with channels silenced at power-on.
func New(bus Bus) *APU {
	a := &APU{bus: bus}
	a.pulse1.channel = 0
	a.pulse2.channel = 1
	a.noise = newNoise()
	a.dmc.bus = bus
	return a
}

// Write dispatches a CPU-bus write in 0x4000-0x4013, 0x4015 or 0x4017 to
// the appropriate channel or frame-counter register.
func (a *APU) Write(addr uint16, v uint8) {
	switch addr {
	case Pulse1Reg0:
		a.pulse1.writeReg0(v)
	case Pulse1Reg1:
		a.pulse1.writeReg1(v)
	case Pulse1Reg2:
		a.pulse1.writeReg2(v)
	case Pulse1Reg3:
		a.pulse1.writeReg3(v)
	case Pulse2Reg0:
		a.pulse2.writeReg0(v)
	case Pulse2Reg1:
		a.pulse2.writeReg1(v)
	case Pulse2Reg2:
		a.pulse2.writeReg2(v)
	case Pulse2Reg3:
		a.pulse2.writeReg3(v)
	case TriReg0:
		a.triangle.writeReg0(v)
	case TriReg2:
		a.triangle.writeReg2(v)
	case TriReg3:
		a.triangle.writeReg3(v)
	case NoiseReg0:
		a.noise.writeReg0(v)
	case NoiseReg2:
		a.noise.writeReg2(v)
	case NoiseReg3:
		a.noise.writeReg3(v)
	case DMCReg0:
		a.dmc.writeReg0(v)
	case DMCReg1:
		a.dmc.writeReg1(v)
	case DMCReg2:
		a.dmc.writeReg2(v)
	case DMCReg3:
		a.dmc.writeReg3(v)
	case Status:
		a.pulse1.setEnabled(v&0x01 != 0)
		a.pulse2.setEnabled(v&0x02 != 0)
		a.triangle.setEnabled(v&0x04 != 0)
		a.noise.setEnabled(v&0x08 != 0)
		a.dmc.setEnabled(v&0x10 != 0)
		a.dmc.irq = false
	case FrameCount:
		a.frameMode = v >> 7
		a.frameIRQInhibit = v&0x40 != 0
		if a.frameIRQInhibit {
			a.frameIRQ = false
		}
		a.frameCounter = 0
		if a.frameMode == 1 {
			a.clockQuarterFrame()
			a.clockHalfFrame()
		}
	}
}

// Read returns the $4015 channel-status/IRQ register; reading clears the
// frame-IRQ flag.
func (a *APU) Read(addr uint16) uint8 {
	if addr != Status {
		return 0
	}
	var v uint8
	if a.pulse1.lengthCounter > 0 {
		v |= 0x01
	}
	if a.pulse2.lengthCounter > 0 {
		v |= 0x02
	}
	if a.triangle.lengthCounter > 0 {
		v |= 0x04
	}
	if a.noise.lengthCounter > 0 {
		v |= 0x08
	}
	if a.dmc.bytesLeft > 0 {
		v |= 0x10
	}
	if a.dmc.irq {
		v |= 0x80
	}
	if a.frameIRQ {
		v |= 0x40
	}
	a.frameIRQ = false
	return v
}

// IRQ reports whether the APU is currently asserting the CPU's IRQ line
// (frame counter or DMC).
func (a *APU) IRQ() bool {
	return a.frameIRQ || a.dmc.irq
}

func (a *APU) clockQuarterFrame() {
	a.pulse1.envelope.clockQuarterFrame()
	a.pulse2.envelope.clockQuarterFrame()
	a.noise.envelope.clockQuarterFrame()
	a.triangle.clockQuarterFrame()
}

func (a *APU) clockHalfFrame() {
	a.pulse1.clockHalfFrame()
	a.pulse2.clockHalfFrame()
	a.triangle.clockHalfFrame()
	a.noise.clockHalfFrame()
}

func (a *APU) clockFrameSequencer() {
	a.frameCounter++

	if a.frameMode == 0 {
		switch a.frameCounter {
		case step1:
			a.clockQuarterFrame()
		case step2:
			a.clockQuarterFrame()
			a.clockHalfFrame()
		case step3:
			a.clockQuarterFrame()
		case step4:
			a.clockQuarterFrame()
			a.clockHalfFrame()
			if !a.frameIRQInhibit {
				a.frameIRQ = true
			}
			a.frameCounter = 0
		}
		return
	}

	switch a.frameCounter {
	case step1:
		a.clockQuarterFrame()
	case step2:
		a.clockQuarterFrame()
		a.clockHalfFrame()
	case step3:
		a.clockQuarterFrame()
	case step4:
		a.clockQuarterFrame()
	case step5:
		a.clockQuarterFrame()
		a.clockHalfFrame()
		a.frameCounter = 0
	}
}

// Step advances the APU by one CPU cycle and returns the mixed analog
// sample for that cycle, in [0.0, 1.0].
func (a *APU) Step() float32 {
	a.halfCycle = !a.halfCycle
	if a.halfCycle {
		a.pulse1.clockTimer()
		a.pulse2.clockTimer()
		a.noise.clockTimer()
		a.clockFrameSequencer()
	}
	a.triangle.clockTimer()
	a.dmc.clockTimer()

	return a.mix()
}

// mix combines channel outputs via the documented two-term approximation,
// extended to include noise and DMC in the tnd term per spec.md's Open
// Question ("should include them even if the source omits them").
func (a *APU) mix() float32 {
	p1 := float64(a.pulse1.output())
	p2 := float64(a.pulse2.output())
	t := float64(a.triangle.output())
	n := float64(a.noise.output())
	d := float64(a.dmc.output())

	var pulseOut float64
	if p1+p2 != 0 {
		pulseOut = 95.88 / (8128/(p1+p2) + 100)
	}

	var tndOut float64
	denom := t/8227 + n/12241 + d/22638
	if denom != 0 {
		tndOut = 159.79 / (1/denom + 100)
	}

	out := pulseOut + tndOut
	if math.IsNaN(out) {
		return 0
	}
	return float32(out)
}
