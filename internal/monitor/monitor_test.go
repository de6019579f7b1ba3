package monitor

import (
	"context"
	"os"
	"testing"
)

type fakeSystem struct {
	pc    uint16
	steps int
}

func (f *fakeSystem) CPUStatus() string { return "fake" }
func (f *fakeSystem) PPUStatus() string { return "fake" }
func (f *fakeSystem) Read(addr uint16) uint8 { return uint8(addr) }
func (f *fakeSystem) PC() uint16        { return f.pc }
func (f *fakeSystem) SetPC(addr uint16) { f.pc = addr }
func (f *fakeSystem) StackAddr() uint16 { return 0x01FD }
func (f *fakeSystem) Reset()            { f.pc = 0xFFFC }
func (f *fakeSystem) Step() int {
	f.steps++
	f.pc++
	return 1
}

func TestRunToBreakpointStopsAtBreakpoint(t *testing.T) {
	sys := &fakeSystem{pc: 0x8000}
	m := New(sys)
	m.breaks[0x8005] = struct{}{}

	m.runToBreakpoint(context.Background(), make(chan os.Signal, 1))

	if sys.pc != 0x8005 {
		t.Errorf("pc = %#04x, want 0x8005 (breakpoint)", sys.pc)
	}
	if sys.steps != 5 {
		t.Errorf("steps = %d, want 5", sys.steps)
	}
}

func TestRunToBreakpointStopsOnCancel(t *testing.T) {
	sys := &fakeSystem{pc: 0x8000}
	m := New(sys)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.runToBreakpoint(ctx, make(chan os.Signal, 1))

	if sys.steps != 0 {
		t.Errorf("steps = %d, want 0 (context already cancelled)", sys.steps)
	}
}
