// Package monitor implements the interactive breakpoint/step/memory-dump
// REPL used to debug a running console, extracted from the teacher's
// BIOS methods (formerly scattered across console.Bus, machine and
// mos6502.CPU) into one place.
package monitor

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
)

// System is the subset of console.Bus the monitor drives. Declared here
// rather than imported so the monitor has no compile-time dependency on
// the console package's other collaborators.
type System interface {
	CPUStatus() string
	PPUStatus() string
	Read(addr uint16) uint8
	PC() uint16
	SetPC(addr uint16)
	StackAddr() uint16
	Reset()
	Step() int
}

// Monitor drives a System through an interactive text REPL on stdin/stdout.
type Monitor struct {
	sys    System
	breaks map[uint16]struct{}
}

// New constructs a Monitor wrapping sys.
func New(sys System) *Monitor {
	return &Monitor{sys: sys, breaks: make(map[uint16]struct{})}
}

func readAddress(prompt string) uint16 {
	var a uint16
	fmt.Printf(prompt)
	fmt.Scanf("%04x\n", &a)
	return a
}

// Loop runs the REPL until the user quits or ctx is cancelled.
func (m *Monitor) Loop(ctx context.Context) {
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)

	for {
		fmt.Printf("%s\n\n", m.sys.CPUStatus())
		fmt.Println("(B)reak - add breakpoint")
		fmt.Println("(C)lear - clear breakpoints")
		fmt.Println("(R)un - run to completion")
		fmt.Println("(S)tep - step one instruction")
		fmt.Println("R(e)set - hit the reset button")
		fmt.Println("(M)emory - select a memory range to display")
		fmt.Println("S(t)ack - show last 3 items on the stack")
		fmt.Println("(P)C - set program counter")
		fmt.Println("PP(U) - show PPU status")
		fmt.Println("(Q)uit - shutdown the gintendo")
		fmt.Printf("Choice: ")

		var in rune
		fmt.Scanf("%c\n", &in)

		switch in {
		case 'b', 'B':
			m.breaks[readAddress("Breakpoint (eg: ff15): ")] = struct{}{}
		case 'c', 'C':
			m.breaks = make(map[uint16]struct{})
		case 'p', 'P':
			m.sys.SetPC(readAddress("Set PC to what address (eg: 0400)?: "))
		case 'q', 'Q':
			return
		case 'r', 'R':
			m.runToBreakpoint(ctx, sigQuit)
		case 's', 'S':
			m.sys.Step()
		case 't', 'T':
			fmt.Println()
			i := 0
			for {
				addr := m.sys.StackAddr() + uint16(i)
				fmt.Printf("0x%04x: 0x%02x ", addr, m.sys.Read(addr))
				if addr == 0x01ff || i == 2 {
					break
				}
				i++
			}
			fmt.Printf("\n\n")
		case 'u', 'U':
			fmt.Println(m.sys.PPUStatus())
		case 'e', 'E':
			m.sys.Reset()
		case 'm', 'M':
			fmt.Println()
			low := readAddress("Low address (eg f00d): ")
			high := readAddress("High address (eg beef): ")
			fmt.Println()

			x := 1
			i := low
			for {
				fmt.Printf("0x%04x: 0x%02x ", i, m.sys.Read(i))
				if x%5 == 0 {
					fmt.Println()
				}
				if i == high || i == math.MaxUint16 {
					break
				}
				x++
				i++
			}
			fmt.Printf("\n\n")
		}
	}
}

// runToBreakpoint steps the system one instruction at a time until a
// breakpoint address is hit, ctx is cancelled, or SIGINT/SIGTERM arrives.
func (m *Monitor) runToBreakpoint(ctx context.Context, sigQuit chan os.Signal) {
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-sigQuit:
			cancel()
		case <-cctx.Done():
		}
	}()

	for {
		select {
		case <-cctx.Done():
			return
		default:
			m.sys.Step()
			if _, hit := m.breaks[m.sys.PC()]; hit {
				return
			}
		}
	}
}
