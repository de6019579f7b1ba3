// Package controller implements the NES standard controller's
// $4016/$4017 shift-register protocol.
// https://www.nesdev.org/wiki/Standard_controller
package controller

// Button bit positions within the external bitmask passed to
// SetButtons: A is the high bit, matching the order the shift register
// reports buttons in (A first).
const (
	Right uint8 = 1 << iota
	Left
	Down
	Up
	Start
	Select
	B
	A
)

// Controller models one standard NES pad. The bitmask convention is A =
// bit 7, B = bit 6, Select = bit 5, Start = bit 4, Up = bit 3, Down =
// bit 2, Left = bit 1, Right = bit 0.
type Controller struct {
	strobe  bool
	buttons uint8
	shift   uint8
}

// New constructs a controller with no buttons held.
func New() *Controller {
	return &Controller{}
}

// SetButtons latches the current physical button state. While strobe is
// held high the shift register continuously re-latches from this value,
// as real hardware does.
func (c *Controller) SetButtons(buttons uint8) {
	c.buttons = buttons
	if c.strobe {
		c.shift = c.buttons
	}
}

// Write handles a CPU write to $4016 (or the equivalent $4017 write on
// the second pad). Bit 0 is the strobe: a 1 forces a continuous reload,
// and the 1-to-0 transition latches the shift register for reading.
func (c *Controller) Write(val uint8) {
	c.strobe = val&0x01 != 0
	if c.strobe {
		c.shift = c.buttons
	}
}

// Read shifts the next button state out of the register, A first. Past
// the eighth read, subsequent reads return 1, matching the open-bus
// behavior of real hardware once the shift register runs dry.
func (c *Controller) Read() uint8 {
	if c.strobe {
		return (c.buttons >> 7) & 1
	}
	ret := (c.shift >> 7) & 1
	c.shift = (c.shift << 1) | 1
	return ret
}
