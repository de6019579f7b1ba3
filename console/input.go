package console

import (
	"github.com/bdwalton/gintendo/controller"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings maps host keys to controller bits, grounded on the
// teacher's own binding choices in the now-retired console/controller.go.
var keyBindings = []struct {
	key ebiten.Key
	bit uint8
}{
	{ebiten.KeyA, controller.A},
	{ebiten.KeyB, controller.B},
	{ebiten.KeySpace, controller.Select},
	{ebiten.KeyEnter, controller.Start},
	{ebiten.KeyUp, controller.Up},
	{ebiten.KeyDown, controller.Down},
	{ebiten.KeyLeft, controller.Left},
	{ebiten.KeyRight, controller.Right},
}

// pollKeyboard reads the host keyboard and packs the held keys into the
// controller bitmask convention (A = bit 7 ... Right = bit 0).
func pollKeyboard() uint8 {
	var buttons uint8
	for _, kb := range keyBindings {
		if ebiten.IsKeyPressed(kb.key) {
			buttons |= kb.bit
		}
	}
	return buttons
}
