package controller

import "testing"

func TestReadReturnsAFirst(t *testing.T) {
	c := New()
	c.SetButtons(A | Start)
	c.Write(1) // strobe high, latches continuously
	c.Write(0) // strobe low, freezes the shift register for reading

	if got := c.Read(); got != 1 {
		t.Fatalf("first Read() = %d, want 1 (A pressed)", got)
	}
	if got := c.Read(); got != 0 {
		t.Fatalf("second Read() = %d, want 0 (B not pressed)", got)
	}
	if got := c.Read(); got != 0 {
		t.Fatalf("third Read() = %d, want 0 (Select not pressed)", got)
	}
	if got := c.Read(); got != 1 {
		t.Fatalf("fourth Read() = %d, want 1 (Start pressed)", got)
	}
}

func TestReadPastEighthBitReturnsOne(t *testing.T) {
	c := New()
	c.SetButtons(0xFF)
	c.Write(1)
	c.Write(0)

	for i := 0; i < 8; i++ {
		c.Read()
	}
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("Read() past bit 8 = %d, want 1", got)
		}
	}
}

func TestStrobeHighAlwaysReportsA(t *testing.T) {
	c := New()
	c.SetButtons(A)
	c.Write(1)

	if got := c.Read(); got != 1 {
		t.Errorf("Read() with strobe high = %d, want 1", got)
	}
	if got := c.Read(); got != 1 {
		t.Errorf("repeated Read() with strobe high = %d, want 1 (continuous reload)", got)
	}
}

func TestSetButtonsWhileNotStrobingDoesNotDisturbInFlightShift(t *testing.T) {
	c := New()
	c.SetButtons(A)
	c.Write(1)
	c.Write(0)

	c.SetButtons(0) // release all buttons mid-read; already-latched shift unaffected
	if got := c.Read(); got != 1 {
		t.Errorf("Read() after releasing buttons mid-shift = %d, want 1 (A from latched shift)", got)
	}
}
