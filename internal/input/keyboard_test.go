package input

import (
	"testing"

	"github.com/eiannone/keyboard"
)

func TestKeyboardLanes(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 8)
	k, err := NewKeyboard(events, "dfjk", "uni", 0.5)
	if nil != err {
		t.Fatal(err)
	}

	var s Snapshot
	events <- keyboard.KeyEvent{Rune: 'f'}
	commands, err := k.Poll(1, &s)
	if nil != err || len(commands) != 0 {
		t.Fatal(commands, err)
	}
	for i := 0; i < 16; i++ {
		expected := i >= 4 && i < 8
		if s.Held(Sliders, i) != expected || s.Pressed(Sliders, i) != expected {
			t.Errorf("lane %d: held %v", i, s.Held(Sliders, i))
		}
	}

	// Still inside the grace period, held but no longer a press
	k.Poll(1.2, &s)
	if !s.Held(Sliders, 4) || s.Pressed(Sliders, 4) {
		t.Error("lane 4 should be held without a new press")
	}

	k.Poll(1.6, &s)
	if s.Held(Sliders, 4) || !s.HeldLast(Sliders, 4) {
		t.Error("lane 4 should have been released")
	}
}

func TestKeyboardAir(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 8)
	k, err := NewKeyboard(events, "dfjk", "uni", 0.5)
	if nil != err {
		t.Fatal(err)
	}

	var s Snapshot
	events <- keyboard.KeyEvent{Rune: 'n'}
	k.Poll(1, &s)
	if !s.Pressed(Air, AirDown) || !s.Held(Air, AirHold) || s.Held(Air, AirUp) {
		t.Error("air down should press and hold")
	}
}

func TestKeyboardCommands(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 8)
	k, _ := NewKeyboard(events, "dfjk", "uni", 0.5)

	events <- keyboard.KeyEvent{Rune: '['}
	events <- keyboard.KeyEvent{Rune: ']'}
	events <- keyboard.KeyEvent{Key: keyboard.KeyEsc}
	var s Snapshot
	commands, _ := k.Poll(0, &s)
	expected := []Command{SeekBack, SeekForward, Quit}
	if len(commands) != len(expected) {
		t.Fatal("got", commands)
	}
	for i := range expected {
		if commands[i] != expected[i] {
			t.Errorf("command %d: got %v, expected %v", i, commands[i], expected[i])
		}
	}
}

func TestNewKeyboardRejects(t *testing.T) {
	if _, err := NewKeyboard(nil, "abc", "uni", 0.5); nil == err {
		t.Error("3 keys do not divide 16 lanes")
	}
	if _, err := NewKeyboard(nil, "dfjk", "u", 0.5); nil == err {
		t.Error("air keys need up, down and action")
	}
}

func TestKeyboardClockJumpsBack(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 8)
	k, _ := NewKeyboard(events, "dfjk", "uni", 0.5)

	var s Snapshot
	events <- keyboard.KeyEvent{Rune: 'd'}
	k.Poll(10, &s)
	if !s.Held(Sliders, 0) {
		t.Fatal("lane 0 should be held")
	}

	// A key seen in the future is not held
	for _, now := range []float64{5, 6, 9} {
		k.Poll(now, &s)
		if s.Held(Sliders, 0) {
			t.Error("lane 0 held at", now)
		}
	}
}

func TestKeyboardReset(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 8)
	k, _ := NewKeyboard(events, "dfjk", "uni", 0.5)

	var s Snapshot
	events <- keyboard.KeyEvent{Rune: 'd'}
	events <- keyboard.KeyEvent{Rune: 'u'}
	k.Poll(10, &s)

	k.Reset()
	k.Poll(10.2, &s)
	if s.Held(Sliders, 0) || s.Held(Air, AirUp) || s.Held(Air, AirHold) {
		t.Error("reset keys are still held")
	}

	events <- keyboard.KeyEvent{Rune: 'd'}
	k.Poll(10.3, &s)
	if !s.Pressed(Sliders, 0) {
		t.Error("a press after a reset must be a new press")
	}
}
