package core

import "testing"

func TestInputFramePressImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionDrop)

	if !f.WasPressed(ActionDrop) {
		t.Error("WasPressed(Drop) should be true after Press")
	}
	if !f.IsDown(ActionDrop) {
		t.Error("a fresh press should also be held")
	}
	if f.WasPressed(ActionLeft) || f.IsDown(ActionLeft) {
		t.Error("untouched action should be neither held nor pressed")
	}
}

func TestInputFrameHoldIsNotPress(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionLeft)

	if !f.IsDown(ActionLeft) {
		t.Error("IsDown(Left) should be true after Hold")
	}
	if f.WasPressed(ActionLeft) {
		t.Error("Hold must not report a fresh press")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.IsDown(ActionRotate) || f.WasPressed(ActionRotate) {
		t.Error("zero frame should report nothing")
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Press(ActionRotate)
	if !f.IsDown(ActionRotate) {
		t.Error("Press on zero frame should allocate maps")
	}
}

func TestInputFrameEmpty(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Hold(ActionRight)
	if f.Empty() {
		t.Error("frame with a held action should not be empty")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionRotate, "Rotate"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionDrop, "Drop"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.want)
		}
	}
}
