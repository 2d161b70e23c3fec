package ui2d

import "testing"

func TestInputPressAndRelease(t *testing.T) {
	var in InputState

	in.MouseDown(10, 20)
	in.Update()
	if !in.MouseLeftPressed || in.MouseLeftReleased {
		t.Fatalf("after press: pressed=%v released=%v", in.MouseLeftPressed, in.MouseLeftReleased)
	}
	in.EndFrame()

	in.Update()
	if in.MouseLeftPressed {
		t.Error("press reported twice")
	}
	in.EndFrame()

	in.MouseUp(10, 20)
	in.Update()
	if !in.MouseLeftReleased {
		t.Error("release not reported")
	}
}

func TestInputClickBetweenFrames(t *testing.T) {
	var in InputState

	in.MouseDown(5, 5)
	in.MouseUp(5, 5)
	in.Update()

	if !in.MouseLeftPressed {
		t.Error("quick click lost its press")
	}
	if !in.MouseLeftReleased {
		t.Error("quick click lost its release")
	}
	if in.MouseLeftDown {
		t.Error("button still down after release")
	}
}

func TestInputDelta(t *testing.T) {
	var in InputState
	in.MouseMove(10, 10)
	in.Update()
	in.MouseMove(15, 7)
	in.Update()

	if in.MouseDeltaX != 5 || in.MouseDeltaY != -3 {
		t.Errorf("delta = (%v, %v), want (5, -3)", in.MouseDeltaX, in.MouseDeltaY)
	}
}
