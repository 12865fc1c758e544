package tetris

import "testing"

func TestRotationCyclicGroup(t *testing.T) {
	for _, start := range []Rotation{Deg0, Deg90, Deg180, Deg270} {
		// Four clockwise spins are the identity.
		r := start
		for i := 0; i < 4; i++ {
			r = r.SpinCW()
		}
		if r != start {
			t.Errorf("SpinCW^4 from %v = %v, expected identity", start, r)
		}

		// Clockwise then counter-clockwise is the identity.
		if got := start.SpinCW().SpinCCW(); got != start {
			t.Errorf("SpinCW then SpinCCW from %v = %v, expected identity", start, got)
		}
		if got := start.SpinCCW().SpinCW(); got != start {
			t.Errorf("SpinCCW then SpinCW from %v = %v, expected identity", start, got)
		}
	}
}

func TestRotationTransitions(t *testing.T) {
	cw := map[Rotation]Rotation{
		Deg0:   Deg90,
		Deg90:  Deg180,
		Deg180: Deg270,
		Deg270: Deg0,
	}
	for from, want := range cw {
		if got := from.SpinCW(); got != want {
			t.Errorf("SpinCW(%v) = %v, expected %v", from, got, want)
		}
		if got := want.SpinCCW(); got != from {
			t.Errorf("SpinCCW(%v) = %v, expected %v", want, got, from)
		}
	}
}
