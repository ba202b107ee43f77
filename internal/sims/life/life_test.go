package life

import (
	"testing"

	"gridreel/internal/core"
)

func alive(l *Life) map[[2]int]bool {
	out := map[[2]int]bool{}
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if l.Cells()[y*size.W+x] == 1 {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, l *Life, want ...[2]int) {
	t.Helper()
	got := alive(l)
	if len(got) != len(want) {
		t.Fatalf("got %d live cells %v, expected %v", len(got), got, want)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("cell %v should be alive, live cells %v", c, got)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := New(5, 5, DefaultConfig())
	l.Set(2, 1, true)
	l.Set(2, 2, true)
	l.Set(2, 3, true)

	l.Step()
	expectAlive(t, l, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	l.Step()
	expectAlive(t, l, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
}

func TestBlinkerWrapsAroundEdges(t *testing.T) {
	l := New(5, 5, DefaultConfig())
	l.Set(0, 4, true)
	l.Set(0, 0, true)
	l.Set(0, 1, true)

	l.Step()
	expectAlive(t, l, [2]int{4, 0}, [2]int{0, 0}, [2]int{1, 0})
}

func TestResetIsDeterministic(t *testing.T) {
	a := New(16, 16, DefaultConfig())
	b := New(16, 16, DefaultConfig())
	a.Reset(42)
	b.Reset(42)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("cell %d differs between equal seeds", i)
		}
	}
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	sim := f(core.Size{W: 7, H: 3}, map[string]string{"density": "4"})
	if got := sim.Size(); got != (core.Size{W: 7, H: 3}) {
		t.Fatalf("size = %+v", got)
	}
	if got := sim.(*Life).cfg.Density; got != 4 {
		t.Fatalf("density = %d, want 4", got)
	}
}
