package core

import "testing"

func TestInputStateDirections(t *testing.T) {
	tests := []struct {
		name     string
		apply    func(s *InputState)
		expected int
	}{
		{"right held", func(s *InputState) { s.Press(DirRight) }, 1},
		{"left held", func(s *InputState) { s.Press(DirLeft) }, -1},
		{"both held cancel", func(s *InputState) { s.Press(DirLeft); s.Press(DirRight) }, 0},
		{"right pressed and released", func(s *InputState) { s.Press(DirRight); s.Release(DirRight) }, 0},
		{"both held then left released", func(s *InputState) {
			s.Press(DirLeft)
			s.Press(DirRight)
			s.Release(DirLeft)
		}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewInputState()
			tc.apply(s)
			if got := s.Take().Move; got != tc.expected {
				t.Errorf("Move = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestInputStateFireIsConsumed(t *testing.T) {
	s := NewInputState()
	s.ReleaseFire()

	if !s.Take().Fire {
		t.Fatal("first Take() should report the fire edge")
	}
	for i := 0; i < 5; i++ {
		if s.Take().Fire {
			t.Fatalf("Take() %d after consumption reported fire again", i+2)
		}
	}
}

func TestInputStateMoveIsLevel(t *testing.T) {
	s := NewInputState()
	s.Press(DirRight)

	for i := 0; i < 3; i++ {
		if s.Take().Move != 1 {
			t.Fatalf("held direction should persist across Take(), tick %d", i)
		}
	}
}

func TestInputStateQuitAndReset(t *testing.T) {
	s := NewInputState()
	s.Press(DirLeft)
	s.Quit()

	snap := s.Take()
	if !snap.Quit {
		t.Error("Quit should be reported")
	}

	s.Reset()
	if snap := s.Take(); snap.Quit || snap.Move != 0 || snap.Fire {
		t.Errorf("Reset should clear all input, got %+v", snap)
	}
}
