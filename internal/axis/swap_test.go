package axis

import (
	"strings"
	"testing"
)

func TestSwapTwiceRestoresIdentity(t *testing.T) {
	s := NewSwap()
	if s.Has() {
		t.Fatalf("new Swap must be identity")
	}
	s.Set(0, 1)
	if !s.Has() {
		t.Fatalf("Has() = false after one swap")
	}
	if s.Get() == Identity() {
		t.Fatalf("Get() still identity after swap")
	}
	s.Set(0, 1)
	if s.Has() {
		t.Fatalf("two equal swaps must cancel, got\n%s", s.Get())
	}
}

func TestSwapComposition(t *testing.T) {
	s := NewSwap()
	s.Set(1, 2)
	s.Set(0, 1)

	want := SwapMatrix(1, 2).Mul(SwapMatrix(0, 1))
	if got := s.Get(); got != want {
		t.Fatalf("Get() =\n%s\nwant\n%s", got, want)
	}

	// every row and column holds exactly one 1
	m := s.Get()
	for i := 0; i < 4; i++ {
		var row, col float32
		for j := 0; j < 4; j++ {
			row += m[i][j]
			col += m[j][i]
		}
		if row != 1 || col != 1 {
			t.Fatalf("not a permutation matrix:\n%s", m)
		}
	}
	if m[3][3] != 1 {
		t.Fatalf("w row must stay untouched")
	}

	s.Reset()
	if s.Has() {
		t.Fatalf("Reset must restore identity")
	}
}

func TestSwapMatrixRows(t *testing.T) {
	m := SwapMatrix(0, 2)
	if m[0] != [4]float32{0, 0, 1, 0} || m[2] != [4]float32{1, 0, 0, 0} {
		t.Fatalf("unexpected swap matrix\n%s", m)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewSwap()
	m := s.Get()
	m[0][0] = 42
	if s.Has() {
		t.Fatalf("mutating the copy changed the transform")
	}
}

func TestSwapPreconditions(t *testing.T) {
	tests := []struct {
		name   string
		a1, a2 int
	}{
		{"negative", -1, 0},
		{"w axis", 0, 3},
		{"same axis", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("Set(%d, %d) did not panic", tt.a1, tt.a2)
				}
			}()
			NewSwap().Set(tt.a1, tt.a2)
		})
	}
}

func TestMat4String(t *testing.T) {
	got := Identity().String()
	if !strings.HasPrefix(got, "[1 0 0 0]\n[0 1 0 0]") || strings.Count(got, "\n") != 3 {
		t.Fatalf("String() = %q", got)
	}
}
