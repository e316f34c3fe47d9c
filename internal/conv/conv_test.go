package conv

import "testing"

func TestAppendDigit(t *testing.T) {
	tests := []struct {
		name   string
		n, d   int
		limit  int
		want   int
		wantOK bool
	}{
		{"zero", 0, 0, 1000, 0, true},
		{"first digit", 0, 7, 1000, 7, true},
		{"second digit", 4, 2, 1000, 42, true},
		{"at limit", 100, 0, 1000, 1000, true},
		{"over limit", 100, 1, 1000, 100, false},
		{"bad digit", 1, 10, 1000, 1, false},
		{"negative digit", 1, -1, 1000, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AppendDigit(tt.n, tt.d, tt.limit)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("AppendDigit(%d, %d, %d) = (%d, %v), want (%d, %v)",
					tt.n, tt.d, tt.limit, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDigitValue(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		if got := DigitValue(r); got != int(r-'0') {
			t.Errorf("DigitValue(%q) = %d", r, got)
		}
	}
	for _, r := range []rune{'a', '/', ':', ' ', '٣'} {
		if got := DigitValue(r); got != -1 {
			t.Errorf("DigitValue(%q) = %d, want -1", r, got)
		}
	}
}

func TestIntToRunePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("IntToRune(-1) did not panic")
		}
	}()
	IntToRune(-1)
}
