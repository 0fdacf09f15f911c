package endpoint

import "testing"

func TestEqual(t *testing.T) {
	a := New("1.2.3.4", 5000)
	b := New("1.2.3.4", 5000)
	if !a.Equal(b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}

	cases := []Endpoint{
		New("1.2.3.4", 5001),
		New("1.2.3.5", 5000),
		New("", 5000),
	}
	for _, c := range cases {
		if a.Equal(c) {
			t.Errorf("expected %v to not equal %v", a, c)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		ep   Endpoint
		want bool
	}{
		{New("1.2.3.4", 1), true},
		{New("1.2.3.4", 65535), true},
		{New("", 5000), false},
		{New("1.2.3.4", 0), false},
		{New("1.2.3.4", 65536), false},
		{New("1.2.3.4", -1), false},
	}
	for _, tt := range tests {
		if got := tt.ep.Valid(); got != tt.want {
			t.Errorf("Endpoint(%q,%d).Valid() = %v, want %v", tt.ep.Host, tt.ep.Port, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	ep := New("1.2.3.4", 5000)
	if got, want := ep.String(), "1.2.3.4:5000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
