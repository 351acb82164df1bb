package celestial

import "testing"

func TestHourClassifiersStayIndependent(t *testing.T) {
	tests := []struct {
		hour    int
		sun     bool
		daytime bool
	}{
		{0, false, false},
		{5, false, false},
		{6, true, false}, // sunrise renders a sun, copy still reads night
		{7, true, true},
		{12, true, true},
		{18, true, true},
		{19, false, false},
		{23, false, false},
	}

	for _, tt := range tests {
		if got := IsSunHour(tt.hour); got != tt.sun {
			t.Errorf("IsSunHour(%d) = %v, want %v", tt.hour, got, tt.sun)
		}
		if got := IsDaytime(tt.hour); got != tt.daytime {
			t.Errorf("IsDaytime(%d) = %v, want %v", tt.hour, got, tt.daytime)
		}
	}
}

func TestKindAndWindowString(t *testing.T) {
	if KindSun.String() != "sun" || KindMoon.String() != "moon" || Kind(9).String() != "unknown" {
		t.Error("unexpected Kind names")
	}
	if WindowMoonset.String() != "moonset" || Window(42).String() != "unknown" {
		t.Error("unexpected Window names")
	}
}
