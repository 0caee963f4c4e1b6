package domain

import "testing"

func TestGameStatus(t *testing.T) {
	cases := []struct {
		active, finished bool
		want             string
	}{
		{false, false, StatusUpcoming},
		{true, false, StatusLive},
		{false, true, StatusFinished},
		{true, true, StatusFinished},
	}
	for _, c := range cases {
		if got := GameStatus(c.active, c.finished); got != c.want {
			t.Errorf("GameStatus(%v, %v) = %q, want %q", c.active, c.finished, got, c.want)
		}
	}
}
