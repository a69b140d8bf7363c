package engine

import (
	"testing"
	"time"
)

func TestHitWhileInvulnerable(t *testing.T) {
	s := PlayerState{Lives: 3}

	res := s.Hit(120)
	if !res.Applied || res.Lethal {
		t.Fatalf("first hit = %+v, want applied and not lethal", res)
	}
	if s.Lives != 2 || !s.Invulnerable || s.InvulnerableTicks != 120 {
		t.Fatalf("after hit: %+v", s)
	}

	s.tickInvulnerability()
	res = s.Hit(120)
	if res.Applied {
		t.Error("hit applied while invulnerable")
	}
	if s.Lives != 2 || s.InvulnerableTicks != 119 {
		t.Errorf("invulnerable hit changed state: %+v", s)
	}
}

func TestHitLethal(t *testing.T) {
	s := PlayerState{Lives: 1}
	res := s.Hit(120)
	if !res.Lethal || s.Lives != 0 {
		t.Errorf("hit = %+v lives = %d, want lethal and 0", res, s.Lives)
	}
}

func TestInvulnerabilityExpires(t *testing.T) {
	s := PlayerState{Lives: 3}
	s.Hit(3)
	for range 3 {
		s.tickInvulnerability()
	}
	if s.Invulnerable || s.InvulnerableTicks != 0 {
		t.Errorf("still invulnerable: %+v", s)
	}
	if !s.Hit(3).Applied {
		t.Error("hit not applied after expiry")
	}
}

func TestCanShoot(t *testing.T) {
	cooldown := 500 * time.Millisecond
	s := PlayerState{}

	if !s.CanShoot(0, cooldown) {
		t.Fatal("first shot refused")
	}
	s.LastShot, s.HasShot = 0, true

	tests := []struct {
		now  time.Duration
		want bool
	}{
		{100 * time.Millisecond, false},
		{500 * time.Millisecond, false},
		{501 * time.Millisecond, true},
	}
	for _, tt := range tests {
		if got := s.CanShoot(tt.now, cooldown); got != tt.want {
			t.Errorf("CanShoot(%s) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestDimmed(t *testing.T) {
	s := PlayerState{Invulnerable: true}
	tests := []struct {
		ticks int
		want  bool
	}{
		{120, true},
		{119, false},
		{115, false},
		{114, true},
		{110, true},
	}
	for _, tt := range tests {
		s.InvulnerableTicks = tt.ticks
		if got := s.Dimmed(10); got != tt.want {
			t.Errorf("Dimmed at %d = %v, want %v", tt.ticks, got, tt.want)
		}
	}

	s.Invulnerable = false
	if s.Dimmed(10) {
		t.Error("dimmed while vulnerable")
	}
}
