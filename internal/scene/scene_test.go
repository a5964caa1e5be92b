package scene

import (
	"testing"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/utils"
)

func TestGenerateRegularLevel(t *testing.T) {
	g := NewGenerator(utils.NewPRNGService(7))
	s := g.Generate(1)

	if s.BossLevel {
		t.Fatal("level 1 flagged as a boss level")
	}
	if s.Boss != nil {
		t.Fatal("regular level spawned a boss")
	}
	if want := defs.EnemyCount(1, false); len(s.Enemies) != want {
		t.Errorf("enemy count = %d, want %d", len(s.Enemies), want)
	}
	if want := defs.TreasureCount(1); len(s.Treasures) != want {
		t.Errorf("treasure count = %d, want %d", len(s.Treasures), want)
	}
	if want := defs.TrapCount(1); len(s.Traps) != want {
		t.Errorf("trap count = %d, want %d", len(s.Traps), want)
	}
	if want := defs.PowerUpCount(1, false) + defs.HazardCount(1, false); len(s.Pickups) != want {
		t.Errorf("pickup count = %d, want %d", len(s.Pickups), want)
	}
}

func TestGenerateBossLevel(t *testing.T) {
	g := NewGenerator(utils.NewPRNGService(7))
	s := g.Generate(2)

	if !s.BossLevel {
		t.Fatal("level 2 not flagged as a boss level")
	}
	if s.Boss == nil {
		t.Fatal("boss level spawned no boss")
	}
	if want := defs.EnemyCount(2, true); len(s.Enemies) != want {
		t.Errorf("enemy count = %d, want halved %d", len(s.Enemies), want)
	}
}

func TestSpawnsRespectBounds(t *testing.T) {
	g := NewGenerator(utils.NewPRNGService(12))
	for level := 1; level <= 6; level++ {
		s := g.Generate(level)
		for _, e := range s.Enemies {
			if e.Pos.X < enemyMargin || e.Pos.X > config.ScreenWidth-enemyMargin {
				t.Errorf("level %d: enemy at X=%v outside margins", level, e.Pos.X)
			}
			if e.Pos.DistanceTo(s.PlayerStart) < safeRadius {
				t.Errorf("level %d: enemy spawned %v from player start, want at least %v",
					level, e.Pos.DistanceTo(s.PlayerStart), safeRadius)
			}
		}
		for _, m := range s.Meteors {
			if m.Pos.X < meteorMargin || m.Pos.X > config.ScreenWidth-meteorMargin {
				t.Errorf("level %d: meteor at X=%v outside margins", level, m.Pos.X)
			}
		}
	}
}

func TestTreasureValueRange(t *testing.T) {
	g := NewGenerator(utils.NewPRNGService(3))
	for level := 1; level <= 8; level++ {
		for _, tr := range g.Generate(level).Treasures {
			if tr.Value < 10 || tr.Value > 120 {
				t.Fatalf("level %d: treasure value = %d, want within [10, 120]", level, tr.Value)
			}
		}
	}
}

func TestSeededGenerationIsDeterministic(t *testing.T) {
	a := NewGenerator(utils.NewPRNGService(42)).Generate(3)
	b := NewGenerator(utils.NewPRNGService(42)).Generate(3)

	if len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("enemy counts differ: %d vs %d", len(a.Enemies), len(b.Enemies))
	}
	for i := range a.Enemies {
		if a.Enemies[i].Pos != b.Enemies[i].Pos || a.Enemies[i].Kind != b.Enemies[i].Kind {
			t.Fatalf("enemy %d differs between identically seeded runs", i)
		}
	}
	for i := range a.Treasures {
		if a.Treasures[i].Value != b.Treasures[i].Value {
			t.Fatalf("treasure %d value differs between identically seeded runs", i)
		}
	}
}

func TestGenerateIsFreshEachCall(t *testing.T) {
	g := NewGenerator(utils.NewPRNGService(5))
	first := g.Generate(1)
	for _, e := range first.Enemies {
		e.Deactivate()
	}
	second := g.Generate(1)
	for i, e := range second.Enemies {
		if !e.Active {
			t.Fatalf("regenerated enemy %d inherited dead state", i)
		}
	}
}
