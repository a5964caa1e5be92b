// internal/defs/levels.go
package defs

// Per-level population tables, indexed by level-1. Boss levels halve
// the regular enemy count (min 1); the smaller object counts follow
// capped growth curves instead of tables.
var (
	EnemiesPerLevel = []int{
		6, 8, 10, 12, 15, 18, 20, 22, 25, 30,
		32, 34, 36, 38, 40, 42, 44, 46,
	}
	TreasuresPerLevel = []int{
		5, 6, 7, 8, 10, 12, 14, 16, 18, 20,
		21, 22, 23, 24, 25, 26, 27, 28,
	}
	TrapsPerLevel = []int{
		4, 5, 6, 7, 8, 10, 12, 14, 16, 18,
		19, 20, 21, 22, 23, 24, 25, 26,
	}
)

// SectorDefinition names the stellar body a level takes place at.
// Purely cosmetic: it feeds the render snapshot, never gameplay.
type SectorDefinition struct {
	Name   string
	Theme  string
	BG     [3]uint8
	Accent [3]uint8
}

var Sectors = []SectorDefinition{
	{"Mercurio", "hot", [3]uint8{160, 100, 60}, [3]uint8{220, 140, 80}},
	{"Venus", "hot", [3]uint8{180, 120, 40}, [3]uint8{240, 180, 80}},
	{"Marte", "desert", [3]uint8{160, 80, 40}, [3]uint8{220, 120, 60}},
	{"Júpiter", "gas", [3]uint8{120, 100, 160}, [3]uint8{180, 140, 220}},
	{"Saturno", "gas", [3]uint8{180, 160, 100}, [3]uint8{240, 220, 140}},
	{"Neptuno", "cold", [3]uint8{60, 120, 180}, [3]uint8{100, 160, 240}},
	{"Plutón", "cold", [3]uint8{80, 80, 120}, [3]uint8{120, 120, 180}},
	{"Betelgeuse", "stellar", [3]uint8{180, 60, 60}, [3]uint8{240, 100, 100}},
	{"Sirio", "stellar", [3]uint8{60, 100, 180}, [3]uint8{100, 140, 240}},
	{"Vega", "stellar", [3]uint8{160, 160, 180}, [3]uint8{220, 220, 240}},
}

// SectorFor returns the sector for a level, cycling past the table end
// so the extended tier always has a theme.
func SectorFor(level int) SectorDefinition {
	if level < 1 {
		level = 1
	}
	return Sectors[(level-1)%len(Sectors)]
}

func tableAt(table []int, level int) int {
	if level < 1 {
		level = 1
	}
	if level > len(table) {
		return table[len(table)-1]
	}
	return table[level-1]
}

// EnemyCount returns the regular-enemy count for a level. Boss levels
// get half the table value, rounded down, at least 1.
func EnemyCount(level int, bossLevel bool) int {
	n := tableAt(EnemiesPerLevel, level)
	if bossLevel {
		n /= 2
		if n < 1 {
			n = 1
		}
	}
	return n
}

func TreasureCount(level int) int { return tableAt(TreasuresPerLevel, level) }
func TrapCount(level int) int     { return tableAt(TrapsPerLevel, level) }

// The smaller object kinds grow slowly with level and are capped to
// bound per-frame cost.
func MeteorCount(level int, bossLevel bool) int {
	if bossLevel {
		return minInt(3, 1+level/3)
	}
	return minInt(4, 2+level/2)
}

func PowerUpCount(level int, bossLevel bool) int {
	if bossLevel {
		return minInt(3, 1+level/4)
	}
	return minInt(4, 2+level/3)
}

func HazardCount(level int, bossLevel bool) int {
	if bossLevel {
		return minInt(2, 1+level/5)
	}
	return minInt(3, 1+level/4)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
