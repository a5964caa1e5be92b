// internal/leaderboard/leaderboard.go
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"go-space-odyssey/internal/config"
)

// ScoreEntry is one finished run on the board.
type ScoreEntry struct {
	ID            uuid.UUID `json:"id"`
	PlayerName    string    `json:"player_name"`
	CharacterName string    `json:"character_name"`
	CharacterType string    `json:"character_type"`
	Score         int       `json:"score"`
	LevelReached  int       `json:"level_reached"`
	Timestamp     time.Time `json:"timestamp"`
}

// Leaderboard keeps the top runs, persisted as a JSON file. The zero
// value is unusable; construct with Load.
type Leaderboard struct {
	path    string
	entries []ScoreEntry
}

// Load reads the board from path. A missing file yields an empty
// board; a corrupt file is an error so a bad write never silently
// wipes history.
func Load(path string) (*Leaderboard, error) {
	lb := &Leaderboard{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return lb, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	if err := json.Unmarshal(data, &lb.entries); err != nil {
		return nil, fmt.Errorf("parse leaderboard %s: %w", path, err)
	}
	lb.sortAndTruncate()
	return lb, nil
}

// AddScore inserts a run, re-ranks the board and reports whether the
// run made the cut. Membership is decided after the board is sorted
// and truncated, so a score below the current tenth place is honestly
// reported as off the board.
func (lb *Leaderboard) AddScore(entry ScoreEntry) (bool, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	lb.entries = append(lb.entries, entry)
	lb.sortAndTruncate()

	made := false
	for _, e := range lb.entries {
		if e.ID == entry.ID {
			made = true
			break
		}
	}
	if err := lb.save(); err != nil {
		return made, err
	}
	return made, nil
}

// GetTop returns up to n entries, best first. The returned slice is a
// copy.
func (lb *Leaderboard) GetTop(n int) []ScoreEntry {
	if n < 0 {
		n = 0
	}
	if n > len(lb.entries) {
		n = len(lb.entries)
	}
	out := make([]ScoreEntry, n)
	copy(out, lb.entries[:n])
	return out
}

// Qualifies reports whether a score would enter the board right now.
func (lb *Leaderboard) Qualifies(score int) bool {
	if len(lb.entries) < config.LeaderboardSize {
		return true
	}
	return score > lb.entries[len(lb.entries)-1].Score
}

func (lb *Leaderboard) sortAndTruncate() {
	// Stable keeps insertion order among equal scores, so an earlier
	// run outranks a later tie.
	sort.SliceStable(lb.entries, func(i, j int) bool {
		return lb.entries[i].Score > lb.entries[j].Score
	})
	if len(lb.entries) > config.LeaderboardSize {
		lb.entries = lb.entries[:config.LeaderboardSize]
	}
}

func (lb *Leaderboard) save() error {
	data, err := json.MarshalIndent(lb.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if dir := filepath.Dir(lb.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create leaderboard dir: %w", err)
		}
	}
	if err := os.WriteFile(lb.path, data, 0o644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}
