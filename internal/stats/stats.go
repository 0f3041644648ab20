// Package stats computes per-game play statistics from full snapshots of
// the games and sessions collections. Everything here is pure: callers
// load the data, these functions only fold it.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"playShelfAPI/internal/types/game"
	"playShelfAPI/internal/types/platform"
	"playShelfAPI/internal/types/session"
)

// UnknownGameName labels sessions whose game record no longer exists.
// They still count toward the stats instead of being dropped.
const UnknownGameName = "Unknown Game"

// GameStat accumulates hours and cost for a single game name. It is
// rebuilt from scratch on every run and never persisted.
type GameStat struct {
	Hours         float64 `json:"hours"`
	Count         int     `json:"count"`
	Cost          float64 `json:"cost"`
	HistoricHours float64 `json:"historic_hours"`
}

// HourlyRate renders cost divided by accumulated hours to two decimals.
// A game that cost nothing has no rate and renders as a dash.
func (s GameStat) HourlyRate() string {
	if s.Cost == 0 {
		return "-"
	}
	return strconv.FormatFloat(s.Cost/s.Hours, 'f', 2, 64)
}

type Totals struct {
	GameCount  int     `json:"game_count"`
	TotalHours float64 `json:"total_hours"`
	TotalCost  float64 `json:"total_cost"`
}

// Row is one display line of the stats table.
type Row struct {
	GameName     string  `json:"game_name"`
	Hours        float64 `json:"hours"`
	HoursDisplay string  `json:"hours_display"`
	Count        int     `json:"count"`
	HourlyRate   string  `json:"hourly_rate"`
}

// MergeSessionsWithGames attaches each session's game name via an id
// lookup over the full game set. Sessions pointing at a deleted game get
// the placeholder name rather than an error.
func MergeSessionsWithGames(games []game.Game, sessions []session.Session) []session.WithGame {
	names := make(map[string]string, len(games))
	for _, g := range games {
		names[g.ID] = g.Name
	}

	merged := make([]session.WithGame, 0, len(sessions))
	for _, s := range sessions {
		name, ok := names[s.GameID]
		if !ok {
			name = UnknownGameName
		}
		merged = append(merged, session.WithGame{
			Session:  s,
			GameName: name,
			Duration: FormatDuration(s.StartTime, s.EndTime),
		})
	}
	return merged
}

// MergeGamesWithPlatforms attaches each game's platform name. Unresolved
// platform ids leave the name empty.
func MergeGamesWithPlatforms(games []game.Game, platforms []platform.Platform) []game.WithPlatform {
	names := make(map[string]string, len(platforms))
	for _, p := range platforms {
		names[p.ID] = p.Name
	}

	merged := make([]game.WithPlatform, 0, len(games))
	for _, g := range games {
		merged = append(merged, game.WithPlatform{
			Game:         g,
			PlatformName: names[g.PlatformID],
		})
	}
	return merged
}

// FilterByRange keeps sessions whose start time falls within the
// inclusive [start, end] bounds. A nil bound imposes no constraint.
// Only the start time is compared: a session running past end is still
// included as long as it started in range.
func FilterByRange(sessions []session.WithGame, start, end *time.Time) []session.WithGame {
	filtered := make([]session.WithGame, 0, len(sessions))
	for _, s := range sessions {
		if start != nil && s.StartTime.Before(*start) {
			continue
		}
		if end != nil && s.StartTime.After(*end) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// Aggregate folds the filtered sessions into per-game stats.
//
// Stats are keyed by game name, not id: two game records sharing a name
// collapse into a single entry. Session durations are taken as-is, so a
// session whose end precedes its start contributes negative hours.
// Every game record stamps its cost onto its entry; when includeHistoric
// is set, its historic hours are added exactly once per run. Entries
// left with zero or negative hours are dropped.
func Aggregate(sessions []session.WithGame, games []game.Game, includeHistoric bool) map[string]GameStat {
	stats := make(map[string]GameStat)

	for _, s := range sessions {
		st := stats[s.GameName]
		st.Hours += s.EndTime.Sub(s.StartTime).Hours()
		st.Count++
		stats[s.GameName] = st
	}

	for _, g := range games {
		st := stats[g.Name]
		if includeHistoric {
			st.HistoricHours = g.HistoricHours
			st.Hours += st.HistoricHours
		}
		st.Cost = g.Cost
		stats[g.Name] = st
	}

	for name, st := range stats {
		if st.Hours <= 0 {
			delete(stats, name)
		}
	}
	return stats
}

// Summarize computes the header totals over an aggregated result.
func Summarize(stats map[string]GameStat) Totals {
	totals := Totals{GameCount: len(stats)}
	for _, st := range stats {
		totals.TotalHours += st.Hours
		totals.TotalCost += st.Cost
	}
	return totals
}

// Rows flattens an aggregated result into display rows sorted
// alphabetically by game name.
func Rows(stats map[string]GameStat) []Row {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		st := stats[name]
		rows = append(rows, Row{
			GameName:     name,
			Hours:        st.Hours,
			HoursDisplay: FormatHours(st.Hours),
			Count:        st.Count,
			HourlyRate:   st.HourlyRate(),
		})
	}
	return rows
}

// FormatHours renders fractional hours as HH:MM. The minutes component
// is rounded, so values just under a whole hour can render as ":60"
// (e.g. 1.9999 -> "01:60").
func FormatHours(hours float64) string {
	whole := math.Floor(hours)
	minutes := math.Round((hours - whole) * 60)
	return fmt.Sprintf("%02.0f:%02.0f", whole, minutes)
}

// FormatDuration renders the span between two instants as HH:MM, floored
// to whole minutes.
func FormatDuration(start, end time.Time) string {
	totalMinutes := int(math.Floor(end.Sub(start).Minutes()))
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
