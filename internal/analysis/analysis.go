// Package analysis provides the presentation-facing derivations over the room
// collection: display ordering, cleaning durations and aggregate statistics.
// Everything here is a pure function of its input and is recomputed on every
// call, never cached.
package analysis

import (
	"math"
	"sort"
	"strconv"
	"time"

	"vitre/backend/internal/models"
)

// SortRooms returns a new slice in display order: descending priority rank,
// ties broken by ascending lexicographic comparison of the room number.
func SortRooms(rooms []models.Room) []models.Room {
	sorted := make([]models.Room, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority.Rank() != sorted[j].Priority.Rank() {
			return sorted[i].Priority.Rank() > sorted[j].Priority.Rank()
		}
		return sorted[i].Number < sorted[j].Number
	})
	return sorted
}

// CleaningDuration returns the elapsed whole minutes between the room's start
// and completion stamps. ok is false when either stamp is missing, including
// the room marked Done without ever passing through In Progress; the duration
// is undefined in that case, not zero.
func CleaningDuration(r models.Room) (minutes int, ok bool) {
	if r.StartedAt == nil || r.CompletedAt == nil {
		return 0, false
	}
	return int(math.Round(float64(*r.CompletedAt-*r.StartedAt) / 60000.0)), true
}

// ComputeStats derives the aggregate counts and per-user performance in a
// single pass over the collection. A room counts toward a user's performance
// when it is Done and attributed; minutes accumulate only for rooms with a
// defined duration.
func ComputeStats(rooms []models.Room) models.DailyStats {
	stats := models.DailyStats{
		TotalRooms:      len(rooms),
		UserPerformance: map[string]models.UserPerformance{},
	}
	for _, r := range rooms {
		switch r.Status {
		case models.StatusDone:
			stats.CleanedRooms++
			if r.AssignedTo != nil {
				perf := stats.UserPerformance[*r.AssignedTo]
				perf.Count++
				if minutes, ok := CleaningDuration(r); ok {
					perf.MinutesWorked += minutes
				}
				stats.UserPerformance[*r.AssignedTo] = perf
			}
		case models.StatusInProgress:
			stats.InProgressRooms++
		}
	}
	stats.NotCleanedRooms = stats.TotalRooms - stats.CleanedRooms - stats.InProgressRooms
	return stats
}

// ReportHeader is the column layout of the daily report export.
var ReportHeader = []string{"Room", "Priority", "Status", "User", "Start", "End", "Duration"}

// ReportRows renders one report row per room in display order. Missing values
// render as "-"; times render as wall-clock HH:MM in the given location.
func ReportRows(rooms []models.Room, loc *time.Location) [][]string {
	if loc == nil {
		loc = time.Local
	}
	rows := make([][]string, 0, len(rooms))
	for _, r := range SortRooms(rooms) {
		rows = append(rows, []string{
			r.Number,
			string(r.Priority),
			string(r.Status),
			orDash(r.AssignedTo),
			clockTime(r.StartedAt, loc),
			clockTime(r.CompletedAt, loc),
			durationCell(r),
		})
	}
	return rows
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func clockTime(ms *int64, loc *time.Location) string {
	if ms == nil {
		return "-"
	}
	return time.UnixMilli(*ms).In(loc).Format("15:04")
}

func durationCell(r models.Room) string {
	minutes, ok := CleaningDuration(r)
	if !ok {
		return "-"
	}
	return strconv.Itoa(minutes) + "m"
}
