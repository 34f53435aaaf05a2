package leaderboard

import (
	"math"
	"sort"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Options steers Build. HcpIndexByUser/HolesPlayedByUser feed the
// handicap-based net fallback used when no row carried an explicit net.
type Options struct {
	Format            Format
	HcpIndexByUser    map[string]float64
	HolesPlayedByUser map[string]int
	// TotalHoles is the round length the fallback scales handicaps to.
	// Zero defaults to 18.
	TotalHoles int
}

// Entry is one ranked leaderboard line: a plain serializable projection
// recomputed on every call, with no persisted identity.
type Entry struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Gross           float64 `json:"gross"`
	Net             float64 `json:"net"`
	Holes           int     `json:"holes"`
	Stableford      float64 `json:"stableford,omitempty"`
	HasStableford   bool    `json:"hasStableford"`
	PlayingHandicap *int    `json:"playing_handicap,omitempty"`
	NetFromRows     bool    `json:"netFromRows"`

	sortAt    time.Time
	hasSortAt bool
}

// Build aggregates rows and returns the leaderboard ranked for the
// requested format. Names resolve through the names map (NFC-normalized,
// so composed and decomposed spellings of the same name match the feed),
// falling back to the raw user id.
func Build(rows []ScoreRow, names map[string]string, opts Options) []Entry {
	aggs := Aggregate(rows)
	totalHoles := opts.TotalHoles
	if totalHoles <= 0 {
		totalHoles = 18
	}

	entries := make([]Entry, 0, len(aggs))
	for _, agg := range aggs {
		e := Entry{
			UserID:          agg.UserID,
			Name:            resolveName(names, agg.UserID),
			Gross:           agg.Gross,
			Net:             agg.Net,
			Holes:           agg.Holes,
			Stableford:      agg.Stableford,
			HasStableford:   agg.HasStableford,
			PlayingHandicap: agg.PlayingHandicap,
			NetFromRows:     agg.NetFromRows,
		}
		if !agg.NetFromRows {
			e.Net = fallbackNet(agg, opts, totalHoles)
		}
		if agg.hasUnderPar {
			e.sortAt, e.hasSortAt = agg.firstUnderParAt, true
		} else if agg.hasTimestamp {
			e.sortAt, e.hasSortAt = agg.lastRowAt, true
		}
		if opts.Format == FormatStableford && e.HasStableford {
			// Points-ranked entries drop the handicap; entries without
			// stableford data keep theirs.
			e.PlayingHandicap = nil
		}
		entries = append(entries, e)
	}

	less := comparator(opts.Format)
	sort.SliceStable(entries, func(i, j int) bool {
		return less(&entries[i], &entries[j])
	})
	return entries
}

// fallbackNet derives a net total from the player's handicap index,
// scaled proportionally to the holes they have played:
// gross - floor(index * holesPlayed/totalHoles).
func fallbackNet(agg *PlayerAggregate, opts Options, totalHoles int) float64 {
	index, ok := opts.HcpIndexByUser[agg.UserID]
	if !ok || math.IsNaN(index) {
		return agg.Gross
	}
	played := agg.Holes
	if n, ok := opts.HolesPlayedByUser[agg.UserID]; ok && n > 0 {
		played = n
	}
	return agg.Gross - math.Floor(index*float64(played)/float64(totalHoles))
}

// comparator returns the explicit multi-key ordering for a format.
// Every tie-break is spelled out here; nothing relies on sort stability.
func comparator(format Format) func(a, b *Entry) bool {
	if format == FormatStableford {
		return func(a, b *Entry) bool {
			if a.Stableford != b.Stableford {
				return a.Stableford > b.Stableford
			}
			if a.Gross != b.Gross {
				return a.Gross < b.Gross
			}
			return earlier(a, b)
		}
	}
	return func(a, b *Entry) bool {
		if a.Net != b.Net {
			return a.Net < b.Net
		}
		if a.Gross != b.Gross {
			return a.Gross < b.Gross
		}
		return earlier(a, b)
	}
}

// earlier is the final tie-break: the earlier qualifying timestamp wins.
// Entries without any timestamp rank after those with one.
func earlier(a, b *Entry) bool {
	switch {
	case a.hasSortAt && b.hasSortAt:
		return a.sortAt.Before(b.sortAt)
	case a.hasSortAt:
		return true
	default:
		return false
	}
}

func resolveName(names map[string]string, userID string) string {
	if name, ok := names[userID]; ok && name != "" {
		return norm.NFC.String(name)
	}
	return userID
}
