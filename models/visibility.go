// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"sort"
	"time"
)

// WasPublishedRecently reports whether PubDate lies in (now-24h, now].
// A question dated even one second after now is not recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return now.Add(-RecentWindow).Before(q.PubDate) && !q.PubDate.After(now)
}

// IsVisibleInListing reports whether the question may appear on the index page
func (q Question) IsVisibleInListing(now time.Time) bool {
	return !q.PubDate.After(now) && len(q.Choices) > 0
}

// IsAccessibleDetail reports whether the detail and results pages may be
// shown. Questions without choices stay reachable by direct link.
func (q Question) IsAccessibleDetail(now time.Time) bool {
	return !q.PubDate.After(now)
}

// SortForListing orders questions most recent first, ties by ID ascending
func SortForListing(questions []Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		if !questions[i].PubDate.Equal(questions[j].PubDate) {
			return questions[i].PubDate.After(questions[j].PubDate)
		}
		return questions[i].ID < questions[j].ID
	})
}

// FilterListing keeps listing-visible questions, sorts them and truncates
// to limit. A limit <= 0 means no limit.
func FilterListing(questions []Question, now time.Time, limit int) []Question {
	visible := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.IsVisibleInListing(now) {
			visible = append(visible, q)
		}
	}

	SortForListing(visible)

	if limit > 0 && len(visible) > limit {
		visible = visible[:limit]
	}
	return visible
}
