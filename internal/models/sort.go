package models

import (
	"sort"
	"time"
)

// Layouts accepted for backend timestamps. Spring serializes LocalDateTime without a zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a backend timestamp. Unparseable values yield the zero time.
func ParseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortPostsNewestFirst orders posts by CreatedAt, descending.
func SortPostsNewestFirst(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return ParseTimestamp(posts[i].CreatedAt).After(ParseTimestamp(posts[j].CreatedAt))
	})
}

// SortMessagesOldestFirst orders a conversation by SentAt, ascending.
func SortMessagesOldestFirst(msgs []Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return ParseTimestamp(msgs[i].SentAt).Before(ParseTimestamp(msgs[j].SentAt))
	})
}

// SortNotificationsNewestFirst orders notifications by CreatedAt, descending.
func SortNotificationsNewestFirst(ns []Notification) {
	sort.SliceStable(ns, func(i, j int) bool {
		return ParseTimestamp(ns[i].CreatedAt).After(ParseTimestamp(ns[j].CreatedAt))
	})
}
