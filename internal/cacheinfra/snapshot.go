package cacheinfra

import (
	"time"

	"github.com/goliatone/go-apimo/catalog"
)

// snapshot is the complete content of one (catalog, locale) key at fetch time.
type snapshot struct {
	Timestamp int64                     `json:"timestamp" msgpack:"timestamp"`
	Entries   map[int]catalog.EntryName `json:"cache" msgpack:"cache"`
}

func newSnapshot(now time.Time, entries []catalog.Entry) snapshot {
	s := snapshot{
		Timestamp: now.UnixMilli(),
		Entries:   make(map[int]catalog.EntryName, len(entries)),
	}
	for _, e := range entries {
		s.Entries[e.ID] = e.EntryName()
	}
	return s
}

// expired reports whether the snapshot is older than window at now.
func (s snapshot) expired(now time.Time, window time.Duration) bool {
	return expiredAt(s.Timestamp, now, window)
}

func (s snapshot) lookup(id int) *catalog.EntryName {
	name, ok := s.Entries[id]
	if !ok {
		return nil
	}
	return &name
}

func expiredAt(timestampMs int64, now time.Time, window time.Duration) bool {
	return timestampMs+window.Milliseconds() < now.UnixMilli()
}

// storeKey builds the composite key used by keyed backends.
func storeKey(prefix string, name catalog.Name, locale catalog.Locale) string {
	return prefix + name.String() + "." + locale.String()
}
