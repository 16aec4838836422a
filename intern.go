package minon

import "github.com/puzpuzpuz/xsync/v4"

// nameCache deduplicates record name strings across parses. Names
// repeat heavily in record streams, and interning keeps one shared
// string per distinct name instead of one allocation per decoded
// record. Using a concurrent map lets independent parses share the
// cache without synchronization.
var nameCache = xsync.NewMap[string, string]()

// maxInternedNames caps the cache so inputs with unbounded distinct
// names cannot grow it without limit. Past the cap new names are
// allocated per record instead of being cached.
const maxInternedNames = 1 << 14

// internName returns a shared string for the given name bytes.
func internName(b []byte) string {
	if s, ok := nameCache.Load(string(b)); ok {
		return s
	}
	s := string(b)
	if nameCache.Size() >= maxInternedNames {
		return s
	}
	actual, _ := nameCache.LoadOrStore(s, s)
	return actual
}
