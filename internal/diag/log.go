package diag

// DefaultThreshold is the occurrence count at which a repeated message stops
// being displayed.
const DefaultThreshold = 10

// Record is a distinct message text together with the number of times it was
// reported.
type Record struct {
	Text  string `msgpack:"text"`
	Count uint64 `msgpack:"count"`
}

// Log keeps distinct messages of one severity class in first-seen order and
// counts repeats. Records are never removed.
//
// Log is not safe for concurrent use; callers serialize access.
type Log struct {
	threshold uint64
	items     []Record
	index     map[string]int
}

// NewLog returns an empty Log. A zero threshold selects DefaultThreshold.
func NewLog(threshold uint64) *Log {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return &Log{
		threshold: threshold,
		index:     make(map[string]int),
	}
}

// Record counts one occurrence of text and reports whether it should still
// be displayed. The first occurrence is always displayed; repeats are
// displayed while their count stays below the threshold.
func (l *Log) Record(text string) bool {
	if i, ok := l.index[text]; ok {
		l.items[i].Count++
		return l.items[i].Count < l.threshold
	}
	l.index[text] = len(l.items)
	l.items = append(l.items, Record{Text: text, Count: 1})
	return true
}

// Count returns the number of occurrences recorded for text.
func (l *Log) Count(text string) uint64 {
	if i, ok := l.index[text]; ok {
		return l.items[i].Count
	}
	return 0
}

// Items returns a copy of the records in first-seen order.
func (l *Log) Items() []Record {
	out := make([]Record, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of distinct messages.
func (l *Log) Len() int { return len(l.items) }

// Total returns the sum of all occurrence counts.
func (l *Log) Total() uint64 {
	var n uint64
	for i := range l.items {
		n += l.items[i].Count
	}
	return n
}

// Threshold returns the display threshold of the log.
func (l *Log) Threshold() uint64 { return l.threshold }

// Merge adds counts from records, keeping first-seen order for new texts.
func (l *Log) Merge(records []Record) {
	for _, r := range records {
		if r.Count == 0 {
			continue
		}
		if i, ok := l.index[r.Text]; ok {
			l.items[i].Count += r.Count
			continue
		}
		l.index[r.Text] = len(l.items)
		l.items = append(l.items, r)
	}
}
