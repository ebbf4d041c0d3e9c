package sdui

// Record is one item of the host's ordered domain collection, a service job
// on a technician's route in the reference app. The engine only ever needs a
// stable identity; field access goes through the Context's accessor table.
type Record interface {
	RecordID() string
}

// RecordChange describes a modification to a RecordList.
type RecordChange struct {
	Type   ChangeType
	Index  int
	To     int    // for ChangeMove, the destination index
	Record Record // for Add/Update/Move, the record involved
}

type ChangeType int

const (
	ChangeAdd ChangeType = iota
	ChangeUpdate
	ChangeRemove
	ChangeMove
	ChangeClear
	ChangeSet // full replacement
)

// RecordList is an ordered record collection that notifies on changes. It is
// the host's re-render trigger: list nodes iterate it, and hosts subscribe to
// know when a render pass is due. Not safe for concurrent use; hosts mutate
// it from their update loop.
type RecordList struct {
	items     []Record
	listeners []func(RecordChange)
}

// NewRecordList creates an empty record list.
func NewRecordList() *RecordList {
	return &RecordList{}
}

// Records returns all records in order.
func (l *RecordList) Records() []Record {
	return l.items
}

// Len returns the number of records.
func (l *RecordList) Len() int {
	return len(l.items)
}

// At returns the record at index i, or nil if out of bounds.
func (l *RecordList) At(i int) Record {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// IndexOf returns the index of the record with the given id, or -1.
func (l *RecordList) IndexOf(id string) int {
	for i, r := range l.items {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// Set replaces all records.
func (l *RecordList) Set(items []Record) *RecordList {
	l.items = items
	l.notify(RecordChange{Type: ChangeSet})
	return l
}

// Add appends a record.
func (l *RecordList) Add(r Record) *RecordList {
	idx := len(l.items)
	l.items = append(l.items, r)
	l.notify(RecordChange{Type: ChangeAdd, Index: idx, Record: r})
	return l
}

// Insert inserts a record at index i, clamping i into range.
func (l *RecordList) Insert(i int, r Record) *RecordList {
	if i < 0 {
		i = 0
	}
	if i > len(l.items) {
		i = len(l.items)
	}
	l.items = append(l.items[:i], append([]Record{r}, l.items[i:]...)...)
	l.notify(RecordChange{Type: ChangeAdd, Index: i, Record: r})
	return l
}

// RemoveAt removes the record at index i.
func (l *RecordList) RemoveAt(i int) *RecordList {
	if i < 0 || i >= len(l.items) {
		return l
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.notify(RecordChange{Type: ChangeRemove, Index: i})
	return l
}

// Update runs fn against the record at index i and notifies listeners that
// it changed. The record itself is mutated by the host inside fn.
func (l *RecordList) Update(i int, fn func(Record)) *RecordList {
	if i < 0 || i >= len(l.items) {
		return l
	}
	fn(l.items[i])
	l.notify(RecordChange{Type: ChangeUpdate, Index: i, Record: l.items[i]})
	return l
}

// Move relocates the record at from to position to, shifting the records in
// between. Out-of-range indices are a no-op.
func (l *RecordList) Move(from, to int) *RecordList {
	if from < 0 || from >= len(l.items) || to < 0 || to >= len(l.items) || from == to {
		return l
	}
	r := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	l.items = append(l.items[:to], append([]Record{r}, l.items[to:]...)...)
	l.notify(RecordChange{Type: ChangeMove, Index: from, To: to, Record: r})
	return l
}

// Clear removes all records.
func (l *RecordList) Clear() *RecordList {
	l.items = l.items[:0]
	l.notify(RecordChange{Type: ChangeClear})
	return l
}

// Subscribe adds a change listener and returns an unsubscribe function.
func (l *RecordList) Subscribe(fn func(RecordChange)) func() {
	l.listeners = append(l.listeners, fn)
	idx := len(l.listeners) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		l.listeners[idx] = nil
	}
}

func (l *RecordList) notify(c RecordChange) {
	for _, fn := range l.listeners {
		if fn != nil {
			fn(c)
		}
	}
}
