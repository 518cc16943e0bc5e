package tokens

// Entry is a single key/token pair used to build a Table.
type Entry struct {
	Key   string
	Value Token
}

// Table is an immutable, insertion-ordered collection of tokens.
type Table struct {
	keys   []string
	values map[string]Token
}

// NewTable builds a Table from entries. A repeated key keeps its first
// position and takes the last value.
func NewTable(entries ...Entry) Table {
	t := Table{values: make(map[string]Token, len(entries))}
	for _, entry := range entries {
		if _, exists := t.values[entry.Key]; !exists {
			t.keys = append(t.keys, entry.Key)
		}
		t.values[entry.Key] = entry.Value
	}
	return t
}

// Get returns the token stored under key.
func (t Table) Get(key string) (Token, bool) {
	token, ok := t.values[key]
	return token, ok
}

// Keys returns the table's keys in insertion order.
func (t Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len reports the number of entries.
func (t Table) Len() int {
	return len(t.keys)
}

// Each calls fn for every entry in insertion order.
func (t Table) Each(fn func(key string, token Token)) {
	for _, key := range t.keys {
		fn(key, t.values[key])
	}
}

func (t Table) group() *Group {
	g := newGroup()
	t.Each(func(key string, token Token) {
		g.set(key, token)
	})
	return g
}

func str(key, value string) Entry {
	return Entry{Key: key, Value: String(value)}
}

func num(key string, value float64) Entry {
	return Entry{Key: key, Value: Number(value)}
}
