package domain

// Metadata is an insertion-ordered string-to-string map. Keys iterate in
// the order of first insertion; setting an existing key overwrites its
// value without changing its position.
type Metadata struct {
	keys   []string
	values map[string]string
}

// NewMetadata returns an empty metadata map.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

// Set stores a key/value pair, last write wins for the value.
func (m *Metadata) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in first-insertion order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// Clone returns an independent copy.
func (m *Metadata) Clone() *Metadata {
	out := NewMetadata()
	for _, k := range m.keys {
		out.Set(k, m.values[k])
	}
	return out
}

// NamedTables is an insertion-ordered mapping of source name to table,
// used to feed the combiner in a deterministic order.
type NamedTables struct {
	names  []string
	tables map[string]Table
}

// NewNamedTables returns an empty collection.
func NewNamedTables() *NamedTables {
	return &NamedTables{tables: make(map[string]Table)}
}

// Set stores a table under name, keeping first-insertion order.
func (n *NamedTables) Set(name string, t Table) {
	if _, ok := n.tables[name]; !ok {
		n.names = append(n.names, name)
	}
	n.tables[name] = t
}

// Get returns the table for name and whether it is present.
func (n *NamedTables) Get(name string) (Table, bool) {
	t, ok := n.tables[name]
	return t, ok
}

// Names returns source names in insertion order.
func (n *NamedTables) Names() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

// Len returns the number of tables.
func (n *NamedTables) Len() int {
	return len(n.names)
}
