package payload

// Field is a single key/value pair of a Mapping
type Field struct {
	Key   string
	Value Value
}

// Mapping is an ordered set of fields. Keys are unique; Set on an existing key
// replaces the value in place and keeps the original position.
//
// Mappings returned by decoders and accessors are shared and must be treated
// as read-only; call Clone before Set.
type Mapping struct {
	fields []Field
	index  map[string]int
}

// NewMapping builds a mapping from fields; later duplicates replace earlier ones
func NewMapping(fields ...Field) Mapping {
	var m Mapping
	for _, f := range fields {
		m.Set(f.Key, f.Value)
	}
	return m
}

func (m Mapping) Len() int { return len(m.fields) }

// Fields returns the fields in insertion order
func (m Mapping) Fields() []Field { return m.fields }

// Keys returns the keys in insertion order
func (m Mapping) Keys() []string {
	keys := make([]string, len(m.fields))
	for i, f := range m.fields {
		keys[i] = f.Key
	}
	return keys
}

// Has reports whether the mapping owns key, whatever its value
func (m Mapping) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

func (m Mapping) Get(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.fields[i].Value, true
}

// Set adds or replaces a field
func (m *Mapping) Set(key string, v Value) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.fields[i].Value = v
		return
	}
	m.index[key] = len(m.fields)
	m.fields = append(m.fields, Field{Key: key, Value: v})
}

// Clone returns a mapping that can be modified without affecting m
func (m Mapping) Clone() Mapping {
	if len(m.fields) == 0 {
		return Mapping{}
	}
	out := Mapping{
		fields: make([]Field, len(m.fields)),
		index:  make(map[string]int, len(m.fields)),
	}
	copy(out.fields, m.fields)
	for k, i := range m.index {
		out.index[k] = i
	}
	return out
}

// Without returns a copy of m minus the given keys
func (m Mapping) Without(keys ...string) Mapping {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	var out Mapping
	for _, f := range m.fields {
		if drop[f.Key] {
			continue
		}
		out.Set(f.Key, f.Value)
	}
	return out
}

// Equal reports whether both mappings hold equal fields in the same order
func (m Mapping) Equal(o Mapping) bool {
	if len(m.fields) != len(o.fields) {
		return false
	}
	for i := range m.fields {
		if m.fields[i].Key != o.fields[i].Key || !m.fields[i].Value.Equal(o.fields[i].Value) {
			return false
		}
	}
	return true
}
