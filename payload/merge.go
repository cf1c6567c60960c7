package payload

// Union merges b into a copy of a giving precedence to the values already in a:
// keys of b that a does not own are appended in b's order. Neither input is
// modified.
func Union(a, b Mapping) Mapping {
	out := a.Clone()
	for _, f := range b.fields {
		if out.Has(f.Key) {
			continue
		}
		out.Set(f.Key, f.Value)
	}
	return out
}

// UnionValues is Union for loosely typed inputs. When either side is not a
// mapping the call is a no-op and a is returned unchanged.
func UnionValues(a, b Value) Value {
	if a.kind != KindMapping || b.kind != KindMapping {
		return a
	}
	return Value{kind: KindMapping, mapping: Union(a.mapping, b.mapping)}
}
