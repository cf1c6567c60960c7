package payload

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// MarshalJSON implements json.Marshaler; mapping fields keep their order
func (v Value) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	if err := v.writeJSON(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// MarshalJSON implements json.Marshaler
func (m Mapping) MarshalJSON() ([]byte, error) {
	return Value{kind: KindMapping, mapping: m}.MarshalJSON()
}

func (v Value) writeJSON(b *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindScalar:
		switch v.scalar {
		case ScalarBool:
			b.WriteString(v.text)
		case ScalarNumber:
			f, err := strconv.ParseFloat(v.text, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				b.WriteString("null")
				return nil
			}
			b.WriteString(v.text)
		default:
			s, err := json.Marshal(v.text)
			if err != nil {
				return err
			}
			b.Write(s)
		}
	case KindSequence:
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := item.writeJSON(b); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case KindMapping:
		b.WriteByte('{')
		for i, f := range v.mapping.fields {
			if i > 0 {
				b.WriteByte(',')
			}
			k, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			b.Write(k)
			b.WriteByte(':')
			if err := f.Value.writeJSON(b); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	}
	return nil
}
