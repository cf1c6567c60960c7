package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// MaxDepth bounds the nesting accepted by the decoders
const MaxDepth = 512

var (
	// ErrCircular is returned for self-referencing input
	ErrCircular = errors.New("payload: circular structure")
	// ErrUnsupportedType is returned by FromAny for values with no document form
	ErrUnsupportedType = errors.New("payload: unsupported type")
	// ErrTooDeep is returned when input nests deeper than MaxDepth
	ErrTooDeep = errors.New("payload: structure too deep")
)

// ParseJSON decodes a JSON document keeping object key order
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSON(dec, 0)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("payload: trailing data after JSON value")
	}
	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	out, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func decodeJSON(dec *json.Decoder, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, ErrTooDeep
	}
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			items := []Value{}
			for dec.More() {
				item, err := decodeJSON(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindSequence, items: items}, nil
		case '{':
			var m Mapping
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := kt.(string)
				if !ok {
					return Value{}, fmt.Errorf("payload: unexpected object key %v", kt)
				}
				val, err := decodeJSON(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindMapping, mapping: m}, nil
		}
	}
	return Value{}, fmt.Errorf("payload: unexpected JSON token %v", tok)
}

// ParseYAML decodes a YAML document keeping mapping key order
func ParseYAML(data []byte) (Value, error) {
	var v Value
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	out, err := fromYAMLNode(node, 0)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func fromYAMLNode(node *yaml.Node, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, fmt.Errorf("%w: alias chain or nesting deeper than %d", ErrCircular, MaxDepth)
	}
	if node == nil {
		return Null(), nil
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(node.Content[0], depth+1)
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias, depth+1)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, c := range node.Content {
			item, err := fromYAMLNode(c, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Value{kind: KindSequence, items: items}, nil
	case yaml.MappingNode:
		var m Mapping
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := fromYAMLNode(node.Content[i], depth+1)
			if err != nil {
				return Value{}, err
			}
			val, err := fromYAMLNode(node.Content[i+1], depth+1)
			if err != nil {
				return Value{}, err
			}
			m.Set(key.Text(), val)
		}
		return Value{kind: KindMapping, mapping: m}, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(node)
	}
	return Value{}, fmt.Errorf("payload: unexpected YAML node kind %d", node.Kind)
}

func fromYAMLScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return Int(i), nil
		}
		return Number(node.Value), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, err
		}
		return Float(f), nil
	default:
		return String(node.Value), nil
	}
}

// FromStructpb converts a protobuf Struct value. Protobuf maps carry no key
// order, so mapping keys are sorted. Self-referencing structs or lists yield
// ErrCircular.
func FromStructpb(pv *structpb.Value) (Value, error) {
	return fromStructpb(pv, map[any]bool{}, 0)
}

// FromStruct converts a protobuf Struct into a mapping with sorted keys
func FromStruct(s *structpb.Struct) (Mapping, error) {
	return fromStruct(s, map[any]bool{}, 0)
}

func fromStructpb(pv *structpb.Value, inProgress map[any]bool, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, ErrTooDeep
	}
	if pv == nil {
		return Null(), nil
	}
	switch k := pv.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return Bool(k.BoolValue), nil
	case *structpb.Value_NumberValue:
		return Float(k.NumberValue), nil
	case *structpb.Value_StringValue:
		return String(k.StringValue), nil
	case *structpb.Value_ListValue:
		list := k.ListValue
		if list == nil {
			return Null(), nil
		}
		if inProgress[list] {
			return Value{}, ErrCircular
		}
		inProgress[list] = true
		defer delete(inProgress, list)

		values := list.GetValues()
		items := make([]Value, 0, len(values))
		for _, item := range values {
			v, err := fromStructpb(item, inProgress, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Value{kind: KindSequence, items: items}, nil
	case *structpb.Value_StructValue:
		m, err := fromStruct(k.StructValue, inProgress, depth+1)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindMapping, mapping: m}, nil
	default:
		return Null(), nil
	}
}

func fromStruct(s *structpb.Struct, inProgress map[any]bool, depth int) (Mapping, error) {
	if depth > MaxDepth {
		return Mapping{}, ErrTooDeep
	}
	if s == nil {
		return Mapping{}, nil
	}
	if inProgress[s] {
		return Mapping{}, ErrCircular
	}
	inProgress[s] = true
	defer delete(inProgress, s)

	var m Mapping
	fields := s.GetFields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, err := fromStructpb(fields[k], inProgress, depth+1)
		if err != nil {
			return Mapping{}, err
		}
		m.Set(k, v)
	}
	return m, nil
}

// FromAny converts plain Go values (as produced by encoding/json into `any`,
// or built by hand). Go maps have no order, so their keys are sorted.
// Self-referencing maps or slices yield ErrCircular.
func FromAny(x any) (Value, error) {
	return fromAny(x, map[any]bool{}, 0)
}

func fromAny(x any, inProgress map[any]bool, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, ErrTooDeep
	}
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case Mapping:
		return FromMapping(t), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return Number(strconv.FormatUint(t, 10)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case *structpb.Value:
		return fromStructpb(t, inProgress, depth)
	case *structpb.Struct:
		if t == nil {
			return Null(), nil
		}
		m, err := fromStruct(t, inProgress, depth)
		if err != nil {
			return Value{}, err
		}
		return FromMapping(m), nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromAny(rv.Elem().Interface(), inProgress, depth+1)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice {
			if rv.IsNil() {
				return Null(), nil
			}
			ptr := rv.Pointer()
			if rv.Len() > 0 {
				if inProgress[ptr] {
					return Value{}, ErrCircular
				}
				inProgress[ptr] = true
				defer delete(inProgress, ptr)
			}
		}
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := fromAny(rv.Index(i).Interface(), inProgress, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Value{kind: KindSequence, items: items}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("%w: map key %s", ErrUnsupportedType, rv.Type().Key())
		}
		if rv.IsNil() {
			return Null(), nil
		}
		ptr := rv.Pointer()
		if inProgress[ptr] {
			return Value{}, ErrCircular
		}
		inProgress[ptr] = true
		defer delete(inProgress, ptr)

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		var m Mapping
		for _, k := range keys {
			val, err := fromAny(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface(), inProgress, depth+1)
			if err != nil {
				return Value{}, err
			}
			m.Set(k, val)
		}
		return Value{kind: KindMapping, mapping: m}, nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}
