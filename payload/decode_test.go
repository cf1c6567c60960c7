package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestParseJSON_KeepsKeyOrder(t *testing.T) {
	v, err := ParseJSON([]byte(`{"z": 1, "a": [true, null, "s"], "m": {"k": 1.50}}`))
	require.NoError(t, err)

	require.Equal(t, KindMapping, v.Kind())
	assert.Equal(t, []string{"z", "a", "m"}, v.Mapping().Keys())

	a, _ := v.Get("a")
	require.Len(t, a.Items(), 3)
	assert.Equal(t, "true", a.Items()[0].Text())
	assert.True(t, a.Items()[1].IsNull())
	assert.Equal(t, "s", a.Items()[2].Text())

	m, _ := v.Get("m")
	k, _ := m.Get("k")
	assert.Equal(t, ScalarNumber, k.ScalarType())
	assert.Equal(t, "1.5", k.Text())
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := ParseJSON([]byte(`{"a": `))
	assert.Error(t, err)

	_, err = ParseJSON([]byte(`{} {}`))
	assert.Error(t, err)
}

func TestValue_UnmarshalJSONRoundTrip(t *testing.T) {
	in := `{"b":2,"a":[1,"x",null,{"c":false}],"s":"<&>"}`

	var v Value
	require.NoError(t, json.Unmarshal([]byte(in), &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))

	keys, err := ParseJSON(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "s"}, keys.Mapping().Keys())
}

func TestParseYAML_KeepsKeyOrderAndTypes(t *testing.T) {
	doc := `
eventType: BOOKING_CONFIRMED
count: 3
ratio: 0.5
enabled: yes
flag: true
missing: ~
list:
  - a
  - 2
`
	v, err := ParseYAML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"eventType", "count", "ratio", "enabled", "flag", "missing", "list"}, v.Mapping().Keys())

	count, _ := v.Get("count")
	assert.Equal(t, ScalarNumber, count.ScalarType())
	assert.Equal(t, "3", count.Text())

	ratio, _ := v.Get("ratio")
	assert.Equal(t, "0.5", ratio.Text())

	// yaml.v3 follows YAML 1.2: "yes" is a string
	enabled, _ := v.Get("enabled")
	assert.Equal(t, ScalarString, enabled.ScalarType())

	flag, _ := v.Get("flag")
	assert.Equal(t, ScalarBool, flag.ScalarType())

	missing, ok := v.Get("missing")
	assert.True(t, ok)
	assert.True(t, missing.IsNull())

	list, _ := v.Get("list")
	assert.Len(t, list.Items(), 2)
}

func TestParseYAML_Aliases(t *testing.T) {
	doc := `
base: &b
  x: 1
copy: *b
`
	v, err := ParseYAML([]byte(doc))
	require.NoError(t, err)

	cp, _ := v.Get("copy")
	x, ok := cp.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", x.Text())
}

func TestFromStructpb(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{
		"zeta":  "z",
		"alpha": 1.0,
		"list":  []any{true, nil, "x"},
		"obj":   map[string]any{"k": "v"},
	})
	require.NoError(t, err)

	v, err := FromStructpb(structpb.NewStructValue(s))
	require.NoError(t, err)

	require.Equal(t, KindMapping, v.Kind())
	assert.Equal(t, []string{"alpha", "list", "obj", "zeta"}, v.Mapping().Keys())

	alpha, _ := v.Get("alpha")
	assert.Equal(t, "1", alpha.Text())

	list, _ := v.Get("list")
	require.Len(t, list.Items(), 3)
	assert.True(t, list.Items()[1].IsNull())

	obj, _ := v.Get("obj")
	k, _ := obj.Get("k")
	assert.Equal(t, "v", k.Text())

	null, err := FromStructpb(nil)
	require.NoError(t, err)
	assert.True(t, null.IsNull())
}

func TestFromStructpb_Circular(t *testing.T) {
	s := &structpb.Struct{Fields: map[string]*structpb.Value{
		"name": structpb.NewStringValue("loop"),
	}}
	s.Fields["self"] = structpb.NewStructValue(s)

	_, err := FromAny(s)
	assert.ErrorIs(t, err, ErrCircular)

	_, err = FromStructpb(structpb.NewStructValue(s))
	assert.ErrorIs(t, err, ErrCircular)

	l := &structpb.ListValue{}
	l.Values = append(l.Values, structpb.NewListValue(l))
	_, err = FromStructpb(structpb.NewListValue(l))
	assert.ErrorIs(t, err, ErrCircular)
}

func TestFromStructpb_SharedButAcyclic(t *testing.T) {
	shared := structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		"k": structpb.NewStringValue("v"),
	}})
	s := &structpb.Struct{Fields: map[string]*structpb.Value{"a": shared, "b": shared}}

	m, err := FromStruct(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestFromStructpb_TooDeep(t *testing.T) {
	v := structpb.NewStringValue("leaf")
	for i := 0; i <= MaxDepth; i++ {
		v = structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{v}})
	}

	_, err := FromStructpb(v)
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{
		"b": []any{1, "two", nil},
		"a": map[string]int{"n": 5},
		"c": 2.5,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, v.Mapping().Keys())

	b, _ := v.Get("b")
	require.Len(t, b.Items(), 3)
	assert.Equal(t, "1", b.Items()[0].Text())
	assert.Equal(t, "two", b.Items()[1].Text())

	c, _ := v.Get("c")
	assert.Equal(t, "2.5", c.Text())
}

func TestFromAny_Circular(t *testing.T) {
	m := map[string]any{"name": "loop"}
	m["self"] = m

	_, err := FromAny(m)
	assert.ErrorIs(t, err, ErrCircular)

	s := []any{1, nil}
	s[1] = s
	_, err = FromAny(s)
	assert.ErrorIs(t, err, ErrCircular)
}

func TestFromAny_SharedButAcyclic(t *testing.T) {
	shared := map[string]any{"k": "v"}
	v, err := FromAny(map[string]any{"a": shared, "b": shared})
	require.NoError(t, err)
	assert.Equal(t, 2, v.Mapping().Len())
}

func TestFromAny_Unsupported(t *testing.T) {
	_, err := FromAny(make(chan int))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = FromAny(map[int]string{1: "x"})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
