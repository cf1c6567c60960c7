package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{name: "zero value", value: Value{}, want: true},
		{name: "null", value: Null(), want: true},
		{name: "empty string", value: String(""), want: true},
		{name: "blank string", value: String(" "), want: false},
		{name: "zero", value: Int(0), want: false},
		{name: "false", value: Bool(false), want: false},
		{name: "empty sequence", value: Sequence(), want: false},
		{name: "empty mapping", value: FromMapping(Mapping{}), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.IsEmpty())
		})
	}
}

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{name: "null", value: Null(), want: false},
		{name: "empty string", value: String(""), want: false},
		{name: "string", value: String("x"), want: true},
		{name: "string zero", value: String("0"), want: true},
		{name: "number zero", value: Number("0.0"), want: false},
		{name: "number", value: Int(1), want: true},
		{name: "false", value: Bool(false), want: false},
		{name: "true", value: Bool(true), want: true},
		{name: "empty sequence", value: Sequence(), want: true},
		{name: "empty mapping", value: FromMapping(Mapping{}), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Truthy())
		})
	}
}

func TestNumber_Normalization(t *testing.T) {
	tests := []struct {
		literal string
		want    string
	}{
		{"1", "1"},
		{"1.50", "1.5"},
		{"1e2", "100"},
		{"-0", "0"},
		{"1e21", "1e+21"},
		{"1e-7", "1e-7"},
		{"0.000001", "0.000001"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.literal).Text())
		})
	}
}

func TestValue_TextOfComposites(t *testing.T) {
	assert.Equal(t, "", Null().Text())
	assert.Equal(t, "", Sequence(Int(1)).Text())
	assert.Equal(t, "true", Bool(true).Text())
}

func TestMapping_SetKeepsPosition(t *testing.T) {
	var m Mapping
	m.Set("a", Int(1))
	m.Set("b", Int(2))
	m.Set("a", Int(3))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v.Text())
}

func TestMapping_CloneIsIndependent(t *testing.T) {
	orig := NewMapping(Field{Key: "a", Value: Int(1)})
	cp := orig.Clone()
	cp.Set("a", Int(2))
	cp.Set("b", Int(3))

	v, _ := orig.Get("a")
	assert.Equal(t, "1", v.Text())
	assert.False(t, orig.Has("b"))
	assert.Equal(t, 1, orig.Len())
}

func TestMapping_Without(t *testing.T) {
	m := NewMapping(
		Field{Key: "a", Value: Int(1)},
		Field{Key: "b", Value: Int(2)},
		Field{Key: "c", Value: Int(3)},
	)
	out := m.Without("b")

	assert.Equal(t, []string{"a", "c"}, out.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestValue_Equal(t *testing.T) {
	a := FromMapping(NewMapping(Field{Key: "x", Value: Sequence(Int(1), String("y"))}))
	b := FromMapping(NewMapping(Field{Key: "x", Value: Sequence(Int(1), String("y"))}))
	c := FromMapping(NewMapping(Field{Key: "x", Value: Sequence(String("1"), String("y"))}))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
