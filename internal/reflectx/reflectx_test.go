package reflectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type key string

type profile struct {
	Name   string `json:"name"`
	Email  string `json:"email_address,omitempty"`
	Age    int
	hidden string
}

type boxed struct {
	Value any
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var f func()

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(f))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(profile{}))
}

func TestStrictEqual(t *testing.T) {
	t.Parallel()

	s := []int{1, 2}
	m := map[string]int{"a": 1}
	p := &profile{}

	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal ints", 1, 1, true},
		{"different types", 1, int64(1), false},
		{"nil and nil", nil, nil, true},
		{"nil and value", nil, 0, false},
		{"same slice", s, s, true},
		{"equal but distinct slices", s, []int{1, 2}, false},
		{"resliced", s, s[:1], false},
		{"same map", m, m, true},
		{"distinct maps", m, map[string]int{"a": 1}, false},
		{"same pointer", p, p, true},
		{"distinct pointers", p, &profile{}, false},
		{"equal structs", profile{Name: "a"}, profile{Name: "a"}, true},
		{"uncomparable dynamic value", boxed{Value: []int{1}}, boxed{Value: []int{1}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.NotPanics(t, func() {
				assert.Equal(t, tc.want, StrictEqual(tc.a, tc.b))
			})
		})
	}
}

func TestIsObject(t *testing.T) {
	t.Parallel()

	assert.True(t, IsObject(profile{}))
	assert.True(t, IsObject(&profile{}))
	assert.True(t, IsObject(map[string]any{}))
	assert.True(t, IsObject(map[key]int{}))
	assert.False(t, IsObject(map[int]int{}))
	assert.False(t, IsObject((*profile)(nil)))
	assert.False(t, IsObject("text"))
}

func TestProperty(t *testing.T) {
	t.Parallel()

	p := profile{Name: "ada", Email: "ada@example.com", Age: 36, hidden: "x"}

	v, ok := Property(p, "Name")
	require.True(t, ok)
	assert.Equal(t, "ada", v)

	v, ok = Property(&p, "email_address")
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", v)

	v, ok = Property(p, "Age")
	require.True(t, ok)
	assert.Equal(t, 36, v)

	_, ok = Property(p, "hidden")
	assert.False(t, ok)

	_, ok = Property(p, "missing")
	assert.False(t, ok)

	v, ok = Property(map[key]int{"a": 1}, "a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = Property(map[string]int{}, "a")
	assert.False(t, ok)

	_, ok = Property(42, "a")
	assert.False(t, ok)
}
