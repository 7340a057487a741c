package ir

import "testing"

func TestValueStrings(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil{}, "nil"},
		{Bool{Value: true}, "true"},
		{Integer{Value: -7}, "-7"},
		{Float{Value: 1.5}, "1.5"},
		{String{Value: "hi"}, `"hi"`},
		{LocalVar{ID: 3}, "v3"},
		{Upvalue{ID: 2}, "u2"},
	}

	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("%T.String() = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestValueTagsAreDistinct(t *testing.T) {
	vals := []Value{Nil{}, Bool{}, Integer{}, Float{}, String{}, LocalVar{}, Upvalue{}}
	seen := make(map[string]bool)
	for _, v := range vals {
		if seen[v.Tag()] {
			t.Errorf("duplicate tag %q", v.Tag())
		}
		seen[v.Tag()] = true
	}
}
