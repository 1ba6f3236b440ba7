package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		in string
		id int
		ok bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"  7", 7, true},
		{"+3", 3, true},
		{"-2", -2, true},
		{"12abc", 12, true},
		{"3.9", 3, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tc := range cases {
		id, ok := parseID(tc.in)
		assert.Equal(t, tc.ok, ok, "parseID(%q)", tc.in)
		assert.Equal(t, tc.id, id, "parseID(%q)", tc.in)
	}
}
