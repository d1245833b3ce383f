package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(61) 99203-0064", "61992030064"},
		{"+55 61 99203-0064", "5561992030064"},
		{"61 9 9203 0064", "61992030064"},
		{"abc", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "entrada %q", tc.in)
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	once := NormalizePhone("(61) 99203-0064")
	assert.Equal(t, once, NormalizePhone(once))
}
