package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMac(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AABB.CCDD.EEFF", "aa:bb:cc:dd:ee:ff"},
		{"aabb.ccdd.eeff", "aa:bb:cc:dd:ee:ff"},
		{"AA-BB-CC-DD-EE-FF", "aa:bb:cc:dd:ee:ff"},
		{"aa:bb:cc:dd:ee:ff", "aa:bb:cc:dd:ee:ff"},
		{"AABBCCDDEEFF", "aa:bb:cc:dd:ee:ff"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mac(tt.in), tt.in)
	}
}

func TestMacIdempotent(t *testing.T) {
	for _, in := range []string{"AABB.CCDD.EEFF", "aa:bb:cc:dd:ee:ff", "abc"} {
		once := Mac(in)
		assert.Equal(t, once, Mac(once), in)
	}
}

func TestOui(t *testing.T) {
	assert.Equal(t, "aa:bb:cc", Oui("aa:bb:cc:dd:ee:ff"))
	assert.Equal(t, "ab", Oui("ab"))
}
