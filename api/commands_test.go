package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinParameters(t *testing.T) {
	tests := []struct {
		name       string
		parameters []string
		expected   string
	}{
		{"all set", []string{"220", "80", "80"}, "220,80,80"},
		{"interior gap keeps comma", []string{"220", "80", "80", "", "0"}, "220,80,80,,0"},
		{"trailing unset dropped", []string{"220", "80", "80", "", ""}, "220,80,80"},
		{"single", []string{"28"}, "28"},
		{"all unset", []string{"", "", ""}, ""},
		{"none", nil, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, JoinParameters(test.parameters...))
		})
	}
}

func TestValidationError(t *testing.T) {
	assert.NoError(t, NewValidationError(nil))

	err := NewValidationError([]string{"x position 120mm exceeds the label width 100mm"})
	assert.EqualError(t, err, "x position 120mm exceeds the label width 100mm.")

	err = NewValidationError([]string{"first check failed", "second check failed"})
	assert.EqualError(t, err, "first check failed; second check failed.")
}

func TestCharacterSetIsValid(t *testing.T) {
	for _, c := range []CharacterSet{CharsetUSA1, CharsetIBMCodePage850, CharsetDoubleByteAsia, CharsetUTF8, CharsetUTF16LittleEndian} {
		assert.True(t, c.IsValid(), "%d", c)
	}
	for _, c := range []CharacterSet{-1, 15, 27, 31} {
		assert.False(t, c.IsValid(), "%d", c)
	}
}
