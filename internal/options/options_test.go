package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-cryptokit/internal/options"
)

func TestApply(t *testing.T) {
	t.Parallel()

	type keygen struct {
		bits      int
		certainty int
		label     string
	}

	defaults := func() keygen {
		return keygen{bits: 1024, certainty: 12, label: ""}
	}

	tests := []struct {
		name        string
		constructor options.Constructor[keygen]
		callbacks   []options.Callback[keygen]
		expected    keygen
	}{
		{
			name:        "nil constructor and no callbacks",
			constructor: nil,
			callbacks:   nil,
			expected:    keygen{bits: 0, certainty: 0, label: ""},
		},
		{
			name:        "defaults only",
			constructor: defaults,
			callbacks:   []options.Callback[keygen]{},
			expected:    keygen{bits: 1024, certainty: 12, label: ""},
		},
		{
			name:        "callbacks applied in order",
			constructor: defaults,
			callbacks: []options.Callback[keygen]{
				func(k *keygen) { k.bits = 512 },
				func(k *keygen) { k.bits *= 2 },
				func(k *keygen) { k.label = "blum" },
			},
			expected: keygen{bits: 1024, certainty: 12, label: "blum"},
		},
		{
			name:        "nil callback skipped",
			constructor: defaults,
			callbacks: []options.Callback[keygen]{
				nil,
				func(k *keygen) { k.certainty = 20 },
			},
			expected: keygen{bits: 1024, certainty: 20, label: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, options.Apply(tt.constructor, tt.callbacks))
		})
	}
}

func TestApply_Pointer(t *testing.T) {
	t.Parallel()

	type data struct{ x int }

	constructor := func() *data { return &data{x: 1} }
	callbacks := []options.Callback[*data]{
		func(d **data) { (*d).x = 2 },
		func(d **data) { *d = &data{x: 3} },
	}

	assert.Equal(t, &data{x: 3}, options.Apply(constructor, callbacks))
}
