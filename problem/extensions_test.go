package problem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Extensions(t *testing.T) {
	var tests = []struct {
		name string
		run  func(t *testing.T, p *Problem)
	}{
		{
			name: "read absent key should return ErrKeyNotFound",
			run: func(t *testing.T, p *Problem) {
				require.False(t, p.HasExtension("missing"))

				v, err := p.Extension("missing")
				require.ErrorIs(t, err, ErrKeyNotFound)
				require.Nil(t, v)
			},
		},
		{
			name: "set then read",
			run: func(t *testing.T, p *Problem) {
				p.SetExtension("balance", 30)

				require.True(t, p.HasExtension("balance"))

				v, err := p.Extension("balance")
				require.NoError(t, err)
				require.Equal(t, 30, v)
			},
		},
		{
			name: "set overwrites existing value",
			run: func(t *testing.T, p *Problem) {
				p.SetExtension("balance", 30)
				p.SetExtension("balance", -5)

				v, err := p.Extension("balance")
				require.NoError(t, err)
				require.Equal(t, -5, v)
			},
		},
		{
			name: "remove clears the key",
			run: func(t *testing.T, p *Problem) {
				p.SetExtension("balance", 30)
				p.RemoveExtension("balance")

				require.False(t, p.HasExtension("balance"))

				_, err := p.Extension("balance")
				require.ErrorIs(t, err, ErrKeyNotFound)
			},
		},
		{
			name: "remove absent key is a no-op",
			run: func(t *testing.T, p *Problem) {
				p.RemoveExtension("never_set")

				require.False(t, p.HasExtension("never_set"))
			},
		},
		{
			name: "nil value is present, not missing",
			run: func(t *testing.T, p *Problem) {
				p.SetExtension("cause", nil)

				require.True(t, p.HasExtension("cause"))

				v, err := p.Extension("cause")
				require.NoError(t, err)
				require.Nil(t, v)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.run(t, New("", ""))
		})
	}
}

func Test_SetExtension_OnZeroValue(t *testing.T) {
	var p Problem
	p.SetExtension("traceId", "abc-123")

	require.True(t, p.HasExtension("traceId"))
}
