//go:build !atomicint_noc

package atomicint

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCKindWidths(t *testing.T) {
	widths := map[string]int{
		"CSchar": 8, "CUchar": 8, "CShort": 16, "CUshort": 16,
		"CInt": 32, "CUint": 32, "CLonglong": 64, "CUlonglong": 64,
	}
	for name, bits := range widths {
		k, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, bits, k.Bits, name)
	}

	char, err := Lookup("CChar")
	require.NoError(t, err)
	assert.Equal(t, 8, char.Bits)
	assert.True(t, char.NeedsFallback())

	long, err := Lookup("CLong")
	require.NoError(t, err)
	ulong, err := Lookup("CUlong")
	require.NoError(t, err)
	assert.Equal(t, long.Bits, ulong.Bits)
	assert.True(t, long.Signed)
	assert.False(t, ulong.Signed)
	if runtime.GOOS == "windows" {
		assert.Equal(t, 32, long.Bits)
	}
}

func TestCKindConstructors(t *testing.T) {
	c := NewCChar(1)
	assert.Equal(t, CCharValue(1), c.FetchAdd(1, Relaxed))
	assert.Equal(t, CCharValue(2), c.Load(SeqCst))

	l := NewCLong(-1)
	assert.Equal(t, CLongValue(-1), l.FetchAdd(2, AcqRel))
	assert.Equal(t, CLongValue(1), l.Load(Acquire))

	u := NewCUlong(0)
	assert.Equal(t, CUlongValue(0), u.FetchSub(1, Release))
	assert.Equal(t, ^CUlongValue(0), u.Load(SeqCst))

	s := NewCShort(-5)
	prev, ok := s.CompareExchange(-5, 7, SeqCst, Relaxed)
	assert.True(t, ok)
	assert.Equal(t, int16(-5), prev)
}
