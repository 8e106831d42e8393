package nvlist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyListBoundary(t *testing.T) {
	l := Create(0)
	out, err := l.Export()
	require.NoError(t, err)
	// envelope(4) + version+flags(8) + terminator(8) = 20 bytes.
	assert.Equal(t, 20, len(out))
	assert.Equal(t, byte(encodingXDR), out[0])
	assert.Equal(t, []byte{0, 0, 0, 0}, out[16:20])
}

func TestAddFindRoundTrip(t *testing.T) {
	l := Create(UniqueName)
	require.NoError(t, l.AddUint64("version", 1))
	require.NoError(t, l.AddString("freebsd:bootonce", "zfs:pool/ROOT/default:"))

	v, err := l.Find("version", TypeUint64)
	require.NoError(t, err)
	assert.Equal(t, TypeUint64, v.Type)
	assert.Equal(t, uint64(1), v.Uint)

	v, err = l.Find("freebsd:bootonce", TypeString)
	require.NoError(t, err)
	assert.Equal(t, TypeString, v.Type)
	assert.Equal(t, "zfs:pool/ROOT/default:", v.Str)

	ok, err := l.Exists("no-such-key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExportImportByteExact(t *testing.T) {
	l := Create(0)
	require.NoError(t, l.AddUint64("version", 42))
	require.NoError(t, l.AddString("name", "pool0"))

	wire, err := l.Export()
	require.NoError(t, err)

	l2, err := Import(wire)
	require.NoError(t, err)
	wire2, err := l2.Export()
	require.NoError(t, err)

	assert.True(t, bytes.Equal(wire, wire2))

	v, err := l2.Find("name", TypeString)
	require.NoError(t, err)
	assert.Equal(t, "pool0", v.Str)
}

func TestUniqueNameReplacesSameType(t *testing.T) {
	l := Create(UniqueName)
	require.NoError(t, l.AddUint64("k", 1))
	require.NoError(t, l.AddUint64("k", 2))

	n, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	v, err := l.Find("k", TypeUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v.Uint)
}

func TestUniqueNameLeavesDifferentTypeAlone(t *testing.T) {
	l := Create(UniqueName)
	require.NoError(t, l.AddUint64("k", 1))
	require.NoError(t, l.AddString("k", "also k"))

	n, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n, "same name but different type must not collapse under UniqueName")

	asUint, err := l.Find("k", TypeUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), asUint.Uint)

	asStr, err := l.Find("k", TypeString)
	require.NoError(t, err)
	assert.Equal(t, "also k", asStr.Str)
}

func TestFindRejectsWrongType(t *testing.T) {
	l := Create(0)
	require.NoError(t, l.AddUint64("k", 1))

	_, err := l.Find("k", TypeString)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveIdempotent(t *testing.T) {
	l := Create(0)
	require.NoError(t, l.AddUint64("k", 1))

	require.NoError(t, l.Remove("k", TypeUint64))
	err := l.Remove("k", TypeUint64)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRemoveLeavesDifferentTypeAlone(t *testing.T) {
	l := Create(0)
	require.NoError(t, l.AddUint64("k", 1))
	require.NoError(t, l.AddString("k", "also k"))

	require.NoError(t, l.Remove("k", TypeUint64))

	n, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	v, err := l.Find("k", TypeString)
	require.NoError(t, err)
	assert.Equal(t, "also k", v.Str)
}

func TestTerminatorInvariant(t *testing.T) {
	l := Create(0)
	for i := 0; i < 5; i++ {
		require.NoError(t, l.AddUint64("k", uint64(i)))
	}
	wire, err := l.Export()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, wire[len(wire)-8:])
}

func TestNestedNvlist(t *testing.T) {
	child := Create(0)
	require.NoError(t, child.AddString("inner", "value"))

	parent := Create(0)
	require.NoError(t, parent.AddNvlist("child", child))

	v, err := parent.Find("child", TypeNvlist)
	require.NoError(t, err)
	require.Equal(t, TypeNvlist, v.Type)

	inner, err := v.List.Find("inner", TypeString)
	require.NoError(t, err)
	assert.Equal(t, "value", inner.Str)
}

func TestNvlistArrayIteration(t *testing.T) {
	var children []*List
	for i := 0; i < 3; i++ {
		c := Create(0)
		require.NoError(t, c.AddUint64("idx", uint64(i)))
		children = append(children, c)
	}

	parent := Create(0)
	require.NoError(t, parent.AddNvlistArray("items", children))

	v, err := parent.Find("items", TypeNvlistArray)
	require.NoError(t, err)
	require.Len(t, v.Lists, 3)

	cur := v.Lists[0]
	for i := 0; i < 3; i++ {
		idx, err := cur.Find("idx", TypeUint64)
		require.NoError(t, err)
		assert.Equal(t, uint64(i), idx.Uint)

		next, err := cur.Next()
		if i == 2 {
			assert.ErrorIs(t, err, ErrNotFound)
			continue
		}
		require.NoError(t, err)
		cur = next
	}
}

func TestBorrowedListInvalidatedByParentMutation(t *testing.T) {
	child := Create(0)
	require.NoError(t, child.AddUint64("a", 1))

	parent := Create(0)
	require.NoError(t, parent.AddNvlist("child", child))

	v, err := parent.Find("child", TypeNvlist)
	require.NoError(t, err)
	assert.True(t, v.List.Valid())

	require.NoError(t, parent.AddUint64("other", 2))
	assert.False(t, v.List.Valid())
}

func TestImportRejectsTruncatedStream(t *testing.T) {
	l := Create(0)
	require.NoError(t, l.AddString("k", "a value long enough to pad"))
	wire, err := l.Export()
	require.NoError(t, err)

	_, err = Import(wire[:len(wire)-4])
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNextRejectsNonArrayElement(t *testing.T) {
	child := Create(0)
	require.NoError(t, child.AddUint64("a", 1))

	parent := Create(0)
	require.NoError(t, parent.AddNvlist("child", child))

	v, err := parent.Find("child", TypeNvlist)
	require.NoError(t, err)

	_, err = v.List.Next()
	assert.ErrorIs(t, err, ErrInvalidArg)
}

func TestExportPreservesImportedEndian(t *testing.T) {
	l := Create(0)
	require.NoError(t, l.AddUint64("k", 1))
	wire, err := l.Export()
	require.NoError(t, err)

	littleEndian := append([]byte(nil), wire...)
	littleEndian[1] = 1
	l2, err := Import(littleEndian)
	require.NoError(t, err)

	out, err := l2.Export()
	require.NoError(t, err)
	assert.Equal(t, byte(1), out[1])
}

func TestImportRejectsBadEnvelope(t *testing.T) {
	wire := []byte{0x00, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err := Import(wire)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestSizeFormula(t *testing.T) {
	l := Create(0)
	before := l.used
	require.NoError(t, l.AddString("k", "abc"))
	after := l.used

	// header(8) + name "k" wire(4+4=8) + type+nelem(8) + value "abc" wire(4+4=8)
	wantPairSize := pairHeaderSize + stringWireLen("k") + 8 + stringWireLen("abc")
	assert.Equal(t, wantPairSize, after-before)
}
