package minon

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordConstruction(t *testing.T) {
	t.Run("NewRecordHasNoContent", func(t *testing.T) {
		rec := NewRecord("greeting")
		assert.Equal(t, "greeting", rec.Name)
		assert.Zero(t, rec.Length)
		assert.Nil(t, rec.Content)
		require.NoError(t, rec.Validate())
	})

	t.Run("SetContentDerivesLength", func(t *testing.T) {
		rec := NewRecord("greeting")
		rec.SetContent([]byte("Hello, world!"))
		assert.Equal(t, 13, rec.Length)
		require.NoError(t, rec.Validate())
	})

	t.Run("SetEmptyContentClears", func(t *testing.T) {
		rec := NewRecord("greeting")
		rec.SetContent([]byte("Hello, world!"))
		rec.SetContent(nil)
		assert.Zero(t, rec.Length)
		assert.Nil(t, rec.Content)

		rec.SetContent([]byte("x"))
		rec.SetContent([]byte{})
		assert.Nil(t, rec.Content)
	})
}

func TestRecordValidate(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		ok   bool
	}{
		{"WellFormed", Record{Name: "a", Length: 1, Content: []byte("x")}, true},
		{"WellFormedEmpty", Record{Name: "empty"}, true},
		{"EmptyName", Record{Length: 1, Content: []byte("x")}, false},
		{"NameWithPipe", Record{Name: "a|b"}, false},
		{"NameWithTilde", Record{Name: "a~b"}, false},
		{"LengthContentMismatch", Record{Name: "a", Length: 5, Content: []byte("x")}, false},
		{"ContentWithoutLength", Record{Name: "a", Content: []byte("x")}, false},
		{"LengthWithoutContent", Record{Name: "a", Length: 3}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rec.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrBadStructure)
			}
		})
	}
}

func TestRecordEncoding(t *testing.T) {
	t.Run("Canonical", func(t *testing.T) {
		rec := NewRecord("greeting")
		rec.SetContent([]byte("Hello, world!"))
		assert.Equal(t, "greeting|13~Hello, world!", rec.String())
	})

	t.Run("ZeroLength", func(t *testing.T) {
		rec := NewRecord("empty")
		assert.Equal(t, "empty|0~", rec.String())
	})

	t.Run("SizeMatchesEncoding", func(t *testing.T) {
		for _, rec := range []Record{
			{Name: "a"},
			{Name: "greeting", Length: 13, Content: []byte("Hello, world!")},
			{Name: "long", Length: 100, Content: bytes.Repeat([]byte("x"), 100)},
		} {
			assert.Equal(t, len(rec.String()), rec.Size())
		}
	})

	t.Run("MarshalToShortBuffer", func(t *testing.T) {
		rec := NewRecord("greeting")
		rec.SetContent([]byte("Hello, world!"))
		_, err := rec.MarshalTo(make([]byte, rec.Size()-1))
		assert.ErrorIs(t, err, io.ErrShortWrite)
	})

	t.Run("MarshalToExactBuffer", func(t *testing.T) {
		rec := NewRecord("greeting")
		rec.SetContent([]byte("Hello, world!"))
		buf := make([]byte, rec.Size())
		n, err := rec.MarshalTo(buf)
		require.NoError(t, err)
		assert.Equal(t, rec.Size(), n)
		assert.Equal(t, rec.String(), string(buf))
	})
}

// Round-trip: for any record whose name excludes the delimiters,
// decoding its encoding reproduces it exactly.
func TestRecordRoundTrip(t *testing.T) {
	records := []Record{
		{Name: "greeting", Length: 13, Content: []byte("Hello, world!")},
		{Name: "empty"},
		{Name: "grocery list", Length: 21, Content: []byte("1.|6~cheese2.|5~bread")},
		{Name: "blob", Length: 4, Content: []byte{0x00, 0x7C, 0x7E, 0xFF}},
	}

	for _, rec := range records {
		t.Run(rec.Name, func(t *testing.T) {
			require.NoError(t, rec.Validate())

			decoded, err := ParseOne(rec.AppendEncode(nil))
			require.NoError(t, err)
			assert.Equal(t, rec, decoded)
		})
	}
}

func TestRecordUnmarshalBinary(t *testing.T) {
	t.Run("ExactBuffer", func(t *testing.T) {
		var rec Record
		require.NoError(t, rec.UnmarshalBinary([]byte("greeting|13~Hello, world!")))
		assert.Equal(t, "greeting", rec.Name)
	})

	t.Run("TrailingData", func(t *testing.T) {
		var rec Record
		err := rec.UnmarshalBinary([]byte("a|1~Xb|1~Y"))
		assert.ErrorIs(t, err, ErrTrailingData)
	})

	t.Run("PropagatesScanErrors", func(t *testing.T) {
		var rec Record
		assert.ErrorIs(t, rec.UnmarshalBinary([]byte("x|5~ab")), ErrIncomplete)
	})
}

func TestRecordStreamRoundTrip(t *testing.T) {
	rec := NewRecord("greeting")
	rec.SetContent([]byte("Hello, world!"))

	var buf bytes.Buffer
	n, err := rec.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, rec.Size(), n)

	var decoded Record
	m, err := decoded.ReadFrom(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, rec.Size(), m)
	assert.Equal(t, rec, decoded)
}
