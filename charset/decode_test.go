package charset_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-contenttree/charset"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		label string
		in    []byte
		want  string
	}{
		{"empty label", "", []byte("plain"), "plain"},
		{"utf-8", "UTF-8", []byte("café"), "café"},
		{"us-ascii", "us-ascii", []byte("ascii"), "ascii"},
		{"latin1", "latin1", []byte{'c', 'a', 'f', 0xe9}, "café"},
		{"iso-8859-1", "ISO-8859-1", []byte{'c', 'a', 'f', 0xe9}, "café"},
		{"windows-1252", "windows-1252", []byte{0x93, 'q', 0x94}, "“q”"},
		{"koi8-r", "koi8-r", []byte{0xf0, 0xd2, 0xc9}, "При"},
		{"shift_jis", " Shift_JIS ", []byte{0x82, 0xa0}, "あ"},
		{"bad utf-8", "utf-8", []byte{'a', 0xff, 'b'}, "a�b"},
		{"truncated utf-8", "utf-8", []byte{'a', 0xe2, 0x82}, "a��"},
		{"unknown label", "x-no-such-charset", []byte{'o', 'k', 0xfe}, "ok�"},
		{"nil", "utf-8", nil, ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, charset.Decode(c.label, c.in), c.name)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	enc, ok := charset.Lookup("utf-8")
	assert.True(t, ok)
	assert.Nil(t, enc)

	enc, ok = charset.Lookup("iso-8859-2")
	assert.True(t, ok)
	assert.NotNil(t, enc)

	_, ok = charset.Lookup("x-no-such-charset")
	assert.False(t, ok)
}

func TestDecodeReader(t *testing.T) {
	t.Parallel()

	s, err := charset.DecodeReader("latin1", strings.NewReader("na\xefve"))
	assert.NoError(t, err)
	assert.Equal(t, "naïve", s)

	boom := errors.New("boom")
	_, err = charset.DecodeReader("utf-8", iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

func TestCharsetReader(t *testing.T) {
	t.Parallel()

	r, err := charset.CharsetReader("latin1", strings.NewReader("caf\xe9"))
	require.NoError(t, err)

	b, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "café", string(b))
}
