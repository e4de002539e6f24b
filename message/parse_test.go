package message_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-contenttree/message"
)

const multipartMsg = `Subject: test
Content-Type: multipart/mixed; boundary="outer"

This is a MIME message.
--outer
Content-Type: multipart/alternative; boundary=inner

--inner
Content-Type: text/plain

hi
--inner
Content-Type: text/html

<b>hi</b>
--inner--

--outer
Content-Type: image/png
Content-Transfer-Encoding: base64

iVBORw0KGgo=
--outer--
`

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func mediaType(t *testing.T, p message.Part) string {
	t.Helper()

	mt, err := p.GetHeader().GetMediaType()
	require.NoError(t, err)
	return mt
}

func body(t *testing.T, p message.Part) []byte {
	t.Helper()

	require.NotNil(t, p.GetReader())
	b, err := io.ReadAll(p.GetReader())
	require.NoError(t, err)
	return b
}

func roundTrip(t *testing.T, in string, opts ...message.ParseOption) message.Part {
	t.Helper()

	m, err := message.Parse(strings.NewReader(in), opts...)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	n, err := m.WriteTo(buf)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(in)), n)
	assert.Equal(t, in, buf.String())

	m, err = message.Parse(strings.NewReader(in), opts...)
	require.NoError(t, err)
	return m
}

func TestParse_Multipart(t *testing.T) {
	t.Parallel()

	m := roundTrip(t, multipartMsg)

	require.True(t, m.IsMultipart())
	assert.Equal(t, "multipart/mixed", mediaType(t, m))
	assert.Nil(t, m.GetReader())

	ps := m.GetParts()
	require.Len(t, ps, 2)

	alt := ps[0]
	require.True(t, alt.IsMultipart())
	assert.Equal(t, "multipart/alternative", mediaType(t, alt))

	aps := alt.GetParts()
	require.Len(t, aps, 2)
	assert.Equal(t, "text/plain", mediaType(t, aps[0]))
	assert.Equal(t, "hi", string(body(t, aps[0])))
	assert.Equal(t, "text/html", mediaType(t, aps[1]))
	assert.Equal(t, "<b>hi</b>", string(body(t, aps[1])))

	img := ps[1]
	assert.False(t, img.IsMultipart())
	assert.True(t, img.IsEncoded())
	assert.Nil(t, img.GetParts())
	assert.Equal(t, "image/png", mediaType(t, img))
	assert.Equal(t, "iVBORw0KGgo=", string(body(t, img)))
}

func TestParse_CRLF(t *testing.T) {
	t.Parallel()

	m := roundTrip(t, strings.ReplaceAll(multipartMsg, "\n", "\r\n"))

	require.True(t, m.IsMultipart())
	require.Len(t, m.GetParts(), 2)

	aps := m.GetParts()[0].GetParts()
	require.Len(t, aps, 2)
	assert.Equal(t, "hi", string(body(t, aps[0])))
}

func TestParse_DecodeTransferEncoding(t *testing.T) {
	t.Parallel()

	m, err := message.Parse(strings.NewReader(multipartMsg), message.DecodeTransferEncoding())
	require.NoError(t, err)

	img := m.GetParts()[1]
	assert.False(t, img.IsEncoded())
	assert.Equal(t, pngMagic, body(t, img))
}

func TestParse_WithoutMultipart(t *testing.T) {
	t.Parallel()

	m := roundTrip(t, multipartMsg, message.WithoutMultipart())

	assert.False(t, m.IsMultipart())
	assert.IsType(t, &message.Opaque{}, m)
}

func TestParse_WithMaxDepth(t *testing.T) {
	t.Parallel()

	m := roundTrip(t, multipartMsg, message.WithMaxDepth(1))

	require.True(t, m.IsMultipart())
	ps := m.GetParts()
	require.Len(t, ps, 2)
	assert.False(t, ps[0].IsMultipart())
	assert.Equal(t, "multipart/alternative", mediaType(t, ps[0]))
}

func TestParse_BadStart(t *testing.T) {
	t.Parallel()

	const msg = "junk line without a separator\nSubject: hi\n\nbody"
	m := roundTrip(t, msg)

	s, err := m.GetHeader().GetSubject()
	assert.NoError(t, err)
	assert.Equal(t, "hi", s)
	assert.Equal(t, "body", string(body(t, m)))
}

func TestParse_NoBoundary(t *testing.T) {
	t.Parallel()

	const msg = "Content-Type: multipart/mixed\n\nbody"
	m, err := message.Parse(strings.NewReader(msg))
	assert.ErrorIs(t, err, message.ErrNoBoundary)
	require.NotNil(t, m)
	assert.False(t, m.IsMultipart())
	assert.Equal(t, "body", string(body(t, m)))
}

func TestParse_NestedNoBoundary(t *testing.T) {
	t.Parallel()

	const msg = `Content-Type: multipart/mixed; boundary=b

--b
Content-Type: multipart/alternative

nothing to split
--b--
`
	m := roundTrip(t, msg)

	require.True(t, m.IsMultipart())
	ps := m.GetParts()
	require.Len(t, ps, 1)
	assert.False(t, ps[0].IsMultipart())
	assert.Equal(t, "multipart/alternative", mediaType(t, ps[0]))
}

func TestParse_NoClosingBoundary(t *testing.T) {
	t.Parallel()

	const msg = "Content-Type: multipart/mixed; boundary=b\n\n--b\nContent-Type: text/plain\n\nhi\n"
	m := roundTrip(t, msg)

	require.True(t, m.IsMultipart())
	ps := m.GetParts()
	require.Len(t, ps, 1)
	assert.Equal(t, "hi\n", string(body(t, ps[0])))
}

func TestParse_EmptyPartHeader(t *testing.T) {
	t.Parallel()

	const msg = "Content-Type: multipart/mixed; boundary=b\n\n--b\n\nno header here\n--b--\n"
	m := roundTrip(t, msg)

	ps := m.GetParts()
	require.Len(t, ps, 1)
	assert.Equal(t, 0, ps[0].GetHeader().Len())
	assert.Equal(t, "no header here", string(body(t, ps[0])))
}

func TestParse_LargeHeader(t *testing.T) {
	t.Parallel()

	_, err := message.Parse(strings.NewReader(multipartMsg), message.WithMaxHeaderLength(10))
	assert.ErrorIs(t, err, message.ErrLargeHeader)
}

func TestParse_LargePart(t *testing.T) {
	t.Parallel()

	_, err := message.Parse(strings.NewReader(multipartMsg),
		message.WithChunkSize(16),
		message.WithMaxPartLength(32),
	)
	assert.ErrorIs(t, err, message.ErrLargePart)
}

func TestParse_SmallChunks(t *testing.T) {
	t.Parallel()

	m := roundTrip(t, multipartMsg, message.WithChunkSize(5))

	require.True(t, m.IsMultipart())
	assert.Len(t, m.GetParts(), 2)
}

func TestParse_HeaderOnly(t *testing.T) {
	t.Parallel()

	m, err := message.Parse(strings.NewReader("Subject: no body\n"))
	require.NoError(t, err)

	s, err := m.GetHeader().GetSubject()
	assert.NoError(t, err)
	assert.Equal(t, "no body", s)
	assert.Nil(t, m.GetReader())
}
