package message_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-contenttree/message"
	"github.com/zostay/go-contenttree/message/transfer"
)

func TestOpaqueText(t *testing.T) {
	t.Parallel()

	m := message.OpaqueText("text/plain", "Hello World")

	assert.Equal(t, &m.Header, m.GetHeader())
	assert.Nil(t, m.GetParts())
	assert.False(t, m.IsMultipart())
	assert.False(t, m.IsEncoded())

	c, err := m.GetCharset()
	assert.NoError(t, err)
	assert.Equal(t, "utf-8", c)

	const expect = "Content-type: text/plain; charset=utf-8\n\nHello World"
	out := &bytes.Buffer{}
	n, err := m.WriteTo(out)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(expect)), n)
	assert.Equal(t, expect, out.String())
}

func TestOpaqueText_TransferEncoding(t *testing.T) {
	t.Parallel()

	m := message.OpaqueText("text/plain", "I ❤ email!\n")
	m.SetTransferEncoding(transfer.QuotedPrintable)

	const expect = `Content-type: text/plain; charset=utf-8
Content-transfer-encoding: quoted-printable

I =E2=9D=A4 email!` + "\r\n"

	out := &bytes.Buffer{}
	n, err := m.WriteTo(out)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(expect)), n)
	assert.Equal(t, expect, out.String())

	p, err := message.Parse(strings.NewReader(expect), message.DecodeTransferEncoding())
	require.NoError(t, err)
	b, err := io.ReadAll(p.GetReader())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "I ❤ email!"))
}

func TestAttachment(t *testing.T) {
	t.Parallel()

	m := message.Attachment("image/png", "logo.png", bytes.NewReader(pngMagic))
	m.SetTransferEncoding(transfer.Base64)

	mt, err := m.GetMediaType()
	assert.NoError(t, err)
	assert.Equal(t, "image/png", mt)

	p, err := m.GetPresentation()
	assert.NoError(t, err)
	assert.Equal(t, "attachment", p)

	fn, err := m.GetFilename()
	assert.NoError(t, err)
	assert.Equal(t, "logo.png", fn)

	out := &bytes.Buffer{}
	_, err = m.WriteTo(out)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "\n\niVBORw0KGgo=\n"))
}
