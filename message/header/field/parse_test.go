package field_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-contenttree/message/header/field"
)

func TestParseLines(t *testing.T) {
	t.Parallel()

	lines, err := field.ParseLines([]byte("Subject: one\n two\nTo: me@example.com\n"), []byte("\n"))
	assert.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, field.Line("Subject: one\n two\n"), lines[0])
	assert.Equal(t, field.Line("To: me@example.com\n"), lines[1])
}

func TestParseLines_BadStart(t *testing.T) {
	t.Parallel()

	lines, err := field.ParseLines([]byte(" junk\nSubject: hi\n"), []byte("\n"))

	var bse *field.BadStartError
	require.ErrorAs(t, err, &bse)
	assert.Equal(t, []byte(" junk\n"), bse.BadStart)
	assert.Len(t, lines, 1)
}

func TestParse(t *testing.T) {
	t.Parallel()

	f := field.Parse(field.Line("Subject: =?utf-8?q?hello?=\n  world\n"), []byte("\n"))
	assert.Equal(t, "Subject", f.Name())
	assert.Equal(t, "hello  world", f.Body())
	assert.Equal(t, "Subject: =?utf-8?q?hello?=\n  world", f.String())
}

func TestFoldEncoding_Fold(t *testing.T) {
	t.Parallel()

	long := "Subject: " + string(bytes.Repeat([]byte("word "), 30))
	buf := &bytes.Buffer{}
	n, err := field.DefaultFoldEncoding.Fold(buf, []byte(long), []byte("\n"))
	assert.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	for _, line := range bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n")) {
		assert.LessOrEqual(t, len(line), field.DefaultPreferredFoldLength)
	}

	assert.Equal(t, bytes.TrimSpace([]byte(long)), bytes.TrimSpace(field.Unfold(buf.Bytes())))
}

func TestDoNotFoldEncoding_Fold(t *testing.T) {
	t.Parallel()

	long := "Subject: " + string(bytes.Repeat([]byte("word "), 30))
	buf := &bytes.Buffer{}
	_, err := field.DoNotFoldEncoding.Fold(buf, []byte(long), []byte("\r\n"))
	assert.NoError(t, err)
	assert.Equal(t, long+"\r\n", buf.String())
}
