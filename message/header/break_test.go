package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-contenttree/message/header"
)

func TestBreak(t *testing.T) {
	t.Parallel()

	cases := []struct {
		br   header.Break
		want string
	}{
		{header.Meh, ""},
		{header.CRLF, "\r\n"},
		{header.LF, "\n"},
		{header.CR, "\r"},
		{header.LFCR, "\n\r"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.br.String())
		assert.Equal(t, []byte(c.want), c.br.Bytes())
	}
}

func TestBreak_KeptByParse(t *testing.T) {
	t.Parallel()

	for _, br := range []header.Break{header.CRLF, header.LF} {
		raw := "Content-Type: text/plain" + br.String() + br.String()
		h, err := header.Parse([]byte(raw), br)
		require.NoError(t, err)
		assert.Equal(t, br, h.Break())
	}
}
