package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-contenttree/message/header/param"
)

func TestParse(t *testing.T) {
	t.Parallel()

	_, err := param.Parse("test:plain")
	assert.Error(t, err)

	mt, err := param.Parse("text")
	assert.NoError(t, err)

	assert.Equal(t, "text", mt.MediaType())
	assert.Equal(t, "", mt.Type())
	assert.Equal(t, "", mt.Subtype())
	assert.Equal(t, "text", mt.Presentation())
	assert.Equal(t, "text", mt.Value())
	assert.Equal(t, map[string]string{}, mt.Parameters())

	mt, err = param.Parse("Text/HTML; charset=UTF-8; foo=bar")
	assert.NoError(t, err)

	assert.Equal(t, "text/html", mt.MediaType())
	assert.Equal(t, "text", mt.Type())
	assert.Equal(t, "html", mt.Subtype())
	assert.Equal(t, map[string]string{
		"charset": "UTF-8",
		"foo":     "bar",
	}, mt.Parameters())
}

func TestParse_BadParameter(t *testing.T) {
	t.Parallel()

	mt, err := param.Parse("multipart/alternative; =oops")
	assert.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mt.MediaType())
	assert.Equal(t, "", mt.Boundary())
}

func TestModify(t *testing.T) {
	t.Parallel()

	mt := param.New("text/plain")
	assert.Equal(t, "text/plain", mt.String())

	mt = param.Modify(mt,
		param.Set(param.Boundary, "abc123"),
		param.Change("multipart/alternative"),
	)
	assert.Equal(t, "multipart/alternative; boundary=abc123", mt.String())

	mt = param.Modify(mt,
		param.Change("text/html"),
		param.Set(param.Charset, "utf-8"),
		param.Delete(param.Boundary),
	)
	assert.Equal(t, "text/html; charset=utf-8", mt.String())
	assert.Equal(t, []byte("text/html; charset=utf-8"), mt.Bytes())
}

func TestValue_Parameter(t *testing.T) {
	t.Parallel()

	mt := param.New("text/plain", map[string]string{
		"boundary": "abc123",
		"charset":  "latin1",
		"blah":     "BLOOP",
	})

	assert.Equal(t, "abc123", mt.Boundary())
	assert.Equal(t, "latin1", mt.Charset())
	assert.Equal(t, "BLOOP", mt.Parameter("blah"))
	assert.Equal(t, "", mt.Filename())
}
