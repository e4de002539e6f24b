package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-contenttree/tools/contenttree/report"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, msg := range []string{lunchMsg, tooManyMsg, "Subject: x\r\n\r\nbody\r\n"} {
		out, err := report.RoundTrip([]byte(msg))
		require.NoError(t, err)
		assert.Equal(t, msg, string(out))
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	buf := &strings.Builder{}
	changed, err := report.Diff(buf, "a\nb\nc\n", "a\nb\nc\n")
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, buf.String())

	a := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"
	b := "1\n2\n3\n4\n5\nsix\n7\n8\n9\n10\n"
	changed, err = report.Diff(buf, a, b)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, `@@ 2 unchanged lines @@
 3
 4
 5
-6
+six
 7
 8
 9
@@ 1 unchanged lines @@
`, buf.String())
}
