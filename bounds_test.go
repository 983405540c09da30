package guidedoc_test

import (
	"testing"

	"github.com/NorthernWidget/guidedoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBounds(t *testing.T) {
	t.Parallel()

	t.Run("returns range between markers", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"<html>\n",
			"<div class=\"entry-content\">\n",
			"<p>one</p>\n",
			"<p>two</p>\n",
			"</div><!-- .entry-content -->\n",
			"</html>\n",
		}

		b, err := guidedoc.FindBounds(lines, guidedoc.DefaultMarkers)

		require.NoError(t, err)
		assert.Equal(t, guidedoc.Bounds{Start: 2, End: 4}, b)
		assert.Equal(t, 2, b.Len())
	})

	t.Run("uses last occurrence of each marker", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"<div class=\"entry-content\">\n",
			"A\n",
			"</div><!-- .entry-content -->\n",
			"<div class=\"entry-content\">\n",
			"B\n",
			"</div><!-- .entry-content -->\n",
		}

		b, err := guidedoc.FindBounds(lines, guidedoc.DefaultMarkers)

		require.NoError(t, err)
		assert.Equal(t, guidedoc.Bounds{Start: 4, End: 5}, b)
	})

	t.Run("adjacent markers give empty range", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"<div class=\"entry-content\">\n",
			"</div><!-- .entry-content -->\n",
		}

		b, err := guidedoc.FindBounds(lines, guidedoc.DefaultMarkers)

		require.NoError(t, err)
		assert.Equal(t, 0, b.Len())
	})

	t.Run("missing start marker is not found", func(t *testing.T) {
		t.Parallel()

		lines := []string{"<p>x</p>\n", "</div><!-- .entry-content -->\n"}

		_, err := guidedoc.FindBounds(lines, guidedoc.DefaultMarkers)

		require.Error(t, err)
		assert.Equal(t, guidedoc.ENOTFOUND, guidedoc.ErrorCode(err))
		assert.Contains(t, guidedoc.ErrorMessage(err), "start marker")
	})

	t.Run("missing end marker is not found", func(t *testing.T) {
		t.Parallel()

		lines := []string{"<div class=\"entry-content\">\n", "<p>x</p>\n"}

		_, err := guidedoc.FindBounds(lines, guidedoc.DefaultMarkers)

		require.Error(t, err)
		assert.Equal(t, guidedoc.ENOTFOUND, guidedoc.ErrorCode(err))
		assert.Contains(t, guidedoc.ErrorMessage(err), "end marker")
	})

	t.Run("no lines is not found", func(t *testing.T) {
		t.Parallel()

		_, err := guidedoc.FindBounds(nil, guidedoc.DefaultMarkers)

		assert.Equal(t, guidedoc.ENOTFOUND, guidedoc.ErrorCode(err))
	})

	t.Run("end before start is invalid", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"</div><!-- .entry-content -->\n",
			"<p>x</p>\n",
			"<div class=\"entry-content\">\n",
		}

		_, err := guidedoc.FindBounds(lines, guidedoc.DefaultMarkers)

		require.Error(t, err)
		assert.Equal(t, guidedoc.EINVALID, guidedoc.ErrorCode(err))
	})

	t.Run("both markers on one line is invalid", func(t *testing.T) {
		t.Parallel()

		lines := []string{`<div class="entry-content">A</div><!-- .entry-content -->`}

		_, err := guidedoc.FindBounds(lines, guidedoc.DefaultMarkers)

		assert.Equal(t, guidedoc.EINVALID, guidedoc.ErrorCode(err))
	})

	t.Run("empty markers are invalid", func(t *testing.T) {
		t.Parallel()

		_, err := guidedoc.FindBounds([]string{"x"}, guidedoc.Markers{})

		assert.Equal(t, guidedoc.EINVALID, guidedoc.ErrorCode(err))
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("returns B not A", func(t *testing.T) {
		t.Parallel()

		body := "<div class=\"entry-content\">\nA\n</div><!-- .entry-content -->\n" +
			"<div class=\"entry-content\">\nB\n</div><!-- .entry-content -->\n"

		got, err := guidedoc.Extract(guidedoc.SplitLines(body), guidedoc.DefaultMarkers)

		require.NoError(t, err)
		assert.Equal(t, []string{"B\n"}, got)
	})

	t.Run("custom markers", func(t *testing.T) {
		t.Parallel()

		lines := []string{"BEGIN\n", "x\n", "y\n", "END\n"}

		got, err := guidedoc.Extract(lines, guidedoc.Markers{Start: "BEGIN", End: "END"})

		require.NoError(t, err)
		assert.Equal(t, []string{"x\n", "y\n"}, got)
	})

	t.Run("propagates scan errors", func(t *testing.T) {
		t.Parallel()

		got, err := guidedoc.Extract([]string{"nothing\n"}, guidedoc.DefaultMarkers)

		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestMarkers_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, guidedoc.Markers{}.IsZero())
	assert.False(t, guidedoc.DefaultMarkers.IsZero())
}
