package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"sitecms/internal/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Posts(t *testing.T) {
	posts := []record.Post{
		{ID: 2, Title: "Second", Type: "News", Media: "/uploads/2.png", Date: "Wed Oct 15 2025"},
		{ID: 1, Title: "First", Type: "General", Date: "Tue Oct 14 2025"},
	}

	t.Run("Table", func(t *testing.T) {
		var buf bytes.Buffer
		p := New(&buf, false)

		require.NoError(t, p.Posts(posts))

		out := buf.String()
		assert.Contains(t, out, "Second")
		assert.Contains(t, out, "/uploads/2.png")
		assert.Contains(t, out, "Всего постов: 2")
		assert.NotContains(t, out, "\x1b[", "no colors when output is not a terminal")
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		p := New(&buf, true)

		require.NoError(t, p.Posts(posts))

		var got []record.Post
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, posts, got)
	})

	t.Run("Empty", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, New(&buf, false).Posts(nil))

		assert.Equal(t, "Постов нет\n", buf.String())
	})
}

func TestPrinter_Jobs(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	require.NoError(t, p.Jobs([]record.Job{{ID: 1, Title: "Go dev", Link: "https://example.com"}}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[1], "https://example.com")
}

func TestPrinter_Messages(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.Success("пост %d создан", 42)
	p.Warn("пусто")

	assert.Equal(t, "✓ пост 42 создан\n⚠ пусто\n", buf.String())
}

func TestFromContext(t *testing.T) {
	p := New(&bytes.Buffer{}, true)

	assert.Same(t, p, FromContext(WithPrinter(context.Background(), p)))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Привет...", truncate("Привет, мир!", 9))
}
