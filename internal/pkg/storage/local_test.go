package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	content := []byte("brochure bytes")

	require.NoError(t, store.Save(ctx, "brochures/123-abcd.pdf", bytes.NewReader(content)))

	rc, err := store.Get(ctx, "brochures/123-abcd.pdf")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, store.Delete(ctx, "brochures/123-abcd.pdf"))
	_, err = store.Get(ctx, "brochures/123-abcd.pdf")
	assert.Error(t, err)
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "brochures/never-existed.pdf"))
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	err = store.Save(ctx, "../outside.txt", strings.NewReader("nope"))
	assert.Error(t, err)

	_, err = store.Get(ctx, "../../etc/passwd")
	assert.Error(t, err)
}
