package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rbaliev/dfakit/internal/adapters/file"
	"github.com/rbaliev/dfakit/pkg/ports"
	"github.com/rbaliev/dfakit/pkg/urlgrammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ports.RunAutomatonStoreContract(t, store)
}

func TestFileStore_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir)

	err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644)
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, ports.ErrMalformedDocument)
}

func TestFileStore_InconsistentDocument(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir)

	// Well-formed JSON whose tuple fails construction validation.
	doc := `{"states":["a"],"alphabet":["x"],"transitions":[],"start_state":"a","accept_states":["ghost"]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(doc), 0644))

	_, err := store.Load(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrMalformedDocument)
}

func TestFileStore_SaveLoadRunTwice(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ctx := context.Background()
	grammar := urlgrammar.New()
	id := grammar.Fingerprint()

	require.NoError(t, store.Save(ctx, id, grammar))
	loaded, err := store.Load(ctx, id)
	require.NoError(t, err)

	// Same input, run twice against the reloaded automaton: identical results.
	first, err := loaded.Run("https://example.com/path?q=1#frag")
	require.NoError(t, err)
	second, err := loaded.Run("https://example.com/path?q=1#frag")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, first.Accepted)
}
