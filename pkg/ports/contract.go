package ports

import (
	"context"
	"testing"

	"github.com/rbaliev/dfakit/pkg/dsl"
	"github.com/rbaliev/dfakit/pkg/urlgrammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunAutomatonStoreContract runs a suite of tests to verify that an
// AutomatonStore implementation adheres to the defined interface contract.
func RunAutomatonStoreContract(t *testing.T, store AutomatonStore) {
	ctx := context.Background()
	grammar := urlgrammar.New()
	id := grammar.Fingerprint()

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, id, grammar)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, grammar.Fingerprint(), loaded.Fingerprint())
		assert.Equal(t, grammar.Start(), loaded.Start())

		// Loaded automata behave identically to the originals.
		res, err := loaded.Run("https://example.com/a?b#c")
		require.NoError(t, err)
		assert.True(t, res.Accepted)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id, grammar))

		err := store.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound, "Load after Delete should return ErrNotFound")

		assert.NoError(t, store.Delete(ctx, id), "deleting an absent ID is not an error")
	})

	t.Run("List", func(t *testing.T) {
		b := dsl.New()
		b.State("a").On('x', "b")
		b.State("b").Accept()
		other, err := b.Start("a").Build()
		require.NoError(t, err)

		id1 := grammar.Fingerprint()
		id2 := other.Fingerprint()
		require.NoError(t, store.Save(ctx, id1, grammar))
		require.NoError(t, store.Save(ctx, id2, other))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
