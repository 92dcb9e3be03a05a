package docstore

import (
	"context"
	"errors"
	"testing"

	"web420-api/internal/domain"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sample struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Version int                `bson:"__v"`
	Name    string             `bson:"name"`
	Tags    []string           `bson:"tags"`
	Score   *float64           `bson:"score,omitempty"`
}

// runContract exercises the behaviour every Store backend must share.
func runContract(t *testing.T, s Store, coll string) {
	t.Helper()
	ctx := context.Background()

	score := 50000.0
	first, err := s.Insert(ctx, coll, sample{Name: "first", Tags: []string{"a"}, Score: &score})
	require.NoError(t, err)
	require.False(t, first.IsZero())
	second, err := s.Insert(ctx, coll, sample{Name: "second", Tags: []string{}})
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	all, err := FindAll[sample](ctx, s, coll)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "first", all[0].Name)
	require.Equal(t, "second", all[1].Name)

	got, err := Get[sample](ctx, s, coll, first)
	require.NoError(t, err)
	require.Equal(t, first, got.ID)
	require.Equal(t, 0, got.Version)
	require.Equal(t, []string{"a"}, got.Tags)
	require.NotNil(t, got.Score)
	require.Equal(t, 50000.0, *got.Score)

	byName, err := GetBy[sample](ctx, s, coll, "name", "second")
	require.NoError(t, err)
	require.Equal(t, second, byName.ID)

	_, err = GetBy[sample](ctx, s, coll, "name", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = Get[sample](ctx, s, coll, primitive.NewObjectID())
	require.ErrorIs(t, err, domain.ErrNotFound)

	got.Tags = append(got.Tags, "b")
	require.NoError(t, s.Replace(ctx, coll, first, got.Version, got))
	updated, err := Get[sample](ctx, s, coll, first)
	require.NoError(t, err)
	require.Equal(t, 1, updated.Version)
	require.Equal(t, []string{"a", "b"}, updated.Tags)

	err = s.Replace(ctx, coll, first, got.Version, got)
	require.ErrorIs(t, err, domain.ErrConcurrentModification)
	require.True(t, domain.IsDatastore(err))

	err = s.Replace(ctx, coll, primitive.NewObjectID(), 0, got)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Delete(ctx, coll, first))
	require.ErrorIs(t, s.Delete(ctx, coll, first), domain.ErrNotFound)

	all, err = FindAll[sample](ctx, s, coll)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "second", all[0].Name)

	require.NoError(t, s.Ping(ctx))
}

func TestMemoryStore_Contract(t *testing.T) {
	runContract(t, NewMemory(), "samples")
}

func TestMemoryStore_CollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	_, err := s.Insert(ctx, "a", sample{Name: "x"})
	require.NoError(t, err)

	docs, err := s.Find(ctx, "b")
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	id, err := s.Insert(ctx, "samples", sample{Name: "x"})
	require.NoError(t, err)

	raw, err := s.FindByID(ctx, "samples", id)
	require.NoError(t, err)
	for i := range raw {
		raw[i] = 0
	}

	got, err := Get[sample](ctx, s, "samples", id)
	require.NoError(t, err)
	require.Equal(t, "x", got.Name)
}

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()
	parsed, err := ParseID(id.Hex())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = ParseID("not-an-id")
	require.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestPrepare_OverridesStoreFields(t *testing.T) {
	id := primitive.NewObjectID()
	d, err := prepare(sample{ID: primitive.NewObjectID(), Version: 7, Name: "n"}, id, 3)
	require.NoError(t, err)
	require.Equal(t, "_id", d[0].Key)
	require.Equal(t, id, d[0].Value)
	require.Equal(t, "__v", d[1].Key)
	require.EqualValues(t, 3, d[1].Value)
	for _, f := range d[2:] {
		require.NotEqual(t, "_id", f.Key)
		require.NotEqual(t, "__v", f.Key)
	}
}

func TestFault_WrapsAsDatastoreError(t *testing.T) {
	err := fault("find", "samples", errors.New("boom"))
	var dsErr *domain.DatastoreError
	require.ErrorAs(t, err, &dsErr)
	require.Equal(t, "find", dsErr.Op)
	require.True(t, domain.IsDatastore(err))

	require.ErrorIs(t, fault("find", "samples", context.Canceled), context.Canceled)
	require.False(t, domain.IsDatastore(fault("find", "samples", context.Canceled)))
}
