// Package docstore is the document-collection layer shared by every repository.
//
// Backends exchange documents as bson.Raw so that one set of bson struct tags
// drives Mongo, Postgres (JSONB) and the in-memory store alike. Every document
// carries its id in "_id" and a save counter in "__v"; Replace only succeeds
// when the caller still holds the current "__v".
package docstore

import (
	"context"
	"errors"

	"web420-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	idField      = "_id"
	versionField = "__v"
)

// Store is the backend-neutral set of collection operations used by repositories.
type Store interface {
	// Find returns every document of coll in insertion order.
	Find(ctx context.Context, coll string) ([]bson.Raw, error)
	// FindByID returns domain.ErrNotFound when no document has the id.
	FindByID(ctx context.Context, coll string, id primitive.ObjectID) (bson.Raw, error)
	// FindOne returns the first document whose top-level string field equals value.
	FindOne(ctx context.Context, coll, field, value string) (bson.Raw, error)
	// Insert stores doc under a newly generated id with version 0.
	Insert(ctx context.Context, coll string, doc any) (primitive.ObjectID, error)
	// Replace overwrites the document if its stored version still equals version,
	// bumping it by one. It returns domain.ErrConcurrentModification otherwise.
	Replace(ctx context.Context, coll string, id primitive.ObjectID, version int, doc any) error
	Delete(ctx context.Context, coll string, id primitive.ObjectID) error
	Ping(ctx context.Context) error
}

// ParseID converts a hex id from a URL into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return id, nil
}

// FindAll decodes every document of coll into T.
func FindAll[T any](ctx context.Context, s Store, coll string) ([]T, error) {
	raws, err := s.Find(ctx, coll)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := decode[T](coll, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// Get fetches and decodes the document with the given id.
func Get[T any](ctx context.Context, s Store, coll string, id primitive.ObjectID) (*T, error) {
	raw, err := s.FindByID(ctx, coll, id)
	if err != nil {
		return nil, err
	}
	return decode[T](coll, raw)
}

// GetBy fetches and decodes the first document whose field equals value.
func GetBy[T any](ctx context.Context, s Store, coll, field, value string) (*T, error) {
	raw, err := s.FindOne(ctx, coll, field, value)
	if err != nil {
		return nil, err
	}
	return decode[T](coll, raw)
}

func decode[T any](coll string, raw bson.Raw) (*T, error) {
	var v T
	if err := bson.Unmarshal(raw, &v); err != nil {
		return nil, fault("decode", coll, err)
	}
	return &v, nil
}

// prepare flattens doc into a bson.D with the store-owned fields placed first.
func prepare(doc any, id primitive.ObjectID, version int) (bson.D, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	out := make(bson.D, 0, len(fields)+2)
	out = append(out, bson.E{Key: idField, Value: id}, bson.E{Key: versionField, Value: version})
	for _, f := range fields {
		if f.Key == idField || f.Key == versionField {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func fault(op, coll string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &domain.DatastoreError{Op: op, Collection: coll, Err: err}
}
