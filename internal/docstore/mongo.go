package docstore

import (
	"context"
	"errors"

	"web420-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type mongoStore struct {
	db  *mongo.Database
	log *zap.SugaredLogger
}

// NewMongo returns a Store that keeps one Mongo collection per resource.
// The caller owns the client behind db and disconnects it on shutdown.
func NewMongo(db *mongo.Database, log *zap.SugaredLogger) Store {
	return &mongoStore{db: db, log: log.Named("store.mongo")}
}

func (s *mongoStore) Find(ctx context.Context, coll string) ([]bson.Raw, error) {
	opts := options.Find().SetSort(bson.D{{Key: idField, Value: 1}})
	cur, err := s.db.Collection(coll).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, s.fault("find", coll, err)
	}
	defer cur.Close(ctx)

	out := make([]bson.Raw, 0)
	for cur.Next(ctx) {
		out = append(out, append(bson.Raw(nil), cur.Current...))
	}
	if err := cur.Err(); err != nil {
		return nil, s.fault("find", coll, err)
	}
	return out, nil
}

func (s *mongoStore) FindByID(ctx context.Context, coll string, id primitive.ObjectID) (bson.Raw, error) {
	return s.findOne(ctx, coll, bson.D{{Key: idField, Value: id}})
}

func (s *mongoStore) FindOne(ctx context.Context, coll, field, value string) (bson.Raw, error) {
	return s.findOne(ctx, coll, bson.D{{Key: field, Value: value}})
}

func (s *mongoStore) findOne(ctx context.Context, coll string, filter bson.D) (bson.Raw, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: idField, Value: 1}})
	raw, err := s.db.Collection(coll).FindOne(ctx, filter, opts).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, s.fault("findOne", coll, err)
	}
	return raw, nil
}

func (s *mongoStore) Insert(ctx context.Context, coll string, doc any) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	d, err := prepare(doc, id, 0)
	if err != nil {
		return primitive.NilObjectID, s.fault("insert", coll, err)
	}
	if _, err := s.db.Collection(coll).InsertOne(ctx, d); err != nil {
		return primitive.NilObjectID, s.fault("insert", coll, err)
	}
	return id, nil
}

func (s *mongoStore) Replace(ctx context.Context, coll string, id primitive.ObjectID, version int, doc any) error {
	d, err := prepare(doc, id, version+1)
	if err != nil {
		return s.fault("replace", coll, err)
	}
	c := s.db.Collection(coll)
	res, err := c.ReplaceOne(ctx, bson.D{{Key: idField, Value: id}, {Key: versionField, Value: version}}, d)
	if err != nil {
		return s.fault("replace", coll, err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	n, err := c.CountDocuments(ctx, bson.D{{Key: idField, Value: id}})
	if err != nil {
		return s.fault("replace", coll, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrConcurrentModification
}

func (s *mongoStore) Delete(ctx context.Context, coll string, id primitive.ObjectID) error {
	res, err := s.db.Collection(coll).DeleteOne(ctx, bson.D{{Key: idField, Value: id}})
	if err != nil {
		return s.fault("delete", coll, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *mongoStore) fault(op, coll string, err error) error {
	s.log.Errorw("mongo operation failed", "op", op, "collection", coll, "error", err)
	return fault(op, coll, err)
}
