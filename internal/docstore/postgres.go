package docstore

import (
	"context"
	"errors"

	"web420-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type postgresStore struct {
	pool *pgxpool.Pool
	log  *zap.SugaredLogger
}

// NewPostgres returns a Store backed by the documents table created by
// internal/migrate. Documents are kept as relaxed Extended JSON in a jsonb column.
func NewPostgres(pool *pgxpool.Pool, log *zap.SugaredLogger) Store {
	return &postgresStore{pool: pool, log: log.Named("store.postgres")}
}

func (s *postgresStore) Find(ctx context.Context, coll string) ([]bson.Raw, error) {
	const q = `
SELECT doc::text
FROM documents
WHERE collection = $1
ORDER BY seq ASC
`
	rows, err := s.pool.Query(ctx, q, coll)
	if err != nil {
		return nil, s.fault("find", coll, err)
	}
	defer rows.Close()

	out := make([]bson.Raw, 0)
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, s.fault("find", coll, err)
		}
		raw, err := fromExtJSON(text)
		if err != nil {
			return nil, s.fault("decode", coll, err)
		}
		out = append(out, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fault("find", coll, err)
	}
	return out, nil
}

func (s *postgresStore) FindByID(ctx context.Context, coll string, id primitive.ObjectID) (bson.Raw, error) {
	const q = `
SELECT doc::text
FROM documents
WHERE collection = $1 AND id = $2
LIMIT 1
`
	return s.scanOne(coll, s.pool.QueryRow(ctx, q, coll, id.Hex()))
}

func (s *postgresStore) FindOne(ctx context.Context, coll, field, value string) (bson.Raw, error) {
	const q = `
SELECT doc::text
FROM documents
WHERE collection = $1 AND doc->>$2 = $3
ORDER BY seq ASC
LIMIT 1
`
	return s.scanOne(coll, s.pool.QueryRow(ctx, q, coll, field, value))
}

func (s *postgresStore) scanOne(coll string, row pgx.Row) (bson.Raw, error) {
	var text string
	if err := row.Scan(&text); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, s.fault("findOne", coll, err)
	}
	raw, err := fromExtJSON(text)
	if err != nil {
		return nil, s.fault("decode", coll, err)
	}
	return raw, nil
}

func (s *postgresStore) Insert(ctx context.Context, coll string, doc any) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	text, err := toExtJSON(doc, id, 0)
	if err != nil {
		return primitive.NilObjectID, s.fault("insert", coll, err)
	}
	const q = `
INSERT INTO documents (collection, id, version, doc)
VALUES ($1, $2, 0, $3::jsonb)
`
	if _, err := s.pool.Exec(ctx, q, coll, id.Hex(), text); err != nil {
		return primitive.NilObjectID, s.fault("insert", coll, err)
	}
	return id, nil
}

func (s *postgresStore) Replace(ctx context.Context, coll string, id primitive.ObjectID, version int, doc any) error {
	text, err := toExtJSON(doc, id, version+1)
	if err != nil {
		return s.fault("replace", coll, err)
	}
	const q = `
UPDATE documents
SET version = version + 1, doc = $4::jsonb, updated_at = now()
WHERE collection = $1 AND id = $2 AND version = $3
`
	cmd, err := s.pool.Exec(ctx, q, coll, id.Hex(), version, text)
	if err != nil {
		return s.fault("replace", coll, err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM documents WHERE collection = $1 AND id = $2)`, coll, id.Hex()).Scan(&exists); err != nil {
		return s.fault("replace", coll, err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConcurrentModification
}

func (s *postgresStore) Delete(ctx context.Context, coll string, id primitive.ObjectID) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, coll, id.Hex())
	if err != nil {
		return s.fault("delete", coll, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *postgresStore) fault(op, coll string, err error) error {
	s.log.Errorw("postgres operation failed", "op", op, "collection", coll, "error", err)
	return fault(op, coll, err)
}

func toExtJSON(doc any, id primitive.ObjectID, version int) (string, error) {
	d, err := prepare(doc, id, version)
	if err != nil {
		return "", err
	}
	b, err := bson.MarshalExtJSON(d, false, false)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func fromExtJSON(text string) (bson.Raw, error) {
	var d bson.D
	if err := bson.UnmarshalExtJSON([]byte(text), false, &d); err != nil {
		return nil, err
	}
	return bson.Marshal(d)
}
