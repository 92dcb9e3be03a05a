package docstore

import (
	"context"
	"sync"

	"web420-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryDoc struct {
	id      primitive.ObjectID
	version int
	raw     bson.Raw
}

// MemoryStore keeps collections in process memory. It backs local runs with
// store.driver=memory and the package tests of the service and HTTP layers.
type MemoryStore struct {
	mu    sync.RWMutex
	colls map[string][]memoryDoc
}

func NewMemory() *MemoryStore {
	return &MemoryStore{colls: make(map[string][]memoryDoc)}
}

func (s *MemoryStore) Find(_ context.Context, coll string) ([]bson.Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.colls[coll]
	out := make([]bson.Raw, 0, len(docs))
	for _, d := range docs {
		out = append(out, clone(d.raw))
	}
	return out, nil
}

func (s *MemoryStore) FindByID(_ context.Context, coll string, id primitive.ObjectID) (bson.Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(coll, id); i >= 0 {
		return clone(s.colls[coll][i].raw), nil
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) FindOne(_ context.Context, coll, field, value string) (bson.Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.colls[coll] {
		v, err := d.raw.LookupErr(field)
		if err != nil {
			continue
		}
		if str, ok := v.StringValueOK(); ok && str == value {
			return clone(d.raw), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) Insert(_ context.Context, coll string, doc any) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	raw, err := encode(doc, id, 0)
	if err != nil {
		return primitive.NilObjectID, fault("insert", coll, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colls[coll] = append(s.colls[coll], memoryDoc{id: id, raw: raw})
	return id, nil
}

func (s *MemoryStore) Replace(_ context.Context, coll string, id primitive.ObjectID, version int, doc any) error {
	raw, err := encode(doc, id, version+1)
	if err != nil {
		return fault("replace", coll, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(coll, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	if s.colls[coll][i].version != version {
		return domain.ErrConcurrentModification
	}
	s.colls[coll][i] = memoryDoc{id: id, version: version + 1, raw: raw}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, coll string, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(coll, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	docs := s.colls[coll]
	s.colls[coll] = append(docs[:i:i], docs[i+1:]...)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) indexOf(coll string, id primitive.ObjectID) int {
	for i, d := range s.colls[coll] {
		if d.id == id {
			return i
		}
	}
	return -1
}

func encode(doc any, id primitive.ObjectID, version int) (bson.Raw, error) {
	d, err := prepare(doc, id, version)
	if err != nil {
		return nil, err
	}
	return bson.Marshal(d)
}

func clone(raw bson.Raw) bson.Raw {
	return append(bson.Raw(nil), raw...)
}
