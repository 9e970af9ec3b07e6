package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mdhnkumar/faculty-econtent/pkg/apperror"
)

// RedisStore keeps each document as its own Redis hash, one hash field per
// top-level document field, with every value JSON-encoded. Collection
// membership lives in a set. Numeric fields are stored as bare JSON numbers,
// which lets counters be incremented with HINCRBY: a server-side atomic
// operation, so concurrent view/download bumps on the same document are
// never lost. Filtering stays client-side in the services; no secondary
// indexes are required.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "econtent"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) docKey(collection, id string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, collection, id)
}

func (s *RedisStore) indexKey(collection string) string {
	return fmt.Sprintf("%s:%s", s.prefix, collection)
}

func (s *RedisStore) singletonKey(key string) string {
	return fmt.Sprintf("%s:singleton:%s", s.prefix, key)
}

func encodeFields(doc Document) (map[string]string, error) {
	fields := make(map[string]string, len(doc))
	for k, v := range doc {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", k, err)
		}
		fields[k] = string(raw)
	}
	return fields, nil
}

func decodeFields(fields map[string]string) (Document, error) {
	doc := make(Document, len(fields))
	for k, raw := range fields {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("failed to decode field %q: %w", k, err)
		}
		doc[k] = v
	}
	return doc, nil
}

func (s *RedisStore) writeHash(ctx context.Context, key string, doc Document) error {
	fields, err := encodeFields(doc)
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	if len(fields) > 0 {
		pipe.HSet(ctx, key, fields)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, collection string) ([]Document, error) {
	ids, err := s.rdb.SMembers(ctx, s.indexKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %q: %w", collection, err)
	}

	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		fields, err := s.rdb.HGetAll(ctx, s.docKey(collection, id)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read document %q: %w", id, err)
		}
		if len(fields) == 0 {
			// Index entry without a hash; skip rather than fail the listing.
			continue
		}
		doc, err := decodeFields(fields)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) (Document, error) {
	fields, err := s.rdb.HGetAll(ctx, s.docKey(collection, id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read document %q: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, apperror.ErrNotFound
	}
	return decodeFields(fields)
}

func (s *RedisStore) Put(ctx context.Context, collection, id string, doc Document) error {
	if err := s.writeHash(ctx, s.docKey(collection, id), doc); err != nil {
		return err
	}
	if err := s.rdb.SAdd(ctx, s.indexKey(collection), id).Err(); err != nil {
		return fmt.Errorf("failed to index document %q: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	removed, err := s.rdb.SRem(ctx, s.indexKey(collection), id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete document %q: %w", id, err)
	}
	if removed == 0 {
		return apperror.ErrNotFound
	}
	if err := s.rdb.Del(ctx, s.docKey(collection, id)).Err(); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", id, err)
	}
	return nil
}

// incrScript guards the counter bump with the membership check in one atomic
// step. A plain SISMEMBER-then-HINCRBY pair would let a concurrent Delete slip
// between the two calls and leave behind a stray hash holding only the counter.
var incrScript = redis.NewScript(`
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 0 then
	return false
end
return redis.call("HINCRBY", KEYS[2], ARGV[2], ARGV[3])
`)

func (s *RedisStore) Increment(ctx context.Context, collection, id, field string, delta int64) (int64, error) {
	keys := []string{s.indexKey(collection), s.docKey(collection, id)}
	next, err := incrScript.Run(ctx, s.rdb, keys, id, field, delta).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, apperror.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s on %q: %w", field, id, err)
	}
	return next, nil
}

func (s *RedisStore) GetSingleton(ctx context.Context, key string) (Document, error) {
	fields, err := s.rdb.HGetAll(ctx, s.singletonKey(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read singleton %q: %w", key, err)
	}
	return decodeFields(fields)
}

func (s *RedisStore) MergeSingleton(ctx context.Context, key string, partial Document) (Document, error) {
	existing, err := s.GetSingleton(ctx, key)
	if err != nil {
		return nil, err
	}

	merged := mergeSingleton(key, existing, partial)
	if err := s.writeHash(ctx, s.singletonKey(key), merged); err != nil {
		return nil, err
	}
	return merged, nil
}
