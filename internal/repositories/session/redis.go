package session

import (
	"context"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/smkun/MarvelPowers/internal/errors"
	redisclient "github.com/smkun/MarvelPowers/internal/redis"
)

const (
	sessionKeyPart = "session:"
	indexKeyPart   = "sessions"

	// DefaultKeyPrefix namespaces every key the repository writes
	DefaultKeyPrefix = "powers:"
)

// RedisConfig contains configuration for the Redis session repository
type RedisConfig struct {
	Client redisclient.Client

	// KeyPrefix defaults to DefaultKeyPrefix
	KeyPrefix string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	prefix string
}

// NewRedis creates a Redis-backed session repository. Each session is a JSON
// string under <prefix>session:<name>; the set <prefix>sessions indexes the
// names.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &redisRepository{
		client: cfg.Client,
		prefix: prefix,
	}, nil
}

// SessionKey returns the key a session is stored under
func SessionKey(prefix, name string) string {
	return prefix + sessionKeyPart + name
}

// IndexKey returns the key of the session name set
func IndexKey(prefix string) string {
	return prefix + indexKeyPart
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty).WithKind(errors.KindPersistence)
	}

	data, err := input.Record.MarshalJSON()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode session").
			WithKind(errors.KindPersistence)
	}

	key := SessionKey(r.prefix, name)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, IndexKey(r.prefix), name)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "Could not save session '%s'", name).
			WithKind(errors.KindPersistence).
			WithMeta("key", key)
	}

	return &SaveOutput{Location: key}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty).WithKind(errors.KindPersistence)
	}

	key := SessionKey(r.prefix, name)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("Session '%s' was not found.", name).
				WithKind(errors.KindPersistence).
				WithMeta("key", key)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "Could not read session '%s'", name).
			WithKind(errors.KindPersistence).
			WithMeta("key", key)
	}

	rec, err := decodeRecord([]byte(result), key)
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Location: key, Record: rec}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, IndexKey(r.prefix)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIO, "Could not list sessions").
			WithKind(errors.KindPersistence)
	}
	sort.Strings(names)

	return &ListOutput{Names: names}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty).WithKind(errors.KindPersistence)
	}

	key := SessionKey(r.prefix, name)
	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, key)
	pipe.SRem(ctx, IndexKey(r.prefix), name)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "Could not delete session '%s'", name).
			WithKind(errors.KindPersistence).
			WithMeta("key", key)
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("Session '%s' was not found.", name).
			WithKind(errors.KindPersistence).
			WithMeta("key", key)
	}

	return &DeleteOutput{}, nil
}
