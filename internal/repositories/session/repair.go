package session

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/smkun/MarvelPowers/internal/errors"
	redisclient "github.com/smkun/MarvelPowers/internal/redis"
)

// RepairInput defines the input for checking a redis session store
type RepairInput struct {
	Client redisclient.Client

	// KeyPrefix defaults to DefaultKeyPrefix
	KeyPrefix string

	// Fix deletes corrupted sessions and resyncs the index. Without it the
	// store is only inspected.
	Fix bool
}

// RepairOutput reports what was found, by session name
type RepairOutput struct {
	Checked int

	// Corrupted sessions do not decode as a session record
	Corrupted []string

	// Dangling names are indexed but have no stored session
	Dangling []string

	// Unindexed sessions are stored but missing from the index
	Unindexed []string
}

// Repair scans every session key under the prefix. The store is changed only
// when input.Fix is set.
func Repair(ctx context.Context, input *RepairInput) (*RepairOutput, error) {
	if input == nil || input.Client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	prefix := input.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	keyPrefix := SessionKey(prefix, "")

	indexed, err := input.Client.SMembers(ctx, IndexKey(prefix)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIO, "Could not list sessions").
			WithKind(errors.KindPersistence)
	}
	inIndex := make(map[string]bool, len(indexed))
	for _, name := range indexed {
		inIndex[name] = true
	}

	out := &RepairOutput{}
	stored := make(map[string]bool)

	iter := input.Client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		name := strings.TrimPrefix(key, keyPrefix)
		out.Checked++

		data, err := input.Client.Get(ctx, key).Result()
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeIO, "Could not read session '%s'", name).
				WithKind(errors.KindPersistence).
				WithMeta("key", key)
		}

		if _, err := decodeRecord([]byte(data), key); err != nil {
			slog.Warn("Corrupted session", "key", key, "error", err)
			out.Corrupted = append(out.Corrupted, name)
			continue
		}

		stored[name] = true
		if !inIndex[name] {
			out.Unindexed = append(out.Unindexed, name)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIO, "Could not scan sessions").
			WithKind(errors.KindPersistence)
	}

	corrupted := make(map[string]bool, len(out.Corrupted))
	for _, name := range out.Corrupted {
		corrupted[name] = true
	}
	for _, name := range indexed {
		if !stored[name] && !corrupted[name] {
			out.Dangling = append(out.Dangling, name)
		}
	}

	sort.Strings(out.Corrupted)
	sort.Strings(out.Dangling)
	sort.Strings(out.Unindexed)

	if input.Fix {
		if err := applyRepair(ctx, input.Client, prefix, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func applyRepair(ctx context.Context, client redisclient.Client, prefix string, report *RepairOutput) error {
	if len(report.Corrupted)+len(report.Dangling)+len(report.Unindexed) == 0 {
		return nil
	}

	pipe := client.TxPipeline()
	for _, name := range report.Corrupted {
		pipe.Del(ctx, SessionKey(prefix, name))
		pipe.SRem(ctx, IndexKey(prefix), name)
	}
	for _, name := range report.Dangling {
		pipe.SRem(ctx, IndexKey(prefix), name)
	}
	for _, name := range report.Unindexed {
		pipe.SAdd(ctx, IndexKey(prefix), name)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeIO, "Could not repair sessions").
			WithKind(errors.KindPersistence)
	}

	slog.Info("Sessions repaired",
		"deleted", len(report.Corrupted),
		"unindexed", len(report.Dangling),
		"indexed", len(report.Unindexed),
	)
	return nil
}
