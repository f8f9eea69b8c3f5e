package leaderboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/league"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// RedisBoard keeps the ladder as a sorted set scored by rank, with one hash
// per player holding the display fields. Unranked players have a hash but no
// ladder member.
type RedisBoard struct {
	rdb    redis.Cmdable
	prefix string
}

// NewRedisBoard creates a RedisBoard using keys under prefix
func NewRedisBoard(rdb redis.Cmdable, prefix string) *RedisBoard {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisBoard{rdb: rdb, prefix: prefix}
}

// NewRedisClient opens a client and checks it answers
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// Ping reports whether Redis answers
func (b *RedisBoard) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

func (b *RedisBoard) ladderKey() string {
	return b.prefix + ladderKeySuffix
}

func (b *RedisBoard) playerKey(id string) string {
	return b.prefix + playerKeyInfix + id
}

// UpsertEntry writes the player's hash and ladder position in one transaction
func (b *RedisBoard) UpsertEntry(ctx context.Context, e domain.RankEntry) error {
	_, err := b.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, b.playerKey(e.PlayerID),
			fieldName, e.Name,
			fieldLevel, e.Level,
			fieldWins, e.Wins,
			fieldAvatar, e.Avatar,
		)
		if e.Rank > 0 {
			pipe.ZAdd(ctx, b.ladderKey(), &redis.Z{Score: float64(e.Rank), Member: e.PlayerID})
		} else {
			pipe.ZRem(ctx, b.ladderKey(), e.PlayerID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("upsert ladder entry %s: %w", e.PlayerID, err)
	}
	return nil
}

func (b *RedisBoard) TopN(ctx context.Context, n int) ([]domain.RankEntry, error) {
	if n <= 0 {
		return []domain.RankEntry{}, nil
	}
	members, err := b.rdb.ZRangeWithScores(ctx, b.ladderKey(), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read ladder: %w", err)
	}
	return b.hydrate(ctx, members)
}

// FindOpponents walks the ladder from the top down to the challenger's rank
// and keeps entries inside the level band until the page is full
func (b *RedisBoard) FindOpponents(ctx context.Context, q domain.OpponentQuery) ([]domain.RankEntry, error) {
	maxScore := "+inf"
	if q.BelowRank > 0 {
		maxScore = "(" + strconv.Itoa(q.BelowRank)
	}

	out := make([]domain.RankEntry, 0, q.Limit)
	for offset := int64(0); ; offset += scanBatch {
		members, err := b.rdb.ZRangeByScoreWithScores(ctx, b.ladderKey(), &redis.ZRangeBy{
			Min:    "1",
			Max:    maxScore,
			Offset: offset,
			Count:  scanBatch,
		}).Result()
		if err != nil {
			return nil, fmt.Errorf("scan ladder: %w", err)
		}
		entries, err := b.hydrate(ctx, members)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if league.Eligible(e, q) {
				out = append(out, e)
			}
		}
		if len(members) < scanBatch || (q.Limit > 0 && len(out) >= q.Limit) {
			break
		}
	}
	return league.Filter(out, q), nil
}

// hydrate loads the hashes for ladder members in one round trip
func (b *RedisBoard) hydrate(ctx context.Context, members []redis.Z) ([]domain.RankEntry, error) {
	if len(members) == 0 {
		return []domain.RankEntry{}, nil
	}

	pipe := b.rdb.Pipeline()
	cmds := make([]*redis.StringStringMapCmd, len(members))
	for i, m := range members {
		cmds[i] = pipe.HGetAll(ctx, b.playerKey(fmt.Sprint(m.Member)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("read player hashes: %w", err)
	}

	out := make([]domain.RankEntry, 0, len(members))
	for i, m := range members {
		id := fmt.Sprint(m.Member)
		fields := cmds[i].Val()
		if len(fields) == 0 {
			logger.FromContext(ctx).Warn(LogMsgEntryMissing, "player_id", id)
			continue
		}
		level, _ := strconv.Atoi(fields[fieldLevel])
		wins, _ := strconv.Atoi(fields[fieldWins])
		out = append(out, domain.RankEntry{
			PlayerID: id,
			Rank:     int(m.Score),
			Name:     fields[fieldName],
			Level:    level,
			Wins:     wins,
			Avatar:   fields[fieldAvatar],
		})
	}
	return out, nil
}
