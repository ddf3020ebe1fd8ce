package cache

import (
	"context"
	"delivery-route-optimizer/internal/adapters/repositories"
	"delivery-route-optimizer/internal/platform/db"
	"delivery-route-optimizer/internal/ports"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

// exerciseCache runs the behavior every DistanceCache implementation shares.
func exerciseCache(t *testing.T, c ports.DistanceCache) {
	t.Helper()
	ctx := context.Background()

	got, err := c.GetMany(ctx, "a", []string{"b", "c"})
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, c.PutMany(ctx, "a", map[string]int64{"b": 1200, "c": 3400}))
	require.NoError(t, c.PutMany(ctx, "a", map[string]int64{"c": 3500}))
	require.NoError(t, c.PutMany(ctx, "a", nil))

	got, err = c.GetMany(ctx, "a", []string{"b", "c", "d", "b", " "})
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"b": 1200, "c": 3500}, got)

	// Pairs are directional keys; the reverse lookup is a miss.
	got, err = c.GetMany(ctx, "b", []string{"a"})
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = c.GetMany(ctx, "a", nil)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = c.GetMany(ctx, "", []string{"b"})
	require.Error(t, err)
	require.Error(t, c.PutMany(ctx, "", map[string]int64{"b": 1}))
}

func TestMemoryDistanceCache(t *testing.T) {
	c := NewMemoryDistanceCache()
	exerciseCache(t, c)
	require.Equal(t, 2, c.Len())
}

func TestSqliteDistanceCache(t *testing.T) {
	conn, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, repositories.InitSchema(context.Background(), conn))

	exerciseCache(t, NewSqliteDistanceCache(conn))
}

func TestSqliteDistanceCacheNilDB(t *testing.T) {
	_, err := NewSqliteDistanceCache(nil).GetMany(context.Background(), "a", []string{"b"})
	require.ErrorContains(t, err, "db is nil")
}

func TestRedisDistanceCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := OpenRedis(mr.Addr(), "", 0)
	defer client.Close()

	c := NewRedisDistanceCache(client, time.Hour)
	exerciseCache(t, c)

	require.Equal(t, "1200", mr.HGet(redisKeyPrefix+"a", "b"))
	require.Equal(t, time.Hour, mr.TTL(redisKeyPrefix+"a"))

	mr.FastForward(2 * time.Hour)
	got, err := c.GetMany(context.Background(), "a", []string{"b"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestRedisDistanceCacheCorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	client := OpenRedis(mr.Addr(), "", 0)
	defer client.Close()

	mr.HSet(redisKeyPrefix+"a", "b", "not-a-number")

	_, err := NewRedisDistanceCache(client, 0).GetMany(context.Background(), "a", []string{"b"})
	require.ErrorContains(t, err, "parse")
}

func TestOpenRedisEmptyAddr(t *testing.T) {
	require.Nil(t, OpenRedis("", "", 0))
}
