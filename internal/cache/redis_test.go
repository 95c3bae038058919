package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeRedisClient struct {
	FakeCache
	pingErr error
}

func (f *fakeRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("", f.pingErr)
}

func TestNewRedisClient(t *testing.T) {
	old := redisNewClient
	t.Cleanup(func() { redisNewClient = old })

	// ping failure surfaces as a constructor error
	redisNewClient = func(opt *redis.Options) redisClient {
		return &fakeRedisClient{pingErr: errors.New("refused")}
	}
	_, err := NewRedisClient("127.0.0.1:6379", "", 0)
	require.Error(t, err)

	// options pass through
	var got *redis.Options
	redisNewClient = func(opt *redis.Options) redisClient {
		got = opt
		return &fakeRedisClient{}
	}
	c, err := NewRedisClient("10.0.0.1:6380", "pw", 2)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, "10.0.0.1:6380", got.Addr)
	require.Equal(t, "pw", got.Password)
	require.Equal(t, 2, got.DB)
}
