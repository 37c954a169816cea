package container

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gdugdh24/matchcore/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Storage:   config.StorageConfig{Type: config.StorageMemory},
		JWT:       config.JWTConfig{AccessSecret: "0123456789abcdef0123456789abcdef"},
		RateLimit: config.RateLimitConfig{RPS: 10, Burst: 10},
	}
}

func TestNewContainer_Memory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, err := NewContainer(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.Memory)
	assert.Nil(t, c.DB)
	assert.Nil(t, c.Redis)

	w := httptest.NewRecorder()
	c.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewContainer_WithRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	cfg := memoryConfig()
	cfg.Redis = config.RedisConfig{Host: mr.Host(), Port: port}

	c, err := NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, c.Redis)
	assert.NoError(t, c.Close())
}

func TestNewContainer_UnknownStorage(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Type = "mongo"

	_, err := NewContainer(context.Background(), cfg)
	assert.Error(t, err)
}
