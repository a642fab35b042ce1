package app

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"career-advisor/internal/cache"
	"career-advisor/internal/config"
	"career-advisor/internal/logger"
)

func TestBuildCache(t *testing.T) {
	log := logger.Discard()

	t.Run("unset address uses no-op cache", func(t *testing.T) {
		c := buildCache(config.Config{}, log)
		assert.IsType(t, &cache.NoOpCache{}, c)
	})

	t.Run("unreachable redis falls back to no-op", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		c := buildCache(config.Config{RedisAddr: addr}, log)
		assert.IsType(t, &cache.NoOpCache{}, c)
	})

	t.Run("reachable redis is used", func(t *testing.T) {
		mr := miniredis.RunT(t)

		c := buildCache(config.Config{RedisAddr: mr.Addr()}, log)
		assert.IsType(t, &cache.RedisCache{}, c)
		assert.NoError(t, c.Close())
	})
}

func TestBuildLLMWithoutKeyStillBuilds(t *testing.T) {
	client := buildLLM(config.Config{LLMBaseURL: "http://127.0.0.1:1", LLMModel: "m"}, logger.Discard())
	assert.NotNil(t, client)
}
