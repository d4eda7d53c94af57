package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Matching)
	require.NotNil(t, cfg.Chat)
	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.PubSub)
	require.NotNil(t, cfg.TestRoutes)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultMaxMentees, cfg.Matching.DefaultMaxMentees)
	assert.Equal(t, defaultChatMaxBodyLength, cfg.Chat.MaxBodyLength)
	assert.Equal(t, defaultChatStreamBuffer, cfg.Chat.StreamBuffer)
	assert.Equal(t, defaultChatPingInterval, cfg.Chat.PingInterval)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Empty(t, cfg.PubSub.Provider)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Matching: &MatchingConfig{DefaultMaxMentees: 5, ListLimit: 20},
		Chat:     &ChatConfig{MaxBodyLength: 200},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5, cfg.Matching.DefaultMaxMentees)
	assert.Equal(t, 20, cfg.Matching.ListLimit)
	assert.Equal(t, 200, cfg.Chat.MaxBodyLength)
	assert.Equal(t, defaultChatStreamBuffer, cfg.Chat.StreamBuffer)
}
