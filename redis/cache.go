package redis

import (
	"encoding/json"
	"expertai.com/nlpy/logger"
	"expertai.com/nlpy/types"
	"expertai.com/nlpy/utils"
	"fmt"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"time"
)

// DocCacheDB holds analyzed documents keyed by a hash of the
// reconstructed sentence text.
const DocCacheDB DB = 3

type DocCacheConfig struct {
	TTLHours int `envconfig:"NLPY_COMN_DOC_CACHE_TTL_HOURS" default:"24"`
}

// DocCache is the redis-backed pipeline.DocCache. Cache errors are
// logged and treated as misses; they never fail an extraction.
type DocCache struct {
	client     Client
	ttl        time.Duration
	nlpyLogger zerolog.Logger
}

func NewDocCache() (*DocCache, error) {
	nlpyLogger := logger.NewLogger("Doc cache")

	var cfg DocCacheConfig
	if err := envconfig.Process("", &cfg); err != nil {
		nlpyLogger.Error().Err(err).Msg("Could not read env config")
		return nil, err
	}
	client, err := NewClient(DocCacheDB)
	if err != nil {
		return nil, err
	}
	return &DocCache{
		client:     client,
		ttl:        time.Duration(cfg.TTLHours) * time.Hour,
		nlpyLogger: nlpyLogger,
	}, nil
}

func (cache *DocCache) Get(text string) (*types.Document, bool) {
	b, err := cache.client.GetRaw(cacheKey(text))
	if err != nil {
		return nil, false
	}
	var doc types.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		cache.nlpyLogger.Warn().Err(err).Msg("Dropping unreadable cached document")
		return nil, false
	}
	return &doc, true
}

func (cache *DocCache) Put(text string, doc *types.Document) {
	b, err := json.Marshal(doc)
	if err != nil {
		cache.nlpyLogger.Warn().Err(err).Msg("Could not marshal document for cache")
		return
	}
	if err := cache.client.SetRaw(cacheKey(text), b, cache.ttl); err != nil {
		cache.nlpyLogger.Warn().Err(err).Msg("Could not store document in cache")
	}
}

func (cache *DocCache) Close() error {
	return cache.client.Close()
}

func cacheKey(text string) string {
	return fmt.Sprintf("nlpy-doc-%016x", utils.HashString(text))
}
