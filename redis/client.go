package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/bsm/redislock"
	"github.com/go-redis/redis/v8"
	"github.com/kelseyhightower/envconfig"
	"time"
)

type DB int
type ReleaseLock func() error

type Client struct {
	client         redis.UniversalClient
	locker         *redislock.Client
	lockExpiration time.Duration
}

var ctx = context.Background()

type Config struct {
	LockExpirationSeconds   int     `envconfig:"NLPY_COMN_REDIS_LOCK_EXPIRATION" default:"3"`
	Host                    string  `envconfig:"NLPY_COMN_REDIS_HOST" required:"true"`
	Port                    string  `envconfig:"NLPY_COMN_REDIS_PORT" required:"true"`
	HASentinelPort          string  `envconfig:"NLPY_COMN_REDIS_HA_SENTINEL_PORT" default:"26379"`
	HASentinelMasterName    string  `envconfig:"NLPY_COMN_REDIS_HA_MASTER_NAME" default:"mymaster"`
	Password                string  `envconfig:"NLPY_COMN_REDIS_AUTH_PASSWORD" default:"0"`
	AuthRequired            bool    `envconfig:"NLPY_COMN_REDIS_AUTH_REQUIRED" default:"false"`
	HAMode                  bool    `envconfig:"NLPY_COMN_REDIS_HA_MODE" default:"false"`
	HASentinelSocketTimeout float32 `envconfig:"NLPY_COMN_REDIS_SOCKET_TIMEOUT" default:"0.5"`
}

func NewClient(db DB) (Client, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Client{}, err
	}
	var client redis.UniversalClient
	if cfg.HAMode {
		client = CreateClusterClient(&cfg, db)
	} else {
		client = CreateClient(&cfg, db)
	}
	return Client{
		client:         client,
		locker:         redislock.New(client),
		lockExpiration: time.Duration(cfg.LockExpirationSeconds) * time.Second,
	}, nil
}

func CreateClusterClient(cfg *Config, db DB) *redis.ClusterClient {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.HASentinelPort)
	timeout := time.Duration(cfg.HASentinelSocketTimeout) * time.Second
	options := redis.FailoverOptions{
		SentinelAddrs: []string{addr},
		ReadTimeout:   timeout,
		WriteTimeout:  timeout,
		MaxRetries:    6,
		DB:            int(db),
		MasterName:    cfg.HASentinelMasterName,
	}
	if cfg.AuthRequired {
		options.Password = cfg.Password
	}
	return redis.NewFailoverClusterClient(&options)
}

func CreateClient(cfg *Config, db DB) *redis.Client {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	options := redis.Options{
		Addr:       addr,
		MaxRetries: 6,
		DB:         int(db),
	}
	if cfg.AuthRequired {
		options.Password = cfg.Password
	}
	return redis.NewClient(&options)
}

func (client *Client) GetJSONDocument(redisKey string, doc interface{}) error {
	b, err := client.GetRaw(redisKey)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, doc)
}

func (client *Client) SetJSONDocument(redisKey string, doc interface{}) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return client.SetRaw(redisKey, b, 0)
}

func (client *Client) GetRaw(redisKey string) ([]byte, error) {
	response := client.client.Get(ctx, redisKey)
	if response.Err() != nil {
		return nil, response.Err()
	}
	return response.Bytes()
}

func (client *Client) SetRaw(redisKey string, value []byte, expiration time.Duration) error {
	return client.client.Set(ctx, redisKey, value, expiration).Err()
}

// Lock obtains a distributed lock guarding redisKey against concurrent
// writers from other worker replicas.
func (client *Client) Lock(redisKey string) (ReleaseLock, error) {
	options := redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 30),
	}
	lock, err := client.locker.Obtain(ctx, fmt.Sprintf("lock-%s", redisKey), client.lockExpiration, &options)
	if err != nil {
		return nil, err
	}
	return func() error {
		return lock.Release(ctx)
	}, nil
}

func (client *Client) Close() error {
	return client.client.Close()
}
