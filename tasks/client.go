package tasks

import (
	"expertai.com/nlpy/redis"
)

type Client struct {
	Extracts ExtractTasks
}

// NewClient is the preferred way of working with extraction task
// documents.
func NewClient() (Client, error) {
	extractsRedisClient, err := redis.NewClient(ExtractsDB)
	if err != nil {
		return Client{}, err
	}
	return Client{
		Extracts: ExtractTasks{client: extractsRedisClient},
	}, nil
}

func (client *Client) Close() {
	_ = client.Extracts.client.Close()
}
