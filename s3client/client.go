package s3client

import (
	"expertai.com/nlpy/logger"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/kelseyhightower/envconfig"
	"strings"
)

type Config struct {
	BucketName      string `envconfig:"NLPY_STORAGE_CONTAINER_NAME" required:"true"`
	Region          string `envconfig:"NLPY_STORAGE_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"NLPY_STORAGE_ACCESS_ID" default:""`
	SecretAccessKey string `envconfig:"NLPY_STORAGE_SECRET_KEY" default:""`
}

// Client moves extraction payloads through S3: tokenized sentence files
// in, feature result files out. Credentials fall back to the instance
// role when no static keys are configured.
type Client struct {
	sess       *session.Session
	bucketName string
}

var clientLogger = logger.NewLogger("S3 client")

func New() (*Client, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		clientLogger.Error().Err(err).Msg("Failed to get proper variables from environment")
		return nil, err
	}

	awsConfig := aws.Config{Region: &config.Region}
	if config.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			config.AccessKeyID,
			config.SecretAccessKey,
			"",
		)
	}
	sess, err := session.NewSession(&awsConfig)
	if err != nil {
		clientLogger.Error().Err(err).Msg("Failed to create S3 session")
		return nil, err
	}
	return &Client{
		sess:       sess,
		bucketName: config.BucketName,
	}, nil
}

func (client *Client) Upload(data string, key string) error {
	uploader := s3manager.NewUploader(client.sess)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: &client.bucketName,
		Key:    &key,
		Body:   strings.NewReader(data),
	})
	return err
}

func (client *Client) Download(key string) ([]byte, error) {
	downloader := s3manager.NewDownloader(client.sess)
	buf := aws.NewWriteAtBuffer([]byte{})
	_, err := downloader.Download(buf, &s3.GetObjectInput{
		Bucket: &client.bucketName,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
