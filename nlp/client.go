package nlp

import (
	"bytes"
	"encoding/json"
	"expertai.com/nlpy/logger"
	"expertai.com/nlpy/types"
	"fmt"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"io/ioutil"
	"net/http"
	"time"
)

type Config struct {
	Host string `envconfig:"NLPY_NLP_API_HOST" required:"true"`
	Port string `envconfig:"NLPY_NLP_API_PORT" required:"true"`
	// 0 disables the client side timeout; a hung analyze call then
	// blocks its caller, matching the synchronous pipeline contract.
	TimeoutSeconds int `envconfig:"NLPY_NLP_API_TIMEOUT" default:"0"`
}

// Client is the REST implementation of Analyzer and KnowledgeGraph.
type Client struct {
	baseURL    string
	httpClient *http.Client
	nlpyLogger *zerolog.Logger
}

func NewClient() (*Client, error) {
	nlpyLogger := logger.NewLogger("NLP client")

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		nlpyLogger.Error().Err(err).Msg("Could not read env config")
		return nil, err
	}

	return &Client{
		baseURL: fmt.Sprintf("http://%s:%s", config.Host, config.Port),
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		nlpyLogger: &nlpyLogger,
	}, nil
}

type analyzeRequest struct {
	Text    string          `json:"text"`
	Options AnalysisOptions `json:"options"`
}

func (client *Client) Analyze(text string, options AnalysisOptions) (*types.Document, error) {
	var doc types.Document
	err := client.post("/api/analyze", analyzeRequest{Text: text, Options: options}, &doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

type linkedSynconsRequest struct {
	Params LinkParams `json:"params"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
}

func (client *Client) LinkedSyncons(params LinkParams, offset int, limit int) (*LinkedSyncons, error) {
	var linked LinkedSyncons
	err := client.post("/api/kgraph/linked-syncons", linkedSynconsRequest{
		Params: params,
		Offset: offset,
		Limit:  limit,
	}, &linked)
	if err != nil {
		return nil, err
	}
	return &linked, nil
}

func (client *Client) post(endpoint string, request interface{}, response interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	url := client.baseURL + endpoint
	resp, err := client.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		client.nlpyLogger.Err(err).Str("url", url).Msg("Request to analysis service failed")
		return err
	}
	defer resp.Body.Close()

	buf, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		client.nlpyLogger.Error().
			Str("url", url).
			Int("status", resp.StatusCode).
			Msg("Analysis service returned non-OK status")
		return fmt.Errorf("analysis service returned status %d: %s", resp.StatusCode, string(buf))
	}
	return json.Unmarshal(buf, response)
}
