package main

import (
	"expertai.com/nlpy/api"
	"expertai.com/nlpy/logger"
	"expertai.com/nlpy/nlp"
	"expertai.com/nlpy/pipeline"
	"expertai.com/nlpy/redis"
	"expertai.com/nlpy/types"
	"expertai.com/nlpy/worker"
	"fmt"
	"github.com/kelseyhightower/envconfig"
	"net/http"
	"os"
	"time"
)

type Config struct {
	ConfigPath     string `envconfig:"NLPY_CONFIG_PATH" default:""`
	RestAPIActive  bool   `envconfig:"NLPY_REST_API_ACTIVE" default:"false"`
	RestAPIPort    string `envconfig:"NLPY_REST_API_PORT" default:"10000"`
	DocCacheActive bool   `envconfig:"NLPY_DOC_CACHE_ACTIVE" default:"true"`
}

func main() {
	logger.SetupLogging()
	nlpyLogger := logger.NewLogger("Main")
	fatalErrLogger := nlpyLogger.Fatal().Caller()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	params := pipeline.ExtractorParams{}
	if config.ConfigPath != "" {
		cfgs, err := types.LoadConfigurations(config.ConfigPath)
		if err != nil {
			fatalErrLogger.Err(err).Msg("Failed to load configurations")
			os.Exit(1)
		}
		if len(cfgs) > 0 {
			nlpyLogger.Info().Str("config_name", cfgs[0].Name).Msg("Using extraction configuration")
			params.AnalysisFeatures = cfgs[0].AnalysisFeatures()
			params.ShowProgress = cfgs[0].Params.ShowProgress
		}
	}

	if config.DocCacheActive {
		cache, err := redis.NewDocCache()
		if err != nil {
			nlpyLogger.Warn().Err(err).Msg("Doc cache unavailable, continuing without it")
		} else {
			params.Cache = cache
		}
	}

	client, err := nlp.NewClient()
	if err != nil {
		fatalErrLogger.Err(err).Msg("Could not create NLP client")
		os.Exit(1)
	}

	extractor := pipeline.NewExtractor(client, client, params)

	if config.RestAPIActive {
		go func() {
			nlpyLogger.Info().Msg("Starting API service")
			apiRequest := &api.Request{
				Extractor: extractor,
			}
			http.HandleFunc("/", apiRequest.ProcessData)
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			nlpyLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, nil)
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}()
	}

	nlpyLogger.Info().Msg("Starting nlpy worker")
	for {
		rmqWorker, err := worker.New(extractor)
		if err != nil {
			nlpyLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			nlpyLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}
