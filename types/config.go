package types

import (
	"errors"
	"expertai.com/nlpy/logger"
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"sync"
)

const (
	// analysis features requested from the analyzer
	FeatureDependency = "dependency"
	FeatureKnowledge  = "knowledge"
)

type ExtractionParams struct {
	AnalysisFeatures []string `yaml:"analysis_features" json:"analysis_features"`
	ShowProgress     bool     `yaml:"show_progress" json:"show_progress"`
}

type Configuration struct {
	Name     string           `json:"name"`
	FilePath string           `json:"file_path"`
	Params   ExtractionParams `yaml:"params" json:"params"`
}

func (cfg Configuration) AnalysisFeatures() []string {
	if len(cfg.Params.AnalysisFeatures) == 0 {
		return []string{FeatureDependency, FeatureKnowledge}
	}
	return cfg.Params.AnalysisFeatures
}

func (cfg Configuration) CheckFeature(featureName string) bool {
	for _, feat := range cfg.AnalysisFeatures() {
		if feat == featureName {
			return true
		}
	}

	return false
}

func LoadConfigurations(dirPath string) ([]Configuration, error) {
	nlpyLogger := logger.NewLogger("LoadConfigurations")

	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	configChan := make(chan Configuration, len(files))
	for _, f := range files {
		// Skip dirs and non-yaml files
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}

		wg.Add(1)
		go func(file os.FileInfo) {
			defer wg.Done()
			cfg := Configuration{
				Name:     strings.Split(file.Name(), ".yaml")[0],
				FilePath: path.Join(dirPath, file.Name()),
			}
			buf, err := ioutil.ReadFile(cfg.FilePath)
			if err != nil {
				nlpyLogger.Err(err)
				return
			}
			if err := yaml.Unmarshal(buf, &cfg); err != nil {
				nlpyLogger.Err(err)
				return
			}

			for _, feat := range cfg.Params.AnalysisFeatures {
				if feat != FeatureDependency && feat != FeatureKnowledge {
					nlpyLogger.Err(errors.New("unknown analysis feature: " + feat))
					return
				}
			}

			configChan <- cfg
		}(f)
	}

	go func() {
		wg.Wait()
		close(configChan)
	}()

	configs := make([]Configuration, 0, len(configChan))
	for cfg := range configChan {
		configs = append(configs, cfg)
	}
	return configs, nil
}
