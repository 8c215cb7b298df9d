package api

import (
	"encoding/json"
	"expertai.com/nlpy/pipeline"
	"expertai.com/nlpy/types"
	"io/ioutil"
	"net/http"
)

type Request struct {
	Extractor *pipeline.Extractor
}

type response struct {
	Features        [][]types.Features `json:"features"`
	FailedSentences []int              `json:"failed_sentences,omitempty"`
}

// ProcessData extracts features for a POSTed JSON list of tokenized
// sentences. Sentences whose analysis fails are skipped and reported in
// failed_sentences.
func (req *Request) ProcessData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	requestLogger := makeRequestLogger(r)

	if r.Method != "POST" {
		requestLogger.Err(nil).Int("status", http.StatusMethodNotAllowed).Msg("Only 'POST' method is allowed here")
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}

	msg, err := ioutil.ReadAll(r.Body)
	if err != nil {
		requestLogger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not read request body")
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	var sentences [][]string
	if err := json.Unmarshal(msg, &sentences); err != nil {
		requestLogger.Err(err).Int("status", http.StatusBadRequest).Msg("Request body is not a JSON list of token lists")
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	requestLogger.Info().Int("sentence_count", len(sentences)).Msg("Starting extraction for request from API")
	features, failed := req.Extractor.ExtractSafe(sentences)

	buf, err := json.Marshal(response{Features: features, FailedSentences: failed})
	if err != nil {
		requestLogger.Err(err).Int("status", http.StatusInternalServerError).Msg("Failed to marshal response")
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(buf)
	requestLogger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}
