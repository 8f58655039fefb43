// Package gemini performs the single outbound call to the Gemini
// generateContent REST API and normalizes every outcome to a tagged
// result that flattens to a plain string at the response boundary.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultBaseURL is the fixed production generateContent endpoint.
const DefaultBaseURL = "https://generativestorybooks.googleapis.com/v1beta/models/gemini-2.5-flash-preview-09-2025:generateContent"

const requestTimeout = 30 * time.Second

// The exact sentences the browser client keys off. Callers distinguish
// failure from generated prose only by these prefixes, so they must not
// change.
const (
	msgKeyMissing       = "Error: GEMINI_API_KEY is not set. Set it in your environment to enable AI features."
	msgNoText           = "Error: No valid text returned from Gemini."
	msgCallFailedPrefix = "Error calling Gemini API: "
)

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeConfigMissing
	OutcomeTransportFailure
	OutcomeShapeError
)

// Outcome is the result of one Generate call. Exactly one of the failure
// kinds or Success applies; Err carries detail for transport failures.
type Outcome struct {
	Kind OutcomeKind
	Text string
	Err  error
}

// Flatten collapses the outcome into the wire string: the generated text
// on success, or one of the fixed error sentences otherwise.
func (o Outcome) Flatten() string {
	switch o.Kind {
	case OutcomeSuccess:
		return o.Text
	case OutcomeConfigMissing:
		return msgKeyMissing
	case OutcomeTransportFailure:
		return msgCallFailedPrefix + o.Err.Error()
	default:
		return msgNoText
	}
}

// Provider is the generation surface the API handlers depend on.
type Provider interface {
	Generate(ctx context.Context, userQuery, systemPrompt string) Outcome
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given endpoint. An empty baseURL
// falls back to DefaultBaseURL; an empty apiKey makes every Generate
// return OutcomeConfigMissing without touching the network.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Wire types for the generateContent request and response. Response
// fields are pointers where a missing key must be distinguishable from a
// zero value.
type generateRequest struct {
	Contents          []reqContent `json:"contents"`
	SystemInstruction reqContent   `json:"systemInstruction"`
}

type reqContent struct {
	Parts []reqPart `json:"parts"`
}

type reqPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content *candidateContent `json:"content"`
}

type candidateContent struct {
	Parts []candidatePart `json:"parts"`
}

type candidatePart struct {
	Text *string `json:"text"`
}

func (c *Client) logger() *log.Entry {
	return log.WithField("component", "gemini")
}

// Generate issues one POST to the generateContent endpoint and returns
// the tagged outcome. One call, one outcome, no retries.
func (c *Client) Generate(ctx context.Context, userQuery, systemPrompt string) Outcome {
	if c.apiKey == "" {
		c.logger().Warn("GEMINI_API_KEY is not set, skipping upstream call")
		return Outcome{Kind: OutcomeConfigMissing}
	}

	payload := generateRequest{
		Contents:          []reqContent{{Parts: []reqPart{{Text: userQuery}}}},
		SystemInstruction: reqContent{Parts: []reqPart{{Text: systemPrompt}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Outcome{Kind: OutcomeTransportFailure, Err: errors.Wrap(err, "encoding request")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return Outcome{Kind: OutcomeTransportFailure, Err: errors.Wrap(err, "building request")}
	}
	req.Header.Set("Content-Type", "application/json")

	q := req.URL.Query()
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger().WithError(err).Error("request to Gemini failed")
		return Outcome{Kind: OutcomeTransportFailure, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.logger().WithField("status", resp.Status).Error("Gemini returned non-2xx status")
		return Outcome{Kind: OutcomeTransportFailure, Err: errors.Errorf("unexpected status %s", resp.Status)}
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger().WithError(err).Error("failed to decode Gemini response")
		return Outcome{Kind: OutcomeTransportFailure, Err: errors.Wrap(err, "decoding response")}
	}

	text, ok := extractText(decoded)
	if !ok {
		c.logger().Warn("Gemini response carried no text")
		return Outcome{Kind: OutcomeShapeError}
	}
	return Outcome{Kind: OutcomeSuccess, Text: text}
}

// extractText walks candidates[0].content.parts[0].text. Every link may
// be absent independently; any missing link yields the shape error.
func extractText(resp generateResponse) (string, bool) {
	if len(resp.Candidates) == 0 {
		return "", false
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", false
	}
	text := content.Parts[0].Text
	if text == nil {
		return "", false
	}
	return *text, true
}
