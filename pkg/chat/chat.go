// Package chat is a thin client for the hosted language-model API used
// by the chatbot endpoints. The model is an opaque collaborator: prompt
// plus instruction string in, text out, no retry policy.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// PhoenixInstructions is the system instruction for the operational
// wildfire assistant served on /api/chat.
const PhoenixInstructions = "You are Phoenix AID, a wildfire prediction and management assistant designed to help with wildfire risk assessment, infrastructure protection recommendations, and emergency response coordination. You will be speaking to city officials, emergency responders, and infrastructure managers who need assistance with wildfire-related situations. Your job is to provide helpful, concise, and actionable advice about wildfires, safety measures, evacuation planning, and infrastructure protection. YOU ARE TO PROVIDE CONCISE RESPONSES MAX 3-4 SENTENCES. The user's prompt is -> "

// ReliefBotInstructions is the system instruction for the
// mental-health recovery assistant.
const ReliefBotInstructions = "You are a Mental Health Chatbot called ReliefBot designed to provide mental health services and help during a time of crisis (ie wildfires). You will be speaking to people who are experiencing this situation, your job is to calm people down and recommend them to use our ReliefFinder app to find their nearest relief center. YOU ARE TO PROVIDE CONCISE RESPONSES MAX 3-4 SENTENCES. The users prompt is -> "

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel    = "gemini-2.5-flash"
)

// Responder produces a text reply for a user prompt.
type Responder interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

// Client calls the Gemini generateContent REST API.
type Client struct {
	endpoint     string
	model        string
	apiKey       string
	instructions string
	hc           *http.Client
}

// NewClient creates a new client. If httpClient is nil, a default with
// timeout is used.
func NewClient(endpoint, model, apiKey, instructions string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	if model == "" {
		model = defaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		endpoint:     endpoint,
		model:        model,
		apiKey:       apiKey,
		instructions: instructions,
		hc:           httpClient,
	}
}

// NewClientFromEnv creates a client from GEMINI_ENDPOINT, GEMINI_MODEL
// and GEMINI_API_KEY.
func NewClientFromEnv(instructions string) *Client {
	return NewClient(
		os.Getenv("GEMINI_ENDPOINT"),
		os.Getenv("GEMINI_MODEL"),
		os.Getenv("GEMINI_API_KEY"),
		instructions,
		nil,
	)
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Respond sends the instruction string plus prompt and extracts the
// first candidate's text.
func (c *Client) Respond(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: c.instructions + prompt}}},
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "chat marshal request")
	}

	url := c.endpoint + "/" + c.model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", errors.Wrap(err, "chat new request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "chat request failed")
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("chat request failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errors.Wrap(err, "chat parse response")
	}
	if parsed.Error != nil {
		return "", errors.Errorf("chat api error: %s (%s)", parsed.Error.Message, parsed.Error.Status)
	}
	if len(parsed.Candidates) == 0 {
		return "", errors.New("chat api returned no candidates")
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("chat api returned empty text")
	}
	return text, nil
}
