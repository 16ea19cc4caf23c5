// Package classifier is the client for the fire-risk image model. The
// model is an opaque collaborator behind an inference endpoint: image
// bytes in, integer class id in [0,6] out. The class table below is the
// single canonical mapping for the whole service.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
)

// FireClass describes one model output class.
type FireClass struct {
	Label       string
	Color       string
	Description string
}

// FireClasses maps a model class id to its label, severity color and
// user-facing description.
var FireClasses = map[int]FireClass{
	0: {"🔥 Extreme Fire Damage", "#ff1a1a", "Severe fire damage detected. Immediate evacuation advised."},
	1: {"🔥 High Fire Risk", "#ff4d4d", "Extensive burned zones detected. Avoid entry until cleared by officials."},
	2: {"⚠️ Moderate Fire Risk", "#f39c12", "Partial vegetation loss or heat stress detected. Exercise caution."},
	3: {"🌿 Low Fire Risk", "#27ae60", "Area appears mostly safe with minimal fire indicators."},
	4: {"🌳 Healthy Vegetation", "#2ecc71", "No burn indicators detected. Area is green and stable."},
	5: {"🔥 Active Fire", "#e74c3c", "Active fire sources detected. Immediate response required."},
	6: {"🟤 Burned Area", "#b87333", "Region already burned. No ongoing fire but vegetation lost."},
}

// Analysis formats the user-facing analysis string for a class id,
// with a generic fallback for ids outside the table.
func Analysis(classID int) string {
	if fc, ok := FireClasses[classID]; ok {
		return fmt.Sprintf("%s\n\n%s\n\nFire Risk Class: %d", fc.Label, fc.Description, classID)
	}
	return fmt.Sprintf("Fire Risk Class: %d\n\nAnalysis completed successfully.", classID)
}

// Predictor classifies an uploaded image into a fire-risk class.
type Predictor interface {
	Classify(ctx context.Context, filename string, image []byte) (int, error)
	Available() bool
}

// Client calls an external inference service that hosts the model
// weights.
type Client struct {
	url string
	hc  *http.Client
}

// NewClient creates a new client. If httpClient is nil, a default with
// timeout is used.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{url: url, hc: httpClient}
}

// NewClientFromEnv creates a client from CLASSIFIER_URL. An empty value
// leaves the classifier unavailable; the rest of the service keeps
// running without image analysis.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("CLASSIFIER_URL"), nil)
}

// Available reports whether an inference endpoint is configured.
func (c *Client) Available() bool {
	return c.url != ""
}

type classifyResponse struct {
	ClassID    *int `json:"class_id"`
	Prediction *int `json:"prediction"`
}

// Classify uploads the image as multipart form data and returns the
// predicted class id.
func (c *Client) Classify(ctx context.Context, filename string, image []byte) (int, error) {
	if !c.Available() {
		return 0, errors.New("classifier endpoint not configured")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return 0, errors.Wrap(err, "classifier build request")
	}
	if _, err := fw.Write(image); err != nil {
		return 0, errors.Wrap(err, "classifier build request")
	}
	if err := mw.Close(); err != nil {
		return 0, errors.Wrap(err, "classifier build request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return 0, errors.Wrap(err, "classifier new request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "classifier request failed")
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, errors.Errorf("classifier request failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var parsed classifyResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return 0, errors.Wrap(err, "classifier parse response")
	}
	switch {
	case parsed.ClassID != nil:
		return *parsed.ClassID, nil
	case parsed.Prediction != nil:
		return *parsed.Prediction, nil
	default:
		return 0, errors.New("classifier response missing class id")
	}
}
