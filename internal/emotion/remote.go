package emotion

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteClassifier delegates scoring to a DeepFace-style facial-emotion
// service over HTTP. The service is asked not to require a detected face, so
// frames without a clear face still come back with best-effort scores.
type RemoteClassifier struct {
	baseURL    string
	httpClient *http.Client
}

func NewRemoteClassifier(baseURL string) *RemoteClassifier {
	return &RemoteClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type analyzeRequest struct {
	Image            string   `json:"img"`
	Actions          []string `json:"actions"`
	EnforceDetection bool     `json:"enforce_detection"`
}

// The service replies with either a per-detected-face list or a single
// emotion map. Only the first face is used.
type analyzeResponse struct {
	Results []faceResult       `json:"results"`
	Emotion map[string]float64 `json:"emotion"`
	Error   string             `json:"error"`
}

type faceResult struct {
	Emotion         map[string]float64 `json:"emotion"`
	DominantEmotion string             `json:"dominant_emotion"`
}

// Ping checks that the emotion service answers at all. It is called once at
// startup to decide between the remote and synthetic variants.
func (c *RemoteClassifier) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("emotion service unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("emotion service unhealthy: status %d", resp.StatusCode)
	}

	return nil
}

func (c *RemoteClassifier) Classify(ctx context.Context, img image.Image) (Scores, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}

	reqBody := analyzeRequest{
		Image:            "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Actions:          []string{"emotion"},
		EnforceDetection: false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/analyze", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("emotion service error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var analyzeResp analyzeResponse
	if err := json.Unmarshal(body, &analyzeResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if analyzeResp.Error != "" {
		return nil, fmt.Errorf("emotion service error: %s", analyzeResp.Error)
	}

	emotions := analyzeResp.Emotion
	if len(analyzeResp.Results) > 0 {
		emotions = analyzeResp.Results[0].Emotion
	}
	if len(emotions) == 0 {
		return nil, fmt.Errorf("no emotion scores in response")
	}

	scores := make(Scores, len(Labels))
	for _, label := range Labels {
		scores[label] = Round2(emotions[label])
	}

	return scores, nil
}
