// Package imagehost forwards uploaded media to the external image
// hosting provider and returns the hosted URL to store inline.
package imagehost

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"consulting-site/pkg/config"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned when the provider API key is missing.
// Callers must report this distinctly from invalid-file errors.
var ErrNotConfigured = errors.New("image host provider is not configured")

// Client represents a client for the image hosting provider
type Client struct {
	APIKey     string
	UploadURL  string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// UploadResult represents a successful upload response
type UploadResult struct {
	URL        string `json:"url"`
	ProviderID string `json:"provider_id"`
}

// providerResponse mirrors the provider's upload response envelope
type providerResponse struct {
	Data struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// NewClient creates a new image host client instance
func NewClient(cfg *config.ImageHostConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		APIKey:     cfg.APIKey,
		UploadURL:  cfg.UploadURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// Configured reports whether the provider credentials are present
func (c *Client) Configured() bool {
	return c.APIKey != ""
}

// Upload forwards the file content to the provider under the given
// folder label and returns the hosted URL and provider identifier
func (c *Client) Upload(fileName string, content io.Reader, folder string) (*UploadResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	c.Logger.Info("Uploading file to image host",
		zap.String("file_name", fileName),
		zap.String("folder", folder))

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		var err error
		defer func() {
			if cerr := writer.Close(); err == nil {
				err = cerr
			}
			pw.CloseWithError(err)
		}()

		if err = writer.WriteField("key", c.APIKey); err != nil {
			return
		}
		if folder != "" {
			if err = writer.WriteField("album", folder); err != nil {
				return
			}
		}
		var part io.Writer
		part, err = writer.CreateFormFile("image", fileName)
		if err != nil {
			return
		}
		_, err = io.Copy(part, content)
	}()

	req, err := http.NewRequest(http.MethodPost, c.UploadURL, pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image host request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image host response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Logger.Error("Image host rejected upload",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var parsed providerResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse image host response: %w", err)
	}
	if !parsed.Success || parsed.Data.URL == "" {
		return nil, fmt.Errorf("image host reported failure (status %d)", parsed.Status)
	}

	c.Logger.Info("File uploaded successfully",
		zap.String("url", parsed.Data.URL),
		zap.String("provider_id", parsed.Data.ID))

	return &UploadResult{
		URL:        parsed.Data.URL,
		ProviderID: parsed.Data.ID,
	}, nil
}
