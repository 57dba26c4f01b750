package main

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultRegion = "us-central1"
	defaultModel  = "gemini-2.5-flash"
)

// GeminiConfig selects the backend and model used for theme naming.
// An APIKey selects the Gemini API; otherwise Vertex AI is used with
// Application Default Credentials (GOOGLE_APPLICATION_CREDENTIALS).
type GeminiConfig struct {
	APIKey    string
	ProjectID string
	Region    string
	Model     string
	Mode      ThemeMode
}

// Enabled reports whether enough is configured to reach a model.
func (c GeminiConfig) Enabled() bool {
	return c.APIKey != "" || c.ProjectID != ""
}

// GeminiClient wraps the Google GenAI client.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	mode      ThemeMode
}

// NewGeminiClient creates a client for the configured backend.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	cc := &genai.ClientConfig{}
	if cfg.APIKey != "" {
		cc.APIKey = cfg.APIKey
		cc.Backend = genai.BackendGeminiAPI
	} else {
		if cfg.ProjectID == "" {
			return nil, fmt.Errorf("gemini: project ID or API key required")
		}
		if cfg.Region == "" {
			cfg.Region = defaultRegion
		}
		cc.Project = cfg.ProjectID
		cc.Location = cfg.Region
		cc.Backend = genai.BackendVertexAI
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Mode == "" {
		cfg.Mode = ThemeLabeled
	}
	return &GeminiClient{
		client:    client,
		modelName: cfg.Model,
		mode:      cfg.Mode,
	}, nil
}

// Model returns the model name used for generation.
func (g *GeminiClient) Model() string {
	return g.modelName
}

// Close releases resources held by the client.
func (g *GeminiClient) Close() error {
	return nil
}
