// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"net/http"
	"time"
)

// mistralProvider implements the Provider interface using Mistral's
// chat completions API, which follows the OpenAI wire format.
type mistralProvider struct {
	config ProviderConfig
	client *http.Client
}

// newMistral creates a new Mistral provider.
func newMistral(cfg ProviderConfig) *mistralProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mistral.ai/v1"
	}
	return &mistralProvider{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *mistralProvider) Name() string { return "mistral" }

// GenerateJSON sends a chat completion request in JSON-object response
// mode. Mistral accepts the same response_format as OpenAI.
func (p *mistralProvider) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body := chatRequest{
		Model: p.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    0.7,
		MaxTokens:      1500,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	return doChat(ctx, p.client, p.config, "mistral", body)
}
