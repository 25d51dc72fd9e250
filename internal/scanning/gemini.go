package scanning

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/wrenfield/scan-inbox/internal/item"
)

// Gemini implements the Scanner interface using Google Gemini.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a new Gemini Scanner instance.
func NewGemini(apiKey string, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini api key is required", ErrNoCredentials)
	}
	if modelName == "" {
		modelName = "gemini-2.5-pro"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// ScanImage sends the image and the extraction prompt to Gemini and parses
// the reply into items. The call runs under the caller's context so an
// abandoned scan aborts the in-flight request.
func (g *Gemini) ScanImage(ctx context.Context, imageData []byte, contentType string) ([]item.Item, string, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	pngData, err := prepareImage(imageData, contentType)
	if err != nil {
		return nil, "", err
	}

	// genai.ImageData wants the bare format suffix; prepareImage always
	// yields PNG.
	parts := []genai.Part{
		genai.ImageData("png", pngData),
		genai.Text(itemScanPrompt),
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		// Double-wrap so errors.Is still sees context.Canceled through
		// ErrUpstream when the caller abandons the scan.
		return nil, "", fmt.Errorf("%w: generating content: %w", ErrUpstream, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, "", fmt.Errorf("%w: no response from gemini", ErrUpstream)
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			reply.WriteString(string(text))
		}
	}

	raw := reply.String()
	items, err := parseItems(raw)
	if err != nil {
		return nil, raw, err
	}
	return items, raw, nil
}

// Close closes the Gemini client.
func (g *Gemini) Close() error {
	return g.client.Close()
}
