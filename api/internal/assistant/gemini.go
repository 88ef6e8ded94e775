package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini — тот же ментор, но напрямую через Gemini API (AI_PROVIDER=gemini).
type Gemini struct {
	APIKey string
	Model  string
	Log    *slog.Logger
}

func NewGemini(apiKey, model string, log *slog.Logger) *Gemini {
	if log == nil {
		log = slog.Default()
	}
	return &Gemini{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
		Log:    log,
	}
}

func (g *Gemini) Ask(ctx context.Context, question string) string {
	if g.APIKey == "" {
		g.Log.Error("gemini: GEMINI_API_KEY is empty")
		return msgConnError
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		g.Log.Error("gemini: client", "error", err)
		return msgConnError
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.Model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(BasePrompt)}}
	m.SetTemperature(0.4)

	resp, err := m.GenerateContent(ctx, genai.Text(question))
	if err != nil {
		if isTimeout(err) {
			return msgTimeout
		}
		g.Log.Warn("gemini: generate", "error", err, "model", g.Model)
		return msgBadStatus
	}
	if txt := strings.TrimSpace(firstText(resp)); txt != "" {
		return txt
	}
	return msgNoAnswer
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
