package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	chatModel      = "gemini-1.5-flash-latest"

	// StandardReply is the canned fallback: off-topic questions, missing
	// API key and every provider failure all land here. Clients never see
	// a provider error.
	StandardReply = "Puedo ayudarte solo con recomendaciones de cortes, estilos, barba o facciones. ¿Quieres describir tu rostro o subir una foto?"

	systemPrompt = "Eres un asistente especializado exclusivamente en recomendaciones de cortes de cabello basadas en rostro, barba, estilo y facciones. " +
		"Si el usuario pregunta algo fuera de este contexto, debes responder con: '" + StandardReply + "'. " +
		"Nunca respondas con recomendaciones si no hay información válida. " +
		"Responde en español, muy breve (máximo 4 líneas), con 1-2 opciones y mantenimiento."
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages        []Message `json:"messages" binding:"required,min=1"`
	FaceDescription string    `json:"faceDescription"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// Client is a thin proxy to the Gemini generateContent endpoint. No
// retries: any failure degrades to StandardReply.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Chat forwards a relevant conversation to the provider. The returned
// reply is always usable; the bool reports whether the provider was
// actually consulted.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatResponse, bool) {
	if c.apiKey == "" {
		return ChatResponse{Reply: StandardReply}, false
	}

	contents := []geminiContent{
		{Role: "user", Parts: []geminiPart{{Text: systemPrompt}}},
	}
	if req.FaceDescription != "" {
		contents = append(contents, geminiContent{
			Role:  "user",
			Parts: []geminiPart{{Text: "Descripción del rostro del cliente: " + req.FaceDescription}},
		})
	}
	for _, m := range req.Messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: m.Content}}})
	}

	body := geminiRequest{
		Contents: contents,
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.75,
			TopK:            40,
			TopP:            0.9,
			MaxOutputTokens: 256,
		},
	}

	reply, err := c.generate(ctx, body)
	if err != nil || reply == "" {
		return ChatResponse{Reply: StandardReply}, false
	}
	return ChatResponse{Reply: reply}, true
}

func (c *Client) generate(ctx context.Context, body geminiRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, chatModel, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d", res.StatusCode)
	}

	var out geminiResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// -------- Wire types --------

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
