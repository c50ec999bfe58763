package stt

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/msageha/taskscribe/internal/logger"
	"github.com/msageha/taskscribe/internal/model"
)

const transcribePrompt = "Transcribe this meeting recording verbatim. " +
	"Return only the spoken text as plain prose, no timestamps, no speaker labels, no commentary."

var audioMIMETypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mp3",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
}

// Gemini transcribes audio through the Gemini API.
type Gemini struct {
	apiKey string
	model  string
	logger logger.Logger
}

func NewGemini(apiKey, geminiModel string, log logger.Logger) *Gemini {
	if geminiModel == "" {
		geminiModel = "gemini-2.5-flash"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Gemini{apiKey: apiKey, model: geminiModel, logger: log}
}

// Transcribe uploads the audio inline and returns the transcript. All
// failures (unreadable file, unsupported format, transport error,
// empty result) surface as *model.TranscriptionError.
func (g *Gemini) Transcribe(ctx context.Context, audioPath string) (string, error) {
	mimeType, ok := audioMIMETypes[strings.ToLower(filepath.Ext(audioPath))]
	if !ok {
		return "", &model.TranscriptionError{Msg: "unsupported audio format " + filepath.Ext(audioPath)}
	}

	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", &model.TranscriptionError{Msg: "read audio file", Err: err}
	}
	if len(data) == 0 {
		return "", &model.TranscriptionError{Msg: "audio file is empty"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &model.TranscriptionError{Msg: "create client", Err: err}
	}

	g.logger.Info(ctx, "Transcribing %s (%d bytes) with %s", audioPath, len(data), g.model)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcribePrompt),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", &model.TranscriptionError{Msg: "generate content", Err: err}
	}

	var text string
	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &model.TranscriptionError{Msg: "service returned an empty transcript"}
	}
	return text, nil
}
