// Package whisper implements the transcription boundary over the OpenAI
// audio API, or any whisper server speaking the same protocol.
package whisper

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/sashabaranov/go-openai"

	"lokgeet/internal/app/asr"
)

// RemoteTranscriber transcribes audio through the OpenAI-compatible API.
// The client is created lazily and reused for the lifetime of the process.
type RemoteTranscriber struct {
	apiKey  string
	baseURL string

	once   sync.Once
	client *openai.Client
}

// NewRemoteTranscriber creates a RemoteTranscriber. baseURL may be empty
// to use the hosted API; set it to target a self-hosted whisper server.
func NewRemoteTranscriber(apiKey, baseURL string) *RemoteTranscriber {
	return &RemoteTranscriber{apiKey: apiKey, baseURL: baseURL}
}

func (rt *RemoteTranscriber) getClient() *openai.Client {
	rt.once.Do(func() {
		cfg := openai.DefaultConfig(rt.apiKey)
		if rt.baseURL != "" {
			cfg.BaseURL = rt.baseURL
		}
		rt.client = openai.NewClientWithConfig(cfg)
	})
	return rt.client
}

// model maps the size selector onto the wire model name. The hosted API
// serves a single whisper model; size variants only exist on self-hosted
// servers, which accept the bare size as a model name.
func (rt *RemoteTranscriber) model(size asr.ModelSize) string {
	if rt.baseURL != "" && size != "" {
		return string(size)
	}
	return openai.Whisper1
}

// Transcribe sends the audio file for transcription and returns the
// transcript with timed segments and the detected language.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, audioPath string, size asr.ModelSize) (*asr.Result, error) {
	req := openai.AudioRequest{
		Model:    rt.model(size),
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	resp, err := rt.getClient().CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("createTranscription failed: %w", err)
	}

	segments := make([]asr.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, asr.Segment{
			Start: s.Start,
			End:   s.End,
			Text:  s.Text,
		})
	}

	transcript := strings.TrimSpace(resp.Text)
	if transcript == "" && len(segments) > 0 {
		transcript = strings.Join(lo.Map(segments, func(s asr.Segment, _ int) string {
			return strings.TrimSpace(s.Text)
		}), " ")
	}

	return &asr.Result{
		Transcript: transcript,
		Segments:   segments,
		Language:   resp.Language,
	}, nil
}

// Resolve inspects the configuration once and returns the ASR capability:
// available when an API key or a self-hosted server is configured,
// unavailable otherwise.
func Resolve(apiKey, baseURL string) asr.Capability {
	if apiKey == "" && baseURL == "" {
		return asr.Unavailable()
	}
	return asr.Available(NewRemoteTranscriber(apiKey, baseURL))
}
