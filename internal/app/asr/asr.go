// Package asr defines the boundary to the speech-to-text capability.
// Providers may be absent at runtime; availability is resolved once at
// startup and carried as a value, so callers branch instead of probing.
package asr

import (
	"context"
	"fmt"
)

// ModelSize selects one of the whisper model variants.
type ModelSize string

const (
	ModelTiny   ModelSize = "tiny"
	ModelBase   ModelSize = "base"
	ModelSmall  ModelSize = "small"
	ModelMedium ModelSize = "medium"
	ModelLarge  ModelSize = "large"
)

// ParseModelSize validates a model size string.
func ParseModelSize(s string) (ModelSize, error) {
	switch m := ModelSize(s); m {
	case ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge:
		return m, nil
	default:
		return "", fmt.Errorf("unknown model size %q (tiny, base, small, medium, large)", s)
	}
}

// Segment is one timed span of the transcript.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is a successful transcription.
type Result struct {
	Transcript string    `json:"transcript"`
	Segments   []Segment `json:"segments"`
	Language   string    `json:"language"`
}

// Transcriber converts an audio file to text. A single synchronous call;
// the caller blocks until it returns.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, size ModelSize) (*Result, error)
}

// Capability wraps a Transcriber that may be absent. Provider errors are
// absorbed here and reported as unavailability, never raised to callers:
// the pipeline treats a missing transcript as a normal branch and falls
// back to manual input.
type Capability struct {
	t Transcriber
}

// Available builds a Capability backed by t.
func Available(t Transcriber) Capability {
	return Capability{t: t}
}

// Unavailable builds a Capability with no provider.
func Unavailable() Capability {
	return Capability{}
}

// Ok reports whether a provider is present.
func (c Capability) Ok() bool {
	return c.t != nil
}

// Transcribe runs the provider if present. ok is false when no provider
// is configured or the provider failed; the error, if any, is returned
// alongside for logging only and must not abort the submission.
func (c Capability) Transcribe(ctx context.Context, audioPath string, size ModelSize) (res *Result, ok bool, err error) {
	if c.t == nil {
		return nil, false, nil
	}
	res, err = c.t.Transcribe(ctx, audioPath, size)
	if err != nil {
		return nil, false, err
	}
	return res, true, nil
}
