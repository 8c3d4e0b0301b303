package asr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTranscriber struct {
	res *Result
	err error
}

func (s *stubTranscriber) Transcribe(ctx context.Context, audioPath string, size ModelSize) (*Result, error) {
	return s.res, s.err
}

func TestParseModelSize(t *testing.T) {
	for _, valid := range []string{"tiny", "base", "small", "medium", "large"} {
		got, err := ParseModelSize(valid)
		require.NoError(t, err)
		assert.Equal(t, ModelSize(valid), got)
	}

	_, err := ParseModelSize("huge")
	assert.Error(t, err)
}

func TestCapability_Unavailable(t *testing.T) {
	cap := Unavailable()

	assert.False(t, cap.Ok())
	res, ok, err := cap.Transcribe(context.Background(), "clip.wav", ModelSmall)
	assert.Nil(t, res)
	assert.False(t, ok)
	assert.NoError(t, err, "absence of a provider is not an error")
}

func TestCapability_AbsorbsProviderErrors(t *testing.T) {
	cap := Available(&stubTranscriber{err: errors.New("boom")})

	res, ok, err := cap.Transcribe(context.Background(), "clip.wav", ModelSmall)

	assert.Nil(t, res)
	assert.False(t, ok, "a failing provider reports as unavailable")
	assert.Error(t, err, "the cause is surfaced for logging only")
}

func TestCapability_Available(t *testing.T) {
	want := &Result{Transcript: "hello", Language: "en"}
	cap := Available(&stubTranscriber{res: want})

	require.True(t, cap.Ok())
	res, ok, err := cap.Transcribe(context.Background(), "clip.wav", ModelSmall)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, res)
}
