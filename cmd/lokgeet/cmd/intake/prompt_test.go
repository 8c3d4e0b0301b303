package intake

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lokgeet/internal/app/errs"
	"lokgeet/internal/app/pipeline"
)

func TestPromptOperator_ReviewTranscriptKeepsDraft(t *testing.T) {
	var out bytes.Buffer
	op := newPromptOperator(strings.NewReader("\n"), &out)

	got, err := op.ReviewTranscript("draft words", true)

	require.NoError(t, err)
	assert.Equal(t, "draft words", got)
}

func TestPromptOperator_ReviewTranscriptOverride(t *testing.T) {
	var out bytes.Buffer
	op := newPromptOperator(strings.NewReader("corrected words\n"), &out)

	got, err := op.ReviewTranscript("draft words", true)

	require.NoError(t, err)
	assert.Equal(t, "corrected words", got)
}

func TestPromptOperator_CollectMetadata(t *testing.T) {
	answers := strings.Join([]string{
		"a lullaby",      // title
		"Shanta",         // performer
		"Wai, Satara",    // location
		"lullaby",        // context
		"2024-06-01",     // date
		"sleep my child", // translation
		"y",              // consent
	}, "\n") + "\n"
	var out bytes.Buffer
	op := newPromptOperator(strings.NewReader(answers), &out)

	form, err := op.CollectMetadata(pipeline.AskFirst)

	require.NoError(t, err)
	assert.Equal(t, "a lullaby", form.Title)
	assert.Equal(t, "Shanta", form.Performer)
	assert.Equal(t, "2024-06-01", form.DateOfRecording)
	assert.True(t, form.Consent)
}

func TestPromptOperator_RetryDeclinedWithholdsConsent(t *testing.T) {
	var out bytes.Buffer
	op := newPromptOperator(strings.NewReader("n\n"), &out)

	_, err := op.CollectMetadata(pipeline.AskConsentRequired)

	assert.ErrorIs(t, err, errs.ErrConsentWithheld)
}

func TestPromptOperator_InvalidMetadataReentersForm(t *testing.T) {
	answers := strings.Join([]string{
		"a lullaby", "Shanta", "Wai", "lullaby", "2024-06-01", "", "y",
	}, "\n") + "\n"
	var out bytes.Buffer
	op := newPromptOperator(strings.NewReader(answers), &out)

	form, err := op.CollectMetadata(pipeline.AskInvalidMetadata)

	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", form.DateOfRecording)
	assert.Contains(t, out.String(), "please re-enter the form")
}

func TestPromptOperator_EOFAborts(t *testing.T) {
	var out bytes.Buffer
	op := newPromptOperator(strings.NewReader(""), &out)

	_, err := op.ReviewTranscript("draft", true)

	assert.ErrorIs(t, err, errs.ErrSubmissionAborted)
}
