package pipeline

import (
	"lokgeet/internal/app/errs"
)

// StaticOperator answers every pipeline question from values fixed up
// front. It backs the non-interactive CLI path, where the whole form
// arrives as flags and consent can only be answered once.
type StaticOperator struct {
	// Transcript overrides the ASR draft when non-empty.
	Transcript string
	// Transliteration overrides the romanized draft when non-empty.
	Transliteration string
	Form            MetadataForm
}

var _ Operator = (*StaticOperator)(nil)

func (o *StaticOperator) ReviewTranscript(draft string, asrAvailable bool) (string, error) {
	if o.Transcript != "" {
		return o.Transcript, nil
	}
	return draft, nil
}

func (o *StaticOperator) ReviewTransliteration(draft string) (string, error) {
	if o.Transliteration != "" {
		return o.Transliteration, nil
	}
	return draft, nil
}

// CollectMetadata returns the fixed form once. There is nobody to
// re-ask: a consent retry withholds consent and a validation retry gives
// up, letting the pipeline report the underlying failure.
func (o *StaticOperator) CollectMetadata(reason AskReason) (*MetadataForm, error) {
	switch reason {
	case AskConsentRequired:
		return nil, errs.ErrConsentWithheld
	case AskInvalidMetadata:
		return nil, errs.ErrSubmissionAborted
	}
	form := o.Form
	return &form, nil
}
