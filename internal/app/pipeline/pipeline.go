// Package pipeline runs one submission through intake, transcription,
// transliteration and the consent gate, ending in a persisted entry or a
// rejection.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"lokgeet/internal/app/asr"
	"lokgeet/internal/app/errs"
	"lokgeet/internal/app/intake"
	"lokgeet/internal/app/model"
	"lokgeet/internal/app/store"
	"lokgeet/internal/app/translit"
)

// State is a stage of the intake pipeline.
type State string

const (
	StateUploaded        State = "uploaded"
	StateTranscribed     State = "transcribed"
	StateTransliterated  State = "transliterated"
	StateAwaitingConsent State = "awaiting_consent"
	StateSaved           State = "saved"
	StateRejected        State = "rejected"
)

// Metadata is the operator-supplied description of a recording.
type Metadata struct {
	Title           string
	Performer       string
	Location        string
	Context         string
	DateOfRecording string `validate:"omitempty,datetime=2006-01-02"`
}

// MetadataForm is everything collected at the consent gate.
type MetadataForm struct {
	Metadata
	Translation string
	Consent     bool
}

// AskReason tells the operator why the metadata form is being shown
// (again). The form stays alive across withheld consent and invalid
// answers; only the operator giving up ends the submission.
type AskReason int

const (
	AskFirst AskReason = iota
	AskConsentRequired
	AskInvalidMetadata
)

// Operator supplies the human decisions the pipeline needs: correcting
// the transcript, correcting the transliteration and filling the
// metadata form. It is the seam where the upload form used to sit.
type Operator interface {
	// ReviewTranscript shows the ASR draft (empty when the provider was
	// unavailable) and returns the transcript to keep.
	ReviewTranscript(draft string, asrAvailable bool) (string, error)
	// ReviewTransliteration shows the romanized draft and returns the
	// transliteration to keep.
	ReviewTransliteration(draft string) (string, error)
	// CollectMetadata fills the metadata form. It is called again with
	// AskConsentRequired after a withheld consent and AskInvalidMetadata
	// after a failed validation; returning ErrConsentWithheld ends the
	// submission as rejected.
	CollectMetadata(reason AskReason) (*MetadataForm, error)
}

// Submission is one raw upload plus its processing options.
type Submission struct {
	Filename string
	Audio    []byte
	// ModelSize selects the ASR model variant.
	ModelSize asr.ModelSize
	// LanguageHint is used when the provider detects no language.
	LanguageHint string
}

// Outcome reports where a run ended.
type Outcome struct {
	State State
	// Entry is set only when State is StateSaved.
	Entry *model.Entry
	// ASRUsed is false when the transcript fell back to manual input.
	ASRUsed bool
}

// Pipeline wires the intake stages together. It never writes to the
// collection except through the store's append contract.
type Pipeline struct {
	intake    *intake.AudioIntake
	asr       asr.Capability
	romanizer translit.Romanizer
	store     *store.EntryStore
	validate  *validator.Validate
	log       *zap.SugaredLogger
	now       func() time.Time
}

// New creates a Pipeline.
func New(in *intake.AudioIntake, capability asr.Capability, rom translit.Romanizer, st *store.EntryStore, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{
		intake:    in,
		asr:       capability,
		romanizer: rom,
		store:     st,
		validate:  validator.New(),
		log:       log,
		now:       time.Now,
	}
}

// Run processes one submission to a terminal state. A rejected consent
// returns ErrConsentWithheld with the Rejected outcome; it is a normal
// branch, not a failure. I/O errors abort the run with no entry written;
// an already-saved audio file is accepted leftover state.
func (p *Pipeline) Run(ctx context.Context, sub Submission, op Operator) (*Outcome, error) {
	savedPath, id, err := p.intake.Save(sub.Audio, sub.Filename)
	if err != nil {
		return nil, err
	}
	out := &Outcome{State: StateUploaded}

	// Uploaded -> Transcribed. Provider failure is absorbed here: the
	// operator supplies the transcript manually and the run continues.
	draft, language := "", ""
	res, ok, asrErr := p.asr.Transcribe(ctx, savedPath, sub.ModelSize)
	if asrErr != nil {
		p.log.Warnw("transcription provider failed, falling back to manual transcript",
			"audio", savedPath, "error", asrErr)
	}
	if ok {
		draft = res.Transcript
		language = res.Language
		out.ASRUsed = true
	}
	transcript, err := op.ReviewTranscript(draft, ok)
	if err != nil {
		return nil, err
	}
	out.State = StateTranscribed

	// Transcribed -> Transliterated.
	if language == "" {
		language = sub.LanguageHint
	}
	transliteration, err := op.ReviewTransliteration(p.romanizer.Romanize(transcript, language))
	if err != nil {
		return nil, err
	}
	out.State = StateTransliterated

	// Transliterated -> AwaitingConsent -> Saved | Rejected. The form is
	// re-askable: withheld consent and invalid answers both loop back to
	// the metadata step until the operator either completes it or stops
	// answering.
	out.State = StateAwaitingConsent
	var form *MetadataForm
	var invalid error
	for reason := AskFirst; ; {
		form, err = op.CollectMetadata(reason)
		if err != nil {
			if errors.Is(err, errs.ErrConsentWithheld) {
				out.State = StateRejected
				return out, errs.ErrConsentWithheld
			}
			// An operator with no way to correct its answers surfaces
			// the validation failure, not the give-up.
			if reason == AskInvalidMetadata && invalid != nil {
				return nil, invalid
			}
			return nil, err
		}
		if err := p.validate.Struct(form); err != nil {
			invalid = errs.Wrap(err, "invalid metadata")
			p.log.Warnw("metadata rejected, asking again", "error", err)
			reason = AskInvalidMetadata
			continue
		}
		if form.Consent {
			break
		}
		reason = AskConsentRequired
	}

	now := p.now().UTC()
	date := form.DateOfRecording
	if date == "" {
		date = now.Format("2006-01-02")
	}
	entry := model.Entry{
		ID:              id,
		Title:           form.Title,
		Performer:       form.Performer,
		Location:        form.Location,
		Context:         form.Context,
		DateOfRecording: date,
		UploadedAt:      id,
		AudioPath:       savedPath,
		Transcript:      transcript,
		Transliteration: transliteration,
		Translation:     form.Translation,
		DetectedLang:    language,
		ConsentGivenAt:  now.Format(time.RFC3339),
	}
	if err := p.store.Append(entry); err != nil {
		return nil, err
	}

	out.State = StateSaved
	out.Entry = &entry
	return out, nil
}
