package intake

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"lokgeet/internal/app/errs"
	"lokgeet/internal/app/pipeline"
)

// promptOperator asks for every decision on the terminal. Consent is
// re-askable: answering no returns to the metadata questions until the
// operator either affirms or gives up.
type promptOperator struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPromptOperator(in io.Reader, out io.Writer) *promptOperator {
	return &promptOperator{in: bufio.NewScanner(in), out: out}
}

func (o *promptOperator) ask(prompt, draft string) (string, error) {
	if draft != "" {
		fmt.Fprintf(o.out, "%s [%s]: ", prompt, draft)
	} else {
		fmt.Fprintf(o.out, "%s: ", prompt)
	}
	if !o.in.Scan() {
		if err := o.in.Err(); err != nil {
			return "", err
		}
		return "", errs.ErrSubmissionAborted
	}
	answer := strings.TrimSpace(o.in.Text())
	if answer == "" {
		return draft, nil
	}
	return answer, nil
}

func (o *promptOperator) askYesNo(prompt string) (bool, error) {
	answer, err := o.ask(prompt+" (y/n)", "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (o *promptOperator) ReviewTranscript(draft string, asrAvailable bool) (string, error) {
	if !asrAvailable {
		fmt.Fprintln(o.out, "transcription is unavailable, please type the transcript")
	} else {
		fmt.Fprintf(o.out, "transcript from the model:\n%s\n", draft)
	}
	return o.ask("transcript (enter keeps the draft)", draft)
}

func (o *promptOperator) ReviewTransliteration(draft string) (string, error) {
	if draft != "" {
		fmt.Fprintf(o.out, "romanized transliteration:\n%s\n", draft)
	}
	return o.ask("transliteration (enter keeps the draft)", draft)
}

func (o *promptOperator) CollectMetadata(reason pipeline.AskReason) (*pipeline.MetadataForm, error) {
	switch reason {
	case pipeline.AskConsentRequired:
		fmt.Fprintln(o.out, "consent is required to save entries")
		again, err := o.askYesNo("revisit the metadata form?")
		if err != nil {
			return nil, err
		}
		if !again {
			return nil, errs.ErrConsentWithheld
		}
	case pipeline.AskInvalidMetadata:
		fmt.Fprintln(o.out, "the date of recording must look like 2024-06-01, please re-enter the form")
	}

	form := &pipeline.MetadataForm{}
	var err error
	if form.Title, err = o.ask("title / short description", ""); err != nil {
		return nil, err
	}
	if form.Performer, err = o.ask("performer / contributor", ""); err != nil {
		return nil, err
	}
	if form.Location, err = o.ask("location (village, district, state)", ""); err != nil {
		return nil, err
	}
	if form.Context, err = o.ask("context (lullaby, harvest song, ...)", ""); err != nil {
		return nil, err
	}
	if form.DateOfRecording, err = o.ask("date of recording (YYYY-MM-DD, enter for today)", ""); err != nil {
		return nil, err
	}
	if form.Translation, err = o.ask("translation (manual)", ""); err != nil {
		return nil, err
	}
	form.Consent, err = o.askYesNo("I confirm the performer consented to storing this recording")
	if err != nil {
		return nil, err
	}
	return form, nil
}
