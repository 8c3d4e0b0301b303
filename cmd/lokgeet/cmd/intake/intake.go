package intake

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lokgeet/internal/app"
	"lokgeet/internal/app/asr"
	"lokgeet/internal/app/errs"
	appintake "lokgeet/internal/app/intake"
	"lokgeet/internal/app/logging"
	"lokgeet/internal/app/pipeline"
	"lokgeet/internal/config"
)

// Exit codes: consent withheld is not an error, but callers need to tell
// it apart from a fatal storage failure.
const (
	exitFatal           = 1
	exitConsentWithheld = 2
)

var (
	audioPath       string
	modelSize       string
	languageHint    string
	transcript      string
	transliteration string
	title           string
	performer       string
	location        string
	songContext     string
	dateOfRecording string
	translation     string
	consent         bool
	interactive     bool
)

func init() {
	Cmd.Flags().StringVarP(&audioPath, "audio", "a", "", "path of the recorded audio file (wav, mp3, m4a, ogg)")
	Cmd.Flags().StringVarP(&modelSize, "model", "m", "", "whisper model size: tiny, base, small, medium, large")
	Cmd.Flags().StringVarP(&languageHint, "language", "l", "", "language code used when the model detects none (e.g. hi)")
	Cmd.Flags().StringVar(&transcript, "transcript", "", "transcript override; replaces the model output")
	Cmd.Flags().StringVar(&transliteration, "transliteration", "", "transliteration override; replaces the romanized draft")
	Cmd.Flags().StringVarP(&title, "title", "t", "", "title / short description")
	Cmd.Flags().StringVarP(&performer, "performer", "p", "", "performer or contributor")
	Cmd.Flags().StringVar(&location, "location", "", "location (village, district, state)")
	Cmd.Flags().StringVar(&songContext, "context", "", "context (e.g. lullaby, harvest song, wedding song)")
	Cmd.Flags().StringVarP(&dateOfRecording, "date", "d", "", "date of recording, YYYY-MM-DD (defaults to today)")
	Cmd.Flags().StringVar(&translation, "translation", "", "manual translation")
	Cmd.Flags().BoolVar(&consent, "consent", false, "affirm that the performer consented to this recording being stored")
	Cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "review transcript and fill metadata through prompts")

	Cmd.MarkFlagRequired("audio")
}

// Cmd represents the intake command
var Cmd = &cobra.Command{
	Use:   "intake",
	Short: "Process one recording: transcribe, romanize, collect metadata and save",
	Long: `Process one recording: transcribe, romanize, collect metadata and save

- Saves the audio under the managed upload directory
- Transcribes it with the configured whisper model, or falls back to a
  manual transcript when no model is reachable
- Romanizes the transcript and appends the entry to the collection once
  consent is affirmed`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if code := run(verbose); code != 0 {
			os.Exit(code)
		}
	},
}

// run processes the submission and returns the process exit code:
// 0 success (including ASR-unavailable with a manual transcript),
// 2 consent withheld, 1 anything fatal.
func run(verbose bool) int {
	log := logging.NewLogger(verbose)
	defer log.Sync()

	cfg := config.FromEnv()
	sizeName := modelSize
	if sizeName == "" {
		sizeName = cfg.ModelSize
	}
	size, err := asr.ParseModelSize(sizeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}

	if !appintake.RecognizedExtension(audioPath) {
		fmt.Fprintf(os.Stderr, "unsupported audio file %q: expected wav, mp3, m4a or ogg\n", audioPath)
		return exitFatal
	}
	raw, err := os.ReadFile(audioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read audio file: %v\n", err)
		return exitFatal
	}

	var op pipeline.Operator
	if interactive {
		op = newPromptOperator(os.Stdin, os.Stdout)
	} else {
		op = &pipeline.StaticOperator{
			Transcript:      transcript,
			Transliteration: transliteration,
			Form: pipeline.MetadataForm{
				Metadata: pipeline.Metadata{
					Title:           title,
					Performer:       performer,
					Location:        location,
					Context:         songContext,
					DateOfRecording: dateOfRecording,
				},
				Translation: translation,
				Consent:     consent,
			},
		}
	}

	p := app.InitializePipeline(cfg, log)
	out, err := p.Run(context.Background(), pipeline.Submission{
		Filename:     audioPath,
		Audio:        raw,
		ModelSize:    size,
		LanguageHint: languageHint,
	}, op)
	if err != nil {
		if errors.Is(err, errs.ErrConsentWithheld) {
			fmt.Fprintln(os.Stderr, "consent is mandatory: nothing was saved")
			return exitConsentWithheld
		}
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}

	if !out.ASRUsed {
		fmt.Fprintln(os.Stderr, "warning: transcription was unavailable, the transcript was entered manually")
	}
	fmt.Printf("saved entry %s (%s)\n", out.Entry.ID, out.Entry.AudioPath)
	return 0
}
