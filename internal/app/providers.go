package app

import (
	"lokgeet/internal/app/asr"
	"lokgeet/internal/app/asr/whisper"
	"lokgeet/internal/app/intake"
	"lokgeet/internal/app/store"
	"lokgeet/internal/app/translit"
	"lokgeet/internal/config"
)

func provideAudioIntake(cfg *config.Config) *intake.AudioIntake {
	return intake.NewAudioIntake(cfg.UploadDir())
}

// provideASRCapability resolves the speech-to-text capability once at
// startup; every later call branches on the result instead of re-probing.
func provideASRCapability(cfg *config.Config) asr.Capability {
	return whisper.Resolve(cfg.OpenAIKey, cfg.ASRBaseURL)
}

func provideRomanizer() translit.Romanizer {
	return translit.NewIndicRomanizer()
}

func provideEntryStore(cfg *config.Config) *store.EntryStore {
	return store.NewJSONStore(cfg.StorePath())
}
