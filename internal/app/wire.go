//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"lokgeet/internal/app/pipeline"
	"lokgeet/internal/config"
)

func InitializePipeline(cfg *config.Config, log *zap.SugaredLogger) *pipeline.Pipeline {
	wire.Build(
		pipeline.New,
		provideAudioIntake,
		provideASRCapability,
		provideRomanizer,
		provideEntryStore,
	)
	return &pipeline.Pipeline{}
}
