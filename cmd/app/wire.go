//go:build wireinject
// +build wireinject

package main

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/yanqian/hr-assistant/internal/bootstrap"
	"github.com/yanqian/hr-assistant/internal/domain/assistant"
	"github.com/yanqian/hr-assistant/internal/domain/faq"
	"github.com/yanqian/hr-assistant/internal/infra/config"
	httpiface "github.com/yanqian/hr-assistant/internal/interface/http"
	"github.com/yanqian/hr-assistant/pkg/logger"
)

var assistantSet = wire.NewSet(
	providePostgresPool,
	provideFAQConfig,
	provideAssistantConfig,
	provideEntrySource,
	provideMatcher,
	provideEmployeeDirectory,
	provideConversationStore,
	assistant.NewService,
	wire.Bind(new(assistant.FAQMatcher), new(*faq.Matcher)),
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		assistantSet,
		provideWatcher,
		wire.Bind(new(httpiface.FAQIndex), new(*faq.Matcher)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

func initializeAssistant(cfg *config.Config, log *slog.Logger) (assistant.Service, error) {
	wire.Build(assistantSet)
	return nil, nil
}
