package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/hr-assistant/internal/domain/assistant"
	"github.com/yanqian/hr-assistant/internal/domain/employee"
	"github.com/yanqian/hr-assistant/internal/domain/faq"
	"github.com/yanqian/hr-assistant/internal/infra/config"
	"github.com/yanqian/hr-assistant/internal/infra/convstore"
	"github.com/yanqian/hr-assistant/internal/infra/employeerepo"
	"github.com/yanqian/hr-assistant/internal/infra/faqsource"
)

const corpusLoadTimeout = 30 * time.Second

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		SimilarityThreshold: cfg.FAQ.SimilarityThreshold,
		FuzzyThreshold:      cfg.FAQ.FuzzyThreshold,
		CacheSize:           cfg.FAQ.CacheSize,
	}
}

func provideAssistantConfig(cfg *config.Config) assistant.Config {
	return assistant.Config{
		FallbackMessage:    cfg.Assistant.FallbackMessage,
		PayslipAnswer:      cfg.Assistant.PayslipAnswer,
		BankUpdateAnswer:   cfg.Assistant.BankUpdateAnswer,
		ConversationTTL:    cfg.Assistant.ConversationTTL,
		TopRecommendations: cfg.Assistant.TopRecommendations,
		MaxQuestionLength:  cfg.Assistant.MaxQuestionLength,
	}
}

// providePostgresPool returns nil when no DSN is configured.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		return nil, nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres dsn: %w", err)
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("initialize postgres pool: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	logger.Info("postgres pool ready")
	return pool, nil
}

func provideEntrySource(cfg *config.Config, pool *pgxpool.Pool) (faq.EntrySource, error) {
	switch cfg.FAQ.Source {
	case config.SourcePostgres:
		if pool == nil {
			return nil, fmt.Errorf("faq source %q requires postgres.dsn", cfg.FAQ.Source)
		}
		return faqsource.NewPostgresSource(pool), nil
	case config.SourceObject:
		store := cfg.FAQ.ObjectStore
		return faqsource.NewObjectSource(store.Endpoint, store.AccessKey, store.SecretKey, store.Region, store.Bucket, store.Key)
	default:
		return faqsource.NewFileSource(cfg.FAQ.Path), nil
	}
}

func provideMatcher(cfg faq.Config, source faq.EntrySource, logger *slog.Logger) (*faq.Matcher, error) {
	ctx, cancel := context.WithTimeout(context.Background(), corpusLoadTimeout)
	defer cancel()
	entries, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load faq corpus from %s: %w", source.Name(), err)
	}
	matcher, err := faq.NewMatcher(cfg, entries, logger)
	if err != nil {
		return nil, fmt.Errorf("build faq index from %s: %w", source.Name(), err)
	}
	logger.Info("faq corpus loaded", "source", source.Name(), "entries", matcher.Len())
	return matcher, nil
}

// provideWatcher returns nil unless hot reload is enabled for a file-backed corpus.
func provideWatcher(cfg *config.Config, source faq.EntrySource, matcher *faq.Matcher, logger *slog.Logger) (*faqsource.Watcher, error) {
	if !cfg.FAQ.Watch {
		return nil, nil
	}
	fileSource, ok := source.(*faqsource.FileSource)
	if !ok {
		logger.Warn("faq watch ignored for non-file source", "source", source.Name())
		return nil, nil
	}
	return faqsource.NewWatcher(fileSource, matcher, logger)
}

func provideEmployeeDirectory(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (employee.Directory, error) {
	if cfg.Employees.Source == config.SourcePostgres {
		if pool == nil {
			return nil, fmt.Errorf("employee source %q requires postgres.dsn", cfg.Employees.Source)
		}
		logger.Info("employee postgres directory enabled")
		return employeerepo.NewPostgresRepository(pool), nil
	}
	repo, err := employeerepo.LoadCSV(cfg.Employees.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("employee directory loaded", "path", cfg.Employees.Path, "employees", repo.Len())
	return repo, nil
}

func provideConversationStore(cfg *config.Config, logger *slog.Logger) assistant.Store {
	if cfg.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return convstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return convstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("conversation valkey store enabled", "addr", cfg.Redis.Addr)
			return convstore.NewValkeyStore(client, cfg.Redis.Prefix)
		}
	}
	return convstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	if strings.Contains(cfg.Redis.Addr, "://") {
		return valkey.ParseURL(cfg.Redis.Addr)
	}
	return valkey.ClientOption{InitAddress: []string{cfg.Redis.Addr}}, nil
}
