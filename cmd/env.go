package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wordcards/internal/config"
	"github.com/abhisek/wordcards/internal/logging"
	"github.com/abhisek/wordcards/internal/pronounce"
	"github.com/abhisek/wordcards/internal/selector"
	"github.com/abhisek/wordcards/internal/source"
	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/study"
)

// appEnv is everything a command needs, built from config and flags.
type appEnv struct {
	cfg       *config.Config
	log       *zap.Logger
	store     *store.Store
	repos     store.Repos
	cache     *source.Cache
	study     *study.Service
	pronounce func(ctx context.Context, text string) string
}

// setup loads config, opens the store and wires the services.
func setup(cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "wordcards.log")
	}
	log, err := logging.New(cfg.Env, cfg.Log.Level, logPath)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath))

	repos := st.Repos()
	cache := source.NewCache(repos.Datasets, fetcherFor(cfg.Source), source.Builtin(), log.Named("source"))
	sel := selector.New(cache, repos.Hard, selector.WithLogger(log.Named("selector")))

	env := &appEnv{
		cfg:   cfg,
		log:   log,
		store: st,
		repos: repos,
		cache: cache,
		study: study.New(sel, repos, log.Named("study")),
	}
	if cfg.Pronounce.Enabled {
		client := pronounce.NewClient(cfg.Pronounce.URL, cfg.Pronounce.Timeout, log.Named("pronounce"))
		env.pronounce = pronounce.Quiet(client, log.Named("pronounce"))
	}
	return env, nil
}

// Close releases the store and flushes the logger.
func (e *appEnv) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", zap.Error(err))
	}
	_ = e.log.Sync()
}

// fetcherFor picks the dataset source: a directory, then a URL, then the
// datasets compiled into the binary.
func fetcherFor(cfg config.SourceConfig) source.Fetcher {
	switch {
	case cfg.Dir != "":
		return source.DirFetcher{Dir: cfg.Dir}
	case cfg.URL != "":
		return source.NewHTTPFetcher(cfg.URL, cfg.Timeout)
	}
	return source.Builtin()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db_path from config or WORDCARDS_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
