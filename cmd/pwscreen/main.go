package main

import (
	"context"
	"github.com/gostonefire/pwscreen"
	"github.com/gostonefire/pwscreen/internal/corpus"
	"go.uber.org/zap"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run - Loads the word list, builds the tables and writes a report for every password to out.
// It returns the process exit code.
func run(args []string, out io.Writer) int {
	cfg, err := loadConfig(args)
	if err != nil {
		_, _ = io.WriteString(os.Stderr, err.Error()+"\n")
		return 2
	}

	logger := newLogger(cfg.logFile, cfg.debug)
	defer func() { _ = logger.Sync() }()

	if cfg.dotEnvLoaded {
		logger.Debug("loaded environment from .env")
	}

	words, err := corpus.LoadFile(cfg.wordList)
	if err != nil {
		logger.Error("failed to load word list", zap.String("path", cfg.wordList), zap.Error(err))
		return 1
	}
	logger.Info("word list loaded", zap.String("path", cfg.wordList), zap.Int("words", len(words)))

	checker, info, err := pwscreen.NewChecker(words, pwscreen.Conf{
		ChainSize:     cfg.chainSize,
		ProbeCapacity: cfg.probeCapacity,
		LoadHash:      cfg.loadHash,
		SearchHashes:  cfg.searchHashes,
		MatchedTables: cfg.matched,
	})
	if err != nil {
		logger.Error("failed to build tables", zap.Error(err))
		return 1
	}
	logger.Debug("tables built",
		zap.Int("chainSize", info.ChainSize),
		zap.Int("probeCapacity", info.ProbeCapacity),
		zap.Strings("loadHashes", info.LoadHashes),
	)
	if info.DroppedWords > 0 {
		logger.Warn("linear probing table full, words dropped",
			zap.Int("dropped", info.DroppedWords),
			zap.Int("probeCapacity", info.ProbeCapacity),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := checker.CheckAll(ctx, cfg.passwords, cfg.workers)
	if err != nil {
		logger.Error("checking passwords interrupted", zap.Error(err))
		return 1
	}

	for _, result := range results {
		printResult(out, result)
	}

	if cfg.stat {
		printStat(out, checker.Stat(false))
	}

	return 0
}
