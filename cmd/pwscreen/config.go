package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/gostonefire/pwscreen/internal/conf"
	"github.com/joho/godotenv"
	"github.com/xyproto/env/v2"
	"io/fs"
	"strings"
)

// dotEnvFile - Path of the optional .env file
var dotEnvFile = ".env"

// config - Settings of one run, flags override environment which overrides the .env file
type config struct {
	wordList      string
	chainSize     int
	probeCapacity int
	loadHash      string
	searchHashes  []string
	matched       bool
	workers       int
	stat          bool
	logFile       string
	debug         bool
	passwords     []string
	dotEnvLoaded  bool
}

// loadConfig - Reads .env if present, then the environment and finally args.
// A .env file that exists but can not be read or parsed is an error.
func loadConfig(args []string) (cfg config, err error) {
	err = godotenv.Load(dotEnvFile)
	switch {
	case err == nil:
		cfg.dotEnvLoaded = true
	case errors.Is(err, fs.ErrNotExist):
		err = nil
	default:
		err = fmt.Errorf("error while loading %s: %w", dotEnvFile, err)
		return
	}

	// env caches the environment on first use, refresh it for variables set since
	env.Load()

	flags := flag.NewFlagSet("pwscreen", flag.ContinueOnError)
	flags.StringVar(&cfg.wordList, "wordlist", env.Str("PWSCREEN_WORDLIST", conf.DefaultWordList), "word list file, one word per line")
	flags.IntVar(&cfg.chainSize, "chain-size", env.Int("PWSCREEN_CHAIN_SIZE", conf.DefaultChainSize), "number of buckets in the separate chaining table")
	flags.IntVar(&cfg.probeCapacity, "probe-capacity", env.Int("PWSCREEN_PROBE_CAPACITY", conf.DefaultProbeCapacity), "number of slots in the linear probing table")
	flags.StringVar(&cfg.loadHash, "load-hash", env.Str("PWSCREEN_LOAD_HASH", conf.DefaultLoadHash), "hash function the word list is loaded with")
	searchHashes := flags.String("search-hashes", env.Str("PWSCREEN_SEARCH_HASHES", strings.Join(conf.DefaultSearchHashes, ",")), "comma separated hash functions each password is searched with")
	flags.BoolVar(&cfg.matched, "matched", env.Bool("PWSCREEN_MATCHED"), "load one pair of tables per search hash")
	flags.IntVar(&cfg.workers, "workers", env.Int("PWSCREEN_WORKERS", conf.DefaultWorkers), "number of passwords checked in parallel")
	flags.BoolVar(&cfg.stat, "stat", env.Bool("PWSCREEN_STAT"), "print table statistics")
	flags.StringVar(&cfg.logFile, "log-file", env.Str("PWSCREEN_LOG_FILE"), "also write logs to this file, rotated")
	flags.BoolVar(&cfg.debug, "debug", env.Bool("PWSCREEN_DEBUG"), "log at debug level")

	if err = flags.Parse(args); err != nil {
		return
	}

	cfg.searchHashes = splitNames(*searchHashes)
	if len(cfg.searchHashes) == 0 {
		err = fmt.Errorf("at least one search hash is needed")
		return
	}

	cfg.passwords = flags.Args()
	if len(cfg.passwords) == 0 {
		cfg.passwords = conf.DefaultPasswords
	}

	return
}

// splitNames - Splits a comma separated list, dropping blanks
func splitNames(s string) (names []string) {
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	return
}
