package main

import (
	"os"

	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/config"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func setupLogging(cfg config.LogConfig) {
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func jetStreamConfig(cfg config.NATSConfig) realtime.JetStreamConfig {
	js := realtime.DefaultJetStreamConfig()
	js.URL = cfg.URL
	if cfg.Stream != "" {
		js.StreamName = cfg.Stream
	}
	if cfg.SubjectPrefix != "" {
		js.SubjectPrefix = cfg.SubjectPrefix
	}
	if cfg.Consumer != "" {
		js.ConsumerName = cfg.Consumer
	}
	return js
}
