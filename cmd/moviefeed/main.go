package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/sourcegraph/conc/pool"
	"gopkg.in/natefinch/lumberjack.v2"

	"movie_feed/internal/api"
	"movie_feed/internal/config"
	"movie_feed/internal/feed"
	"movie_feed/internal/publisher"
	"movie_feed/internal/rss"
	"movie_feed/internal/scheduler"
	"movie_feed/internal/service"
	"movie_feed/internal/source/tmdb"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	render := flag.Int64("render", 0, "print the feed of this person id to stdout and exit")
	query := flag.String("query", "", "feed query for -render, e.g. release_status=Unreleased&size=10")
	flag.Parse()

	logger := setupLogger("info", os.Stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if *render != 0 {
		out = os.Stderr
	}
	if cfg.LogFile != "" {
		logFile := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
		}
		defer logFile.Close()
		out = io.MultiWriter(out, logFile)
	}
	logger = setupLogger(cfg.LogLevel, out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	client := tmdb.New(tmdb.Config{
		BaseURL:        cfg.TMDB.BaseURL,
		Token:          cfg.TMDB.Token,
		Timeout:        cfg.TMDB.Timeout,
		MaxAttempts:    cfg.TMDB.Retry.MaxAttempts,
		InitialBackoff: cfg.TMDB.Retry.InitialBackoff,
		MaxBackoff:     cfg.TMDB.Retry.MaxBackoff,
	}, logger)

	if *render != 0 {
		if err := renderOnce(ctx, client, logger, *render, *query); err != nil {
			logger.Error("render failed", "person_id", *render, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := serve(ctx, cfg, client, logger); err != nil {
		logger.Error("movie feed stopped", "error", err)
		os.Exit(1)
	}
}

func renderOnce(ctx context.Context, client *tmdb.Client, logger *slog.Logger, personID int64, rawQuery string) error {
	req, err := parseRequest(rawQuery)
	if err != nil {
		return err
	}

	svc := service.NewFeedService(client, feed.NewBuilder(), nil, logger, service.WatchList{})

	f, err := svc.Feed(ctx, personID, req)
	if err != nil {
		return err
	}

	return rss.Write(os.Stdout, f)
}

func serve(ctx context.Context, cfg *config.Config, client *tmdb.Client, logger *slog.Logger) error {
	watch := service.WatchList{Persons: cfg.Watch.Persons}

	var pub service.Publisher
	if cfg.Watch.Enabled() {
		req, err := parseRequest(cfg.Watch.Query)
		if err != nil {
			return fmt.Errorf("watch.query: %w", err)
		}
		watch.Request = req

		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.Watch.RabbitMQ.URL,
			Exchange:   cfg.Watch.RabbitMQ.Exchange,
			RoutingKey: cfg.Watch.RabbitMQ.RoutingKey,
			QueueName:  cfg.Watch.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return err
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	feedService := service.NewFeedService(client, feed.NewBuilder(), pub, logger, watch)
	server := api.NewServer(feedService, logger, api.Config{RequestTimeout: cfg.API.RequestTimeout})

	logger.Info("starting movie feed",
		"addr", cfg.API.Addr(),
		"watched_persons", len(cfg.Watch.Persons),
		"watch_interval", cfg.Watch.Interval,
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		return server.Run(ctx, cfg.API.Addr())
	})
	if cfg.Watch.Enabled() {
		sched := scheduler.NewScheduler(feedService, cfg.Watch.Interval, logger)
		p.Go(func(ctx context.Context) error {
			if err := sched.Start(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	return p.Wait()
}

func parseRequest(rawQuery string) (feed.Request, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return feed.Request{}, fmt.Errorf("parse query: %w", err)
	}
	return feed.ParseQuery(values)
}

func setupLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}
