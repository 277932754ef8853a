package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/diwise/devcamper-api/internal/pkg/application/bootcamps"
	"github.com/diwise/devcamper-api/internal/pkg/application/events"
	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/geocoder"
	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/repositories/geocache"
	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/router"
	"github.com/diwise/devcamper-api/internal/pkg/presentation/api"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const serviceName string = "devcamper-api"

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",
		logLevel:      "info",

		mongoURI:      "mongodb://localhost:27017",
		mongoDatabase: "devcamper",

		geocoderProvider: "mapquest",
		geocoderAPIKey:   "",
		geocoderURL:      geocoder.DefaultMapQuestURL,
		geocoderFile:     "/opt/diwise/config/locations.yaml",
		geocoderCacheTTL: "168h",

		notificationsFile: "",
		enableMessaging:   "false",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion)
	defer cleanup()

	ctx, logger = withLogLevel(ctx, logger, flags[logLevel])

	repo, err := database.NewBootcampRepository(ctx,
		database.NewMongoConnector(ctx, database.NewConfig(flags[mongoURI], flags[mongoDatabase])),
	)
	exitIf(err, logger, "could not create or connect to database")

	g, err := newGeocoder(ctx, flags)
	exitIf(err, logger, "failed to create geocoder")

	messenger, err := newMessenger(flags, logger)
	exitIf(err, logger, "failed to init messenger")

	sender, err := newEventSender(flags, messenger)
	exitIf(err, logger, "failed to create event sender")

	r := router.New(ctx, serviceName)
	api.RegisterHandlers(ctx, r, bootcamps.New(repo, g, sender))

	err = serve(ctx, logger, net.JoinHostPort(flags[listenAddress], flags[servicePort]), r)
	exitIf(err, logger, "failed to start request router")

	if messenger != nil {
		messenger.Close()
	}
}

func newGeocoder(ctx context.Context, flags flagMap) (geocoder.Geocoder, error) {
	if flags[geocoderProvider] == "static" {
		f, err := os.Open(flags[geocoderFile])
		if err != nil {
			return nil, fmt.Errorf("could not open locations file: %w", err)
		}
		defer f.Close()

		return geocoder.NewStatic(f)
	}

	if flags[geocoderProvider] != "mapquest" {
		return nil, fmt.Errorf("unknown geocoder provider %q", flags[geocoderProvider])
	}

	ttl, err := time.ParseDuration(flags[geocoderCacheTTL])
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder cache ttl: %w", err)
	}

	connect := geocache.NewSQLiteConnector(ctx)
	if cfg := geocache.LoadConfigFromEnv(); cfg.Host != "" {
		connect = geocache.NewPostgreSQLConnector(ctx, cfg)
	}

	cache, err := geocache.New(connect, ttl)
	if err != nil {
		return nil, err
	}

	return geocoder.NewCached(geocoder.NewMapQuest(flags[geocoderURL], flags[geocoderAPIKey]), cache), nil
}

func newMessenger(flags flagMap, logger zerolog.Logger) (messaging.MsgContext, error) {
	if flags[enableMessaging] != "true" {
		return nil, nil
	}

	return messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
}

func newEventSender(flags flagMap, messenger messaging.MsgContext) (events.EventSender, error) {
	cfg := &events.Config{}

	if flags[notificationsFile] != "" {
		f, err := os.Open(flags[notificationsFile])
		if err != nil {
			return nil, fmt.Errorf("could not open notifications file: %w", err)
		}
		defer f.Close()

		cfg, err = events.LoadConfiguration(f)
		if err != nil {
			return nil, err
		}
	}

	return events.New(cfg, messenger)
}

func serve(ctx context.Context, logger zerolog.Logger, addr string, r *chi.Mux) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", addr).Msg("starting to listen for connections")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	log := logging.GetFromContext(ctx)

	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	// Allow environment variables to override certain defaults
	envOrDef := func(name, def string) string {
		return env.GetVariableOrDefault(log, name, def)
	}

	flags[listenAddress] = envOrDef("LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef("SERVICE_PORT", flags[servicePort])
	flags[logLevel] = envOrDef("LOG_LEVEL", flags[logLevel])

	flags[mongoURI] = envOrDef("MONGO_URI", flags[mongoURI])
	flags[mongoDatabase] = envOrDef("MONGO_DATABASE", flags[mongoDatabase])

	flags[geocoderProvider] = envOrDef("GEOCODER_PROVIDER", flags[geocoderProvider])
	flags[geocoderAPIKey] = envOrDef("GEOCODER_API_KEY", flags[geocoderAPIKey])
	flags[geocoderURL] = envOrDef("GEOCODER_URL", flags[geocoderURL])
	flags[geocoderFile] = envOrDef("GEOCODER_FILE", flags[geocoderFile])
	flags[geocoderCacheTTL] = envOrDef("GEOCODER_CACHE_TTL", flags[geocoderCacheTTL])

	flags[notificationsFile] = envOrDef("NOTIFICATIONS_FILE", flags[notificationsFile])
	flags[enableMessaging] = envOrDef("ENABLE_MESSAGING", flags[enableMessaging])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("notifications", "a yaml file with event subscribers", apply(notificationsFile))
	flag.Func("locations", "a yaml file with static geocoder locations", apply(geocoderFile))
	flag.Func("geocoder", "geocoder provider (mapquest or static)", apply(geocoderProvider))
	flag.Parse()

	return ctx, flags
}

// withLogLevel restricts the logger to the given level, keeping info for unknown levels
func withLogLevel(ctx context.Context, logger zerolog.Logger, level string) (context.Context, zerolog.Logger) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logger = logger.Level(lvl)
	return logging.NewContextWithLogger(ctx, logger), logger
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Fatal().Err(err).Msg(msg)
	}
}
