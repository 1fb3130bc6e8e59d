package main

import (
	"SupportSquad/ai/adk"
	"SupportSquad/ai/keyword"
	"SupportSquad/bot"
	"SupportSquad/impl/core"
	"SupportSquad/internal/config"
	repository "SupportSquad/internal/database"
	"SupportSquad/internal/http-server/api"
	"SupportSquad/internal/lib/logger"
	"SupportSquad/internal/lib/sl"
	"SupportSquad/internal/ws"
	"flag"
	"log/slog"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, conf.Log.Level, conf.Log.Format, conf.Debug)

	// Initialize Telegram alert bot if enabled
	if conf.Telegram.Enabled {
		alertBot, err := bot.NewAlertBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram alert bot", slog.String("error", err.Error()))
		} else {
			lg = logger.SetupTelegramHandler(lg, alertBot, slog.LevelError)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram alert bot initialized")
		}
	}

	lg.Info("starting support squad backend", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(conf, lg)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		handler.SetRepository(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo conversation store initialized")
	} else {
		handler.SetRepository(repository.NewMemoryStore())
		lg.Info("in-memory conversation store initialized")
	}

	adkClient, err := adk.NewClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("adk client")
	}
	if adkClient != nil {
		handler.SetGenerator(adkClient)
		lg.With(
			slog.String("model", conf.ADK.Model),
			slog.String("endpoint", conf.ADK.Endpoint),
			sl.Secret("api_key", conf.ADK.ApiKey),
		).Info("adk generator initialized")
	} else {
		handler.SetGenerator(keyword.NewResponder(conf.ADK.Model, lg))
		lg.With(
			slog.String("model", conf.ADK.Model),
		).Info("keyword generator initialized")
	}

	hub := ws.NewHub(lg)
	go hub.Run()
	handler.SetBroadcaster(hub)

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
