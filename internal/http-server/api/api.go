package api

import (
	"SupportSquad/internal/config"
	"SupportSquad/internal/http-server/handlers/chat"
	"SupportSquad/internal/http-server/handlers/conversation"
	"SupportSquad/internal/http-server/handlers/errors"
	"SupportSquad/internal/http-server/handlers/health"
	"SupportSquad/internal/http-server/handlers/webhook"
	"SupportSquad/internal/http-server/middleware/hosts"
	"SupportSquad/internal/http-server/middleware/timeout"
	"SupportSquad/internal/http-server/middleware/verify"
	"SupportSquad/internal/lib/sl"
	"SupportSquad/internal/normalizer"
	"SupportSquad/internal/ws"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net"
	"net/http"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	webhook.Core
	chat.Core
	conversation.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	norm := normalizer.New(log)

	router := chi.NewRouter()
	router.Use(timeout.Timeout(30))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	if len(conf.AllowedHosts) > 0 {
		router.Use(hosts.New(log, conf.AllowedHosts))
	}

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Get("/", health.Root(log))
	router.Get("/health", health.Check(log))
	router.Get("/healthz", health.Liveness(log))

	router.Route("/chatwoot", func(r chi.Router) {
		if conf.Chatwoot.WebhookSecret != "" {
			r.Use(verify.New(log, conf.Chatwoot.WebhookSecret))
		}
		r.Post("/webhook", webhook.Handle(log, norm, handler))
	})

	router.Post("/chat/message", chat.ProcessMessage(log, handler))

	router.Route("/conversations", func(r chi.Router) {
		r.Get("/{conversation_id}/history", conversation.History(log, handler))
	})

	if hub != nil {
		router.Get("/ws", ws.Serve(hub, log))
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
