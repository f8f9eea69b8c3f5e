package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/economy"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/handler"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/metrics"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Port              int
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	MaxBodyBytes      int64
	ReplayDelay       time.Duration
	Readiness         []handler.Pinger
	Version           string
}

type Server struct {
	httpServer     *http.Server
	economyService economy.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, economyService economy.Service, hub *sse.Hub) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, economyService, hub),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		economyService: economyService,
	}
}

// NewRouter builds the middleware stack and every route
func NewRouter(opts Options, svc economy.Service, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, NewRateLimiter(opts.RateLimitRequests, opts.RateLimitWindow)))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Readiness...))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	players := handler.NewPlayerHandler(svc)
	replay := handler.NewReplayHandler(svc, opts.ReplayDelay)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/shop", players.HandleGetShop)
		r.Get("/locations", players.HandleGetLocations)
		r.Get("/rankings", players.HandleRankings)
		if hub != nil {
			r.Get("/events", sse.Handler(hub))
		}

		r.Post("/players", players.HandleCreatePlayer)
		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Get("/", players.HandleGetPlayer)
			r.Post("/stats", players.HandleSpendStatPoint)
			r.Post("/equip", players.HandleEquip)
			r.Post("/unequip", players.HandleUnequip)
			r.Post("/messages/{messageID}/read", players.HandleMarkMessageRead)

			r.Post("/buy", players.HandleBuy)
			r.Post("/sell", players.HandleSell)
			r.Post("/use", players.HandleUseItem)
			r.Post("/upgrade", players.HandleUpgrade)
			r.Delete("/items/{itemID}", players.HandleDeleteItem)

			r.Route("/activity", func(r chi.Router) {
				r.Get("/", players.HandleActivityStatus)
				r.Post("/", players.HandleStartActivity)
				r.Post("/complete", players.HandleCompleteActivity)
			})

			r.Route("/arena", func(r chi.Router) {
				r.Post("/fight", players.HandleFightEnemy)
				r.Get("/opponents", players.HandleFindOpponents)
				r.Post("/challenge", players.HandleChallenge)
			})
			r.Get("/reports/{reportID}", players.HandleGetReport)
			r.Get("/reports/{reportID}/replay", replay.HandleReplay)

			r.Route("/bank", func(r chi.Router) {
				r.Post("/deposits", players.HandleDeposit)
				r.Post("/deposits/{depositID}/claim", players.HandleClaimDeposit)
				r.Post("/deposits/{depositID}/cancel", players.HandleCancelDeposit)
			})
			r.Post("/income", players.HandleCollectIncome)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// the chi wrapper keeps Flusher and Hijacker for SSE and websockets
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
