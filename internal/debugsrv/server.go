// internal/debugsrv/server.go
package debugsrv

import (
	"context"
	"encoding/json"
	"errors"
	"go-tower-siege/internal/app"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultStreamInterval = 100 * time.Millisecond

// SnapshotSource отдаёт последний снимок игры. Вызывается из горутин
// HTTP-сервера, поэтому должен быть безопасен для конкурентного чтения.
type SnapshotSource interface {
	Snapshot() *app.Snapshot
}

// Config - зависимости отладочного сервера
type Config struct {
	Source         SnapshotSource
	Gatherer       prometheus.Gatherer // nil - /metrics не подключается
	StreamInterval time.Duration       // период рассылки в /ws
	CORSOrigins    []string            // шаблоны Origin для CORS и /ws, nil - только localhost
}

var defaultOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

// originAllowed проверяет заголовок Origin по тем же шаблонам, что и CORS.
// Запросы без Origin (не из браузера) пропускаются.
func originAllowed(origins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, pattern := range origins {
			if matchOrigin(pattern, origin) {
				return true
			}
		}
		return false
	}
}

// matchOrigin сравнивает origin с шаблоном, в котором может быть одна "*".
func matchOrigin(pattern, origin string) bool {
	if pattern == "*" {
		return true
	}
	prefix, suffix, wildcard := strings.Cut(pattern, "*")
	if !wildcard {
		return strings.EqualFold(pattern, origin)
	}
	return len(origin) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix)
}

// NewRouter собирает роутер. Функция без побочных эффектов: ничего не
// слушает и не запускает, её можно отдать httptest.NewServer.
func NewRouter(cfg Config) *chi.Mux {
	if cfg.StreamInterval <= 0 {
		cfg.StreamInterval = defaultStreamInterval
	}
	origins := cfg.CORSOrigins
	if origins == nil {
		origins = defaultOrigins
	}
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originAllowed(origins),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Mount("/debug", middleware.Profiler())
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/state", func(w http.ResponseWriter, req *http.Request) {
		s := cfg.Source.Snapshot()
		if s == nil {
			http.Error(w, "no state yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s); err != nil {
			log.Printf("debugsrv: failed to encode state: %v", err)
		}
	})
	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		streamSnapshots(w, req, &upgrader, cfg.Source, cfg.StreamInterval)
	})
	return r
}

// streamSnapshots шлёт клиенту снимок каждые interval, пока тот не отключится.
func streamSnapshots(w http.ResponseWriter, r *http.Request, upgrader *websocket.Upgrader, source SnapshotSource, interval time.Duration) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("debugsrv: websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	// Читаем, чтобы заметить закрытие со стороны клиента
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	var last *app.Snapshot
	for {
		if s := source.Snapshot(); s != nil && s != last {
			last = s
			conn.SetWriteDeadline(time.Now().Add(time.Second))
			if err := conn.WriteJSON(s); err != nil {
				return
			}
		}
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

// Server - отладочный HTTP-сервер
type Server struct {
	srv *http.Server
}

func New(addr string, cfg Config) *Server {
	return &Server{srv: &http.Server{
		Addr:              addr,
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// Start слушает в фоне. Ошибки только логируются: игра работает и без сервера.
func (s *Server) Start() {
	go func() {
		log.Printf("Debug server listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Debug server stopped: %v", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
