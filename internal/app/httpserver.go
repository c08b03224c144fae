package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Spok95/online-catalogue/internal/ctxutil"
	"github.com/Spok95/online-catalogue/internal/metrics"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HTTPServer struct {
	srv  *http.Server
	ln   net.Listener
	done chan struct{}
	err  error
}

// NewMux serves the API under /api/ next to /healthz, /metrics and
// /loglevel (GET shows, PUT {"level":"debug"} changes the running level).
func NewMux(db Pinger, api, logLevel http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := ctxutil.WithTimeout(r.Context(), 800*time.Millisecond)
		defer cancel()
		t0 := time.Now()
		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "db not ok: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		metrics.ObserveDBPing(time.Since(t0))
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/loglevel", logLevel)
	mux.Handle("/api/", api)

	return mux
}

// StartHTTP listens on addr, serves in the background and starts draining
// once ctx is done. Wait blocks until the drain is over.
func StartHTTP(ctx context.Context, addr string, db Pinger, api, logLevel http.Handler, log *zap.Logger) (*HTTPServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	s := &HTTPServer{
		srv: &http.Server{
			Handler:           NewMux(db, api, logLevel),
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln:   ln,
		done: make(chan struct{}),
	}

	go func() {
		log.Info("http listening", zap.String("addr", ln.Addr().String()))
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		// закрываем аккуратно: новые соединения не принимаем, текущие дожидаемся
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		s.err = s.srv.Shutdown(shCtx)
		close(s.done)
	}()

	return s, nil
}

// Addr is the address actually bound, useful with ":0".
func (s *HTTPServer) Addr() string { return s.ln.Addr().String() }

// Wait returns after in-flight requests finished, or the drain timed out.
func (s *HTTPServer) Wait() error {
	<-s.done
	return s.err
}
