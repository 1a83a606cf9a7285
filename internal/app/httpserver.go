package app

import (
	"context"
	"net/http"
	"time"

	"github.com/yw-tools/classtrack/internal/metrics"
	"github.com/yw-tools/classtrack/internal/store"
)

type HTTPServer struct {
	srv *http.Server
}

// StartHTTP поднимает служебный сервер: /healthz проверяет хранилище,
// /metrics отдаёт прометеевские счётчики. Гасится через ctx.
func StartHTTP(ctx context.Context, addr string, st store.Store) *HTTPServer {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			http.Error(w, "store not ok: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		_ = srv.ListenAndServe() // закрываем аккуратно при Shutdown
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	return &HTTPServer{srv: srv}
}
