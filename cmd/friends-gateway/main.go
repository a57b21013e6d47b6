package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/friends-gateway/internal/auth"
	"github.com/pribylovaa/friends-gateway/internal/cache"
	"github.com/pribylovaa/friends-gateway/internal/clients"
	"github.com/pribylovaa/friends-gateway/internal/config"
	gwhttp "github.com/pribylovaa/friends-gateway/internal/http"
	"github.com/pribylovaa/friends-gateway/internal/http/middleware"
	"github.com/pribylovaa/friends-gateway/internal/normalize"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting friends-gateway", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	searchCache := setupCache(rootCtx, cfg.Cache, log)
	defer func() {
		if cerr := searchCache.Close(); cerr != nil {
			log.Warn("cache_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	// Диагностика нераспознанных ответов - только вне prod.
	var normLog *slog.Logger
	if !cfg.Production() {
		normLog = log
	}

	cl, err := clients.New(*cfg, clients.Deps{
		Normalizer: normalize.New(normLog),
		Cache:      searchCache,
		Logger:     log,
	})
	if err != nil {
		log.Error("clients_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("clients_initialized", slog.String("backend", cfg.Backend.BaseURL))

	opts := gwhttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		BasePath: cfg.HTTP.BasePath,
		Session: middleware.SessionOptions{
			Names: auth.CookieNames{
				Login:   cfg.Cookies.Login,
				Token:   cfg.Cookies.Token,
				Profile: cfg.Cookies.Profile,
			},
			Cookies: auth.CookieOptions{
				MaxAge:   cfg.Cookies.MaxAge,
				Secure:   cfg.SecureCookies(),
				SameSite: http.SameSiteStrictMode,
				Path:     cfg.Cookies.Path,
			},
			Diagnostics: !cfg.Production(),
		},
	}

	apiHandler := gwhttp.NewRouter(cl, cfg.Navigation, opts)

	var ready int32 // 0 - not ready; 1 - ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("gateway_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// setupCache - Redis-кэш поиска; недоступный Redis не мешает старту.
func setupCache(ctx context.Context, cfg config.CacheConfig, log *slog.Logger) cache.SearchCache {
	if cfg.RedisURL == "" {
		log.Info("search_cache_disabled")
		return cache.Nop{}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	c, err := cache.NewRedisCache(pingCtx, cfg.RedisURL, cfg.Prefix, cfg.TTL)
	if err != nil {
		log.Warn("search_cache_unavailable", slog.String("err", err.Error()))
		return cache.Nop{}
	}

	log.Info("search_cache_enabled", slog.Duration("ttl", cfg.TTL))
	return c
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
