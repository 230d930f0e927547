package main

import (
	"bufio"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"vidyodaya/internal/articles"
	"vidyodaya/internal/config"
	"vidyodaya/internal/logging"
	"vidyodaya/internal/metrics"
	"vidyodaya/internal/roles"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

/*
   ---------------------------
   Request logging
   ---------------------------
*/

type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("responsewriter does not support hijacking")
	}
	return h.Hijack()
}

func (r *responseRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *responseRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *responseRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		level := zerolog.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zerolog.ErrorLevel
		case status >= http.StatusBadRequest:
			level = zerolog.WarnLevel
		}

		log.WithLevel(level).
			Str("sys", "http").
			Int("status", status).
			Int("bytes", rec.bytes).
			Dur("dur", time.Since(start).Truncate(time.Millisecond)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("ua", r.UserAgent()).
			Msg("request")
	})
}

/*
   ---------------------------
   TLS
   ---------------------------
*/

// ensureTLSCert writes a self-signed certificate for hosts unless a
// certificate and key already exist at the given paths.
func ensureTLSCert(certPath, keyPath string, hosts []string) error {
	certInfo, certErr := os.Stat(certPath)
	keyInfo, keyErr := os.Stat(keyPath)
	if certErr == nil && keyErr == nil && certInfo.Mode().IsRegular() && keyInfo.Mode().IsRegular() {
		return nil
	}

	if (certErr == nil) != (keyErr == nil) {
		log.Warn().AnErr("cert", certErr).AnErr("key", keyErr).Msg("TLS cert/key mismatch, regenerating")
	}

	for _, p := range []string{certPath, keyPath} {
		if dir := filepath.Dir(p); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("create cert dir: %w", err)
			}
		}
	}

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return fmt.Errorf("generate serial: %w", err)
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: "vidyodaya"},
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.Add(365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")},
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, h)
		}
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	keyBytes, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}

	if err := writePEM(certPath, 0o644, &pem.Block{Type: "CERTIFICATE", Bytes: derBytes}); err != nil {
		return err
	}
	return writePEM(keyPath, 0o600, &pem.Block{Type: "EC PRIVATE KEY", Bytes: keyBytes})
}

func writePEM(path string, mode os.FileMode, block *pem.Block) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if err := pem.Encode(f, block); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

/*
   ---------------------------
   Main
   ---------------------------
*/

func getVidyodayaRouter(settings *config.SettingsType, roleStore *roles.Store, articleStore *articles.Store, m *metrics.Metrics) http.Handler {
	metricsEnabled := settings.IsTrue(config.METRICS_ENABLED)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logRequests)
	if metricsEnabled {
		router.Use(m.Middleware)
	}
	router.Use(middleware.Recoverer)
	router.Use(securityHeaders)

	p := pages{siteName: settings.Get(config.SITE_NAME)}

	router.Get("/", p.handleHome)
	router.Get(loginPath, p.handleLoginGet)
	router.Post(loginPath, p.handleLoginPost)
	router.Handle("/static/*", http.FileServer(http.FS(staticFiles)))

	router.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok\n")); err != nil {
			log.Warn().Err(err).Msg("failed to write health response")
		}
	})

	if metricsEnabled {
		router.Handle("/metrics", m.Handler())
	}

	apiCfg := huma.DefaultConfig(p.siteName, "1.0.0")
	apiCfg.OpenAPIPath = ""
	apiCfg.DocsPath = ""
	apiCfg.SchemasPath = ""
	api := humachi.New(router, apiCfg)
	roles.Register(api, roleStore)
	articles.Register(api, articleStore)

	if settings.IsTrue(config.COMPRESS_RESPONSES) {
		return gzhttp.GzipHandler(router)
	}
	return router
}

func main() {
	logging.SetDefaultLogger()

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("vidyodaya failed")
	}
}

func run() error {
	settings, err := config.NewSettingType(true)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err := logging.Setup(settings.Get(config.LOG_LEVEL), settings.Get(config.LOG_FORMAT), os.Stderr); err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	shutdownTimeout, err := settings.Duration(config.SHUTDOWN_TIMEOUT)
	if err != nil {
		return err
	}

	roleStore := roles.NewStore()
	if settings.IsTrue(config.SEED_ROLES) {
		if err := roles.Seed(roleStore); err != nil {
			return err
		}
		log.Info().Int("roles", roleStore.Count()).Msg("seeded roles")
	}

	srv := &http.Server{
		Addr:              settings.Get(config.LISTEN_ADDR),
		Handler:           getVidyodayaRouter(settings, roleStore, articles.NewStore(), metrics.New()),
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	useTLS := settings.IsTrue(config.TLS_ENABLED)
	certPath := settings.Get(config.TLS_CERT_FILE)
	keyPath := settings.Get(config.TLS_KEY_FILE)
	if useTLS {
		if err := ensureTLSCert(certPath, keyPath, settings.List(config.TLS_HOSTS)); err != nil {
			return fmt.Errorf("failed to ensure TLS certs: %w", err)
		}
		srv.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Bool("tls", useTLS).Msg("Starting Vidyodaya")
		if useTLS {
			serverErrors <- srv.ListenAndServeTLS(certPath, keyPath)
			return
		}
		serverErrors <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}
