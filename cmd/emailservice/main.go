package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jackc/pgx/v5/pgxpool"
	emailv1 "github.com/orderpost/orderpost/api/proto/email/v1"
	"github.com/orderpost/orderpost/internal/admin"
	"github.com/orderpost/orderpost/internal/deliverylog"
	"github.com/orderpost/orderpost/internal/email"
	"github.com/orderpost/orderpost/internal/health"
	"github.com/orderpost/orderpost/internal/mailer"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpchealth "google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/protobuf/encoding/protojson"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	if err := run(logger); err != nil {
		logger.Fatal("emailservice exited with error", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	// ── Configuration ─────────────────────────────────────────────────────────
	viper.SetConfigName("emailservice")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("configs")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("emailservice.grpc_port", 8080)
	viper.SetDefault("emailservice.gateway_port", 8081) // grpc-gateway REST port
	viper.SetDefault("emailservice.admin_port", 8082)
	viper.SetDefault("emailservice.subject", mailer.DefaultSubject)
	viper.SetDefault("emailservice.rate_limit_per_second", 0) // 0 disables limiting
	viper.SetDefault("emailservice.rate_burst", 10)
	viper.SetDefault("emailservice.admin_secret", "")
	viper.SetDefault("emailservice.smtp_check_interval_seconds", 60)
	viper.SetDefault("emailservice.smtp_probe_timeout_seconds", 10)
	viper.SetDefault("emailservice.smtp_fail_threshold", 3)
	viper.SetDefault("emailservice.cors_origins", []string{})
	viper.SetDefault("database.url", "")
	viper.SetDefault("email.smtp_host", "")
	viper.SetDefault("email.smtp_port", 587)
	viper.SetDefault("email.smtp_username", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@orderpost.dev")
	viper.SetDefault("email.oauth_token_url", "")
	viper.SetDefault("email.oauth_client_id", "")
	viper.SetDefault("email.oauth_client_secret", "")
	viper.SetDefault("email.oauth_scopes", []string{})

	if err := viper.ReadInConfig(); err != nil {
		var cfgNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &cfgNotFound) {
			return fmt.Errorf("read config: %w", err)
		}
		logger.Warn("no config file found, using defaults and env vars")
	}

	grpcPort := viper.GetInt("emailservice.grpc_port")
	gatewayPort := viper.GetInt("emailservice.gateway_port")
	adminPort := viper.GetInt("emailservice.admin_port")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Delivery log ──────────────────────────────────────────────────────────
	var dlog deliverylog.Log
	if dbURL := viper.GetString("database.url"); dbURL != "" {
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("ping postgres: %w", err)
		}
		dlog, err = deliverylog.NewPostgresLog(ctx, pool, logger)
		if err != nil {
			return err
		}
		logger.Info("delivery log: postgres")
	} else {
		dlog = deliverylog.NewMemoryLog()
		logger.Warn("delivery log: in-memory (no database.url configured, records are lost on restart)")
	}

	// ── Mailer service ────────────────────────────────────────────────────────
	svc := mailer.New(mailer.Config{
		Subject:   viper.GetString("emailservice.subject"),
		RateLimit: rate.Limit(viper.GetFloat64("emailservice.rate_limit_per_second")),
		RateBurst: viper.GetInt("emailservice.rate_burst"),
	}, buildSender(logger), dlog, logger)

	// ── gRPC server ───────────────────────────────────────────────────────────
	grpcLis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("gRPC listen on :%d: %w", grpcPort, err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(loggingInterceptor(logger)),
	)

	emailv1.RegisterEmailServiceServer(grpcServer, svc)

	// Standard gRPC health service
	healthSvc := grpchealth.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthSvc)
	healthSvc.SetServingStatus(
		emailv1.EmailService_ServiceDesc.ServiceName,
		grpc_health_v1.HealthCheckResponse_SERVING,
	)

	// gRPC reflection (for grpcurl and Evans)
	reflection.Register(grpcServer)

	// Relay reachability checker: only meaningful with a real SMTP transport.
	if smtpHost := viper.GetString("email.smtp_host"); smtpHost != "" {
		prober := &health.TCPProber{
			Addr: fmt.Sprintf("%s:%d", smtpHost, viper.GetInt("email.smtp_port")),
		}
		checker := health.New(prober, healthSvc,
			emailv1.EmailService_ServiceDesc.ServiceName,
			health.Config{
				CheckInterval: time.Duration(viper.GetInt("emailservice.smtp_check_interval_seconds")) * time.Second,
				ProbeTimeout:  time.Duration(viper.GetInt("emailservice.smtp_probe_timeout_seconds")) * time.Second,
				FailThreshold: viper.GetInt("emailservice.smtp_fail_threshold"),
			}, logger)
		go checker.Start(ctx)
	}

	// ── grpc-gateway HTTP/JSON reverse proxy ──────────────────────────────────
	gwMux := runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{
			MarshalOptions: protojson.MarshalOptions{
				UseProtoNames:   true,
				EmitUnpopulated: false,
			},
		}),
	)

	grpcAddr := fmt.Sprintf("localhost:%d", grpcPort)
	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if err := emailv1.RegisterEmailServiceHandlerFromEndpoint(ctx, gwMux, grpcAddr, dialOpts); err != nil {
		return fmt.Errorf("register grpc-gateway: %w", err)
	}

	gwSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", gatewayPort),
		Handler:           gwMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ── Admin/ops HTTP server ─────────────────────────────────────────────────
	adminRouter := admin.NewRouter(admin.Config{
		AdminSecret: viper.GetString("emailservice.admin_secret"),
		CORSOrigins: viper.GetStringSlice("emailservice.cors_origins"),
	}, dlog, logger)

	adminSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", adminPort),
		Handler:           adminRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ── Start all servers ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("emailservice gRPC listening", zap.Int("port", grpcPort))
		if err := grpcServer.Serve(grpcLis); err != nil {
			logger.Fatal("gRPC serve error", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("emailservice HTTP/JSON gateway listening", zap.Int("port", gatewayPort))
		if err := gwSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("gateway serve error", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("emailservice admin API listening", zap.Int("port", adminPort))
		if err := adminSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("admin serve error", zap.Error(err))
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	<-quit
	logger.Info("shutting down emailservice...")
	cancel()

	grpcServer.GracefulStop()

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()
	if err := gwSrv.Shutdown(shutCtx); err != nil {
		logger.Error("gateway shutdown", zap.Error(err))
	}
	if err := adminSrv.Shutdown(shutCtx); err != nil {
		logger.Error("admin shutdown", zap.Error(err))
	}

	logger.Info("emailservice stopped")
	return nil
}

// buildSender picks the outbound transport from config: XOAUTH2 SMTP when an
// OAuth token URL is set, password SMTP when a host is set, and the logging
// noop sender otherwise.
func buildSender(logger *zap.Logger) email.Sender {
	host := viper.GetString("email.smtp_host")
	if host == "" {
		logger.Warn("no smtp host configured, using noop sender")
		return email.NewNoopSender(logger)
	}

	port := viper.GetInt("email.smtp_port")
	from := viper.GetString("email.from_address")

	if tokenURL := viper.GetString("email.oauth_token_url"); tokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     viper.GetString("email.oauth_client_id"),
			ClientSecret: viper.GetString("email.oauth_client_secret"),
			TokenURL:     tokenURL,
			Scopes:       viper.GetStringSlice("email.oauth_scopes"),
		}
		auth := email.XOAUTH2(viper.GetString("email.smtp_username"), cc.TokenSource(context.Background()))
		logger.Info("smtp sender with XOAUTH2", zap.String("host", host))
		return email.NewSMTPSenderWithAuth(host, port, from, auth)
	}

	logger.Info("smtp sender", zap.String("host", host))
	return email.NewSMTPSender(host, port,
		viper.GetString("email.smtp_username"),
		viper.GetString("email.smtp_password"),
		from,
	)
}

// loggingInterceptor returns a gRPC unary server interceptor that logs each call.
func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := "OK"
		if err != nil {
			code = grpc.Code(err).String() //nolint:staticcheck
		}
		logger.Info("grpc",
			zap.String("method", info.FullMethod),
			zap.String("code", code),
			zap.Duration("latency", time.Since(start)),
		)
		return resp, err
	}
}
