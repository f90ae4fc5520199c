package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/minepool-labs/poolledger-backend/internal/envelope"
	"github.com/minepool-labs/poolledger-backend/internal/metrics"
	"github.com/minepool-labs/poolledger-backend/internal/repository/postgres"
	"github.com/minepool-labs/poolledger-backend/internal/settlement"
	"github.com/minepool-labs/poolledger-backend/internal/transport"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

var config struct {
	Addr           string        `long:"addr" env:"SETTLEMENT_GATEWAY_ADDR" description:"rpc addr" default:":8000"`
	GRPCAddr       string        `long:"grpc-addr" env:"SETTLEMENT_GATEWAY_GRPC_ADDR" description:"grpc addr" default:":8001"`
	PostgresDSN    string        `long:"postgres-dsn" env:"SETTLEMENT_GATEWAY_POSTGRES_DSN" description:"postgres dsn" default:"postgres://localhost:5432/poolledger?sslmode=disable"`
	RPCSecret      string        `long:"rpc-secret" env:"SETTLEMENT_GATEWAY_RPC_SECRET" description:"shared envelope secret" required:"true"`
	EnvelopeMaxAge time.Duration `long:"envelope-max-age" env:"SETTLEMENT_GATEWAY_ENVELOPE_MAX_AGE" description:"envelope validity window" default:"5m"`
	LeaseTTL       time.Duration `long:"lease-ttl" env:"SETTLEMENT_GATEWAY_LEASE_TTL" description:"claim lease lifetime" default:"30m"`
	RateLimit      int           `long:"rate-limit" env:"SETTLEMENT_GATEWAY_RATE_LIMIT" description:"max rpc requests per second" default:"50"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	repo, err := postgres.NewRepository(config.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		logger.Fatal("Failed to create repository", zap.Error(err))
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Error("Failed to close repository", zap.Error(closeErr))
		}
	}()
	if err := repo.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping postgres", zap.Error(err))
	}

	codec, err := envelope.New(config.RPCSecret, config.EnvelopeMaxAge)
	if err != nil {
		logger.Fatal("Failed to create envelope codec", zap.Error(err))
	}

	service, err := settlement.NewService(repo, config.LeaseTTL, logger)
	if err != nil {
		logger.Fatal("Failed to create settlement service", zap.Error(err))
	}

	handler, err := transport.NewRPCHandler(logger, codec, service, metrics.NewRPCHandler(), ratelimit.New(config.RateLimit))
	if err != nil {
		logger.Fatal("Failed to create rpc handler", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	grpc_health_v1.RegisterHealthServer(grpcServer, health.NewServer())

	socket, err := net.Listen("tcp", config.GRPCAddr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
