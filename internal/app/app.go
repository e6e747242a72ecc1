/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package app wires the registry, the classifier and both network surfaces
// into one server process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"dirpx.dev/evcode"
	"dirpx.dev/evcode/grpcx"
	"dirpx.dev/evcode/httpx"
	"dirpx.dev/evcode/internal/config"
	"dirpx.dev/evcode/internal/ctxlog"
	"dirpx.dev/evcode/subsystem"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ShutdownTimeout bounds graceful shutdown of both servers.
const ShutdownTimeout = 5 * time.Second

// App encapsulates the server's dependencies and lifecycle.
type App struct {
	cfg    config.Config
	logger *slog.Logger
	reg    *evcode.Registry
	cls    *subsystem.Classifier
}

// New builds an App from a validated configuration. A nil logger discards
// records.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = ctxlog.Discard()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fb, err := cfg.Fallback()
	if err != nil {
		return nil, err
	}
	cls, err := cfg.Classifier()
	if err != nil {
		return nil, err
	}
	reg := evcode.Default().WithFallback(fb)
	logger.Debug("Registry ready.", "codes", reg.Len(), "shadowed", len(reg.Shadowed()), "fallback", fb.String())

	return &App{cfg: cfg, logger: logger, reg: reg, cls: cls}, nil
}

// Registry returns the registry served by the App.
func (a *App) Registry() *evcode.Registry { return a.reg }

// Classifier returns the classifier served by the App.
func (a *App) Classifier() *subsystem.Classifier { return a.cls }

// Handler returns the HTTP API.
func (a *App) Handler() http.Handler {
	return httpx.NewHandler(a.reg, a.cls, httpx.WithLogger(a.logger))
}

// GRPCServer returns a gRPC server with the resolver and health services
// registered.
func (a *App) GRPCServer() *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(grpcx.UnaryServerInterceptor(nil, a.logger)))
	grpcx.Register(s, grpcx.NewServer(a.reg, a.cls))

	hs := health.NewServer()
	hs.SetServingStatus(grpcx.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	return s
}

// Listen opens the configured HTTP and gRPC listeners.
func (a *App) Listen() (httpLn, grpcLn net.Listener, err error) {
	httpLn, err = net.Listen("tcp", a.cfg.HTTP.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("app: http listen: %w", err)
	}
	grpcLn, err = net.Listen("tcp", a.cfg.GRPC.Addr)
	if err != nil {
		_ = httpLn.Close()
		return nil, nil, fmt.Errorf("app: grpc listen: %w", err)
	}
	return httpLn, grpcLn, nil
}

// Serve runs the HTTP and gRPC servers on the given listeners until ctx is
// done or one of them fails, then shuts both down gracefully. It returns nil
// after a shutdown caused by ctx.
func (a *App) Serve(ctx context.Context, httpLn, grpcLn net.Listener) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	g, gctx := errgroup.WithContext(ctx)

	hs := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	gs := a.GRPCServer()

	g.Go(func() error {
		a.logger.Info("HTTP server starting.", "address", httpLn.Addr().String())
		if err := hs.Serve(httpLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		a.logger.Info("gRPC server starting.", "address", grpcLn.Addr().String())
		if err := gs.Serve(grpcLn); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("app: grpc: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutting down servers.")

		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			gs.GracefulStop()
			close(stopped)
		}()

		err := hs.Shutdown(sctx)
		select {
		case <-stopped:
		case <-sctx.Done():
			gs.Stop()
		}
		if err != nil {
			return fmt.Errorf("app: http shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	a.logger.Info("Servers stopped.")
	return err
}
