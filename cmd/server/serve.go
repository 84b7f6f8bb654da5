package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jamesprial/zeabur-mcp/internal/config"
	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/httpserver"
	"github.com/jamesprial/zeabur-mcp/internal/safety"
	"github.com/jamesprial/zeabur-mcp/internal/session"
	"github.com/jamesprial/zeabur-mcp/internal/telemetry"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	shutdownTimeout = 15 * time.Second
	sessionHeader   = "Mcp-Session-Id"
)

type serveOptions struct {
	configPath string
	transport  string
	port       int
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts, cmd.Flags().Changed("port"))
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to config.yaml (default $ZEABUR_MCP_CONFIG_PATH or "+defaultConfigPath+")")
	cmd.Flags().StringVar(&opts.transport, "transport", "", "override server.transport: http or stdio")
	cmd.Flags().IntVar(&opts.port, "port", 0, "override server.port")
	return cmd
}

func runServe(ctx context.Context, opts *serveOptions, portSet bool) error {
	cfg, loadErr := loadConfig(opts.configPath)
	config.ApplyEnvOverrides(cfg)
	if opts.transport != "" {
		cfg.Server.Transport = opts.transport
	}
	if portSet {
		cfg.Server.Port = opts.port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := telemetry.NewLogger(cfg.Logging, nil)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	shutdownTracing, err := telemetry.SetupTracing(cfg.Tracing, version, nil)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn().Err(err).Msg("flush traces")
		}
	}()

	var metrics *telemetry.Metrics
	if cfg.Metrics.Enabled {
		metrics = telemetry.NewMetrics()
	}

	client, err := graphql.NewHTTPClient(cfg.Zeabur,
		graphql.WithLogger(logger),
		graphql.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}
	if cfg.Zeabur.Token == "" {
		logger.Warn().Msg("no Zeabur API token configured (set ZEABUR_TOKEN); API calls will fail")
	} else if user, err := client.UserInfo(ctx); err != nil {
		logger.Warn().Err(err).Msg("could not verify Zeabur API token")
	} else {
		logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("authenticated with Zeabur")
	}

	audit, closeAudit := openAuditLog(cfg.Audit, logger)
	defer closeAudit()

	sessions := session.NewRegistry(client)
	mcpServer := server.NewMCPServer(
		"zeabur-mcp",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(sessions.Hooks()),
	)

	commandFilter := safety.NewFilter(cfg.Safety.Commands.Allowlist, cfg.Safety.Commands.Denylist)
	if bad := commandFilter.InvalidPatterns(); len(bad) > 0 {
		logger.Warn().Strs("patterns", bad).Msg("ignoring malformed command filter patterns")
	}

	registrations := buildRegistrations(client, sessions, commandFilter, tools.Deps{
		Audit:   audit,
		Confirm: safety.NewConfirmationTracker(destructiveTools()),
		Metrics: metrics,
	})
	if err := tools.RegisterAll(mcpServer, registrations); err != nil {
		return err
	}
	logger.Info().Int("tools", len(registrations)).Str("transport", cfg.Server.Transport).Msg("zeabur-mcp starting")

	if cfg.Server.Transport == "stdio" {
		return server.ServeStdio(mcpServer, server.WithStdioContextFunc(func(ctx context.Context) context.Context {
			return logger.WithContext(ctx)
		}))
	}
	return serveHTTP(ctx, cfg, mcpServer, metrics, logger)
}

func serveHTTP(ctx context.Context, cfg *config.Config, mcpServer *server.MCPServer, metrics *telemetry.Metrics, logger zerolog.Logger) error {
	tokenBefore := cfg.Server.AuthToken
	token, err := config.EnsureAuthToken(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("could not generate auth token, running without authentication")
	} else if tokenBefore == "" {
		logger.Info().Str("token", token).Msg("generated auth token (set ZEABUR_MCP_AUTH_TOKEN to persist)")
	}

	mcpHandler := server.NewStreamableHTTPServer(mcpServer,
		server.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			l := zerolog.Ctx(ctx).With().Str("mcp_session", r.Header.Get(sessionHeader)).Logger()
			return l.WithContext(ctx)
		}),
	)

	httpSrv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: httpserver.NewRouter(httpserver.Options{
			MCP:         mcpHandler,
			AuthToken:   cfg.Server.AuthToken,
			Metrics:     metrics,
			MetricsPath: cfg.Metrics.Path,
			Logger:      logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", httpSrv.Addr).Str("path", httpserver.MCPPath).Msg("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(sctx)
	})
	return g.Wait()
}

// loadConfig reads path, falling back to $ZEABUR_MCP_CONFIG_PATH and then
// defaultConfigPath. A missing or unreadable file yields DefaultConfig and
// the load error.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("ZEABUR_MCP_CONFIG_PATH")
	}
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.DefaultConfig(), fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

func openAuditLog(cfg config.AuditConfig, logger zerolog.Logger) (*safety.AuditLogger, func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}
	audit, closeFn, err := safety.OpenAuditLog(cfg.LogPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.LogPath).Msg("audit logging disabled")
		return nil, func() {}
	}
	return audit, func() {
		if err := closeFn(); err != nil {
			logger.Warn().Err(err).Msg("close audit log")
		}
	}
}
