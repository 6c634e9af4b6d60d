package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/ghostline"
	"github.com/iw2rmb/ghostline/internal/logging"
	"github.com/iw2rmb/ghostline/server"
)

type serveOptions struct {
	host    string
	port    int
	backend string
	baseURL string
	model   string
	origins []string
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the /api/complete backend",
		Long: `Serve POST /api/complete for the editor's HTTP provider.

The backend is OpenAI-compatible by default and reads ARK_BASE_URL,
ARK_API_KEY, ARK_MODEL and PORT, or the GHOSTLINE_* equivalents.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.host, "host", "", "listen host")
	f.IntVar(&opts.port, "port", 0, "listen port")
	f.StringVar(&opts.backend, "backend", "", "model backend: openai or anthropic")
	f.StringVar(&opts.baseURL, "base-url", "", "backend API base URL")
	f.StringVar(&opts.model, "model", "", "backend model name")
	f.StringSliceVar(&opts.origins, "allow-origin", nil, "CORS allowed origin (repeatable, * for any)")
	return cmd
}

func runServe(cmd *cobra.Command, root *rootOptions, opts *serveOptions) error {
	cfg, err := root.load(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Server.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.Server.Port = opts.port
	}
	if flags.Changed("backend") {
		cfg.Backend.Kind = opts.backend
	}
	if flags.Changed("base-url") {
		cfg.Backend.BaseURL = opts.baseURL
	}
	if flags.Changed("model") {
		cfg.Backend.Model = opts.model
	}
	if flags.Changed("allow-origin") {
		cfg.Server.AllowedOrigins = opts.origins
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(loggingOptions(cfg.Log, false))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	completer, err := server.NewCompleter(cfg.Backend, nil)
	if err != nil {
		return err
	}
	h := server.NewHandler(completer,
		server.WithLogger(logger.Named("http")),
		server.WithAllowedOrigins(cfg.Server.AllowedOrigins...),
		server.WithTimeout(cfg.Server.RequestTimeout),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting ghostline backend",
		zap.String("version", ghostline.Version()),
		zap.String("backend", cfg.Backend.Kind),
		zap.String("addr", cfg.Server.Addr()),
	)
	return server.ListenAndRun(ctx, cfg.Server.Addr(), h, cfg.Server.ShutdownTimeout, logger)
}

