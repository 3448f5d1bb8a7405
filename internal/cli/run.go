package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/JangRuBin2/rulang"
	httpAdapter "github.com/JangRuBin2/rulang/pkg/adapters/http"
	"github.com/JangRuBin2/rulang/pkg/adapters/memory"
	redisAdapter "github.com/JangRuBin2/rulang/pkg/adapters/redis"
	"github.com/JangRuBin2/rulang/pkg/observability"
	"github.com/JangRuBin2/rulang/pkg/ports"
	"github.com/JangRuBin2/rulang/pkg/registry"
	"github.com/JangRuBin2/rulang/pkg/runner"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// RunOptions configures `rulang run`.
type RunOptions struct {
	File       string
	Port       int // 0 means "not set on the command line"
	LogLevel   string
	ConfigPath string
	RedisURL   string
}

// Execute compiles and runs a Rulang source file. Programs that never
// declare an endpoint or server port run to completion and exit;
// programs that do are served over HTTP until interrupted.
func Execute(opts RunOptions) error {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	logLevel := opts.LogLevel
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	logger := createLogger(logLevel)

	src, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.File, err)
	}

	prog, err := rulang.Compile(string(src))
	if err != nil {
		return fmt.Errorf("compile %s: %w", opts.File, err)
	}

	reg := registry.NewRegistry()
	metrics := observability.NewMetrics()
	eval := rulang.New(
		rulang.WithLogger(logger),
		rulang.WithRegistry(reg),
		rulang.WithPrintSink(func(s string) { fmt.Println(s) }),
		rulang.WithLifecycleHooks(metrics.Hooks()),
	)

	root := value.NewScope(nil)
	if err := rulang.Run(eval, prog, root); err != nil {
		return fmt.Errorf("run %s: %w", opts.File, err)
	}

	declaredPort, hasServer := reg.Port()
	if len(reg.Endpoints()) == 0 && !hasServer {
		return nil
	}

	store, err := buildStore(opts.RedisURL)
	if err != nil {
		return err
	}

	port := resolvePort(opts.Port, cfg.Port, declaredPort)
	return serve(eval, reg, root, store, metrics, logger, port)
}

func resolvePort(flagPort, configPort int, declaredPort float64) int {
	if flagPort != 0 {
		return flagPort
	}
	if configPort != 0 {
		return configPort
	}
	if declaredPort != 0 {
		return int(declaredPort)
	}
	return 8080
}

func buildStore(redisURL string) (ports.Store, error) {
	if redisURL == "" {
		return memory.NewStore(), nil
	}
	opts, err := backend.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse --redis-url: %w", err)
	}
	return redisAdapter.NewFromClient(backend.NewClient(opts)), nil
}

func serve(eval *rulang.Evaluator, reg *registry.Registry, root *value.Scope, store ports.Store, metrics *observability.Metrics, logger *slog.Logger, port int) error {
	server := httpAdapter.NewServer(eval, reg, root, store,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMetrics(metrics),
	)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(port),
		Handler: server,
	}

	signals := runner.NewSignalManager()
	defer signals.Stop()

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("rulang: listening on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-signals.Context().Done():
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return srv.Close()
		}
		fmt.Println("rulang: stopped gracefully")
		return nil
	}
}
