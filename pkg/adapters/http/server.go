// Package http implements the HTTP adapter: a chi-routed dispatcher
// that turns the endpoint/middleware/use/server declarations a
// Registry collected into real request handling, per spec.md §6's
// host callback contract.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/JangRuBin2/rulang/internal/runtime"
	"github.com/JangRuBin2/rulang/pkg/domain"
	"github.com/JangRuBin2/rulang/pkg/observability"
	"github.com/JangRuBin2/rulang/pkg/ports"
	"github.com/JangRuBin2/rulang/pkg/registry"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// Server dispatches real HTTP requests against the declarations an
// Evaluator.Run collected into a Registry. For each request it builds
// `req`/`res`/`next`/`db`, binds them into a child of the program's
// root scope, and drives the middleware chain with Evaluator.RunBlock.
type Server struct {
	eval    *runtime.Evaluator
	reg     *registry.Registry
	root    *value.Scope
	store   ports.Store
	logger  *slog.Logger
	metrics *observability.Metrics

	mu                  sync.Mutex
	perRequestEvaluator bool

	router chi.Router
}

// Option configures a Server at construction time.
type Option func(*Server)

// WithLogger sets the logger used around dispatch failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithMetrics mounts /metrics and records request/transition counters.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithPerRequestEvaluator opts out of the mutex that by default
// serializes dispatch against the shared Evaluator instance, per §5's
// requirement that the host not call the evaluator re-entrantly on one
// instance. Only safe when the program's top level never shares a
// mutable StateInstance binding across requests.
func WithPerRequestEvaluator() Option {
	return func(s *Server) { s.perRequestEvaluator = true }
}

// NewServer builds the route table from reg's collected endpoints.
// eval and root must be the same Evaluator/Scope pair the program was
// run against, so handler bodies still resolve top-level lets, fns,
// and state types.
func NewServer(eval *runtime.Evaluator, reg *registry.Registry, root *value.Scope, store ports.Store, opts ...Option) *Server {
	s := &Server{
		eval:   eval,
		reg:    reg,
		root:   root,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestID)

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	for _, ep := range reg.Endpoints() {
		r.Method(ep.Method, ep.Path, s.handlerFor(ep))
	}
	s.router = r
	return s
}

// ServeHTTP makes Server itself an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handlerFor(ep registry.EndpointDecl) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.dispatch(w, r, ep)
	}
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ep registry.EndpointDecl) {
	if !s.perRequestEvaluator {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	reqVal, err := s.buildRequest(r)
	if err != nil {
		s.writeError(w, r, ep, err)
		return
	}

	resVal, state := newResponse()
	dbVal := value.NewNull()
	if s.store != nil {
		dbVal = buildDB(r.Context(), s.store)
	}

	scope := value.NewScope(s.root)
	scope.Define("req", reqVal)
	scope.Define("res", resVal)
	scope.Define("db", dbVal)
	scope.Define("next", value.NewNative(func(args []value.Value) (value.Value, value.Signal, error) {
		return value.NewNull(), value.NextSignal, nil
	}))

	chain := make([]string, 0, len(s.reg.GlobalUse())+len(ep.Middlewares))
	chain = append(chain, s.reg.GlobalUse()...)
	chain = append(chain, ep.Middlewares...)

	for _, name := range chain {
		mw, ok := s.reg.Middleware(name)
		if !ok {
			s.writeError(w, r, ep, &domain.NameError{Name: name})
			return
		}
		_, sig, err := s.eval.RunBlock(mw.Body, scope)
		if err != nil {
			s.writeError(w, r, ep, err)
			return
		}
		if sig.Kind != value.SignalNext {
			// Return (or falling off the end without calling next())
			// terminates the pipeline here, per spec.md §8 scenario 5.
			s.finish(w, r, ep, state)
			return
		}
	}

	if _, _, err := s.eval.RunBlock(ep.Body, scope); err != nil {
		s.writeError(w, r, ep, err)
		return
	}
	s.finish(w, r, ep, state)
}

func (s *Server) finish(w http.ResponseWriter, r *http.Request, ep registry.EndpointDecl, state *responseState) {
	for k, v := range state.headers {
		w.Header().Set(k, v)
	}

	if state.redirectURL != "" {
		http.Redirect(w, r, state.redirectURL, http.StatusFound)
		s.observe(ep, http.StatusFound)
		return
	}

	status := state.status
	if status == 0 {
		status = http.StatusOK
	}

	if !state.sent {
		w.WriteHeader(status)
		s.observe(ep, status)
		return
	}

	w.Header().Set("Content-Type", state.contentType)
	w.WriteHeader(status)
	switch state.contentType {
	case "text/plain":
		w.Write([]byte(state.body.Str()))
	default:
		payload, err := value.ToAny(state.body)
		if err != nil {
			s.logger.Error("response body encode failed", "error", err)
			return
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Error("response body write failed", "error", err)
		}
	}
	s.observe(ep, status)
}

func (s *Server) observe(ep registry.EndpointDecl, status int) {
	if s.metrics != nil {
		s.metrics.ObserveRequest(ep.Method, ep.Path, status)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, ep registry.EndpointDecl, err error) {
	status, msg := statusFor(err)
	s.logger.Error("handler dispatch failed",
		"method", ep.Method, "path", ep.Path,
		"request_id", requestIDFromContext(r.Context()), "error", err)
	http.Error(w, msg, status)
	s.observe(ep, status)
}

// statusFor maps the core's error taxonomy onto HTTP status codes.
// ValidationError is the caller's fault (400); TransitionError is a
// legitimate conflict with current state (409); everything else
// (TypeError, NameError, a bare Go error) is a 500 since it reflects a
// program bug rather than bad input.
func statusFor(err error) (int, string) {
	switch e := err.(type) {
	case *domain.ValidationError:
		return http.StatusBadRequest, e.Error()
	case *domain.TransitionError:
		return http.StatusConflict, e.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
