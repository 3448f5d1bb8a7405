// Package registry implements ports.Registry: an in-process, mutex-
// guarded collector for the endpoint/middleware/use/server
// declarations the evaluator forwards while walking a program's
// top-level statements. The HTTP adapter reads it back after Run
// returns to build its route table.
package registry

import (
	"fmt"
	"sync"

	"github.com/JangRuBin2/rulang/pkg/ast"
)

// EndpointDecl is one `endpoint` declaration as recorded by the
// evaluator, in the order it was declared.
type EndpointDecl struct {
	Method      string
	Path        string
	Middlewares []string
	Body        *ast.Block
}

// MiddlewareDecl is one named `middleware` body.
type MiddlewareDecl struct {
	Name string
	Body *ast.Block
}

// Registry collects a program's HTTP-flavored declarations. Safe for
// concurrent use: a host may read it back while a long-running REPL
// keeps evaluating further top-level statements.
type Registry struct {
	mu          sync.RWMutex
	endpoints   []EndpointDecl
	middlewares map[string]MiddlewareDecl
	use         []string
	port        float64
	portSet     bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{middlewares: make(map[string]MiddlewareDecl)}
}

// OnEndpoint records one endpoint declaration.
func (r *Registry) OnEndpoint(method, path string, middlewares []string, body *ast.Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoints = append(r.endpoints, EndpointDecl{
		Method:      method,
		Path:        path,
		Middlewares: append([]string(nil), middlewares...),
		Body:        body,
	})
	return nil
}

// OnMiddleware records a named middleware body. Redeclaring a name is
// rejected rather than silently overwritten, since middleware names
// are referenced by other declarations that may already have resolved
// against the first definition.
func (r *Registry) OnMiddleware(name string, body *ast.Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.middlewares[name]; exists {
		return fmt.Errorf("middleware %q already declared", name)
	}
	r.middlewares[name] = MiddlewareDecl{Name: name, Body: body}
	return nil
}

// OnUse appends names to the globally-applied middleware list, in order.
func (r *Registry) OnUse(names []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.use = append(r.use, names...)
	return nil
}

// OnServer records the declared listen port.
func (r *Registry) OnServer(port float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.port = port
	r.portSet = true
	return nil
}

// Endpoints returns the declared endpoints in declaration order.
func (r *Registry) Endpoints() []EndpointDecl {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]EndpointDecl(nil), r.endpoints...)
}

// Middleware looks up a declared middleware body by name.
func (r *Registry) Middleware(name string) (MiddlewareDecl, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.middlewares[name]
	return m, ok
}

// GlobalUse returns the globally-applied middleware names, in the
// order they were declared across every `use` statement.
func (r *Registry) GlobalUse() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.use...)
}

// Port returns the declared listen port and whether `server` ever ran.
func (r *Registry) Port() (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.port, r.portSet
}
