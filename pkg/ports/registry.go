package ports

import "github.com/JangRuBin2/rulang/pkg/ast"

// Registry is the host hook interface the evaluator calls synchronously
// while executing a program's top-level `endpoint`/`middleware`/`use`/
// `server` statements. Bodies are AST nodes kept alive by whatever
// implements Registry, so it can dispatch real requests to them later.
type Registry interface {
	OnEndpoint(method, path string, middlewares []string, body *ast.Block) error
	OnMiddleware(name string, body *ast.Block) error
	OnUse(names []string) error
	OnServer(port float64) error
}
