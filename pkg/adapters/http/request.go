package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"

	"github.com/JangRuBin2/rulang/pkg/domain"
	"github.com/JangRuBin2/rulang/pkg/ports"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// buildRequest constructs the `req` object per spec.md §6's shape:
// method, path, params, query, headers (lowercased keys), body.
func (s *Server) buildRequest(r *http.Request) (value.Value, error) {
	obj := value.NewObject()
	obj.Set("method", value.NewString(r.Method))
	obj.Set("path", value.NewString(r.URL.Path))

	params := value.NewObject()
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			params.Set(key, value.NewString(rctx.URLParams.Values[i]))
		}
	}
	obj.Set("params", value.NewObjectValue(params))

	query := value.NewObject()
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			query.Set(k, value.NewString(vs[0]))
		}
	}
	obj.Set("query", value.NewObjectValue(query))

	headers := value.NewObject()
	for k, vs := range r.Header {
		if len(vs) > 0 {
			headers.Set(strings.ToLower(k), value.NewString(vs[0]))
		}
	}
	obj.Set("headers", value.NewObjectValue(headers))

	body, err := decodeBody(r)
	if err != nil {
		return value.NewNull(), err
	}
	obj.Set("body", body)

	return value.NewObjectValue(obj), nil
}

// decodeBody reads a JSON request body into a generic value, then runs
// it through mapstructure's weakly-typed decode into an `any` target
// before handing it to value.FromAny. The body must be JSON; since the
// decode target is untyped, values keep the types JSON gave them and
// are not converted to what a `validate` schema expects.
func decodeBody(r *http.Request) (value.Value, error) {
	if r.Body == nil {
		return value.NewNull(), nil
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return value.NewNull(), err
	}
	if len(raw) == 0 {
		return value.NewNull(), nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return value.NewNull(), err
	}

	var normalized any
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &normalized,
	})
	if err != nil {
		return value.NewNull(), err
	}
	if err := decoder.Decode(decoded); err != nil {
		return value.NewNull(), err
	}

	return value.FromAny(normalized)
}

// responseState holds the mutable state behind the `res` object's
// chainable natives. It outlives any single native call so
// `res.status(n).json(v)` composes.
type responseState struct {
	status      int
	body        value.Value
	contentType string
	headers     map[string]string
	sent        bool
	redirectURL string
}

// newResponse builds the `res` object and its backing state, wiring
// each recognized operation from spec.md §6's table as a Native
// closing over state.
func newResponse() (value.Value, *responseState) {
	state := &responseState{headers: make(map[string]string)}
	obj := value.NewObject()
	res := value.NewObjectValue(obj)

	obj.Set("json", value.NewNative(func(args []value.Value) (value.Value, value.Signal, error) {
		if len(args) == 0 {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "res.json expects one argument"}
		}
		state.body = args[0]
		state.contentType = "application/json"
		state.sent = true
		return res, value.NoSignal, nil
	}))
	obj.Set("text", value.NewNative(func(args []value.Value) (value.Value, value.Signal, error) {
		if len(args) == 0 || args[0].Kind != value.String {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "res.text expects a string argument"}
		}
		state.body = args[0]
		state.contentType = "text/plain"
		state.sent = true
		return res, value.NoSignal, nil
	}))
	obj.Set("status", value.NewNative(func(args []value.Value) (value.Value, value.Signal, error) {
		if len(args) == 0 || args[0].Kind != value.Number {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "res.status expects a numeric argument"}
		}
		state.status = int(args[0].Num())
		return res, value.NoSignal, nil
	}))
	obj.Set("header", value.NewNative(func(args []value.Value) (value.Value, value.Signal, error) {
		if len(args) < 2 || args[0].Kind != value.String {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "res.header expects a string key"}
		}
		state.headers[args[0].Str()] = value.Stringify(args[1])
		return res, value.NoSignal, nil
	}))
	obj.Set("redirect", value.NewNative(func(args []value.Value) (value.Value, value.Signal, error) {
		if len(args) == 0 || args[0].Kind != value.String {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "res.redirect expects a string argument"}
		}
		state.redirectURL = args[0].Str()
		state.sent = true
		return res, value.NoSignal, nil
	}))

	return res, state
}

// buildDB wraps a ports.Store as the `db` binding's `.get/.put/
// .delete/.list` natives, all scoped to the request's context.
func buildDB(ctx context.Context, store ports.Store) value.Value {
	obj := value.NewObject()

	obj.Set("get", value.NewNative(func(args []value.Value) (value.Value, value.Signal, error) {
		if len(args) == 0 || args[0].Kind != value.String {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "db.get expects a string key"}
		}
		v, ok, err := store.Get(ctx, args[0].Str())
		if err != nil {
			return value.NewNull(), value.NoSignal, err
		}
		if !ok {
			return value.NewNull(), value.NoSignal, nil
		}
		return v, value.NoSignal, nil
	}))
	obj.Set("put", value.NewNative(func(args []value.Value) (value.Value, value.Signal, error) {
		if len(args) < 2 || args[0].Kind != value.String {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "db.put expects a string key"}
		}
		if err := store.Put(ctx, args[0].Str(), args[1]); err != nil {
			return value.NewNull(), value.NoSignal, err
		}
		return value.NewNull(), value.NoSignal, nil
	}))
	obj.Set("delete", value.NewNative(func(args []value.Value) (value.Value, value.Signal, error) {
		if len(args) == 0 || args[0].Kind != value.String {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "db.delete expects a string key"}
		}
		if err := store.Delete(ctx, args[0].Str()); err != nil {
			return value.NewNull(), value.NoSignal, err
		}
		return value.NewNull(), value.NoSignal, nil
	}))
	obj.Set("list", value.NewNative(func(args []value.Value) (value.Value, value.Signal, error) {
		prefix := ""
		if len(args) > 0 && args[0].Kind == value.String {
			prefix = args[0].Str()
		}
		keys, err := store.List(ctx, prefix)
		if err != nil {
			return value.NewNull(), value.NoSignal, err
		}
		elems := make([]value.Value, len(keys))
		for i, k := range keys {
			elems[i] = value.NewString(k)
		}
		return value.NewArray(elems), value.NoSignal, nil
	}))

	return value.NewObjectValue(obj)
}
