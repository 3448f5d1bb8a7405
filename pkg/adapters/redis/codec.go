package redis

import "github.com/JangRuBin2/rulang/pkg/value"

// toJSON and fromJSON adapt value.Value to and from the plain Go
// shapes encoding/json marshals, delegating to the shared conversion
// pkg/adapters/http also uses for request/response bodies.
func toJSON(v value.Value) (any, error) { return value.ToAny(v) }

func fromJSON(payload any) (value.Value, error) { return value.FromAny(payload) }
