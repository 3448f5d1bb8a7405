/*
Package observability provides structured auditing hooks for Rulang's
evaluator, a Prometheus-backed metrics sink, and an aggregator for
fanning transition streams from multiple Evaluator instances into one.

LifecycleHooks is passed to runtime.NewEvaluator via WithLifecycleHooks
and fires on state-machine transitions and endpoint/middleware/use/
server registration. Metrics turns those events into Prometheus
counters served over an http.Handler. Aggregator combines multiple
Watchers (anything exposing Watch(ctx) <-chan TransitionEvent) into a
single fan-in channel for a host running several Evaluator instances
to monitor as one stream.
*/
package observability
