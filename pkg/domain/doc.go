/*
Package domain contains the error types shared across Rulang's value,
runtime, and schema layers.

It is kept pure and free of external dependencies, following the same
hexagonal-architecture boundary the rest of this codebase draws around
its core: domain types describe what went wrong, never how to render
or log it.
*/
package domain
