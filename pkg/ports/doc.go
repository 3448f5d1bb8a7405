/*
Package ports defines the driven ports (interfaces) the Rulang core
calls out to, and never implements itself.

# Key Interfaces

  - Registry: collects `endpoint`/`middleware`/`use`/`server` declarations as the evaluator walks a program.
  - Store: backs the `db` binding handler bodies receive, with in-memory and Redis adapters.
*/
package ports
