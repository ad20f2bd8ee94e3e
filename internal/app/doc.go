// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle: resolving
// the target files, skipping those already processed, labeling the edges of
// the rest and writing the results, decoupled from any specific entrypoint
// like a CLI.
package app
