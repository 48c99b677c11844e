// Package app wires the application together: it builds an isolated logger
// from the run configuration, registers the model runner modules supplied by
// the embedding application, and drives the read -> load -> run lifecycle.
package app
