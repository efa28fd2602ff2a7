// Package cli provides the interactive userdir command-line client.
//
// It wires configuration, the credential store, the API client, and the
// list/edit controllers into an interactive REPL with two views: an
// unauthenticated login prompt and the protected directory view. A
// successful login enters the directory (page 1 is fetched immediately);
// an unauthorized response or an expired credential drops the user back
// to the login prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
