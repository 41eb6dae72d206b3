// Package client connects the console to its backing services.
//
// # Overview
//
// The package provides:
//  1. The Store contract the login sequencer consumes: account lookup by
//     username and password, lookup by id, the registered biometric
//     credential list and a liveness probe.
//  2. A concrete gRPC implementation (see GRPCClient) that attaches the
//     console's api key to every call, bounds each call with a timeout and
//     maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite file holding console preferences.
//
// # Error Handling
//
// A lookup that matches nothing returns common.ErrorNotFound. Transport
// failures return ErrUnavailable, rejected api keys ErrUnauthorized. Callers
// match them with errors.Is.
//
// All operations accept context.Context and honor cancellation.
package client
