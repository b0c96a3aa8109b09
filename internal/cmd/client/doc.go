// Package client provides the `snowid` command-line client.
//
// The CLI talks to the snowid gRPC and HTTP endpoints to mint and inspect
// ids from a terminal. It is primarily intended for developers and
// operators.
//
// # Address configuration
//
// The gRPC address is read from the SNOWID_GRPC environment variable
// (default 127.0.0.1:50051). The HTTP base URL is read from SNOWID_HTTP
// (default http://127.0.0.1:8080).
//
// Usage
//
//	snowid id generate --count 10
//	snowid id generate --raw
//	snowid id decompose 4Ly3K1aP0d0
//	snowid id decompose 184942725984012345
//	snowid nodes list
//	snowid nodes release --node 3 --instance 7e6b...
//	snowid journal --filter 'type == "clock_rollback"' --limit 20
package client
