// Package idsvc implements the id-minting facade consumed by the gRPC and
// HTTP transports. It wraps the runtime's generator with batch generation
// and id decomposition.
//
// Example:
//
//	svc := idsvc.New(rt)
//	ids, _ := svc.Generate(ctx, 10)
//	parts, _ := svc.DecomposeBase62(ctx, ids[0].Base62)
package idsvc
