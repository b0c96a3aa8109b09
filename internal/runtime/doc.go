// Package runtime wires storage, config, the node registry, the journal and
// the id generator into a single-node snowid instance. It exposes
// Open/Close, basic health checks, and the component accessors used by
// higher-level services.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{DataDir: "./data", Fsync: pebblestore.FsyncModeAlways, Config: cfg})
//	defer rt.Close()
//	_ = rt.CheckHealth(context.Background())
//	id := rt.Generator().Generate()
package runtime
