// Package config provides loading and environment overlay for snowid
// runtime configuration. It exposes a Default() baseline, JSON/YAML file
// loading, and SNOWID_* env overrides.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/snowid.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	layout, err := cfg.BitLayout()
package config
