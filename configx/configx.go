// Package configx provides layered key/value configuration and struct binding.
//
// Overview:
//   - Responsibility: Load env and dotenv sources, merge them, bind into structs
//   - Key Types: Source interface, EnvSource, DotenvSource, MapSource
//   - Concurrency Model: Sources are read once; binding is not concurrent
//   - Error Semantics: Load and bind failures are returned; missing dotenv files are not errors
//   - Performance Notes: One pass over os.Environ per EnvSource load
//
// Usage:
//
//	opts := configx.EnvOptions{Prefix: "SCAFFOLD_"}
//	snapshot, err := configx.Merge(ctx,
//	    configx.NewDotenvSource(opts, ".env"),
//	    configx.NewEnvSource(opts),
//	)
//	var cfg Overrides
//	err = configx.Bind(snapshot, &cfg)
package configx

import (
	"context"
	"fmt"

	"go.eggybyte.com/scaffold/configx/internal"
)

// Source loads a configuration snapshot.
type Source interface {
	// Load reads the current key/value pairs.
	Load(ctx context.Context) (map[string]string, error)
}

// EnvOptions configures how env and dotenv sources filter their keys.
type EnvOptions struct {
	Prefix    string // Only keys with this prefix are loaded; the prefix is stripped
	Uppercase bool   // Convert keys to uppercase before matching the prefix
}

// NewEnvSource creates a source over the process environment.
func NewEnvSource(opts EnvOptions) Source {
	return internal.NewEnvSource(internal.EnvOptions{
		Prefix:    opts.Prefix,
		Uppercase: opts.Uppercase,
	})
}

// NewDotenvSource creates a source reading KEY=value pairs from .env files,
// filtering keys like NewEnvSource. Files that do not exist are ignored.
func NewDotenvSource(opts EnvOptions, paths ...string) Source {
	return internal.NewDotenvSource(internal.EnvOptions{
		Prefix:    opts.Prefix,
		Uppercase: opts.Uppercase,
	}, paths...)
}

// MapSource is a fixed snapshot, mostly useful in tests.
type MapSource map[string]string

// Load returns a copy of the map.
func (m MapSource) Load(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}

// Merge loads every source in order; later sources override earlier ones.
func Merge(ctx context.Context, sources ...Source) (map[string]string, error) {
	merged := make(map[string]string)
	for i, src := range sources {
		snapshot, err := src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load source %d: %w", i, err)
		}
		for k, v := range snapshot {
			merged[k] = v
		}
	}
	return merged, nil
}

// Bind decodes snapshot into target, a pointer to struct, using `env` and
// `default` field tags. Fields without a value and without a default keep
// their current value; []string fields accept comma-separated lists.
func Bind(snapshot map[string]string, target any) error {
	return internal.BindToStruct(snapshot, target)
}
