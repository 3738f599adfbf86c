// Package version reports the numchar build version.
//
// Values injected with -ldflags take precedence:
//
//	-ldflags "-X github.com/dendrascience/numchar/version.Version=v1.0.0 -X github.com/dendrascience/numchar/version.Commit=abc123 -X github.com/dendrascience/numchar/version.Date=2026-01-01T00:00:00Z"
//
// Without them the module version and VCS stamps from debug.ReadBuildInfo are
// used, falling back to "development" and "unknown".
package version
