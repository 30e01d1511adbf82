// Package control
// Author: momentics <momentics@gmail.com>
//
// Host-side plumbing for ring stores: configuration, logging, metrics and
// debug introspection. The stores themselves never log or export anything;
// hosts wire them in here.
//
// Provides:
//   - Layered config resolution (defaults, environment, flags)
//   - Development logger construction
//   - Prometheus collector over store accounting
//   - Debug probe registry with platform probes
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
