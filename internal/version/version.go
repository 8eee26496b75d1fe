// SPDX-License-Identifier: MIT

// Package version carries the release string stamped at link time:
//
//	go build -ldflags "-X github.com/tekkamanmaverick/BoxRemap/internal/version.Version=v1.2.0"
package version

// Version is the release of the tools.
var Version = "dev"
