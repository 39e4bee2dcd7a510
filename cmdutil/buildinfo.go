// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmdutil

import (
	"runtime/debug"
	"time"
)

// BuildInfo describes the binary being run.
type BuildInfo struct {
	GoVersion  string
	Version    string // main module version, (devel) for local builds
	Revision   string
	LastCommit time.Time
	Dirty      bool
}

// ReadBuildInfo extracts the go version, module version and version
// control information from the binary's build info if available.
func ReadBuildInfo() (BuildInfo, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return BuildInfo{}, false
	}
	bi := BuildInfo{
		GoVersion: info.GoVersion,
		Version:   info.Main.Version,
	}
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			bi.Revision = kv.Value
		case "vcs.time":
			bi.LastCommit, _ = time.Parse(time.RFC3339, kv.Value)
		case "vcs.modified":
			bi.Dirty = kv.Value == "true"
		}
	}
	return bi, true
}
