// This file is part of tmdsgen.
//
// tmdsgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tmdsgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tmdsgen.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of tmdsgen and the vcs revision it was
// built from.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "tmdsgen"

// set by the linker for release builds:
//
//	-ldflags "-X github.com/jetsetilly/tmdsgen/version.number=v0.1.0"
var number string

// the vcs revision. suffixed with "+dirty" if the source had been modified
// but not committed
var revision string

// "unreleased" if built without a version number but with vcs information.
// "local" if there is neither, which happens with "go run ."
var version string

// the version of the Go toolchain used to build the binary
var goVersion string

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns a one line summary suitable for printing in response to the
// VERSION mode.
func String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s %s", ApplicationName, version)
	if version != number {
		fmt.Fprintf(&s, " (%s)", revision)
	}
	if goVersion != "" {
		fmt.Fprintf(&s, " built with %s", goVersion)
	}
	return s.String()
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		goVersion = info.GoVersion
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
