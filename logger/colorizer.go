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

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// CSI sequences used by the Colorizer
const (
	tagPen    = "\033[2;36m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of every
// entry is printed in a dim pen and the detail in the normal pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, s := range strings.SplitAfter(string(p), "\n") {
		if s == "" {
			continue
		}

		tag, detail, ok := strings.Cut(s, ": ")
		if ok {
			s = tagPen + tag + ":" + normalPen + " " + detail
		}

		if _, err := io.WriteString(c.out, s); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// IsTerminal returns true if the file is attached to a terminal. A file is
// a terminal if the terminal attributes can be read.
func IsTerminal(f *os.File) bool {
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}

// EchoTo is a convenience function that echoes the central logger to the file,
// with colour if the file is a terminal.
func EchoTo(f *os.File) {
	if IsTerminal(f) {
		SetEcho(NewColorizer(f))
	} else {
		SetEcho(f)
	}
}
