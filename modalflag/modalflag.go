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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jetsetilly/tmdsgen/curated"
)

const modeSeparator = "/"

// Modes handles command line arguments for a program with sub-modes. The
// Output field should be specified before calling Parse() or help messages
// will be lost.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// whether Parse() has been called since the last NewMode()
	parsed bool

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// flags that must take one of a list of values. checked after the
	// flagset has been parsed
	choices []*choiceValue

	// the argument list as specified by the NewArgs() function
	args    []string
	argsIdx int

	// whether the first non-flag argument of the most recent Parse() was a
	// sub-mode
	modeArg bool

	// the most recent list of sub-modes specified with the NewMode() function
	subModes []string

	// the series of sub-modes that have been found by calls to Parse(). never
	// reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode encountered during parsing, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.choices = md.choices[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
	md.modeArg = false
	md.additionalHelp = ""
}

// AdditionalHelp is printed after the flags and sub-modes in the help
// message for the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not yet been called since either a call
// to NewArgs() or NewMode(). A Modes struct is considered to be Parsed() even
// if Parse() results in an error.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were specified
	// then Mode() should be checked
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the current layer of arguments. Help messages are printed
// automatically:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	args := md.args[md.argsIdx:]
	err := md.flags.Parse(args)
	if err != nil {
		if err == flag.ErrHelp {
			hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			hw.Clear()
			return ParseHelp, nil
		}

		// unrecognised flags select the default mode if there is one
		if len(md.subModes) > 0 {
			md.path = append(md.path, md.subModes[0])
		} else {
			return ParseError, curated.Errorf(curated.InvalidInput, err)
		}
	} else if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		mode := md.subModes[0]
		if slices.Contains(md.subModes, arg) {
			mode = arg

			// the next mode begins after the flags and the sub-mode
			md.argsIdx += len(args) - md.flags.NArg() + 1
			md.modeArg = true
		}

		md.path = append(md.path, mode)
	}

	for _, c := range md.choices {
		if err := c.check(); err != nil {
			return ParseError, err
		}
	}

	return ParseContinue, nil
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	if md.modeArg {
		return md.flags.Args()[1:]
	}
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	a := md.RemainingArgs()
	if i < 0 || i >= len(a) {
		return ""
	}
	return a[i]
}

// AddSubModes to list of submodes for next parse. The first sub-mode in the
// list is the default sub-mode. Sub-mode comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	md.subModes = append(md.subModes, submodes...)
	for i := range md.subModes {
		md.subModes[i] = strings.ToUpper(md.subModes[i])
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint8 flag for next call to Parse(). Values that do not fit in eight
// bits are a parse error.
func (md *Modes) AddUint8(name string, value uint8, usage string) *uint8 {
	v := uint8Value(value)
	md.flags.Var(&v, name, usage)
	return (*uint8)(&v)
}

// AddChoice flag for next call to Parse(). The value of the flag must be one
// of the choices, compared case insensitively. The returned string is always
// one of the choices exactly as it appears in the list.
func (md *Modes) AddChoice(name string, value string, choices []string, usage string) *string {
	c := &choiceValue{
		name:    name,
		value:   value,
		choices: choices,
	}
	md.flags.Var(c, name, fmt.Sprintf("%s: %s", usage, strings.Join(choices, ", ")))
	md.choices = append(md.choices, c)
	return &c.value
}

// Visit visits the flags in lexicographical order, calling fn for each. It
// visits only those flags that have been set.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

type uint8Value uint8

func (v *uint8Value) String() string {
	return strconv.Itoa(int(*v))
}

func (v *uint8Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return err
	}
	*v = uint8Value(n)
	return nil
}

type choiceValue struct {
	name    string
	value   string
	choices []string
}

func (c *choiceValue) String() string {
	return c.value
}

func (c *choiceValue) Set(s string) error {
	c.value = s
	return nil
}

// check normalises the value to the case used in the list of choices.
func (c *choiceValue) check() error {
	for _, ch := range c.choices {
		if strings.EqualFold(ch, c.value) {
			c.value = ch
			return nil
		}
	}
	return curated.Errorf(curated.InvalidInput, fmt.Sprintf("-%s must be one of %s", c.name, strings.Join(c.choices, ", ")))
}
