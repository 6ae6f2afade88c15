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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare any two
// values of the same comparable type. ExpectSuccess() and ExpectFailure()
// test for success under generic conditions, currently bool and error
// values. The nil value is considered a success, which is how nil is
// interpreted when returned as an error.
//
// The Demand*() functions are the same as their Expect*() counterparts except
// that a failure stops the test immediately.
//
// Writer is an implementation of io.Writer and can be used to capture output
// for comparison with expected strings.
package test
