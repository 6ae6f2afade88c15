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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern,
// placeholder values and returns an error. The pattern is what distinguishes
// one curated error from another:
//
//	e := curated.Errorf(curated.InvalidInput, "length is not a multiple of 16")
//
//	if curated.Is(e, curated.InvalidInput) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("blanking: %v", e)
//
//	if curated.Has(f, curated.InvalidInput) {
//		fmt.Println("true")
//	}
//
// The Error() implementation removes duplicate adjacent parts from the
// message, so wrapping an error with the same prefix twice does not repeat
// the prefix. Parts are separated by the sub-string ": ".
//
// The two sentinel patterns, InvalidInput and InvalidState, are the only
// error kinds produced by the table builders. Anything else is a failure of
// the environment (eg. writing a file).
package curated
