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

// Package export names the generated tables and writes them out.
//
// Every table is written as a little-endian sequence of 32-bit words. The
// destination is a Sink, either a directory of separate files or a single tar
// archive compressed with zstd.
//
//	files, err := export.Generate(timing.Spec720x480, 2, export.GroupAll)
//	if err != nil {
//		return err
//	}
//
//	sink, err := export.NewDir("tables")
//	if err != nil {
//		return err
//	}
//	defer sink.Close()
//
//	err = export.WriteAll(sink, files)
package export
