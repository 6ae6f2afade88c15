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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// Tables is an implementation of the Digest interface. It generates a SHA-1
// value for every table added to it, chained with the value of the previous
// table. The hash therefore depends on the order in which the tables are
// added as well as on their content.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Tables struct {
	digest [sha1.Size]byte
	buffer []byte
	count  int
}

// NewTables is the preferred method of initialisation for the Tables type.
func NewTables() *Tables {
	return &Tables{}
}

// Hash implements digest.Digest interface.
func (dig *Tables) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Tables) ResetDigest() {
	clear(dig.digest[:])
	dig.count = 0
}

// Count returns the number of tables added since the last reset.
func (dig *Tables) Count() int {
	return dig.count
}

// Add a named table to the digest. The name is part of the fingerprint.
func (dig *Tables) Add(name string, words []uint32) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the buffer
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, name...)
	dig.buffer = append(dig.buffer, 0x00)
	for _, w := range words {
		dig.buffer = binary.LittleEndian.AppendUint32(dig.buffer, w)
	}
	dig.digest = sha1.Sum(dig.buffer)
	dig.count++
}
