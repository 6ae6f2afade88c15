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

package export

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jetsetilly/tmdsgen/blanking"
	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/infoframe"
	"github.com/jetsetilly/tmdsgen/logger"
	"github.com/jetsetilly/tmdsgen/lut"
	"github.com/jetsetilly/tmdsgen/scanline"
	"github.com/jetsetilly/tmdsgen/timing"
)

// Group selects which artefacts are generated.
type Group int

// List of valid Group values. Groups can be combined.
const (
	GroupLUT Group = 1 << iota
	GroupBlanking
	GroupInfoFrame
	GroupScanline

	GroupAll = GroupLUT | GroupBlanking | GroupInfoFrame | GroupScanline
)

// MaxTableBytes is the size of the largest table produced by Generate(), which
// is the pixel LUT for 5-bit colour.
const MaxTableBytes = 32 * lut.Buckets * 2 * 4

// the 5-bit colours for which a solid line is generated
var solidColours = []uint8{0x00, 0x1f}

// Generate builds every artefact in the group for the timing specification.
// The AVI InfoFrame is built for the VIC and is embedded in a third set of
// blanking regions, in addition to the null packet and no data sets.
func Generate(spec timing.Spec, vic uint8, group Group) ([]File, error) {
	var files []File

	if group&GroupLUT == GroupLUT {
		t, err := lut.BuildWith(lut.Options{Depth: 5})
		if err != nil {
			return nil, curated.Errorf("export: %v", err)
		}
		files = append(files, File{Name: LUTName, Words: t.Words()})
	}

	var avi *infoframe.Packet
	if group&(GroupBlanking|GroupInfoFrame) != 0 {
		var err error
		avi, err = infoframe.NewAVI(vic)
		if err != nil {
			return nil, curated.Errorf("export: %v", err)
		}
	}

	if group&GroupBlanking == GroupBlanking {
		for _, island := range []blanking.Island{blanking.NullPacket, blanking.NoData, blanking.Packet(avi)} {
			set, err := blanking.Build(spec, island)
			if err != nil {
				return nil, curated.Errorf("export: %v", err)
			}
			packed, err := set.Pack()
			if err != nil {
				return nil, curated.Errorf("export: %v", err)
			}
			for _, k := range blanking.Kinds {
				for ch, w := range packed.Regions[k] {
					files = append(files, File{Name: RegionName(k, ch, island), Words: w})
				}
			}
		}
	}

	if group&GroupInfoFrame == GroupInfoFrame {
		pk, err := avi.Pack()
		if err != nil {
			return nil, curated.Errorf("export: %v", err)
		}
		files = append(files,
			File{Name: TERC4HBlankName, Words: pk.Header},
			File{Name: TERC4VSyncName, Words: pk.HeaderVSync},
			File{Name: TERC4Channel1Name, Words: pk.Channel1},
			File{Name: TERC4Channel2Name, Words: pk.Channel2},
		)
	}

	if group&GroupScanline == GroupScanline {
		for _, c := range solidColours {
			w, _, err := scanline.SolidPacked(spec, c)
			if err != nil {
				return nil, curated.Errorf("export: %v", err)
			}
			files = append(files, File{Name: PixelName(c), Words: w})
		}
	}

	return files, nil
}

// WriteAll writes every file to the sink. The sink is not closed.
func WriteAll(sink Sink, files []File) error {
	for _, f := range files {
		if err := sink.Write(f.Name, f.Words); err != nil {
			return err
		}
	}
	logger.Logf(logger.Allow, "export", "%d artefacts written", len(files))
	return nil
}

// Compare checks that two lists of files contain the same artefacts. The order
// of the lists is not important.
func Compare(want []File, got []File) error {
	index := make(map[string][]uint32, len(got))
	for _, f := range got {
		index[f.Name] = f.Words
	}

	for _, f := range want {
		w, ok := index[f.Name]
		if !ok {
			return curated.Errorf(curated.InvalidInput, fmt.Sprintf("export: %s is missing", f.Name))
		}
		if !slices.Equal(w, f.Words) {
			return curated.Errorf(curated.InvalidInput, fmt.Sprintf("export: %s is different", f.Name))
		}
		delete(index, f.Name)
	}

	if len(index) > 0 {
		extra := slices.Sorted(maps.Keys(index))
		return curated.Errorf(curated.InvalidInput, fmt.Sprintf("export: %s is unexpected", strings.Join(extra, ", ")))
	}

	return nil
}
