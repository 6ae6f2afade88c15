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

package blanking

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/tmdsgen/bitpack"
	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/infoframe"
	"github.com/jetsetilly/tmdsgen/logger"
	"github.com/jetsetilly/tmdsgen/timing"
	"github.com/jetsetilly/tmdsgen/tmds"
)

// Lengths of the fixed parts of a blanking region.
const (
	PreambleLength  = 8
	GuardBandLength = 2

	// a packet needs one symbol per header bit
	packetLength = infoframe.StreamLength
)

// NumChannels is the number of TMDS data channels.
const NumChannels = 3

// Region is the symbol stream for each channel during one horizontal blanking
// interval. Every channel has the same length.
type Region struct {
	Kind     Kind
	Channels [NumChannels][]tmds.Symbol
}

// Len returns the number of symbols in each channel.
func (r Region) Len() int {
	return len(r.Channels[0])
}

// channels is a helper type for appending the same number of symbols to each
// channel.
type channels [NumChannels][]tmds.Symbol

func (c *channels) fill(n int, ch0, ch1, ch2 tmds.Symbol) {
	for range n {
		c[0] = append(c[0], ch0)
		c[1] = append(c[1], ch1)
		c[2] = append(c[2], ch2)
	}
}

func validate(spec timing.Spec, island Island) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	l := spec.Blanking()
	if l%bitpack.GroupSymbols != 0 {
		return curated.Errorf(curated.InvalidInput, fmt.Sprintf("blanking: %s: blanking length %d is not a multiple of %d", spec.ID, l, bitpack.GroupSymbols))
	}

	if island.HasIsland() {
		if spec.HFront < PreambleLength+GuardBandLength {
			return curated.Errorf(curated.InvalidInput, fmt.Sprintf("blanking: %s: front porch of %d is too short for a data island", spec.ID, spec.HFront))
		}
		if spec.HBack < PreambleLength+GuardBandLength*2 {
			return curated.Errorf(curated.InvalidInput, fmt.Sprintf("blanking: %s: back porch of %d is too short for a data island", spec.ID, spec.HBack))
		}
	} else if spec.HBack < PreambleLength+GuardBandLength {
		return curated.Errorf(curated.InvalidInput, fmt.Sprintf("blanking: %s: back porch of %d is too short", spec.ID, spec.HBack))
	}

	if island.mode == withPacket {
		if island.packet == nil {
			return curated.Errorf(curated.InvalidInput, "blanking: nil packet")
		}
		if spec.HPulse < packetLength {
			return curated.Errorf(curated.InvalidInput, fmt.Sprintf("blanking: %s: sync pulse of %d can not hold a packet", spec.ID, spec.HPulse))
		}
		if err := island.packet.Validate(); err != nil {
			return curated.Errorf("blanking: %v", err)
		}
	}

	return nil
}

// BuildRegion creates the symbol streams for one blanking region.
//
// The region is made up of the front porch, the sync pulse and the back porch
// followed by the video preamble and guard band. When the island mode calls
// for it the sync pulse is a data island, with its own preamble and guard
// bands taken from the porches either side.
func BuildRegion(spec timing.Spec, kind Kind, island Island) (Region, error) {
	if kind < HBlank || kind > VSyncExit {
		return Region{}, curated.Errorf(curated.InvalidInput, fmt.Sprintf("blanking: %v is not a region kind", kind))
	}

	if err := validate(spec, island); err != nil {
		return Region{}, err
	}

	front, pulse, back := kind.vsync()

	ctl0 := tmds.ControlSymbols[0]
	ctl1 := tmds.ControlSymbols[1]

	var c channels
	for i := range c {
		c[i] = make([]tmds.Symbol, 0, spec.Blanking())
	}

	if island.HasIsland() {
		frontSync := tmds.ControlSymbol(front, true)
		c.fill(spec.HFront-PreambleLength-GuardBandLength, frontSync, ctl0, ctl0)

		// data island preamble
		c.fill(PreambleLength, frontSync, ctl1, ctl1)
		c.fill(GuardBandLength, tmds.GuardBandTERC4(front), tmds.GuardBand1, tmds.GuardBand1)

		n := 0
		if island.mode == withPacket {
			s := island.packet.Streams()
			hdr := s.ForVSync(pulse)
			for i := range packetLength {
				c[0] = append(c[0], hdr[i])
				c[1] = append(c[1], s.Channel1[i])
				c[2] = append(c[2], s.Channel2[i])
			}
			n = packetLength
		}

		// remainder of the island is null
		c.fill(spec.HPulse-n, tmds.SyncTERC4(pulse, false, false), tmds.TERC4[0], tmds.TERC4[0])

		c.fill(GuardBandLength, tmds.GuardBandTERC4(back), tmds.GuardBand1, tmds.GuardBand1)
		c.fill(spec.HBack-PreambleLength-GuardBandLength*2, tmds.ControlSymbol(back, true), ctl0, ctl0)
	} else {
		c.fill(spec.HFront, tmds.ControlSymbol(front, true), ctl0, ctl0)
		c.fill(spec.HPulse, tmds.ControlSymbol(pulse, false), ctl0, ctl0)
		c.fill(spec.HBack-PreambleLength-GuardBandLength, tmds.ControlSymbol(back, true), ctl0, ctl0)
	}

	// video preamble and leading guard band
	c.fill(PreambleLength, tmds.ControlSymbol(back, true), ctl1, ctl0)
	c.fill(GuardBandLength, tmds.GuardBand0, tmds.GuardBand1, tmds.GuardBand0)

	for i := range c {
		if len(c[i]) != spec.Blanking() {
			return Region{}, curated.Errorf(curated.InvalidInput, fmt.Sprintf("blanking: %s: channel %d is %d symbols not %d", spec.ID, i, len(c[i]), spec.Blanking()))
		}
	}

	return Region{Kind: kind, Channels: c}, nil
}

// Set is every kind of blanking region for a timing specification and island
// mode.
type Set struct {
	Spec    timing.Spec
	Island  Island
	Regions [NumKinds]Region
}

// Build creates every kind of region. Each kind is built in its own
// goroutine. If any region fails then no set is returned.
func Build(spec timing.Spec, island Island) (*Set, error) {
	// validate once before starting the goroutines. BuildRegion() will
	// validate again but there will be no error
	if err := validate(spec, island); err != nil {
		return nil, err
	}

	set := &Set{
		Spec:   spec,
		Island: island,
	}

	var errs [NumKinds]error
	var wg sync.WaitGroup
	for i, k := range Kinds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set.Regions[i], errs[i] = BuildRegion(spec, k, island)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	logger.Logf(logger.Allow, "blanking", "%s: %d regions of %d symbols (%s)", spec.ID, NumKinds, spec.Blanking(), island)

	return set, nil
}

// Region returns the region of the specified kind.
func (set *Set) Region(kind Kind) Region {
	return set.Regions[kind]
}

// PackedSet is a Set with every channel of every region packed with the
// bitpack package.
type PackedSet struct {
	Spec    timing.Spec
	Island  Island
	Regions [NumKinds][NumChannels][]uint32
}

// Pack every channel of every region in the set.
func (set *Set) Pack() (*PackedSet, error) {
	p := &PackedSet{
		Spec:   set.Spec,
		Island: set.Island,
	}

	for k, r := range set.Regions {
		for ch, s := range r.Channels {
			w, err := bitpack.Pack(s)
			if err != nil {
				return nil, curated.Errorf("blanking: %s: %v", r.Kind, err)
			}
			p.Regions[k][ch] = w
		}
	}

	return p, nil
}
