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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/digest"
	"github.com/jetsetilly/tmdsgen/export"
	"github.com/jetsetilly/tmdsgen/logger"
	"github.com/jetsetilly/tmdsgen/modalflag"
	"github.com/jetsetilly/tmdsgen/statsview"
	"github.com/jetsetilly/tmdsgen/timing"
	"github.com/jetsetilly/tmdsgen/version"
)

// the value of the -bundle flag that causes a unique filename to be created
const autoBundle = "AUTO"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:], os.Stdout)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when the program should end.
func launch(sync *mainSync, args []string, output io.Writer) {
	sync.state <- stateRequest{req: reqQuit, args: run(args, output)}
}

// run the command line and return the exit status.
func run(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("ALL", "LUT", "BLANKING", "INFOFRAME", "SCANLINE", "VERIFY", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "ALL":
		err = generate(md, output, export.GroupAll)
	case "LUT":
		err = generate(md, output, export.GroupLUT)
	case "BLANKING":
		err = generate(md, output, export.GroupBlanking)
	case "INFOFRAME":
		err = generate(md, output, export.GroupInfoFrame)
	case "SCANLINE":
		err = generate(md, output, export.GroupScanline)
	case "VERIFY":
		err = verify(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to every mode that generates tables.
type common struct {
	timing *string
	vic    *uint8
	log    *bool
	stats  *bool
	memviz *string
}

func addCommon(md *modalflag.Modes) common {
	return common{
		timing: md.AddChoice("timing", timing.SpecList[0].ID, timing.IDs(), "video timing"),
		vic:    md.AddUint8("vic", 0, "video identification code for the AVI InfoFrame (default from timing)"),
		log:    md.AddBool("log", false, "echo log to stderr"),
		stats:  md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		memviz: md.AddString("memviz", "", "write graphviz dot file of the generated tables"),
	}
}

// apply the common flags and return the timing specification and VIC.
func (c common) apply(output io.Writer) (timing.Spec, uint8, error) {
	if *c.log {
		logger.EchoTo(os.Stderr)
	}

	if *c.stats {
		statsview.Launch(output)
	}

	spec, err := timing.SearchSpec(*c.timing)
	if err != nil {
		return timing.Spec{}, 0, err
	}

	vic := *c.vic
	if vic == 0 {
		vic = spec.VIC
	}

	return spec, vic, nil
}

func (c common) dump(files []export.File) error {
	if *c.memviz == "" {
		return nil
	}

	f, err := os.Create(*c.memviz)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, &files)
	logger.Logf(logger.Allow, "tmdsgen", "memviz written to %s", *c.memviz)

	return nil
}

func generate(md *modalflag.Modes, output io.Writer, group export.Group) error {
	md.NewMode()

	c := addCommon(md)
	out := md.AddString("out", "", "write tables to directory")
	bundle := md.AddString("bundle", "", fmt.Sprintf("write tables to a zstd compressed tar file (%s for a unique name)", autoBundle))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(curated.InvalidInput, fmt.Sprintf("unexpected arguments: %s", strings.Join(md.RemainingArgs(), " ")))
	}

	spec, vic, err := c.apply(output)
	if err != nil {
		return err
	}

	files, err := export.Generate(spec, vic, group)
	if err != nil {
		return err
	}

	if err := c.dump(files); err != nil {
		return err
	}

	if *out != "" {
		sink, err := export.NewDir(*out)
		if err != nil {
			return err
		}
		if err := writeSink(sink, files); err != nil {
			return err
		}
		fmt.Fprintf(output, "%d tables written to %s\n", len(files), *out)
	}

	if *bundle != "" {
		name := *bundle
		if strings.EqualFold(name, autoBundle) {
			name = export.UniqueFilename(version.ApplicationName, spec.ID)
		}
		if err := writeBundle(name, files); err != nil {
			return err
		}
		fmt.Fprintf(output, "%d tables written to %s\n", len(files), name)
	}

	// list the tables if they haven't been written anywhere
	if *out == "" && *bundle == "" {
		for _, f := range files {
			fmt.Fprintf(output, "%-24s %5d words\n", f.Name, len(f.Words))
		}
	}

	fmt.Fprintf(output, "digest %s\n", fingerprint(files))

	return nil
}

// fingerprint returns the digest of the files in the order they are listed.
func fingerprint(files []export.File) string {
	dig := digest.NewTables()
	for _, f := range files {
		dig.Add(f.Name, f.Words)
	}
	return dig.Hash()
}

func writeSink(sink export.Sink, files []export.File) error {
	err := export.WriteAll(sink, files)
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeBundle(name string, files []export.File) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	sink, err := export.NewBundle(f)
	if err == nil {
		err = writeSink(sink, files)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	// do not leave an incomplete bundle behind
	if err != nil {
		os.Remove(name)
	}

	return err
}

func verify(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("VERIFY checks that a bundle contains exactly the tables that would be\ngenerated with the same -timing and -vic flags.")

	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(curated.InvalidInput, "VERIFY requires exactly one bundle file")
	}

	spec, vic, err := c.apply(output)
	if err != nil {
		return err
	}

	want, err := export.Generate(spec, vic, export.GroupAll)
	if err != nil {
		return err
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	got, err := export.ReadBundle(f)
	if err != nil {
		return err
	}

	if err := c.dump(got); err != nil {
		return err
	}

	if err := export.Compare(want, got); err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %d tables verified for %s\n", md.GetArg(0), len(got), spec)
	fmt.Fprintf(output, "digest %s\n", fingerprint(got))
	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintln(output, r)
		return nil
	}

	fmt.Fprintln(output, version.String())
	return nil
}
