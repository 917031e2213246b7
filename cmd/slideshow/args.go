// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/aamcrae/slideshow/internal/show"
)

// Args holds the command line options.
type Args struct {
	Dir        string        `arg:"positional,required" help:"directory of images to show"`
	Verbose    bool          `arg:"-v,--verbose" help:"verbose tracing"`
	Decoder    string        `arg:"--decoder" default:"go" help:"image decoder: go or vips"`
	Exiv2      bool          `arg:"--exiv2" help:"read the orientation with the exiv2 tool"`
	Hold       time.Duration `arg:"--hold" default:"5s" help:"time each image is shown"`
	Transition time.Duration `arg:"--transition" default:"1s" help:"fade in time"`
	Width      int           `arg:"--width" help:"display width in pixels, 0 to detect"`
	Height     int           `arg:"--height" help:"display height in pixels, 0 to detect"`
	Wake       string        `arg:"--wake" default:"poll" help:"controller wake up: poll or notify"`
	Caption    bool          `arg:"--caption" help:"draw the file name on each image"`
	Background string        `arg:"--background" default:"#000000" help:"background colour"`
}

func (Args) Description() string {
	return "Full screen slideshow of the images in a directory, shown in random order.\n"
}

func (Args) Epilogue() string {
	return `Shortcut keys are:
  'N' <right-arrow>                Next image
  'P' <left-arrow> <back-space>    Previous image
  <space>                          Pause or resume
  'Q' <escape>                     Quit`
}

// parseArgs parses the command line. Usage errors are written to
// stderr; arg.ErrHelp is returned after help is written to stdout.
func parseArgs(argv []string, stdout, stderr io.Writer) (*Args, error) {
	var args Args
	p, err := arg.NewParser(arg.Config{Program: "slideshow"}, &args)
	if err != nil {
		return nil, err
	}
	err = p.Parse(argv)
	if err == nil {
		err = args.validate()
	}
	switch {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(stdout)
		return nil, err
	case err != nil:
		p.WriteUsage(stderr)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return nil, err
	}
	return &args, nil
}

func (a *Args) validate() error {
	switch a.Decoder {
	case "go", "vips":
	default:
		return fmt.Errorf("unknown decoder %q", a.Decoder)
	}
	switch a.Wake {
	case "poll", "notify":
	default:
		return fmt.Errorf("unknown wake strategy %q", a.Wake)
	}
	if a.Hold <= 0 {
		return fmt.Errorf("hold must be positive")
	}
	if a.Transition < 0 {
		return fmt.Errorf("transition must not be negative")
	}
	if a.Width < 0 || a.Height < 0 || (a.Width == 0) != (a.Height == 0) {
		return fmt.Errorf("width and height must be given together")
	}
	if _, err := a.background(); err != nil {
		return err
	}
	return nil
}

func (a *Args) background() (color.Color, error) {
	c, err := colorful.Hex(a.Background)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", a.Background, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

func (a *Args) timing() show.Timing {
	t := show.DefaultTiming()
	t.Hold = a.Hold
	t.Transition = a.Transition
	return t
}

func (a *Args) waiter() show.Waiter {
	if a.Wake == "notify" {
		return show.Notifier{}
	}
	return show.Sleeper{}
}
