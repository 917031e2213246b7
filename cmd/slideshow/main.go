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
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/alexflint/go-arg"
	"golang.org/x/sync/errgroup"

	"github.com/aamcrae/slideshow/internal/catalog"
	"github.com/aamcrae/slideshow/internal/input"
	"github.com/aamcrae/slideshow/internal/log"
	"github.com/aamcrae/slideshow/internal/orient"
	"github.com/aamcrae/slideshow/internal/pipeline"
	"github.com/aamcrae/slideshow/internal/pipeline/vipsdec"
	"github.com/aamcrae/slideshow/internal/render"
	"github.com/aamcrae/slideshow/internal/render/fyneview"
	"github.com/aamcrae/slideshow/internal/show"
	"github.com/aamcrae/slideshow/internal/state"
)

func init() {
	// The display and the fyne event loop must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func fail(format string, args ...any) int {
	fmt.Fprintf(os.Stderr, "slideshow: "+format+"\n", args...)
	return 1
}

func resolutionMessage(vp render.Viewport, detected bool) string {
	if detected {
		return fmt.Sprintf("Detected display resolution: %s", vp)
	}
	return fmt.Sprintf("Using display resolution: %s", vp)
}

// run starts the slideshow and returns the exit code once it finishes.
func run(argv []string) int {
	args, err := parseArgs(argv, os.Stdout, os.Stderr)
	if errors.Is(err, arg.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}
	if args.Verbose {
		log.SetLevel(log.LevelDebug)
	}
	bg, _ := args.background()

	fmt.Printf("Loading images from directory: %s\n", args.Dir)
	paths, err := catalog.Load(args.Dir)
	if err != nil {
		return fail("%v", err)
	}
	if len(paths) == 0 {
		return fail("no images found in %s", args.Dir)
	}
	fmt.Printf("Loaded %d images. Shuffling images...\n", len(paths))
	catalog.Shuffle(paths)

	vp := render.Viewport{Width: args.Width, Height: args.Height}
	detect := !vp.Valid()
	if detect {
		if vp, err = fyneview.DisplaySize(); err != nil {
			return fail("%v", err)
		}
	}
	fmt.Println(resolutionMessage(vp, detect))

	readers := orient.Chain{orient.SidecarReader{}}
	if args.Exiv2 {
		readers = append(readers, orient.Exiv2Reader{})
	}
	var dec pipeline.Decoder = pipeline.GoDecoder{}
	if args.Decoder == "vips" {
		if err := vipsdec.Start(); err != nil {
			return fail("%v", err)
		}
		defer vipsdec.Stop()
		dec = vipsdec.Decoder{}
		readers = append(readers, vipsdec.Orientation)
	}
	readers = append(readers, orient.ExifReader{})
	var capt *pipeline.Captioner
	if args.Caption {
		if capt, err = pipeline.NewCaptioner(); err != nil {
			return fail("caption: %v", err)
		}
	}

	keys := input.NewQueue(16)
	view := fyneview.New(app.New(), "slideshow", vp, bg, detect, keys)
	st := state.New(len(paths))
	ctl := &show.Controller{
		State:   st,
		Catalog: paths,
		Preparer: &pipeline.Pipeline{
			Decoder:  dec,
			Orient:   readers,
			Uploader: view,
			Caption:  capt,
		},
		Presenter: view,
		Viewport:  vp,
		Timing:    args.timing(),
		Waiter:    args.waiter(),
	}
	poller := &input.Poller{Source: keys, State: st}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		select {
		case s := <-sig:
			log.Debug("signal: %v", s)
			keys.Push(input.KeyQuit)
		case <-st.Done():
		}
	}()

	var g errgroup.Group
	g.SetLimit(2)
	if !g.TryGo(poller.Run) {
		return fail("cannot start input poller")
	}
	if !g.TryGo(ctl.Run) {
		st.Stop()
		g.Wait()
		return fail("cannot start controller")
	}
	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		view.Quit()
	}()
	view.Run()
	// The event loop also ends if the window is closed by other means.
	st.Stop()
	if err := <-done; err != nil {
		return fail("%v", err)
	}
	fmt.Println("Slideshow terminated successfully.")
	return 0
}
