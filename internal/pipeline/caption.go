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

package pipeline

import (
	"image"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Captioner draws a line of text in the lower left corner of an image.
type Captioner struct {
	font *truetype.Font
}

// NewCaptioner loads the Go Regular font.
func NewCaptioner() (*Captioner, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Captioner{font: f}, nil
}

// FontSize returns the caption point size used for an image of height h.
func FontSize(h int) float64 {
	sz := float64(h) / 40
	if sz < 12 {
		sz = 12
	}
	return sz
}

// Draw writes text onto dst, white with a dark drop shadow.
func (c *Captioner) Draw(dst draw.Image, text string) error {
	b := dst.Bounds()
	pts := FontSize(b.Dy())
	margin := int(pts / 2)
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(c.font)
	ctx.SetFontSize(pts)
	ctx.SetClip(b)
	ctx.SetDst(dst)
	ctx.SetHinting(font.HintingFull)
	x, y := b.Min.X+margin, b.Max.Y-margin
	shadow := 1 + int(pts/16)
	ctx.SetSrc(image.Black)
	if _, err := ctx.DrawString(text, freetype.Pt(x+shadow, y+shadow)); err != nil {
		return err
	}
	ctx.SetSrc(image.White)
	_, err := ctx.DrawString(text, freetype.Pt(x, y))
	return err
}
