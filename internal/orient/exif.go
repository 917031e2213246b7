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

package orient

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// JPEG markers of interest.
const (
	markerSOI  = 0xD8
	markerAPP1 = 0xE1
	markerSOS  = 0xDA
	markerEOI  = 0xD9
)

const tagOrientation = 0x0112

var errNotJPEG = errors.New("not a JPEG file")

// ExifReader reads the orientation from the EXIF block embedded in a JPEG file.
type ExifReader struct{}

func (ExifReader) Orientation(path string) (Orientation, error) {
	f, err := os.Open(path)
	if err != nil {
		return Normal, err
	}
	defer f.Close()
	o, err := ReadExif(bufio.NewReader(f))
	if err != nil {
		return Normal, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// ReadExif scans the JPEG stream headers for an APP1 EXIF segment
// and returns the orientation found in the first IFD.
// Scanning stops at the start of the image data.
func ReadExif(r io.Reader) (Orientation, error) {
	var hdr [2]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Normal, err
	}
	if hdr[0] != 0xFF || hdr[1] != markerSOI {
		return Normal, errNotJPEG
	}
	for {
		if _, err := io.ReadFull(r, hdr[:1]); err != nil {
			return Normal, err
		}
		if hdr[0] != 0xFF {
			return Normal, errNotJPEG
		}
		// Skip fill bytes.
		marker := byte(0xFF)
		for marker == 0xFF {
			if _, err := io.ReadFull(r, hdr[:1]); err != nil {
				return Normal, err
			}
			marker = hdr[0]
		}
		if marker == markerSOS || marker == markerEOI {
			return Normal, ErrNoOrientation
		}
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return Normal, err
		}
		length := int(binary.BigEndian.Uint16(hdr[:])) - 2
		if length < 0 {
			return Normal, errNotJPEG
		}
		seg := make([]byte, length)
		if _, err := io.ReadFull(r, seg); err != nil {
			return Normal, err
		}
		if marker == markerAPP1 && len(seg) >= 6 && string(seg[:6]) == "Exif\x00\x00" {
			return parseTIFF(seg[6:])
		}
	}
}

// parseTIFF walks IFD0 of a TIFF header looking for the orientation tag.
func parseTIFF(b []byte) (Orientation, error) {
	if len(b) < 8 {
		return Normal, ErrNoOrientation
	}
	var order binary.ByteOrder
	switch string(b[:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return Normal, ErrNoOrientation
	}
	if order.Uint16(b[2:]) != 42 {
		return Normal, ErrNoOrientation
	}
	ifd := int(order.Uint32(b[4:]))
	if ifd < 8 || ifd+2 > len(b) {
		return Normal, ErrNoOrientation
	}
	count := int(order.Uint16(b[ifd:]))
	entry := ifd + 2
	for i := 0; i < count && entry+12 <= len(b); i++ {
		if order.Uint16(b[entry:]) == tagOrientation {
			// Type SHORT, count 1, value in the first 2 bytes of the offset field.
			if order.Uint16(b[entry+2:]) != 3 || order.Uint32(b[entry+4:]) != 1 {
				return Normal, ErrNoOrientation
			}
			o := Orientation(order.Uint16(b[entry+8:]))
			if !o.Valid() {
				return Normal, fmt.Errorf("orientation %d out of range", int(o))
			}
			return o, nil
		}
		entry += 12
	}
	return Normal, ErrNoOrientation
}
