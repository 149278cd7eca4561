package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxPPMLineLength is the longest line PPM readers are required to accept
const maxPPMLineLength = 70

// WritePPM serializes the canvas as a plain-text (P3) PPM image
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return err
	}

	line := make([]byte, 0, maxPPMLineLength+1)
	for y := 0; y < c.height; y++ {
		line = line[:0]
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			for _, v := range [3]float64{p.R, p.G, p.B} {
				value := strconv.Itoa(int(clampChannel(v)))
				if len(line) > 0 && len(line)+1+len(value) > maxPPMLineLength {
					line = append(line, '\n')
					if _, err := bw.Write(line); err != nil {
						return err
					}
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, value...)
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// PPM returns the canvas as a P3 PPM string
func (c *Canvas) PPM() string {
	var b strings.Builder
	// strings.Builder never returns a write error
	_ = c.WritePPM(&b)
	return b.String()
}
