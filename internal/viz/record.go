package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
)

// Recorder rasterizes canvas frames and writes them as an animated GIF.
type Recorder struct {
	frames []*image.Paletted
	delay  int
}

// NewRecorder records at the given frame rate. GIF delays are in
// hundredths of a second.
func NewRecorder(frameRate float64) *Recorder {
	delay := int(100/frameRate + 0.5)
	return &Recorder{delay: max(delay, 2)}
}

func (r *Recorder) Len() int { return len(r.frames) }

// Capture rasterizes c, 8x16 pixels per cell.
func (r *Recorder) Capture(c *Canvas) {
	const charW, charH = 8, 16
	dotW, dotH := charW/2, charH/4

	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), color.Palette{color.Black, color.White})
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - brailleBase)
			if pattern <= 0 {
				continue
			}
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Save writes the captured frames to path and clears the recorder.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		return err
	}
	r.frames = r.frames[:0]
	return f.Close()
}
