// Command iconvg2png rasterizes an IconVG graphic to a PNG file.
package main

import (
	"flag"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/Hixie/iconvg/iconvg"
	"github.com/Hixie/iconvg/xraster"
)

func main() {
	var (
		width  = flag.Int("width", 0, "output width in pixels (0: derive from the graphic's ViewBox aspect ratio)")
		height = flag.Int("height", 256, "output height in pixels")
		output = flag.String("output", "out.png", "output file")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: iconvg2png [flags] input.ivg")
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading %s: %v", flag.Arg(0), err)
	}

	viewbox, err := iconvg.DecodeViewBox(src)
	if err != nil {
		log.Fatalf("decoding viewbox: %v", err)
	}

	w := *width
	if w <= 0 {
		dx, dy := viewbox.AspectRatio()
		if dy <= 0 {
			dx, dy = 1, 1
		}
		w = int(float32(*height) * dx / dy)
		if w <= 0 {
			w = *height
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, *height))
	dstRect := iconvg.MakeRectangle(0, 0, float32(w), float32(*height))

	rz := xraster.New(dst, dst.Bounds(), draw.Over)
	if err := iconvg.Decode(rz, dstRect, src, nil); err != nil {
		log.Fatalf("decoding %s: %v", flag.Arg(0), err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("creating %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		log.Fatalf("encoding %s: %v", *output, err)
	}
	log.Printf("wrote %s (%dx%d)", *output, w, *height)
}
