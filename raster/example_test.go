// File: raster/example_test.go
package raster_test

import (
	"fmt"

	"github.com/katalvlaran/sparsepgm/raster"
)

// ExampleImage_Invert shows how absent background pixels become explicit
// maximum-intensity cells and how the single stored pixel is mirrored.
func ExampleImage_Invert() {
	im, _ := raster.New[uint8](3, 3)
	_ = im.Set(1, 1, 100)
	fmt.Print(im.DebugText())

	_ = im.Invert(255)
	fmt.Print(im.Pixels())
	fmt.Println("stored:", im.Count())

	// Output:
	// .	.	.
	// .	100	.
	// .	.	.
	// 255 255 255
	// 255 155 255
	// 255 255 255
	// stored: 9
}

// ExampleImage_Rotate turns a 2×3 image clockwise into a 3×2 image.
func ExampleImage_Rotate() {
	im, _ := raster.New[uint8](2, 3)
	_ = im.Set(0, 0, 1)
	_ = im.Set(0, 2, 3)
	_ = im.Set(1, 1, 5)

	fmt.Print(im.Rotate().Text(5))

	// Output:
	// P2
	// 2 3
	// 5
	// 0 1
	// 5 0
	// 0 3
}
