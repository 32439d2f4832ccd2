// Package sparsepgm is a small toolkit for grayscale raster images stored as
// sparse, cross-linked matrices.
//
// What is inside?
//
//	A zero-background image rarely needs every pixel in memory. sparsepgm keeps
//	only the non-zero ones, each linked into its row chain and its column chain:
//		• sparse/  — Grid[T]: orthogonal-list sparse matrix over a handle arena
//		• raster/  — Image[T]: border stamp, invert, rotate, P2 text, regions
//		• pgm/     — P2 decoder/encoder, PNG/BMP/TIFF export, image.Image bridge
//		• cmd/pgmedit — interactive menu editor on top of the three packages
//
// Quick ASCII picture of the lattice (R=2, C=3, two stored cells):
//
//	root ──► c0 ──► c1 ──► c2
//	 │              │
//	 ▼              ▼
//	 r0 ──────────► (0,1)
//	 │              │
//	 ▼              ▼
//	 r1 ──────────► (1,1)
//
// Sentinels are created once and never removed; cells are spliced in and out
// of both chains by Insert and Delete.
//
//	go get github.com/katalvlaran/sparsepgm
package sparsepgm
