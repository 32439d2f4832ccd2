package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/sparsepgm/pgm"
	"github.com/katalvlaran/sparsepgm/raster"
)

// Menu defaults.
const (
	defaultBorder      = 3
	defaultBorderValue = 255
	savePrefix         = "imagem-editada"
)

var errNoImage = errors.New("no image loaded; use 'load <file>' first")

// Editor holds the state of one interactive session.
type Editor struct {
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	prompt  bool
	dir     string
	open    func(path string) error
	now     func() time.Time
	picture *pgm.Picture
	path    string
}

// NewEditor wires an editor to the given streams. Saved files go to dir.
// open may be nil, which disables handing saved files to the OS.
func NewEditor(in io.Reader, out, errOut io.Writer, dir string, open func(string) error) *Editor {
	return &Editor{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		dir:    dir,
		open:   open,
		now:    time.Now,
	}
}

// Run reads commands until "quit" or end of input.
func (e *Editor) Run() {
	fmt.Fprintln(e.out, "pgmedit - sparse P2 image editor")
	fmt.Fprintln(e.out, "Type 'help' for available commands, 'quit' to exit")

	for {
		if e.prompt {
			fmt.Fprint(e.out, "pgmedit> ")
		}
		input, err := e.in.ReadString('\n')
		input = strings.TrimSpace(input)
		if input != "" && !e.handleCommand(input) {
			return
		}
		if err != nil {
			return
		}
	}
}

// handleCommand executes one line; it returns false when the session ends.
func (e *Editor) handleCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		e.printHelp()
	case "quit", "exit", "0":
		fmt.Fprintln(e.out, "Goodbye!")
		return false
	case "load", "open":
		err = e.cmdLoad(args)
	case "show", "1":
		err = e.cmdShow()
	case "border", "2":
		err = e.cmdBorder(args)
	case "invert", "3":
		err = e.cmdInvert()
	case "rotate", "4":
		err = e.cmdRotate(args)
	case "save", "5":
		err = e.cmdSave(args)
	case "export":
		err = e.cmdExport(args)
	case "stats":
		err = e.cmdStats()
	default:
		err = fmt.Errorf("unknown command %q; type 'help'", cmd)
	}
	if err != nil {
		fmt.Fprintf(e.errOut, "Error: %v\n", err)
	}

	return true
}

func (e *Editor) printHelp() {
	fmt.Fprint(e.out, `Commands:
  load <file>            read a P2 image (".pgm" is appended when missing)
  show        | 1        print the image, "." marks background pixels
  border [n] [v] | 2     stamp an n-pixel border of value v (default 3, 255)
  invert      | 3        invert intensities against the file's maxValue
  rotate [ccw|180] | 4   rotate 90° clockwise (or counter-clockwise / half turn)
  save [file] | 5        write a P2 file (default: timestamped name)
  export <file>          write .png, .bmp or .tif/.tiff
  stats                  size, stored pixels and intensity histogram
  quit        | 0        leave the editor
`)
}

func (e *Editor) cmdLoad(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: load <file>")
	}
	path := args[0]
	if filepath.Ext(path) == "" {
		path += pgm.Extension
	}
	p, err := pgm.ReadFile(path)
	if err != nil {
		return err
	}
	e.picture, e.path = p, path
	fmt.Fprintf(e.out, "Loaded %s: %d×%d, maxValue %d, %d stored pixels\n",
		path, p.Image.Cols(), p.Image.Rows(), p.MaxValue, p.Image.Count())

	return nil
}

func (e *Editor) cmdShow() error {
	if e.picture == nil {
		return errNoImage
	}
	fmt.Fprintf(e.out, "Image:\n\n%s", e.picture.Image.DebugText())

	return nil
}

func (e *Editor) cmdBorder(args []string) error {
	if e.picture == nil {
		return errNoImage
	}
	n, v := defaultBorder, defaultBorderValue
	var err error
	if len(args) > 0 {
		if n, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("border thickness %q: %w", args[0], err)
		}
	}
	if len(args) > 1 {
		if v, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("border value %q: %w", args[1], err)
		}
	}
	if v < 0 || v > int(e.picture.MaxValue) {
		return fmt.Errorf("border value %d outside [0, %d]", v, e.picture.MaxValue)
	}
	if err := e.picture.Image.StampBorder(n, uint16(v)); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Border of %dpx inserted.\n", n)

	return nil
}

func (e *Editor) cmdInvert() error {
	if e.picture == nil {
		return errNoImage
	}
	if err := e.picture.Image.Invert(e.picture.MaxValue); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Colors inverted.")

	return nil
}

func (e *Editor) cmdRotate(args []string) error {
	if e.picture == nil {
		return errNoImage
	}
	mode := "cw"
	if len(args) > 0 {
		mode = strings.ToLower(args[0])
	}
	im := e.picture.Image
	switch mode {
	case "cw", "90":
		e.picture.Image = im.Rotate()
	case "ccw", "-90", "270":
		e.picture.Image = im.RotateCounterClockwise()
	case "180":
		e.picture.Image = im.Rotate180()
	default:
		return fmt.Errorf("unknown rotation %q (cw, ccw, 180)", mode)
	}
	fmt.Fprintf(e.out, "Image rotated (%s), now %d×%d.\n", mode, e.picture.Image.Cols(), e.picture.Image.Rows())

	return nil
}

func (e *Editor) cmdSave(args []string) error {
	if e.picture == nil {
		return errNoImage
	}
	path := filepath.Join(e.dir, pgm.TimestampedName(savePrefix, e.now()))
	if len(args) > 0 {
		path = args[0]
	}
	if err := pgm.WriteFile(path, e.picture); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Saved %s\n", path)
	e.handOff(path)

	return nil
}

func (e *Editor) cmdExport(args []string) error {
	if e.picture == nil {
		return errNoImage
	}
	if len(args) != 1 {
		return errors.New("usage: export <file.png|file.bmp|file.tiff>")
	}
	f, err := pgm.FormatFromPath(args[0])
	if err != nil {
		return err
	}
	out, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := pgm.Export(out, e.picture, f); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Exported %s (%v)\n", args[0], f)
	e.handOff(args[0])

	return nil
}

func (e *Editor) cmdStats() error {
	if e.picture == nil {
		return errNoImage
	}
	im := e.picture.Image
	fmt.Fprintf(e.out, "%s: %d×%d, maxValue %d, %d stored pixels, %d regions\n",
		e.path, im.Cols(), im.Rows(), e.picture.MaxValue, im.Count(), len(im.Components(raster.Conn8)))

	hist := im.Histogram()
	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(e.out, "  %5d: %d\n", k, hist[uint16(k)])
	}

	return nil
}

// handOff passes a written file to the platform opener, reporting failures
// without aborting the session.
func (e *Editor) handOff(path string) {
	if e.open == nil {
		return
	}
	if err := e.open(path); err != nil {
		fmt.Fprintf(e.errOut, "Could not open %s: %v\n", path, err)
	}
}
