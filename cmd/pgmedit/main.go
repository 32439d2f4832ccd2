// Command pgmedit is an interactive editor for plain (P2) PGM images backed by
// a sparse cross-linked matrix.
//
// Usage:
//
//	pgmedit [-dir DIR] [-open] [file.pgm]
//
// Commands are read line by line from standard input; type "help" for the list.
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pgmedit: ")

	dir := flag.String("dir", ".", "directory for saved images")
	openSaved := flag.Bool("open", false, "open saved and exported files with the system viewer")
	flag.Parse()

	if st, err := os.Stat(*dir); err != nil || !st.IsDir() {
		log.Fatalf("invalid -dir %q", *dir)
	}

	var opener func(string) error
	if *openSaved {
		opener = openWithSystem
	}
	ed := NewEditor(os.Stdin, os.Stdout, os.Stderr, *dir, opener)
	ed.prompt = term.IsTerminal(int(os.Stdin.Fd()))

	if flag.NArg() > 0 {
		if err := ed.cmdLoad(flag.Args()[:1]); err != nil {
			log.Fatal(err)
		}
	}
	ed.Run()
}
