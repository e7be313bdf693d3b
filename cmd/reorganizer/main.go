package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/n2code/reorganizer"
	"github.com/n2code/reorganizer/internal/config"
)

const baseDirectory = "/Users/kelemetovmuhamed/Documents/vpnwebsite"

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	rq := &CliRequest{
		config:   cfg,
		layout:   reorganizer.DefaultLayout(baseDirectory),
		fs:       afero.NewOsFs(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		terminal: term.IsTerminal(int(os.Stdout.Fd())),
	}
	os.Exit(rq.run(os.Args[1:]))
}
