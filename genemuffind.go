package main

import (
	"log"
	"os"

	"github.com/genemuffin/genemuffind/cmd"
	"github.com/jessevdk/go-flags"
)

func main() {
	parser := flags.NewParser(nil, flags.Default)

	_, err := parser.AddCommand("start",
		"start the GeneMuffin node",
		"The start command starts the GeneMuffin node",
		&cmd.Start{})
	if err != nil {
		log.Fatal(err)
	}
	_, err = parser.AddCommand("init",
		"initialize a GeneMuffin node",
		"The init command creates and initializes a new data directory and database.",
		&cmd.Init{})
	if err != nil {
		log.Fatal(err)
	}

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}
