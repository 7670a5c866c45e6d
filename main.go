package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-petri/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON configuration file")
	flag.Parse()

	if err := run(*configPath, flag.Args(), os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%+v", err)
	}
}

// run reads a seed population from in and writes the selected mode's output
func run(configPath string, args []string, in io.Reader, out io.Writer) error {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return err
		}
		config = utils.DefaultConfig()
	}

	if config, err = applyArgs(config, args); err != nil {
		return errors.Wrap(err, "[run] invalid arguments")
	}

	seed, err := readSeed(in)
	if err != nil {
		return err
	}

	dish := newDish(config, seed)

	switch config.Mode {
	case utils.ModeGrid:
		return runGrid(out, dish, config)
	case utils.ModeOutput:
		return runOutput(out, dish)
	default:
		return errors.Errorf("[run] unknown mode %q", config.Mode)
	}
}
