package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-petri/model"
	"github.com/sheikhrachel/go-petri/utils"
)

// applyArgs overrides the mode and generation count with positional arguments
func applyArgs(config utils.Config, args []string) (utils.Config, error) {
	if len(args) > 0 && args[0] != "" {
		config.Mode = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return config, errors.Wrapf(err, "[applyArgs] invalid generation count: %q", args[1])
		}
		config.Generations = n
	}
	return config, config.Validate()
}

// readSeed reads lines until one equals the sentinel line and returns the
// text before it. Reaching EOF first returns everything read so far. Lines
// have no length limit.
func readSeed(r io.Reader) (string, error) {
	var (
		sb       strings.Builder
		reader   = bufio.NewReader(r)
		sentinel = model.Sentinel.Key()
	)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", errors.Wrap(err, "[readSeed] failed to read input")
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == sentinel {
			return sb.String(), nil
		}
		if line != "" || err == nil {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}

		if err == io.EOF {
			return sb.String(), nil
		}
	}
}

// newDish builds the dish with the options selected by config
func newDish(config utils.Config, seed string) *model.Dish {
	opts := []model.Option{model.WithWorkers(config.DecisionWorkers())}
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewHaloPool()))
	}
	return model.NewDish(seed, opts...)
}

// runOutput prints the generation that follows the seed
func runOutput(w io.Writer, dish *model.Dish) error {
	if _, err := fmt.Fprintln(w, "Output:"); err != nil {
		return errors.Wrap(err, "[runOutput] failed to write header")
	}
	next, err := dish.EncodeGeneration()
	if err != nil {
		return errors.Wrap(err, "[runOutput] failed to advance generation")
	}
	if _, err := fmt.Fprintln(w, next); err != nil {
		return errors.Wrap(err, "[runOutput] failed to write generation")
	}
	return nil
}

// runGrid renders config.Generations frames, advancing the dish after each one
func runGrid(w io.Writer, dish *model.Dish, config utils.Config) error {
	var (
		renderer = &model.TerminalRenderer{}
		stats    = utils.NewStats()
		history  model.History
	)

	for generation := 1; generation <= config.Generations; generation++ {
		frameStart := time.Now()
		if config.ClearScreen {
			renderer.Clear()
		}

		if _, err := fmt.Fprintf(w, "#%d\n", generation); err != nil {
			return errors.Wrap(err, "[runGrid] failed to write frame header")
		}
		if err := renderer.Display(w, dish); err != nil {
			return errors.Wrapf(err, "[runGrid] failed to render generation %d", generation)
		}

		if config.ShowStats {
			var (
				population  = dish.Population()
				fingerprint = dish.Fingerprint()
				status      = gameStatus(population, history.IsStagnant(fingerprint))
			)
			history.Update(fingerprint)
			displayGameStatus(w, generation, population, dish.Len(), status, stats)
		}

		if err := dish.Advance(); err != nil {
			return errors.Wrapf(err, "[runGrid] failed to advance generation %d", generation)
		}
		if config.PruneDead {
			dish.Prune()
		}
		stats.Update(generation, dish.Population(), dish.Len(), time.Since(frameStart))

		if config.FrameRate > 0 {
			time.Sleep(config.FrameRate)
		}
	}

	if config.ShowStats {
		fmt.Fprintf(w, "Run %s: %d generations in %.1f seconds, %.1f avg population\n",
			stats.RunID, stats.TotalGenerations, stats.Runtime().Seconds(), stats.AveragePopulation)
	}
	return nil
}

// gameStatus describes the population shown in the current frame
func gameStatus(population int, stagnant bool) string {
	switch {
	case population == 0:
		return "Extinct"
	case stagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(
	w io.Writer,
	generation, population, held int,
	status string,
	stats *utils.Stats,
) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Held: %d | Status: %s\n",
		generation, population, held, status)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}
