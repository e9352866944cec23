package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/alecthomas/units"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// runCommand measures every size and writes the CSV files.
type runCommand struct {
	minSize  *units.Base2Bytes
	maxSize  *units.Base2Bytes
	steps    *int
	trials   *int
	warm     *bool
	seed     *int64
	out      *string
	logLevel *string
}

func (cmd *runCommand) run(c *kingpin.ParseContext) error {
	logger := newLogger(*cmd.logLevel)

	abs, err := cmd.measureAll(logger)
	if err != nil {
		exitWithErr(err)
	}

	for name, t := range map[string]*table{
		"absolute.csv": abs,
		"relative.csv": abs.relative(),
	} {
		path := filepath.Join(*cmd.out, name)
		if err := t.writeFile(path); err != nil {
			exitWithErr(fmt.Errorf("failed to write %s: %w", path, err))
		}
		level.Info(logger).Log("msg", "wrote results", "path", path, "rows", len(t.rows))
	}
	return nil
}

func (cmd *runCommand) measureAll(logger log.Logger) (*table, error) {
	if *cmd.minSize <= 0 || *cmd.maxSize < *cmd.minSize {
		return nil, fmt.Errorf("invalid size range %v to %v", *cmd.minSize, *cmd.maxSize)
	}
	if *cmd.trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", *cmd.trials)
	}

	rng := rand.New(rand.NewSource(*cmd.seed))

	abs := &table{}
	for _, s := range searchers {
		abs.labels = append(abs.labels, s.name)
	}

	all := sizes(int(*cmd.minSize), int(*cmd.maxSize), *cmd.steps)
	level.Info(logger).Log("msg", "starting", "sizes", len(all), "trials", *cmd.trials, "warm", *cmd.warm)

	started := time.Now()
	for i, size := range all {
		medians := measure(size, *cmd.trials, *cmd.warm, rng)
		abs.add(size, medians)

		keyvals := []any{"msg", "measured", "size", humanize.IBytes(uint64(size)), "step", i + 1}
		for j, s := range searchers {
			keyvals = append(keyvals, s.name, medians[j])
		}
		level.Debug(logger).Log(keyvals...)
	}
	level.Info(logger).Log("msg", "done", "duration", time.Since(started))

	return abs, nil
}

func addRunCommand(app *kingpin.Application) {
	cmd := &runCommand{}
	run := app.Command("run", "Time both searches over a range of array sizes.").Default().Action(cmd.run)
	cmd.minSize = run.Flag("min-size", "Smallest array size.").Default("64B").Bytes()
	cmd.maxSize = run.Flag("max-size", "Largest array size.").Default("16MiB").Bytes()
	cmd.steps = run.Flag("steps", "Number of sizes between min-size and max-size.").Default("200").Int()
	cmd.trials = run.Flag("trials", "Lookups per size.").Default("200").Int()
	cmd.warm = run.Flag("warm", "Don't flush the array before each lookup.").Bool()
	cmd.seed = run.Flag("seed", "Random seed for the keys.").Default("1").Int64()
	cmd.out = run.Flag("out", "Directory for absolute.csv and relative.csv.").Default(".").ExistingDir()
	cmd.logLevel = addLogLevelFlag(run)
}
