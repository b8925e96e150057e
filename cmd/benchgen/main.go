package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kjk/benchdata/config"
	"github.com/kjk/benchdata/dataset"
	"github.com/kjk/benchdata/log"
	"github.com/kjk/benchdata/u"
)

var errUsage = errors.New("usage")

func printUsage() {
	exe := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, `Usage:
  %s <config> [baseline-config]

Config keys:
  size, from, to            required: number of records and key range
  seed                      generate reproducible data
  filter_from, filter_to    key range to count (defaults to from, to)
  print=1                   print generated keys
  verbose=1                 verbose logging
  log_dir                   write logs and events to this directory
`, exe)
}

// getIntOr returns value of key or def if key is not present
func getIntOr(cfg *config.Store, key string, def int) (int, error) {
	if !cfg.Has(key) {
		return def, nil
	}
	return cfg.GetInt(key)
}

type params struct {
	size       int
	from       int
	to         int
	filterFrom int
	filterTo   int
	seed       uint64
	hasSeed    bool
	printKeys  bool
}

func readParams(cfg *config.Store) (*params, error) {
	var p params
	var err error
	if p.size, err = cfg.GetInt("size"); err != nil {
		return nil, err
	}
	if p.from, err = cfg.GetInt("from"); err != nil {
		return nil, err
	}
	if p.to, err = cfg.GetInt("to"); err != nil {
		return nil, err
	}
	if p.filterFrom, err = getIntOr(cfg, "filter_from", p.from); err != nil {
		return nil, err
	}
	if p.filterTo, err = getIntOr(cfg, "filter_to", p.to); err != nil {
		return nil, err
	}
	if cfg.Has("seed") {
		s, _ := cfg.GetStr("seed")
		p.seed, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: key 'seed' value '%s' (%w)", config.ErrInvalidFormat, s, err)
		}
		p.hasSeed = true
	}
	printRecs, err := getIntOr(cfg, "print", 0)
	if err != nil {
		return nil, err
	}
	p.printKeys = printRecs == 1
	return &p, nil
}

func run(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	cfgPath := args[0]
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if v, _ := getIntOr(cfg, "verbose", 0); v == 1 {
		log.Verbose = true
	}
	if dir, err := cfg.GetStr("log_dir"); err == nil {
		log.Init(&log.Config{Dir: dir})
		defer log.Close()
	}
	log.Verbosef("config:\n%s", cfg.JSON())

	if len(args) == 2 {
		baseline, err := config.Load(args[1])
		if err != nil {
			return err
		}
		if diff := config.Diff(baseline, cfg, args[1], cfgPath); diff != "" {
			log.Logf("%s", diff)
		}
	}

	p, err := readParams(cfg)
	if err != nil {
		return err
	}

	// downstream stages work on power-of-two sized buffers
	bufSize := u.NextPowerOfTwo(p.size)
	buf := make([]dataset.Record, bufSize)
	timeStart := time.Now()
	if p.hasSeed {
		err = dataset.GenerateSeeded(buf, p.size, p.from, p.to, p.seed)
	} else {
		err = dataset.Generate(buf, p.size, p.from, p.to)
	}
	if err != nil {
		return err
	}
	dur := time.Since(timeStart)
	recs := buf[:p.size]
	log.Logf("generated %d records in [%d, %d] in %s, buffer size: %d\n", p.size, p.from, p.to, u.FormatDuration(dur), bufSize)
	log.IfErrf(log.EventWithDuration("generate", dur, "size", p.size, "from", p.from, "to", p.to, "buf", bufSize))

	if p.printKeys {
		dataset.FprintRecords(log.Out, "keys", recs)
	}

	timeStart = time.Now()
	n := dataset.CountInRange(recs, p.filterFrom, p.filterTo)
	dur = time.Since(timeStart)
	log.Logf("%d records with keys in [%d, %d]\n", n, p.filterFrom, p.filterTo)
	log.IfErrf(log.EventWithDuration("filter", dur, "from", p.filterFrom, "to", p.filterTo, "matched", n))
	return nil
}

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, errUsage) {
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Errorf("benchgen: %s", err)
		os.Exit(1)
	}
}
