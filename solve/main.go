package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/zeebo/errs"
	"github.com/zeebo/lights"
	"github.com/zeebo/mon"
	"github.com/zeebo/mon/monhandler"
	"golang.org/x/sys/unix"
)

var (
	input   = flag.String("input", "input.txt", "file with one machine per line")
	workers = flag.Int("workers", 0, "machines solved at once (0 for GOMAXPROCS)")
	memo    = flag.Bool("memo", true, "cache repeated joltage subproblems")
	budget  = flag.Int("budget", 0, "maximum bit planes expanded per machine (0 for no limit)")
	timings = flag.Bool("stats", false, "print timings on exit")
	addr    = flag.String("http", "", "address to serve timings on while solving")
)

func stats() {
	defer fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	mon.Times(func(name string, state *mon.State) bool {
		sum, avg := state.Average()
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\n",
			name, state.Total(), time.Duration(sum), time.Duration(avg))
		return true
	})
}

func main() {
	flag.Parse()

	if *timings {
		defer stats()
	}
	if *addr != "" {
		go http.ListenAndServe(*addr, monhandler.Handler{})
	}

	if err := run(context.Background()); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(ctx context.Context) error {
	machines, err := load(*input)
	if err != nil {
		return errs.Wrap(err)
	}

	totals, err := lights.Solve(ctx, machines, lights.Options{
		Workers: *workers,
		Solver: lights.Solver{
			Memo:   *memo,
			Budget: *budget,
		},
	})
	if err != nil {
		return errs.Wrap(err)
	}

	fmt.Printf("The answer to part 1 is %d\n", totals.Activations)
	fmt.Printf("The answer to part 2 is %d\n", totals.Presses)
	return nil
}

// load maps the input file read only and parses the machines out of it.
func load(path string) (_ []*lights.Machine, err error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	defer fh.Close()

	fi, err := fh.Stat()
	if err != nil {
		return nil, errs.Wrap(err)
	}
	if fi.Size() == 0 {
		return nil, nil
	}

	buf, err := unix.Mmap(int(fh.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	defer func() { err = errs.Combine(err, unix.Munmap(buf)) }()

	return lights.Parse(bytes.NewReader(buf))
}
