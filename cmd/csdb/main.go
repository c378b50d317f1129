/*
Command csdb is an interactive shell for an in-memory csdb database.

Usage:

	csdb [flags]

Flags:

	-fanout N     fanout of the ordered index (default 12)
	-buckets N    number of hash table buckets (default 16384)
	-digest NAME  bucket digest, one of crc32, crc64, xxh64
	-seed N       fill the database with N random records
	-watch        print a line for every change event
	-trace LEVEL  trace level, one of debug, info, error
	-nocolor      disable colored output

Commands are read line by line from stdin; type HELP for a list.
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/csdb"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

var (
	fanout     = flag.Int("fanout", 0, "Fanout of the ordered index, 0 selects the default.")
	buckets    = flag.Int("buckets", 0, "Number of hash table buckets, 0 selects the default.")
	digestName = flag.String("digest", "crc64", "Bucket digest: crc32, crc64 or xxh64.")
	seedCount  = flag.Int("seed", 0, "Seed the database with N records created with go-faker.")
	watch      = flag.Bool("watch", false, "Print change events to stderr.")
	traceLevel = flag.String("trace", "error", "Trace level: debug, info or error.")
	noColor    = flag.Bool("nocolor", false, "Disable colored output.")
)

func main() {
	setupFlags()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return gtrace.CoreTracer
	}))
	grapheme.SetupGraphemeClasses()
	//
	stdout := int(os.Stdout.Fd())
	if *noColor || !term.IsTerminal(stdout) {
		color.NoColor = true
	}
	db, err := csdb.Open(csdb.Config{
		Fanout:  *fanout,
		Buckets: *buckets,
		Digest:  *digestName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "csdb: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *watch {
		if err := watchEvents(ctx, db); err != nil {
			fmt.Fprintf(os.Stderr, "csdb: %v\n", err)
		}
	}
	if *seedCount > 0 {
		if err := seed(db, *seedCount); err != nil {
			fmt.Fprintf(os.Stderr, "csdb: seeding failed: %v\n", err)
			os.Exit(1)
		}
	}
	repl := NewREPL(bufio.NewScanner(os.Stdin), os.Stdout, db)
	repl.Context = uax11.ContextFromEnvironment()
	if term.IsTerminal(stdout) {
		if w, _, err := term.GetSize(stdout); err == nil {
			repl.Width = w
		}
	}
	repl.Start()
}

func setupFlags() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "\ncsdb shell\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}

// watchEvents prints every change event of db to stderr until ctx is done.
func watchEvents(ctx context.Context, db *csdb.DB) error {
	events, err := db.Subscribe(ctx)
	if err != nil {
		return err
	}
	c := color.New(color.FgMagenta)
	go func() {
		for ev := range events {
			c.Fprintf(os.Stderr, "[%s] %s\n", ev.Op, ev.Key)
		}
	}()
	return nil
}
