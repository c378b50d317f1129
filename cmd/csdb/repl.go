package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/csdb"
	"github.com/npillmayer/uax/uax11"
)

// REPL reads commands line by line and executes them against a database.
type REPL struct {
	Context *uax11.Context // for column widths of SCAN output
	Width   int            // terminal width in en, 0 if unknown
	scanner *bufio.Scanner
	out     io.Writer
	db      *csdb.DB
	colors  palette
}

type palette struct {
	prompt, key, value, info, err *color.Color
}

// NewREPL creates a REPL reading from s and writing to out.
func NewREPL(s *bufio.Scanner, out io.Writer, db *csdb.DB) *REPL {
	return &REPL{
		Context: uax11.LatinContext,
		scanner: s,
		out:     out,
		db:      db,
		colors: palette{
			prompt: color.New(color.FgGreen, color.Bold),
			key:    color.New(color.FgBlue),
			value:  color.New(color.FgWhite),
			info:   color.New(color.FgCyan),
			err:    color.New(color.FgRed),
		},
	}
}

// Start runs the REPL until EXIT or end of input.
func (r *REPL) Start() {
	r.printHelp()
	r.printPrompt()
	for r.scanner.Scan() {
		if !r.processInput(r.scanner.Text()) {
			return
		}
		r.printPrompt()
	}
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.out, `
csdb shell

Available Commands:
  SET <key> <value>    Store a value for key
  GET <key>            Retrieve the value for key
  SCAN [from [to]]     List records with from <= key < to
  STATS                Show index and hash table statistics
  CHECK                Validate the index invariants
  DOT [file]           Write the index in Graphviz format
  HTML <file>          Export all records as an HTML table
  HELP                 Show this message
  EXIT                 Terminate this session
`)
}

func (r *REPL) printPrompt() {
	r.colors.prompt.Fprint(r.out, "> ")
}

func (r *REPL) errorf(format string, args ...interface{}) {
	r.colors.err.Fprintf(r.out, format+"\n", args...)
}

// processInput executes a single command line. It returns false if the
// session should end.
func (r *REPL) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		r.errorf("Unknown command \"%s\"", fields[0])
	case "set":
		r.processSetCommand(fields[1:])
	case "get":
		r.processGetCommand(fields[1:])
	case "scan":
		r.processScanCommand(fields[1:])
	case "stats":
		r.processStatsCommand()
	case "check":
		r.processCheckCommand()
	case "dot":
		r.processDotCommand(fields[1:])
	case "html":
		r.processHTMLCommand(fields[1:])
	case "help":
		r.printHelp()
	case "exit", "quit":
		return false
	}
	return true
}

func (r *REPL) processSetCommand(args []string) {
	if len(args) < 2 {
		r.errorf("Usage: SET <key> <value>")
		return
	}
	if err := r.db.Set(args[0], []byte(strings.Join(args[1:], " "))); err != nil {
		r.errorf("%v", err)
		return
	}
	r.colors.info.Fprintln(r.out, "OK")
}

func (r *REPL) processGetCommand(args []string) {
	if len(args) != 1 {
		r.errorf("Usage: GET <key>")
		return
	}
	val, ok := r.db.Get(args[0])
	if !ok {
		r.errorf("Key not found.")
		return
	}
	r.colors.value.Fprintln(r.out, string(val))
}

func (r *REPL) processScanCommand(args []string) {
	if len(args) > 2 {
		r.errorf("Usage: SCAN [from [to]]")
		return
	}
	var from, to string
	if len(args) > 0 {
		from = args[0]
	}
	if len(args) > 1 {
		to = args[1]
	}
	var rows []row
	err := r.db.Scan(from, to, func(k string, v []byte) bool {
		rows = append(rows, row{key: k, value: string(v)})
		return true
	})
	if err != nil {
		r.errorf("%v", err)
		return
	}
	r.printTable(rows)
	r.colors.info.Fprintf(r.out, "(%d records)\n", len(rows))
}

func (r *REPL) processStatsCommand() {
	s := r.db.Stats()
	r.colors.info.Fprintf(r.out, "index: height=%d nodes=%d (inner=%d, leaves=%d) keys=%d fill=%.2f\n",
		s.Index.Height, s.Index.Nodes, s.Index.Inner, s.Index.Leaves, s.Index.Keys, s.Index.Fill)
	r.colors.info.Fprintf(r.out, "table: buckets=%d used=%d longest chain=%d keys=%d\n",
		s.Table.Buckets, s.Table.Used, s.Table.Longest, s.Table.Keys)
}

func (r *REPL) processCheckCommand() {
	if err := r.db.Check(); err != nil {
		r.errorf("%v", err)
		return
	}
	r.colors.info.Fprintln(r.out, "OK")
}

func (r *REPL) processDotCommand(args []string) {
	if len(args) > 1 {
		r.errorf("Usage: DOT [file]")
		return
	}
	if len(args) == 0 {
		if err := r.db.Dot(r.out); err != nil {
			r.errorf("%v", err)
		}
		return
	}
	if err := writeFile(args[0], r.db.Dot); err != nil {
		r.errorf("%v", err)
		return
	}
	r.colors.info.Fprintf(r.out, "wrote %s\n", args[0])
}

func (r *REPL) processHTMLCommand(args []string) {
	if len(args) != 1 {
		r.errorf("Usage: HTML <file>")
		return
	}
	err := writeFile(args[0], func(w io.Writer) error {
		return exportHTML(w, r.db)
	})
	if err != nil {
		r.errorf("%v", err)
		return
	}
	r.colors.info.Fprintf(r.out, "wrote %s\n", args[0])
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
