package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/csdb"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func runREPL(t *testing.T, db *csdb.DB, input string) string {
	t.Helper()
	color.NoColor = true
	grapheme.SetupGraphemeClasses()
	var out bytes.Buffer
	repl := NewREPL(bufio.NewScanner(strings.NewReader(input)), &out, db)
	repl.Start()
	return out.String()
}

func openTestDB(t *testing.T) *csdb.DB {
	t.Helper()
	db, err := csdb.Open(csdb.Config{Fanout: 3, Buckets: 16})
	if err != nil {
		t.Fatalf("cannot open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestREPLCommands(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.QuickConfig(t, "csdb")
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	db := openTestDB(t)
	out := runREPL(t, db, strings.Join([]string{
		"SET b 2",
		"set a one word",
		"GET a",
		"GET zz",
		"SET x",
		"SCAN",
		"STATS",
		"CHECK",
		"FOO",
		"EXIT",
		"SET c 3",
	}, "\n"))
	for _, want := range []string{
		"one word\n",
		"Key not found.",
		"Usage: SET <key> <value>",
		"(2 records)",
		"index: height=1",
		"Unknown command \"FOO\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got\n%s", want, out)
		}
	}
	if db.Len() != 2 {
		t.Fatalf("expected session to end at EXIT, database has %d records", db.Len())
	}
}

func TestScanTableAlignment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.QuickConfig(t, "csdb")
	defer teardown()
	//
	db := openTestDB(t)
	db.Set("a", []byte("x"))
	db.Set("日本", []byte("y"))
	db.Set("zz", []byte("z"))
	db.Set("本", []byte("w"))
	// byte order: a < zz < 日本 < 本
	out := runREPL(t, db, "SCAN a 本\n")
	if w := displayWidth("日本", uax11.LatinContext); w != 4 {
		t.Fatalf("expected wide characters to count 2 en each, got width %d", w)
	}
	for _, want := range []string{"KEY  | VALUE\n", "a    | x\n", "zz   | z\n", "日本 | y\n", "(3 records)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected aligned line %q, got\n%s", want, out)
		}
	}
	if strings.Contains(out, "\n本") {
		t.Errorf("upper bound of SCAN must be exclusive, got\n%s", out)
	}
}

func TestDotCommand(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.QuickConfig(t, "csdb")
	defer teardown()
	//
	db := openTestDB(t)
	for _, k := range []string{"k1", "k2", "k3", "k4"} {
		db.Set(k, []byte(k))
	}
	out := runREPL(t, db, "DOT\n")
	if !strings.Contains(out, "strict digraph {") || !strings.Contains(out, "style=dashed") {
		t.Fatalf("expected DOT output with a leaf chain, got\n%s", out)
	}
	name := filepath.Join(t.TempDir(), "index.dot")
	runREPL(t, db, "DOT "+name+"\n")
	if data, err := os.ReadFile(name); err != nil || !bytes.Contains(data, []byte("digraph")) {
		t.Fatalf("expected DOT file, err=%v", err)
	}
}

func TestHTMLExport(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.QuickConfig(t, "csdb")
	defer teardown()
	//
	db := openTestDB(t)
	db.Set("pear", []byte("<green>"))
	db.Set("apple", []byte("red & sweet"))
	name := filepath.Join(t.TempDir(), "records.html")
	out := runREPL(t, db, "HTML "+name+"\n")
	if !strings.Contains(out, "wrote "+name) {
		t.Fatalf("expected confirmation, got\n%s", out)
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	doc, err := html.Parse(f)
	if err != nil {
		t.Fatalf("exported HTML does not parse: %v", err)
	}
	var cells []string
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Td && n.FirstChild != nil {
			cells = append(cells, n.FirstChild.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(doc)
	want := []string{"apple", "red & sweet", "pear", "<green>"}
	if strings.Join(cells, "|") != strings.Join(want, "|") {
		t.Fatalf("expected cells %v, got %v", want, cells)
	}
}

func TestSeed(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.QuickConfig(t, "csdb")
	defer teardown()
	//
	db := openTestDB(t)
	if err := seed(db, 100); err != nil {
		t.Fatal(err)
	}
	if db.Len() == 0 || db.Len() > 100 {
		t.Fatalf("unexpected number of seeded records: %d", db.Len())
	}
	if err := db.Check(); err != nil {
		t.Fatal(err)
	}
}
