// Command phpast reads one or more PHP source files (or directories of
// them) and writes a human-readable dump of each parsed AST to
// standard output. It exits nonzero if any file produced a diagnostic
// of Error severity.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/orizon-lang/phpfront/internal/parser"
	"github.com/orizon-lang/phpfront/internal/phpversion"
	"github.com/orizon-lang/phpfront/internal/schema"
	"github.com/orizon-lang/phpfront/internal/watch"
)

func main() {
	var (
		minVersion string
		watchMode  bool
	)
	flag.StringVar(&minVersion, "min-php-version", "", "report syntax that requires a newer PHP version than this (e.g. 8.0)")
	flag.BoolVar(&watchMode, "watch", false, "re-dump a file whenever it changes on disk")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: phpast [-min-php-version 8.1] [-watch] file-or-dir...")
		os.Exit(2)
	}

	var constraint *phpversion.Constraint
	if minVersion != "" {
		c, err := phpversion.NewConstraint(minVersion)
		if err != nil {
			fmt.Fprintf(os.Stderr, "phpast: invalid -min-php-version %q: %v\n", minVersion, err)
			os.Exit(2)
		}
		constraint = c
	}

	files, err := collectPHPFiles(paths)
	if err != nil {
		fmt.Fprintln(os.Stderr, "phpast:", err)
		os.Exit(2)
	}

	if watchMode {
		runWatch(paths, files, constraint)
		return
	}

	if processAll(files, constraint) {
		os.Exit(1)
	}
}

// collectPHPFiles expands paths (files or directories) into a
// deduplicated list of file paths: each file argument as given (whatever
// its extension), and each directory's .php files in filepath.Walk's
// lexical order, in argument order. The combined list is not sorted.
func collectPHPFiles(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
			continue
		}
		err = filepath.Walk(p, func(walked string, wi os.FileInfo, werr error) error {
			if werr != nil {
				return werr
			}
			if wi.IsDir() {
				return nil
			}
			if strings.EqualFold(filepath.Ext(walked), ".php") && !seen[walked] {
				seen[walked] = true
				out = append(out, walked)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ioConcurrency bounds the number of files parsed in parallel to the
// available CPUs, the same guard cmd/orizon/main.go's own
// registry-fetch fan-out uses.
func ioConcurrency() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// processAll parses and dumps every file in files concurrently,
// bounded by ioConcurrency, and reports whether any file had an Error
// diagnostic.
func processAll(files []string, constraint *phpversion.Constraint) bool {
	sem := make(chan struct{}, ioConcurrency())
	g := new(errgroup.Group)
	var out sync.Mutex
	var hadError int32

	for _, path := range files {
		path := path
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := parseOne(path)
			if err != nil {
				out.Lock()
				fmt.Fprintf(os.Stderr, "phpast: %s: %v\n", path, err)
				out.Unlock()
				atomic.StoreInt32(&hadError, 1)
				return nil
			}

			out.Lock()
			printResult(path, result, constraint)
			out.Unlock()

			if result.res.Diagnostics.HasErrors() {
				atomic.StoreInt32(&hadError, 1)
			}
			return nil
		})
	}
	_ = g.Wait()
	return atomic.LoadInt32(&hadError) != 0
}

// fileResult wraps a parser.Result for one file; a thin wrapper rather
// than passing *parser.Result directly so future per-file bookkeeping
// (e.g. version-gated usages) has somewhere to attach.
type fileResult struct {
	res *parser.Result
}

func parseOne(path string) (*fileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res := parser.Parse(path, src)
	return &fileResult{res: res}, nil
}

func printResult(path string, fr *fileResult, constraint *phpversion.Constraint) {
	fmt.Printf("=== %s ===\n", path)
	fmt.Print(schema.Dump(fr.res.Program))

	for _, d := range fr.res.Diagnostics.Sorted() {
		fmt.Fprintf(os.Stderr, "%s:%s: %s [%s] %s\n", path, d.Primary, d.Severity, d.Code, d.Message)
	}

	if constraint == nil {
		return
	}
	for _, u := range phpversion.Detect(fr.res.Program) {
		if constraint.Supports(u.Feature) {
			continue
		}
		min := phpversion.MinVersion(u.Feature)
		fmt.Fprintf(os.Stderr, "%s:%s: warning: %s requires PHP %s, target is %s\n",
			path, u.Span, u.Feature, min, constraint)
	}
}

func runWatch(roots []string, files []string, constraint *phpversion.Constraint) {
	fw, err := watch.NewFSWatcher()
	if err != nil {
		log.Fatalf("phpast: watch: %v", err)
	}
	sw := watch.NewSourceWatcher(fw)
	defer sw.Close()

	dirs := make(map[string]bool)
	for _, r := range roots {
		info, err := os.Stat(r)
		if err != nil {
			continue
		}
		if info.IsDir() {
			dirs[r] = true
		} else {
			dirs[filepath.Dir(r)] = true
		}
	}
	for dir := range dirs {
		if err := sw.Add(dir); err != nil {
			log.Printf("phpast: watch %s: %v", dir, err)
		}
	}

	processAll(files, constraint)
	log.Printf("phpast: watching for changes, ctrl-c to stop")

	for {
		select {
		case path := <-sw.Changed():
			fr, err := parseOne(path)
			if err != nil {
				log.Printf("phpast: %s: %v", path, err)
				continue
			}
			printResult(path, fr, constraint)
		case err := <-sw.Errors():
			log.Printf("phpast: watch error: %v", err)
		}
	}
}
