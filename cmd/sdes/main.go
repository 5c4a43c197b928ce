// Command sdes is an interactive classroom driver for the S-DES cipher:
// encryption with step traces, ASCII mode, brute-force key search and
// collision analysis.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"sdes/config"
	"sdes/logger"
	"sdes/sdes"
)

func main() {
	cfg := config.Load()

	workers := flag.Int("workers", cfg.Search.Workers, "brute-force worker count")
	serial := flag.Bool("serial", !cfg.Search.Parallel, "scan the key space with a single worker")
	outDir := flag.String("out", cfg.Output.Dir, "directory for CSV exports")
	debug := flag.Bool("debug", cfg.Debug, "enable debug logging")
	flag.Parse()

	cfg.Search.Workers = *workers
	cfg.Search.Parallel = !*serial
	cfg.Output.Dir = *outDir
	cfg.Debug = *debug

	log := logger.New(os.Stderr, "sdes", cfg.Debug)
	log.Debug("configuration", cfg.String())

	a := newApp(cfg, log, os.Stdin, os.Stdout, isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
	a.run()
}

type app struct {
	cfg         *config.Config
	log         *logger.Logger
	cipher      *sdes.Cipher
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
	eof         bool
}

func newApp(cfg *config.Config, log *logger.Logger, in io.Reader, out io.Writer, interactive bool) *app {
	return &app{
		cfg:         cfg,
		log:         log,
		cipher:      sdes.NewCipher(),
		in:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
	}
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt reads one line, returning def when the line is empty or input ended.
func (a *app) prompt(label, def string) string {
	if a.interactive {
		if def != "" {
			a.printf("%s (default %s): ", label, def)
		} else {
			a.printf("%s: ", label)
		}
	}

	if a.eof || !a.in.Scan() {
		a.eof = true
		return def
	}

	line := strings.TrimSpace(a.in.Text())
	if line == "" {
		return def
	}
	return line
}

func (a *app) confirm(label string, def bool) bool {
	d := "n"
	if def {
		d = "y"
	}
	answer := a.prompt(label+" (y/n)", d)
	return answer == "y" || answer == "Y" || answer == "yes"
}

func (a *app) run() {
	for {
		choice := a.menu()
		if a.eof && choice == "" {
			return
		}

		switch choice {
		case "1":
			a.basicDemo()
		case "2":
			a.crossDemo()
		case "3":
			a.asciiDemo()
		case "4":
			a.bruteForceDemo()
		case "5":
			a.collisionDemo()
		case "6":
			a.printf("Bye.\n")
			return
		default:
			a.printf("Invalid choice, try again.\n")
		}

		if a.eof {
			return
		}
		if a.interactive {
			a.prompt("\nPress Enter to return to the menu", "")
		}
	}
}

func (a *app) menu() string {
	if a.interactive {
		a.printf("\n====== S-DES classroom demo ======\n")
		a.printf("1) Basic encryption / decryption\n")
		a.printf("2) Cross-check between two parties\n")
		a.printf("3) ASCII mode\n")
		a.printf("4) Brute-force key search (one or more pairs)\n")
		a.printf("5) Collision analysis\n")
		a.printf("6) Exit\n")
	}
	return a.prompt("Choose (1-6)", "")
}
