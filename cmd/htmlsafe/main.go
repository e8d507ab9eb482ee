package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	htmlsafe "github.com/reoring/htmlsafe"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "escape":
		transformCmd(os.Args[2:], false)
	case "unescape":
		transformCmd(os.Args[2:], true)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "htmlsafe CLI\n\nUsage:\n  htmlsafe escape [-in file] [-o file] [-bytes] [-config cfg.yaml] [-max-bytes n]\n  htmlsafe unescape [-in file] [-o file] [-bytes] [-config cfg.yaml] [-max-bytes n]\n\nNotes:\n  - Reads stdin and writes stdout by default.\n  - -bytes uses the reduced byte-level entity set.")
}

func transformCmd(args []string, unescape bool) {
	name := "escape"
	if unescape {
		name = "unescape"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	var in string
	var out string
	var byteMode bool
	var configPath string
	var maxBytes int64
	fs.StringVar(&in, "in", "", "input filename (default: stdin)")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	fs.BoolVar(&byteMode, "bytes", false, "byte-level transform with the reduced entity set")
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.Int64Var(&maxBytes, "max-bytes", 0, "reject inputs above this size (overrides config)")
	_ = fs.Parse(args)

	cfg := htmlsafe.Config{}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			fatalf("reading config: %v", err)
		}
		if cfg, err = htmlsafe.LoadConfig(data); err != nil {
			fatalf("%v", err)
		}
	}
	if maxBytes > 0 {
		cfg.MaxInputBytes = maxBytes
	}
	g := cfg.Guard()

	input, err := readInput(in)
	if err != nil {
		fatalf("reading input: %v", err)
	}

	var result []byte
	if byteMode {
		if unescape {
			result, err = g.UnescapeBytes(input)
		} else {
			result, err = g.EscapeBytes(input)
		}
	} else {
		var s string
		if unescape {
			s, err = g.Unescape(string(input))
		} else {
			s, err = g.EscapeText(input)
		}
		result = []byte(s)
	}
	if err != nil {
		fatalf("%v", err)
	}

	if err := writeOutput(out, result); err != nil {
		fatalf("writing output: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
