package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/axiomhq/koremutake"
)

// mode selects the direction of a conversion.
type mode string

const (
	modeAuto   mode = "auto"   // decimal digits are encoded, anything else decoded
	modeEncode mode = "encode" // integer -> koremutake
	modeDecode mode = "decode" // koremutake -> integer
)

func parseMode(s string) (mode, error) {
	switch m := mode(strings.ToLower(s)); m {
	case modeAuto, modeEncode, modeDecode:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want auto, encode or decode)", s)
}

func (m mode) next() mode {
	switch m {
	case modeAuto:
		return modeEncode
	case modeEncode:
		return modeDecode
	default:
		return modeAuto
	}
}

type options struct {
	mode mode
	pad  int // minimum syllables when encoding
}

func main() {
	var (
		modeName    = flag.String("mode", string(modeAuto), "Conversion: auto, encode or decode")
		pad         = flag.Int("pad", 0, "Minimum number of syllables when encoding")
		verbose     = flag.Bool("v", false, "Log every conversion to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Usage = usage
	flag.Parse()

	m, err := parseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	opts := options{mode: m, pad: *pad}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	if *interactive {
		if err := runInteractive(opts, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var in io.Reader
	if flag.NArg() == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			usage()
			os.Exit(2)
		}
		in = os.Stdin
	}

	failed, err := run(opts, flag.Args(), in, os.Stdout, os.Stderr, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: koremutake [-mode auto|encode|decode] [-pad N] [-v] value...")
	fmt.Fprintln(os.Stderr, "       <values> | koremutake [flags]   (one value per line)")
	fmt.Fprintln(os.Stderr, "       koremutake -i                   (interactive mode)")
	flag.PrintDefaults()
}

// run converts every value in args, then every non-blank line of in (if not
// nil), writing one result per line to out. Conversion failures are reported
// on errOut and counted; processing continues with the next value. The
// returned error is reserved for failures reading in or writing out.
func run(opts options, args []string, in io.Reader, out, errOut io.Writer, logger *zap.Logger) (int, error) {
	errStyle := lipgloss.NewRenderer(errOut).NewStyle().
		Foreground(lipgloss.Color("#FF6B6B"))

	failed := 0
	emit := func(value string) error {
		result, err := convert(opts, value)
		if err != nil {
			failed++
			logger.Debug("conversion failed", zap.String("input", value), zap.Error(err))
			_, werr := fmt.Fprintln(errOut, errStyle.Render("Error: "+err.Error()))
			return werr
		}
		logger.Debug("converted", zap.String("input", value), zap.String("output", result))
		_, werr := fmt.Fprintln(out, result)
		return werr
	}

	for _, arg := range args {
		if err := emit(arg); err != nil {
			return failed, err
		}
	}
	if in == nil {
		return failed, nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := emit(line); err != nil {
			return failed, err
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("read input: %w", err)
	}
	return failed, nil
}

// convert applies opts to a single value.
func convert(opts options, value string) (string, error) {
	value = strings.TrimSpace(value)
	m := opts.mode
	if m == modeAuto {
		m = modeDecode
		if isInteger(value) {
			m = modeEncode
		}
	}

	if m == modeEncode {
		n, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return "", fmt.Errorf("%q is not a decimal integer", value)
		}
		return koremutake.EncodePadded(n, opts.pad)
	}

	n, err := koremutake.Decode(value)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

// isInteger reports whether s is an optionally signed run of decimal digits.
func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
