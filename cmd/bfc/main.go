// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	bfio "github.com/ezrec/bfc/io"
	"github.com/ezrec/bfc/ir"
	"github.com/ezrec/bfc/macro"
	"github.com/ezrec/bfc/translate"
	"github.com/ezrec/bfc/vm"
)

var f = translate.From

// Exit status codes.
const (
	EXIT_OK    = 0 // Program ran to completion.
	EXIT_FAIL  = 1 // File, translation, or runtime error.
	EXIT_USAGE = 2 // Bad command line, including a missing source file.
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "bfc: ", 0)

	var tapeSize int
	var verbose bool
	var expand bool
	var listing bool
	var eof string

	ex := &macro.Expander{}

	flags := flag.NewFlagSet("bfc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVar(&tapeSize, "t", vm.TAPE_SIZE, f("Tape size, in cells"))
	flags.BoolVar(&verbose, "v", false, f("Verbose mode"))
	flags.BoolVar(&expand, "x", false, f("Expand $(...) expressions before translation; error positions then refer to the expanded source"))
	flags.BoolVar(&listing, "l", false, f("List the translated program, do not execute"))
	flags.StringVar(&eof, "eof", bfio.EOF_ERROR.String(), f("Input at end of file: error, zero, or max"))
	flags.Func("D", f("Define NAME=VALUE for $(...) expressions"), ex.SetDefine)
	flags.Usage = func() {
		logger.Print(f("usage: bfc [flags] FILE"))
		flags.PrintDefaults()
	}

	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return EXIT_OK
	}
	if err != nil {
		return EXIT_USAGE
	}

	if flags.NArg() != 1 {
		logger.Print(f("expected one source file, got %s arguments", strconv.Itoa(flags.NArg())))
		flags.Usage()
		return EXIT_USAGE
	}

	if tapeSize <= 0 {
		logger.Print(f("-t %s: %v", strconv.Itoa(tapeSize), vm.ErrTapeSize))
		return EXIT_USAGE
	}

	policy, err := bfio.ParseEOF(eof)
	if err != nil {
		logger.Print(f("-eof %v: %v", eof, err))
		return EXIT_USAGE
	}

	path := flags.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Print(err)
		return EXIT_FAIL
	}

	source := string(data)
	if expand {
		ex.Verbose = verbose
		ex.Logger = logger
		source, err = ex.Expand(source)
		if err != nil {
			logger.Printf("%v: %v", path, err)
			return EXIT_FAIL
		}
		// Translation and runtime positions index the expanded text.
		path += f(" (expanded)")
	}

	prog, err := ir.Parse(source)
	if err != nil {
		logger.Printf("%v: %v", path, err)
		return EXIT_FAIL
	}

	if listing {
		err = prog.Listing(stdout)
		if err != nil {
			logger.Print(err)
			return EXIT_FAIL
		}
		return EXIT_OK
	}

	con := &bfio.Console{Input: stdin, Output: stdout}
	machine, err := vm.NewFromIR(prog, vm.Options{
		TapeSize: tapeSize,
		Output:   con,
		Input:    bfio.WithEOF(con, policy),
	})
	if err != nil {
		logger.Printf("%v: %v", path, err)
		return EXIT_FAIL
	}
	machine.Verbose = verbose
	machine.Logger = logger

	err = machine.RunContext(ctx)
	flushErr := con.Flush()
	if err != nil {
		logger.Printf("%v: %v", path, err)
		if verbose {
			logger.Print("\n" + machine.String())
		}
		return EXIT_FAIL
	}
	if flushErr != nil {
		logger.Print(flushErr)
		return EXIT_FAIL
	}

	return EXIT_OK
}
