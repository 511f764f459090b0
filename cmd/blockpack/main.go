package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/blockpack/blockpack"
	"github.com/blockpack/blockpack/codec"
	"github.com/blockpack/blockpack/config"
)

var (
	threads    = pflag.IntP("threads", "t", runtime.NumCPU(), "number of worker goroutines")
	codecName  = pflag.StringP("codec", "c", blockpack.DefaultCodec, "compression codec ("+strings.Join(codec.Names(), ", ")+")")
	blockSize  = pflag.IntP("block-size", "b", blockpack.DefaultBlockSize, "bytes per block")
	configPath = pflag.String("config", "", "YAML file with default settings")
)

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input> <output>\n", os.Args[0])
		pflag.PrintDefaults()
	}
}

func main() {
	log.SetFlags(0)

	pflag.Parse()

	if pflag.NArg() != 2 {
		pflag.Usage()
		os.Exit(1)
	}

	input, output := pflag.Arg(0), pflag.Arg(1)

	opts := blockpack.Options{
		BlockSize: *blockSize,
		Threads:   *threads,
		Codec:     *codecName,
	}

	// Settings from the defaults file apply only where no explicit
	// flag was passed.
	if *configPath != "" {
		defaults, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}

		if defaults.BlockSize != 0 && !pflag.CommandLine.Changed("block-size") {
			opts.BlockSize = defaults.BlockSize
		}
		if defaults.Threads != 0 && !pflag.CommandLine.Changed("threads") {
			opts.Threads = defaults.Threads
		}
		if defaults.Codec != "" && !pflag.CommandLine.Changed("codec") {
			opts.Codec = defaults.Codec
		}
	}

	comp, err := blockpack.New(opts)
	if err != nil {
		pflag.Usage()
		log.Fatal(err)
	}

	start := time.Now()

	if err := comp.CompressFile(input, output); err != nil {
		log.Fatal(err)
	}

	log.Printf("compression finished in %.2f seconds", time.Since(start).Seconds())
	log.Printf("compressed file saved as: %s", output)
}
