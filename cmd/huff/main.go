// Command huff compresses or decompresses a single file.
//
//	usage: huff [-d] input output
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/quarkleaf/huff"
)

func main() {
	decompress := flag.Bool("d", false, "decompress input instead of compressing it")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-d] input output\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	inPath, outPath := flag.Arg(0), flag.Arg(1)
	if err := run(inPath, outPath, *decompress); err != nil {
		log.Fatal(err)
	}

	inSize, outSize := fileSize(inPath), fileSize(outPath)
	fmt.Printf("%s (%d bytes) -> %s (%d bytes)\n", inPath, inSize, outPath, outSize)
}

func run(inPath, outPath string, decompress bool) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if decompress {
		err = huff.Decompress(in, out)
	} else {
		err = huff.Compress(in, out)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
