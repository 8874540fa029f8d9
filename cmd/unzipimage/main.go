package main

import (
	"fmt"
	"os"

	"github.com/dargueta/rlezoo/codecs"
	"github.com/dargueta/rlezoo/utilities/compression"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(
			os.Stderr,
			"Uncompress a file using gzip and an RLE variant.\n"+
				"Usage: %s variant input-file output-file\nVariants: %v\n",
			os.Args[0],
			codecs.Names())
		os.Exit(1)
	}

	codec, err := codecs.Get(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	sourceFilePath := os.Args[2]
	outputFilePath := os.Args[3]

	sourceFile, errSrc := os.Open(sourceFilePath)
	if errSrc != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to open file for reading: `%v`: %s\n", sourceFilePath, errSrc)
		os.Exit(1)
	}
	defer sourceFile.Close()

	outFile, errOut := os.Create(outputFilePath)
	if errOut != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to open file for writing: `%v`: %s\n", outputFilePath, errOut)
		os.Exit(1)
	}
	defer outFile.Close()

	nWritten, err := compression.DecompressImage(codec, sourceFile, outFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error expanding file: %s\n", err)
		os.Exit(2)
	}

	fmt.Printf("Expanded input file to %d bytes.\n", nWritten)
}
