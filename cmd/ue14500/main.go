// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command ue14500 assembles, disassembles, and lists programs for the
// UE14500 processor.
//
// Usage:
//
//	ue14500 asm FROM.asm INTO.bin
//	ue14500 dsm FROM.bin INTO.asm
//	ue14500 list FROM.bin
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/ezrec/ue14500/asm"
	"github.com/ezrec/ue14500/listing"
	"github.com/ezrec/ue14500/tape"
	"github.com/ezrec/ue14500/word"
)

const (
	ASM_SUFFIX = ".asm"
	BIN_SUFFIX = ".bin"
)

func usage() {
	log.Fatalf("usage: %v [asm FROM%v INTO%v | dsm FROM%v INTO%v | list FROM%v]",
		os.Args[0], ASM_SUFFIX, BIN_SUFFIX, BIN_SUFFIX, ASM_SUFFIX, BIN_SUFFIX)
}

func checkSuffix(path string, suffix string) {
	if !strings.HasSuffix(path, suffix) {
		log.Fatalf("%v: expected a '%v' file", path, suffix)
	}
}

func readAssembly(path string) word.Nodes {
	checkSuffix(path, ASM_SUFFIX)

	text, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	nodes, err := asm.Parse(string(text))
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	return nodes
}

func readBinary(path string) word.Words {
	checkSuffix(path, BIN_SUFFIX)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	return tape.Unmarshal(data)
}

func writeFile(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
	}

	switch args[0] {
	case "asm":
		if len(args) != 3 {
			usage()
		}
		checkSuffix(args[2], BIN_SUFFIX)
		nodes := readAssembly(args[1])
		listing.Fprint(os.Stdout, nodes.Words())
		writeFile(args[2], tape.Marshal(nodes))
	case "dsm":
		if len(args) != 3 {
			usage()
		}
		checkSuffix(args[2], ASM_SUFFIX)
		words := readBinary(args[1])
		writeFile(args[2], []byte(asm.Render(words.Nodes())))
	case "list":
		if len(args) != 2 {
			usage()
		}
		listing.Fprint(os.Stdout, readBinary(args[1]))
	default:
		usage()
	}
}
