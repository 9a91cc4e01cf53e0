// Command aoc runs one Advent of Code 2022 solver against an input file
// and prints the answers, one part per line.
//
// Usage:
//
//	aoc -day N input.txt
//
// Exit status is 0 on success, 2 for usage errors, 1 when the solver
// fails.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/adventkit/aoc2022/days"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("aoc: ")

	day := flag.Int("day", 0, "puzzle day to solve (1-25)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s -day N input.txt\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "solved days: %v\n", days.Days())
	}
	flag.Parse()

	if *day == 0 || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	result, err := days.Run(*day, flag.Arg(0))
	if errors.Is(err, days.ErrUnknownDay) {
		log.Printf("no solver for day %d (solved days: %v)", *day, days.Days())
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.PartA)
	if result.PartB != "" {
		fmt.Println(result.PartB)
	}
}
