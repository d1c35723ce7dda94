package main

import (
	"embed"

	"github.com/gridwalk/aoc"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
