package main

import "github.com/docmap-io/pdf2graph/internal/cli"

func main() {
	cli.Execute()
}
