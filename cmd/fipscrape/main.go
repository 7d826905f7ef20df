package main

import "github.com/padelstats/fipscrape/internal/cli"

func main() {
	cli.Execute()
}
