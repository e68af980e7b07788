package main

import "github.com/damienborowski/AlphaFinity-v2/internal/cli"

func main() {
	cli.Execute()
}
