package main

import "github.com/llehouerou/lrctoolbox/internal/cli"

func main() {
	cli.Execute()
}
