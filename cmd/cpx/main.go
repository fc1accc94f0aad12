package main

import "github.com/LowerPlane/OpenCPX/internal/cli"

func main() {
	cli.Execute()
}
