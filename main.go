package main

import "github.com/hostdni/host-aggregator/internal/cmd"

func main() {
	cmd.Execute()
}
