package main

import "github.com/oshokin/moore-mealy/cmd/moore2mealy/cmd"

func main() {
	cmd.Execute()
}
