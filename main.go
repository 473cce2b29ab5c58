package main

import "github.com/argonlab/timefreq/cmd"

func main() {
	cmd.Execute()
}
