package main

import "github.com/theirongolddev/flightpath/cmd"

func main() {
	cmd.Execute()
}
