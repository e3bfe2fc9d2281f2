package main

import "github.com/PolarWolf314/walletvault/cmd"

func main() {
	cmd.Execute()
}
