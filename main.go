package main

import "github.com/mj1618/selection-lens/cmd"

func main() {
	cmd.Execute()
}
