package main

import "github.com/OpenTraceLab/regtool/cmd/regtool/cmd"

func main() {
	cmd.Execute()
}
