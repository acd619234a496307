package main

import "iconpack/cmd/iconpack-cli/cmd"

func main() {
	cmd.Execute()
}
