package main

import "github.com/aerokits/cfdpp/cmd"

func main() {
	cmd.Execute()
}
