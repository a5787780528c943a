package main

import "github.com/alexiusacademia/gowind/cmd"

func main() {
	cmd.Execute()
}
