package main

import "gastos/cmd/gastos/cmd"

func main() {
	cmd.Execute()
}
