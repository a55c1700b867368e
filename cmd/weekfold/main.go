package main

import "weekfold/cli"

func main() {
	cli.Execute()
}
