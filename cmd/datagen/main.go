package main

import "github.com/mvp-joe/datagen/internal/cli"

func main() {
	cli.Execute()
}
