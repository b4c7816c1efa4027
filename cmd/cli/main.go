package main

import "github.com/minaorangina/ludo/cli"

func main() {
	cli.Execute()
}
