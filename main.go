package main

import "volumizer/cmd"

func main() {
	cmd.Execute()
}
