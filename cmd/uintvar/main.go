package main

import "uintvar/cmd/uintvar/cmd"

func main() {
	cmd.Execute()
}
