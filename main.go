package main

import "time-management.com/time-management/cmd"

func main() {
	cmd.Execute()
}
