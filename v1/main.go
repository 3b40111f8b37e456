package main

import "mustgather-discover/v1/cmd"

func main() {
	cmd.Execute()
}
