package main

import "github.com/jsphweid/eartrain/cmd"

func main() {
	cmd.Execute()
}
