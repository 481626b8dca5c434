package main

import "github.com/triplinehq/tripline/cmd"

func main() {
	cmd.Execute()
}
