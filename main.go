package main

import "github.com/swiftguard/swiftguard/cmd"

func main() {
	cmd.Execute()
}
