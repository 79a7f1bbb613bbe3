package main

import "gitbuddy/cmd/gitbuddy/root"

func main() {
	root.Execute()
}
