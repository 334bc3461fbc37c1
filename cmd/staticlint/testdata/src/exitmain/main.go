package main

import "os"

func main() {
	defer cleanup()
	os.Exit(1) // want "os.Exit call is forbidden in main function"
}

func cleanup() {
	os.Exit(2)
}
