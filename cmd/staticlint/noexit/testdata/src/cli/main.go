package main

import (
	"os"
	exit "os"
)

func execute() {
	os.Exit(1)
}

func main() {
	execute()
	defer func() {
		os.Exit(2) // want "прямой вызов os.Exit в main запрещён"
	}()
	exit.Exit(3) // want "прямой вызов os.Exit в main запрещён"
}
