package main

import (
	"fmt"
	"os"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
