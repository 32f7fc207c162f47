/*
Copyright © 2025 tieubaoca
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/tieubaoca/memobox-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// The .env file is optional; built-in defaults cover everything.
	godotenv.Load()
}
