package main

import (
	"os"

	"adminboard/internal/dashboard"
)

func main() {
	os.Exit(dashboard.Execute())
}
