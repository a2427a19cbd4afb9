package main

import (
	"aaschema/cmd"
)

func main() {
	cmd.Execute()
}
