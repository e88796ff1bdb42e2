package main

import (
	"github.com/idemia/go-iso19794/cmd/isotool/cmd"
)

func main() {
	cmd.Execute()
}
