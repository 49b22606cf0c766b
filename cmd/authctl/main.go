package main

import "github.com/adeyemio/simple-auth-api/internal/cli/cmd"

func main() {
	cmd.Execute()
}
