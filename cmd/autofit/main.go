// Command autofit fits content into containers and replays layout scenarios.
package main

import "github.com/go-drift/autofit/cmd/autofit/cmd"

func main() {
	cmd.Execute()
}
