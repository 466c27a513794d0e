package main

import "eventrsvp/cmd/server/cmd"

func main() {
	cmd.Execute()
}
