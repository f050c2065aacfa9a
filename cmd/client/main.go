package main

import "sitecms/cmd/client/cmd"

func main() {
	cmd.Execute()
}
