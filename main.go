package main

import "github.com/hyde-project/hydeshell/cmd"

func main() {
	cmd.Execute()
}
