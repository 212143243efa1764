package main

import "github.com/coolify-tools/coolify-ctl/cmd"

func main() {
	cmd.Execute()
}
