package main

import "github.com/oshokin/alarm-clockd/cmd/alarm-updater/cmd"

func main() {
	cmd.Execute()
}
