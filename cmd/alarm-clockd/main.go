package main

import "github.com/oshokin/alarm-clockd/cmd/alarm-clockd/cmd"

func main() {
	cmd.Execute()
}
