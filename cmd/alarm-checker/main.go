package main

import "github.com/oshokin/alarm-clockd/cmd/alarm-checker/cmd"

func main() {
	cmd.Execute()
}
