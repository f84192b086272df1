package main

import "github.com/oshokin/alarm-clockd/cmd/alarm-packager/cmd"

func main() {
	cmd.Execute()
}
