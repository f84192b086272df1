package main

import "github.com/oshokin/alarm-clockd/cmd/alarmctl/cmd"

func main() {
	cmd.Execute()
}
