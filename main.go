package main

import "github.com/smarthome-sdk/devicetool/pkg/cli"

func main() {
	cli.Execute()
}
