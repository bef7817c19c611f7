// main.go
package main

import "automation-toolkit/cmd"

func main() {
	cmd.Execute()
}
