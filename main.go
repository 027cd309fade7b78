package main

import "github.com/nikogura/ats-scorer/cmd"

func main() {
	cmd.Execute()
}
