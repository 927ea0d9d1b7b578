package main

import "github.com/basilelt/reader2pdf/cmd"

func main() {
	cmd.Execute()
}
