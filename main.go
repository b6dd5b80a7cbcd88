/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/Blawness/pkp-studio/cmd"

func main() {
	cmd.Execute()
}
