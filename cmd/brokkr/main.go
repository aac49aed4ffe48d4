/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/brokkr/cmd/brokkr/cmd"

func main() {
	cmd.Execute()
}
