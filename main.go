package main

import (
	"bm_tag_tool/cmd"
)

func main() {
	cmd.Initialize()
	cmd.Execute()
}
