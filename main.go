package main

import "github.com/crystaldolphin/slackfmt/cmd"

func main() {
	cmd.Execute()
}
