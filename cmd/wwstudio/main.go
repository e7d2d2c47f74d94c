// wwstudio CLI - Command-line interface for WebWeaver Studio recordings
package main

import "github.com/webweaver/studio/pkg/cli"

func main() {
	cli.Execute()
}
