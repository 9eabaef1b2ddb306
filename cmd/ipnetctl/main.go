// Binary ipnetctl
package main

import "github.com/mkovalev/ipnetwork/cmd"

func main() {
	cmd.Execute()
}
