// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"thumbc/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the thumbc REPL, %s!\n", currentUser.Username)
	fmt.Println("Type a function such as `int main(){ return 42; }`.")
	repl.Start(os.Stdin, os.Stdout)
}
