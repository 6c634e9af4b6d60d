// Command ghostline runs the completion backend and a terminal editor with
// inline AI suggestions.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
