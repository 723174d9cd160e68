// Command anagram generates anagram puzzles and datasets, verifies answers and
// decomposes letter sets into dictionary words.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
