// Command location-cli queries the bundled city, district and neighborhood hierarchy.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
