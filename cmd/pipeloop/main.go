// Command pipeloop answers both pipe-maze questions for an input file.
//
//	pipeloop solve -i input.txt
//	pipeloop steps -i -      < input.txt
//	pipeloop render -i input.txt --config pipeloop.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
