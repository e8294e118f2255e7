// Command pamstim writes PWL stimulus files for PAM link simulation.
package main

import "github.com/katalvlaran/pamstim/cmd/pamstim/cmd"

func main() {
	cmd.Execute()
}
