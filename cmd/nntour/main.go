// Command nntour reads a distance-matrix instance and prints the
// nearest-neighbour tour together with its cost.
package main

var version string

func main() {
	Execute(version)
}
