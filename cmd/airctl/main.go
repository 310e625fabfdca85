// Command airctl scores profiles and manages the reference catalog from the shell.
package main

func main() {
	Execute()
}
