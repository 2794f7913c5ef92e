// Command tuta-export downloads a Tutanota mailbox folder to local EML files.
package main

func main() {
	Execute()
}
