// Command l10nctl runs maintenance jobs of the l10n add-ons backend.
package main

func main() {
	Execute()
}
