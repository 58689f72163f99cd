// htmlcheck checks a html document from a file or a url for elements matching
// a list of css selectors and prints which of them were found
//
//	htmlcheck --checks checks.json --file index.html
//	htmlcheck --checks checks.json --url https://www.example.com
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
