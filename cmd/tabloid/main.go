// Command tabloid manages the Tabloid blog database: schema migrations,
// tags, categories and comment moderation.
package main

import "os"

func main() {
	err := rootCmd.Execute()
	app.close()
	if err != nil {
		os.Exit(1)
	}
}
