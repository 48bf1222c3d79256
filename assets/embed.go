package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

// Words opens the built-in dictionary.
func Words() (fs.File, error) {
	return FS.Open("words.txt")
}

// Migrations returns the SQL migration files rooted at "sql".
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
