package intents

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var bundled embed.FS

// BundledFS returns the intent files compiled into the binary.
func BundledFS() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
