// embed.go must stay in the module root: //go:embed only reaches files
// below the declaring package's directory.
package main

import "embed"

//go:embed data/starfall.yaml
var dataFS embed.FS
