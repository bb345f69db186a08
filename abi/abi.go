// Package abi bundles the registry contract's ABI JSON into the binary.
package abi

import _ "embed"

//go:embed registry.json
var Bundled []byte
