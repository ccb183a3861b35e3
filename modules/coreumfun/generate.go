// Package coreumfun is the typed client of the coreum-fun lottery contract.
// The client itself is generated from interface.json; response types and
// contract errors are maintained by hand next to it.
package coreumfun

//go:generate go run ../../scripts/contract_gen --input interface.json --output coreumfun_gen.go --package coreumfun
