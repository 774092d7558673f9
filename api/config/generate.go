// Package config holds the Go bindings for the EVE device model schema.
package config

//go:generate protoc --proto_path=../../proto --go_out=. --go_opt=paths=source_relative devmodel.proto
