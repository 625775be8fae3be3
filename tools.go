//go:build tools

package main

// This file ensures that build-time dependencies are tracked in go.mod
// even though they're not imported in regular Go code.
// protoc plugin binaries are built from the versions pinned here.

import (
	_ "google.golang.org/grpc/cmd/protoc-gen-go-grpc"
	_ "google.golang.org/protobuf/cmd/protoc-gen-go"
)
