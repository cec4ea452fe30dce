// Package proto holds the vaultd gRPC contract generated from vault.proto.
// JSON names of the fields follow protoc's lowerCamelCase mapping, so
// protojson output matches the browser message contract.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative vault.proto
