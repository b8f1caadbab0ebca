// Package proto holds the gRPC bindings of imagegen.v1.ImageGenService.
package proto

//go:generate protoc -I.. --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative ../proto/imagegen.proto
