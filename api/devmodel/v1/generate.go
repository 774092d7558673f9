// Package devmodelv1 holds the Go bindings for the AdapterService API.
package devmodelv1

//go:generate protoc --proto_path=../../../proto --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative devmodel/v1/adapter_service.proto
