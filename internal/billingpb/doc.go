// Package billingpb holds the generated gRPC contract of the Billing service
// spoken between the scanner client and the sandbox purchase server, plus the
// string values its fields carry.
package billingpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative billing.proto
