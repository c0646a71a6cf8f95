// Package agentpb holds the messages and gRPC service of the edge agent
// (package AWS.SageMaker.Edge in agent.proto).
package agentpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative agent.proto
