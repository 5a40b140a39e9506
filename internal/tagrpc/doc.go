// Package tagrpc defines the usertags.TagService gRPC contract: message
// types, the service descriptor, the server interface and a client stub.
//
// Messages are plain Go structs encoded as JSON. The codec is registered
// with grpc's encoding registry under the "json" content-subtype; the client
// stub selects it on every call and the server picks it from the request's
// content-type.
package tagrpc
