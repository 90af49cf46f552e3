// Package datagraph provides the value graph at the heart of the marshalling
// pipeline:
//
// - the canonical containers (Record, Object, Assoc) and the capability
// interfaces host values can implement (Structured, Serializable, ArrayCopier)
// - the classifier (Reveal, IsObject, IsArray, IsEmpty)
// - the Visitor contract and the depth-first Traverser
// - JSON parsing into ordered objects with duplicate-key/depth/size enforcement
// - reflective export of Go structs into records
//
// Design policy:
// - Keep the graph model in the root package; visitors live under visitor/,
// wire formats under reader/, writer/ and transformer/, and the facade under
// processor/.
// - The traverser never fails; callers that need a container root check it
// with RequireContainer and report ErrInvalidData.
//
// Typical usage:
//
//	v, err := datagraph.ParseJSON(data, datagraph.DefaultParseOpt())
//	rec := visitor.NewRecordVisitor(nil)
//	datagraph.Traverse(v, rec)
//	out, err := rec.Object()
package datagraph
