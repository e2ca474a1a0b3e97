// Package material implements the node graph that describes a surface
// material and the two ways of evaluating it.
//
// # Data model
//
// A Graph is an arena of Nodes addressed by NodeID. Every node belongs to one
// variant of a closed set (Kind): constants, shading inputs, the numeric
// operators, the routing operators (lerp, blend, multiply) and BXDF-producing
// nodes whose property tables come from the registry. Each property slot holds
// a Binding: a literal Value or a reference to another node's output.
//
// # Validation
//
// Graph.Validate walks the sub-graph below a root once. It rejects unbound
// properties, dangling references, reference cycles, over-deep graphs and any
// numeric slot that reads a BXDF. A router that mixes BXDF sources becomes
// BXDF-typed itself, so the rule holds transitively.
//
// # Evaluation
//
// Pull evaluation (Material.Value) resolves a numeric value from the root.
// Push evaluation (Material.Scatter) starts at the root with a weight and
// forwards reduced weights through routers until BXDF nodes register their
// lobe in a bsdf.Accumulator. Both walks are read-only over a frozen graph,
// so one Material can be shared by every rendering goroutine.
package material
