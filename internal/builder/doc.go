/*
Package builder is the bridge between the static configuration model (defined
in the 'config' package) and the material engine (the 'material' package).

The primary artifact produced by this package is a validated, frozen
*material.Material per declared material.

Construction is a multi-phase process:

 1. Node Creation: every node declaration is resolved to a kind, first among
    the built-in operators and then among the BXDF kinds held by the registry,
    and added to a fresh material.Graph. Creating all nodes first lets a
    property reference a node declared further down the file.

 2. Property Binding: each declared property becomes either a literal binding
    or a reference to another node, optionally narrowed to one channel.
    Properties left out keep the defaults of their kind.

 3. Validation: the graph is handed to material.New, which walks it from the
    output node once and rejects structural and type errors before freezing it.

Errors from all phases are joined, so one run reports every broken material.
*/
package builder
