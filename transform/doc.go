// Package transform builds the auxiliary graphs the flow and cut
// enumerators consume: the Even-Tarjan vertex-splitting reduction, and
// the residual and reverse residual graphs derived from a flow.
package transform
