// Package services implements the driving port interfaces.
// Services contain the core pipeline logic: corpus normalization,
// quality scoring, terminology extraction and prompt assembly, plus
// the orchestrator that wires them together.
//
// All four components are pure, synchronous transforms over immutable
// inputs. The two independent analyses (quality, terminology) have no
// data dependency on each other and run concurrently in the pipeline.
package services
