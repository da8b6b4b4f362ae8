// Package core turns CSV rows into JSON records and POSTs them to an endpoint.
//
// The package holds all domain logic independent of the command line. It can
// be driven by the CLI, by other tools, or by tests without modification.
//
// # Pipeline
//
// A run is a straight line through four steps:
//
//  1. [LoadMappingConfig] reads the ordered column-to-field rules (JSON, or
//     YAML for .yaml/.yml files)
//  2. [ReadRows] reads the CSV file and splits it into rows
//  3. [MapRow] coerces the addressed columns of one row into a [Record]
//  4. [Dispatcher.Dispatch] starts the POST for that record and returns
//
// [Service.Run] wires the steps together. Mapping stops at the first row that
// fails; rows before it have already been dispatched.
//
// # Mapping
//
// Each [MappingRule] names a zero-based CSV column, the JSON key and one of
// three data types:
//
//	[
//	  {"csvColumn": 0, "keyName": "name",   "dataType": "string"},
//	  {"csvColumn": 1, "keyName": "age",    "dataType": "number"},
//	  {"csvColumn": 2, "keyName": "active", "dataType": "bool"}
//	]
//
// The row "Alice,30,true" becomes {"name":"Alice","age":30,"active":true}.
//
// # Dispatch
//
// Requests run concurrently without a limit. Response bodies are written to
// stdout, failures to stderr; neither affects the run's outcome. The
// [InFlight] tracker lets the run wait for every request to settle.
//
// # Error Handling
//
// Every error type in errors.go except [DispatchError] is fatal to the run.
// [MapError] maps any error to a support code for structured logs:
//
//   - USE001: Bad command line
//   - FILE001, CFG001: Unreadable input or unparseable mapping
//   - MAP001-MAP003: Row coercion failures
//   - HTTP001, NET001-NET003: Per-request failures
package core
