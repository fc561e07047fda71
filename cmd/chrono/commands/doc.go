// Package commands defines the chrono CLI and wires dependencies for subcommands.
//
// Commands
//
//   - date          Inspect a calendar date (epoch day, weekday, ISO week)
//   - period        Parse and normalize ISO-8601 periods
//   - zone offset   Resolve instants and local date-times against zone rules
//   - tzdb compile  Compile YAML zone definitions into an archive or database
//   - tzdb inspect  Summarize a compiled zone data set
//
// # Implementation
//
// The root command builds the zone-data source and registry before any
// subcommand runs, so handlers share one lazily-loaded registry. Date and
// period commands are pure computation and never touch the zone data.
package commands
