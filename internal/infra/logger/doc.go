// Package logger provides structured logging for silk, using the zap logging
// library with file rotation support.
//
// Console output is written to stderr so that command results printed to
// stdout remain machine-readable. File output rotates under
// ~/Library/Logs/silk by default.
package logger
