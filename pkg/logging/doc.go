// Package logging provides structured logging configuration for the studio.
//
// This package wraps log/slog to provide consistent logging across all
// studio components. It supports configurable log levels, text or JSON
// output, and teeing the stream to a log file alongside stderr.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("recording started", "name", "checkout-flow")
//	logger.Warn("skipping recording file", "path", path, "error", err)
//
// # Integration
//
// Components accept a *slog.Logger in their constructor. If no logger is
// provided, they fall back to logging.Nop().
package logging
