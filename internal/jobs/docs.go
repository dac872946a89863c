// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ShippingDigestJob - Runs every minute and logs a digest of paid
// invoices that are still waiting for shipment, oldest payment first.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getUnshippedInvoicesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The digest job logs query failures and keeps running; a transient database
// error only skips one digest.
package jobs
