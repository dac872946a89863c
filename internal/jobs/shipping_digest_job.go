package jobs

import (
	"context"
	"log/slog"

	"store/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ShippingDigestJob periodically reports the shipping backlog.
// Every minute it lists paid invoices that have not shipped yet and logs
// them for the shipping desk, oldest payment first.
type ShippingDigestJob struct {
	handler queries.GetUnshippedInvoicesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShippingDigestJob creates a new job for reporting the shipping backlog.
func NewShippingDigestJob(handler queries.GetUnshippedInvoicesQueryHandler, logger *slog.Logger) *ShippingDigestJob {
	return &ShippingDigestJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "shipping_digest_job"),
	}
}

// Start begins the shipping digest job to run every minute.
func (j *ShippingDigestJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		invoices, err := j.handler.Handle(ctx, queries.NewGetUnshippedInvoicesQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Shipping digest job failed", "error", err)
			return
		}

		if len(invoices) == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Invoices awaiting shipment", "count", len(invoices))
		for _, inv := range invoices {
			j.logger.InfoContext(ctx, "Awaiting shipment",
				"invoiceId", inv.ID,
				"person", inv.PersonName,
				"paymentDate", inv.PaymentDate,
				"total", inv.Total,
				"country", inv.Country,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipping digest job started (running every minute)")
	return nil
}

// Stop stops the shipping digest job.
func (j *ShippingDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipping digest job stopped")
}
