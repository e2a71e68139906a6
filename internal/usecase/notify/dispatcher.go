package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"ezrent/internal/domain/notification"
	"ezrent/internal/pkg/clock"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/pkg/metrics"
	"ezrent/internal/usecase/shared"
)

const (
	defaultSendTimeout = 30 * time.Second
	// statusUpdateTimeout bounds the job row update, which runs after the send deadline may have passed.
	statusUpdateTimeout = 5 * time.Second
)

var errDispatcherClosed = errs.New("dispatcher is shut down")

type Dispatcher struct {
	uow         shared.UnitOfWork
	mailer      Mailer
	renderer    Renderer
	clock       clock.Clock
	metrics     *metrics.Metrics
	sendTimeout time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(uow shared.UnitOfWork, mailer Mailer, renderer Renderer, clk clock.Clock, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		uow:         uow,
		mailer:      mailer,
		renderer:    renderer,
		clock:       clk,
		metrics:     m,
		sendTimeout: defaultSendTimeout,
	}
}

// WithSendTimeout sets how long one delivery may take. Non-positive values keep the default.
func (d *Dispatcher) WithSendTimeout(timeout time.Duration) *Dispatcher {
	if timeout > 0 {
		d.sendTimeout = timeout
	}
	return d
}

// Notify records the in-app notification for ev inside tx and, for events worth an email,
// renders the message and queues a job row in the same transaction. The email part is best
// effort: a missing recipient or a template failure is logged and the transition goes on
// without a job row.
func (d *Dispatcher) Notify(ctx context.Context, tx shared.Tx, ev Event) (*Outbound, error) {
	now := d.clock.Now()
	n := notification.NewForTransition(ev.Booking, ev.From, ev.To, ev.Recipient, ev.RecipientRole, ev.Item, now)
	if err := tx.Notifications().Create(ctx, tx.DB(), n); err != nil {
		return nil, errs.Wrap(err, "create notification")
	}
	out := &Outbound{NotificationID: n.ID()}

	if !notification.ShouldEmail(ev.To) {
		return out, nil
	}

	email, ok := d.compose(ctx, tx, ev, n)
	if !ok {
		return out, nil
	}
	payload, err := json.Marshal(email)
	if err != nil {
		return nil, errs.Wrap(err, "encode email job payload")
	}
	jobID, err := tx.Jobs().CreateJob(ctx, tx.DB(), JobKindEmail, topic(ev.To), payload, now)
	if err != nil {
		return nil, errs.Wrap(err, "queue email job")
	}
	out.JobID = jobID
	out.Email = email
	return out, nil
}

func (d *Dispatcher) compose(ctx context.Context, tx shared.Tx, ev Event, n *notification.Notification) (Email, bool) {
	b := ev.Booking
	recipient, err := tx.Reads().UserByID(ctx, ev.Recipient)
	if err != nil {
		slog.Warn("email skipped, recipient not loaded", "booking_id", b.ID(), "recipient_id", ev.Recipient, "error", err.Error())
		return Email{}, false
	}

	subject, html, err := d.renderer.RenderBooking(BookingEmail{
		BookingID:     b.ID().String(),
		RecipientName: recipient.Name,
		Headline:      n.Payload().Message,
		Product:       ev.Item.Title,
		Status:        ev.To.String(),
		PickupDate:    b.PickupDate(),
		ReturnDate:    b.ReturnDate(),
		PaymentMethod: b.PaymentMethod().String(),
		PricePerDay:   b.PricePerDay(),
		Days:          b.Days(),
		Total:         b.TotalAmount(),
		Commission:    b.Commission(),
		OwnerPayout:   b.OwnerPayout(),
	})
	if err != nil {
		slog.Warn("email skipped, template failed", "booking_id", b.ID(), "status", ev.To.String(), "error", err.Error())
		return Email{}, false
	}
	return Email{To: recipient.Email, Subject: subject, HTML: html}, true
}

// Deliver sends out in the background. Must only be called after the transaction that
// produced out has committed. Failures are logged and recorded on the job row.
func (d *Dispatcher) Deliver(out *Outbound) {
	if out == nil {
		return
	}
	d.metrics.IncNotification("in_app")
	if !out.HasEmail() {
		return
	}
	d.metrics.IncNotification("email")

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		slog.Warn("email dropped, dispatcher closed", "job_id", out.JobID)
		d.recordResult(out, errDispatcherClosed)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
		err := d.mailer.Send(ctx, out.Email)
		cancel()
		d.recordResult(out, err)
	}()
}

func (d *Dispatcher) recordResult(out *Outbound, sendErr error) {
	status := JobStatusSent
	var lastError *string
	if sendErr != nil {
		status = JobStatusFailed
		msg := sendErr.Error()
		lastError = &msg
		slog.Error("email delivery failed", "job_id", out.JobID, "to", out.Email.To, "error", msg)
	}
	d.metrics.IncEmailDelivery(status)

	ctx, cancel := context.WithTimeout(context.Background(), statusUpdateTimeout)
	defer cancel()
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Jobs().UpdateJobStatus(ctx, tx.DB(), out.JobID, status, lastError)
	})
	if err != nil {
		slog.Warn("failed to update email job status", "job_id", out.JobID, "status", status, "error", err.Error())
	}
}

// Shutdown stops accepting deliveries and waits for in-flight ones or ctx, whichever is first.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "waiting for email deliveries")
	}
}
