// Package notifications reacts to published events by e-mailing members.
package notifications

import (
	"context"
	"log/slog"

	"badminton-club/internal/domain/court"
	"badminton-club/internal/domain/user"
	"badminton-club/internal/infra"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/usecase/events"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Email struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, email Email) error
}

type UserLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type CourtLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
}

type Handlers struct {
	users  UserLoader
	courts CourtLoader
	sender Sender
	logger *slog.Logger
}

func NewHandlers(users UserLoader, courts CourtLoader, sender Sender, logger *slog.Logger) *Handlers {
	return &Handlers{
		users:  users,
		courts: courts,
		sender: sender,
		logger: logger,
	}
}

// OnBookingCreated sends the booking confirmation. A booking whose member or
// court has disappeared is acknowledged without sending anything.
func (h *Handlers) OnBookingCreated(ctx context.Context, e *events.BookingCreated) error {
	var (
		member *user.User
		booked *court.Court
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		member, err = h.users.FindByID(gctx, e.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		booked, err = h.courts.FindByID(gctx, e.CourtID)
		return err
	})
	if err := g.Wait(); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			h.logger.WarnContext(ctx, "skipping booking confirmation",
				"booking_id", e.BookingID, "error", err.Error())
			return nil
		}
		return errs.Wrap(err, "loading booking confirmation recipients")
	}

	body, err := renderBookingConfirmation(bookingConfirmation{
		FirstName: member.Name().First(),
		LastName:  member.Name().Last(),
		CourtName: booked.Name(),
		Date:      e.Date,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Amount:    formatAmount(e.TotalAmount),
	})
	if err != nil {
		return err
	}

	return h.send(ctx, Email{
		To:      member.Email().Value(),
		Subject: SubjectBookingConfirmation,
		Body:    body,
	})
}

func (h *Handlers) OnUserRegistered(ctx context.Context, e *events.UserRegistered) error {
	body, err := renderWelcome(welcome{
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		MembershipType: e.MembershipType,
	})
	if err != nil {
		return err
	}

	return h.send(ctx, Email{
		To:      e.Email,
		Subject: SubjectWelcome,
		Body:    body,
	})
}

func (h *Handlers) send(ctx context.Context, email Email) error {
	if err := h.sender.Send(ctx, email); err != nil {
		return errs.Wrapf(err, "sending %q", email.Subject)
	}
	h.logger.InfoContext(ctx, "notification sent", "subject", email.Subject)
	return nil
}
