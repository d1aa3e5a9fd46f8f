package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thenoetrevino/aftercare/internal/database"
	"github.com/thenoetrevino/aftercare/internal/models"
)

// Service defines all booking-related business operations
type Service interface {
	// Read operations
	Catalog() Catalog
	List(ctx context.Context, limit int) ([]*models.Booking, error)
	Latest(ctx context.Context) (*models.Booking, error)
	Get(ctx context.Context, reference string) (*models.Booking, error)

	// Write operations
	Book(ctx context.Context, req BookRequest) (*models.Booking, error)
}

// BookRequest encapsulates data for booking a program
type BookRequest struct {
	OptionID int
	Start    string // any form ParseStart accepts
}

// service implements Service interface
type service struct {
	repo    database.DataStore
	catalog Catalog
	newRef  func() string
	logger  *slog.Logger
}

// ServiceOption configures the booking service
type ServiceOption func(*service)

// WithReferenceFunc replaces the booking reference generator
func WithReferenceFunc(fn func() string) ServiceOption {
	return func(s *service) { s.newRef = fn }
}

// WithServiceLogger sets the service logger
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *service) { s.logger = logger }
}

// NewService creates a new booking service
func NewService(repo database.DataStore, catalog Catalog, opts ...ServiceOption) Service {
	s := &service{
		repo:    repo,
		catalog: catalog,
		newRef:  uuid.NewString,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Catalog() Catalog {
	return s.catalog
}

// Book validates the request, derives the end date and stores the booking
func (s *service) Book(ctx context.Context, req BookRequest) (*models.Booking, error) {
	option, ok := s.catalog.Option(req.OptionID)
	if !ok {
		return nil, fmt.Errorf("option %d: %w", req.OptionID, ErrUnknownOption)
	}

	start, err := ParseStart(req.Start)
	if err != nil {
		return nil, err
	}
	startLabel := Format(start)
	end := EndDate(startLabel, option.Weeks)

	booking, err := s.repo.CreateBooking(ctx, &models.Booking{
		Reference: s.newRef(),
		Weeks:     option.Weeks,
		Days:      option.Days(),
		Price:     option.Price(),
		StartDate: startLabel,
		EndDate:   end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.Info("booking created",
		"reference", booking.Reference,
		"weeks", booking.Weeks,
		"start", booking.StartDate,
		"end", booking.EndDate)
	return booking, nil
}

// List returns the newest bookings
func (s *service) List(ctx context.Context, limit int) ([]*models.Booking, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	bookings, err := s.repo.ListBookings(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Latest returns the most recent booking
func (s *service) Latest(ctx context.Context) (*models.Booking, error) {
	return s.repo.GetLatestBooking(ctx)
}

// Get returns the booking with the given reference
func (s *service) Get(ctx context.Context, reference string) (*models.Booking, error) {
	return s.repo.GetBookingByReference(ctx, reference)
}
