package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"openhours/backend/internal/domain"
	openhoursv1 "openhours/backend/internal/gen/proto/openhours/v1"
	"openhours/backend/internal/service/availability"
	"openhours/backend/internal/store"
)

type AvailabilityServer struct {
	openhoursv1.UnimplementedAvailabilityServiceServer

	svc availabilityService
	log *slog.Logger
}

type availabilityService interface {
	Compute(ctx context.Context, in availability.ComputeInput) (domain.AvailabilityResult, error)
	Check(ctx context.Context, in availability.CheckInput) (domain.AvailabilityResult, error)
	ReplaceBusy(ctx context.Context, in availability.ReplaceBusyInput) (int, error)
}

func NewAvailabilityServer(svc availabilityService, log *slog.Logger) *AvailabilityServer {
	if log == nil {
		log = slog.Default()
	}
	return &AvailabilityServer{
		svc: svc,
		log: log.With(slog.String("component", "grpc.availability")),
	}
}

func (s *AvailabilityServer) GetAvailability(ctx context.Context, req *openhoursv1.GetAvailabilityRequest) (*openhoursv1.AvailabilityResponse, error) {
	log := s.requestLog(ctx, "GetAvailability")

	in, err := computeInput(req)
	if err != nil {
		log.Warn("invalid request", slog.Any("err", err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := s.svc.Compute(ctx, in)
	if err != nil {
		return nil, s.toStatus(log, "availability compute failed", err)
	}

	log.Info(
		"availability computed",
		slog.Int("busy_periods", len(res.BusyPeriods)),
		slog.Int("free_slots", len(res.FreeSlots)),
		slog.Time("range_start", res.DateRange.Start),
		slog.Time("range_end", res.DateRange.End),
	)
	return toProtoResponse(res), nil
}

func (s *AvailabilityServer) CheckAvailability(ctx context.Context, req *openhoursv1.CheckAvailabilityRequest) (*openhoursv1.AvailabilityResponse, error) {
	log := s.requestLog(ctx, "CheckAvailability")

	in, err := checkInput(req)
	if err != nil {
		log.Warn("invalid request", slog.Any("err", err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := s.svc.Check(ctx, in)
	if err != nil {
		return nil, s.toStatus(log.With(slog.Any("calendar_ids", in.CalendarIDs)), "availability check failed", err)
	}

	log.Info(
		"availability checked",
		slog.Any("calendar_ids", in.CalendarIDs),
		slog.Int("busy_periods", len(res.BusyPeriods)),
		slog.Int("free_slots", len(res.FreeSlots)),
	)
	return toProtoResponse(res), nil
}

func (s *AvailabilityServer) ReplaceBusyPeriods(ctx context.Context, req *openhoursv1.ReplaceBusyPeriodsRequest) (*openhoursv1.ReplaceBusyPeriodsResponse, error) {
	log := s.requestLog(ctx, "ReplaceBusyPeriods")

	in, err := replaceBusyInput(req)
	if err != nil {
		log.Warn("invalid request", slog.Any("err", err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	log = log.With(slog.String("calendar_id", in.CalendarID))

	n, err := s.svc.ReplaceBusy(ctx, in)
	if err != nil {
		return nil, s.toStatus(log, "busy replace failed", err)
	}

	log.Info("busy periods replaced", slog.Int("stored", n))
	return &openhoursv1.ReplaceBusyPeriodsResponse{CalendarId: in.CalendarID, Stored: int32(n)}, nil
}

func (s *AvailabilityServer) requestLog(ctx context.Context, rpc string) *slog.Logger {
	log := s.log.With(slog.String("rpc", rpc))
	if id := RequestIDFromContext(ctx); id != "" {
		log = log.With(slog.String("request_id", id))
	}
	return log
}

func (s *AvailabilityServer) toStatus(log *slog.Logger, msg string, err error) error {
	switch {
	case domain.IsClientError(err):
		log.Warn("invalid request", slog.Any("err", err), slog.String("code", string(domain.CodeOf(err))))
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, store.ErrSourceUnavailable):
		log.Warn("calendar source unavailable", slog.Any("err", err))
		return status.Error(codes.Unavailable, "calendar source unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("request deadline exceeded", slog.Any("err", err))
		return status.Error(codes.DeadlineExceeded, "request deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		log.Error(msg, slog.Any("err", err))
		return status.Error(codes.Internal, "internal error")
	}
}
