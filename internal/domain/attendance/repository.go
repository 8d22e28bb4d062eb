package attendance

import "context"

type Repository interface {
	// Upsert writes a record, overwriting any previous one for the same
	// (session, athlete).
	Upsert(ctx context.Context, rec Record) (Record, error)
	ListBySession(ctx context.Context, sessionID string) ([]Record, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]Record, error)
	SummaryForAthlete(ctx context.Context, athleteID string) (Summary, error)
}

type Service interface {
	Mark(ctx context.Context, sessionID, markedByUserID string, req MarkRequest) ([]Record, error)
	ListBySession(ctx context.Context, sessionID string) ([]Record, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]Record, error)
	SummaryForAthlete(ctx context.Context, athleteID string) (Summary, error)
}
