package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/midori-health/condition-tracker/pkg/pagination"
)

func seedUser(t *testing.T, userRepo *MockUserRepository) *domain.User {
	t.Helper()
	user := &domain.User{ID: uuid.New(), Timezone: "UTC"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func intPtr(v int) *int          { return &v }
func f64Ptr(v float64) *float64  { return &v }

func TestRecordService_Upsert(t *testing.T) {
	userRepo := NewMockUserRepository()
	recordRepo := NewMockDailyRecordRepository()
	svc := NewRecordService(recordRepo, userRepo)
	user := seedUser(t, userRepo)

	tests := []struct {
		name    string
		userID  uuid.UUID
		dateKey string
		req     *domain.UpsertDailyRecordRequest
		wantErr error
	}{
		{
			name:    "full record",
			userID:  user.ID,
			dateKey: "2026-03-15",
			req: &domain.UpsertDailyRecordRequest{
				Mood:       intPtr(4),
				SleepHours: f64Ptr(7.5),
				Steps:      intPtr(8200),
				Stress:     intPtr(2),
			},
			wantErr: nil,
		},
		{
			name:    "partial record",
			userID:  user.ID,
			dateKey: "2026-03-16",
			req:     &domain.UpsertDailyRecordRequest{Mood: intPtr(3)},
			wantErr: nil,
		},
		{
			name:    "unknown user",
			userID:  uuid.New(),
			dateKey: "2026-03-15",
			req:     &domain.UpsertDailyRecordRequest{Mood: intPtr(3)},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "malformed date key",
			userID:  user.ID,
			dateKey: "15/03/2026",
			req:     &domain.UpsertDailyRecordRequest{Mood: intPtr(3)},
			wantErr: domain.ErrInvalidDateKey,
		},
		{
			name:    "non-existent calendar day",
			userID:  user.ID,
			dateKey: "2026-02-30",
			req:     &domain.UpsertDailyRecordRequest{Mood: intPtr(3)},
			wantErr: domain.ErrInvalidDateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := svc.Upsert(context.Background(), tt.userID, tt.dateKey, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Upsert() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil {
				if record == nil {
					t.Fatal("Upsert() returned nil record")
				}
				if record.DateKey != tt.dateKey {
					t.Errorf("DateKey = %q, want %q", record.DateKey, tt.dateKey)
				}
			}
		})
	}
}

func TestRecordService_UpsertReplacesSameDay(t *testing.T) {
	userRepo := NewMockUserRepository()
	recordRepo := NewMockDailyRecordRepository()
	svc := NewRecordService(recordRepo, userRepo)
	user := seedUser(t, userRepo)

	first, err := svc.Upsert(context.Background(), user.ID, "2026-03-15", &domain.UpsertDailyRecordRequest{
		Mood: intPtr(2), SleepHours: f64Ptr(6.0),
	})
	if err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}

	second, err := svc.Upsert(context.Background(), user.ID, "2026-03-15", &domain.UpsertDailyRecordRequest{
		Mood: intPtr(5),
	})
	if err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected the same row to be updated, got IDs %s and %s", first.ID, second.ID)
	}
	if second.Mood == nil || *second.Mood != 5 {
		t.Errorf("Mood = %v, want 5", second.Mood)
	}
	// Replace semantics: previously logged fields that are omitted clear out
	if second.SleepHours != nil {
		t.Errorf("SleepHours = %v, want nil after replacing write", *second.SleepHours)
	}

	records, err := recordRepo.ListAscending(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListAscending() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("record count = %d, want 1", len(records))
	}
}

func TestRecordService_GetByDate(t *testing.T) {
	userRepo := NewMockUserRepository()
	recordRepo := NewMockDailyRecordRepository()
	svc := NewRecordService(recordRepo, userRepo)
	user := seedUser(t, userRepo)

	if _, err := svc.Upsert(context.Background(), user.ID, "2026-03-15", &domain.UpsertDailyRecordRequest{Mood: intPtr(4)}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	record, err := svc.GetByDate(context.Background(), user.ID, "2026-03-15")
	if err != nil {
		t.Fatalf("GetByDate() error = %v", err)
	}
	if record.Mood == nil || *record.Mood != 4 {
		t.Errorf("Mood = %v, want 4", record.Mood)
	}

	if _, err := svc.GetByDate(context.Background(), user.ID, "2026-03-16"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByDate() missing day error = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetByDate(context.Background(), user.ID, "bad-key"); !errors.Is(err, domain.ErrInvalidDateKey) {
		t.Errorf("GetByDate() bad key error = %v, want ErrInvalidDateKey", err)
	}
}

func TestRecordService_ListPagination(t *testing.T) {
	userRepo := NewMockUserRepository()
	recordRepo := NewMockDailyRecordRepository()
	svc := NewRecordService(recordRepo, userRepo)
	user := seedUser(t, userRepo)

	for _, dateKey := range []string{"2026-03-10", "2026-03-11", "2026-03-12", "2026-03-13", "2026-03-14"} {
		if _, err := svc.Upsert(context.Background(), user.ID, dateKey, &domain.UpsertDailyRecordRequest{Mood: intPtr(3)}); err != nil {
			t.Fatalf("Upsert(%s) error = %v", dateKey, err)
		}
	}

	resp, err := svc.List(context.Background(), user.ID, domain.DailyRecordFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("page size = %d, want 2", len(resp.Data))
	}
	if resp.Data[0].DateKey != "2026-03-14" || resp.Data[1].DateKey != "2026-03-13" {
		t.Errorf("page order = %s, %s; want newest first", resp.Data[0].DateKey, resp.Data[1].DateKey)
	}
	if !resp.Pagination.HasMore || resp.Pagination.NextCursor == "" {
		t.Fatalf("expected more pages, got %+v", resp.Pagination)
	}

	cursor, err := pagination.DecodeCursor(resp.Pagination.NextCursor)
	if err != nil {
		t.Fatalf("DecodeCursor() error = %v", err)
	}
	if cursor.DateKey != "2026-03-13" {
		t.Errorf("cursor date key = %q, want 2026-03-13", cursor.DateKey)
	}

	if _, err := svc.List(context.Background(), uuid.New(), domain.DailyRecordFilter{}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("List() unknown user error = %v, want ErrNotFound", err)
	}
}

func TestRecordService_ListRangeFilter(t *testing.T) {
	userRepo := NewMockUserRepository()
	recordRepo := NewMockDailyRecordRepository()
	svc := NewRecordService(recordRepo, userRepo)
	user := seedUser(t, userRepo)

	for _, dateKey := range []string{"2026-03-10", "2026-03-11", "2026-03-12"} {
		if _, err := svc.Upsert(context.Background(), user.ID, dateKey, &domain.UpsertDailyRecordRequest{Mood: intPtr(3)}); err != nil {
			t.Fatalf("Upsert(%s) error = %v", dateKey, err)
		}
	}

	resp, err := svc.List(context.Background(), user.ID, domain.DailyRecordFilter{From: "2026-03-11", To: "2026-03-11"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].DateKey != "2026-03-11" {
		t.Errorf("range filter returned %+v, want just 2026-03-11", resp.Data)
	}
	if resp.Pagination.HasMore {
		t.Error("HasMore = true, want false")
	}
}
