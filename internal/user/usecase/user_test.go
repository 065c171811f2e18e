package usecase

import (
	"context"
	"errors"
	"testing"

	"adminboard/internal/model"
	"adminboard/internal/user"
	"adminboard/internal/user/repository"
	"adminboard/pkg/paginator"
)

// testLogger implements log.Logger for testing
type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// stubRepository records the options it receives and returns canned data.
type stubRepository struct {
	gotGet    repository.GetOptions
	gotUpdate repository.UpdateOptions

	users     []model.User
	pag       paginator.Paginator
	updated   model.User
	getErr    error
	updateErr error
}

func (s *stubRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	s.gotGet = opts
	return s.users, s.pag, s.getErr
}

func (s *stubRepository) Detail(ctx context.Context, id string) (model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *stubRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.User, error) {
	s.gotUpdate = opts
	return s.updated, s.updateErr
}

func TestGetMapsStatusToTriStateFilter(t *testing.T) {
	tests := []struct {
		name       string
		status     model.Status
		wantValid  bool
		wantActive bool
	}{
		{"all disables the filter", model.StatusAll, false, false},
		{"active filters true", model.StatusActive, true, true},
		{"inactive filters false", model.StatusInactive, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepository{}
			uc := New(&testLogger{}, repo)

			_, err := uc.Get(context.Background(), user.GetInput{
				Filter:        user.Filter{Status: tc.status},
				PaginateQuery: paginator.PaginateQuery{Page: 1, PageSize: 10},
			})
			if err != nil {
				t.Fatalf("Get: %v", err)
			}

			f := repo.gotGet.Filter.IsActive
			if f.Valid != tc.wantValid {
				t.Fatalf("IsActive.Valid = %v, want %v", f.Valid, tc.wantValid)
			}
			if tc.wantValid && f.Bool != tc.wantActive {
				t.Errorf("IsActive.Bool = %v, want %v", f.Bool, tc.wantActive)
			}
		})
	}
}

func TestDetailMapsNotFound(t *testing.T) {
	uc := New(&testLogger{}, &stubRepository{})

	_, err := uc.Detail(context.Background(), "missing")
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateStatusRejectsAll(t *testing.T) {
	repo := &stubRepository{}
	uc := New(&testLogger{}, repo)

	_, err := uc.UpdateStatus(context.Background(), user.UpdateStatusInput{
		ID:     "u1",
		Status: model.StatusAll,
	})
	if !errors.Is(err, user.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
	if repo.gotUpdate.ID != "" {
		t.Error("repository was called for an invalid status")
	}
}

func TestUpdateStatusMessage(t *testing.T) {
	tests := []struct {
		status model.Status
		want   string
	}{
		{model.StatusActive, "User Alice Nguyen has been activated"},
		{model.StatusInactive, "User Alice Nguyen has been deactivated"},
	}

	for _, tc := range tests {
		repo := &stubRepository{
			updated: model.User{ID: "u1", DisplayName: "Alice Nguyen", Status: tc.status},
		}
		uc := New(&testLogger{}, repo)

		out, err := uc.UpdateStatus(context.Background(), user.UpdateStatusInput{
			ID:     "u1",
			Status: tc.status,
		})
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if out.Message != tc.want {
			t.Errorf("Message = %q, want %q", out.Message, tc.want)
		}
		if repo.gotUpdate.Status == nil || *repo.gotUpdate.Status != tc.status {
			t.Errorf("repository Status = %v, want %v", repo.gotUpdate.Status, tc.status)
		}
	}
}

func TestUpdateStatusMapsNotFound(t *testing.T) {
	repo := &stubRepository{updateErr: repository.ErrNotFound}
	uc := New(&testLogger{}, repo)

	_, err := uc.UpdateStatus(context.Background(), user.UpdateStatusInput{
		ID:     "missing",
		Status: model.StatusActive,
	})
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
