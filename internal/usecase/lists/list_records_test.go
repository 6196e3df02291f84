package lists

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/fixtures"
	"github.com/BruksfildServices01/dental-admin/internal/infra/repository"
)

func TestListAppointmentsWilsonConfirmed(t *testing.T) {
	repo := repository.NewFixtureRepository(fixtures.Default())

	v, err := NewListAppointments(repo).Execute(context.Background(), "wilson", "confirmed")
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Records) != 2 || v.Records[0].ID != "APT001" || v.Records[1].ID != "APT005" {
		t.Fatalf("records = %+v", v.Records)
	}
}

func TestListDefaultsStatusToAll(t *testing.T) {
	repo := repository.NewFixtureRepository(fixtures.Default())

	v, err := NewListDentists(repo).Execute(context.Background(), "", "")
	if err != nil {
		t.Fatal(err)
	}
	if v.Status != domain.StatusAll || len(v.Records) != 5 {
		t.Fatalf("status %q, %d records", v.Status, len(v.Records))
	}
}

func TestListUsersEmptyState(t *testing.T) {
	repo := repository.NewFixtureRepository(fixtures.Default())

	v, err := NewListUsers(repo).Execute(context.Background(), "nobody", "all")
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Records) != 0 || v.Empty != "No users found." {
		t.Fatalf("unexpected %+v", v)
	}
}

func TestListCancelledContext(t *testing.T) {
	repo := repository.NewFixtureRepository(fixtures.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewListUsers(repo).Execute(ctx, "", ""); err == nil {
		t.Fatal("expected context error")
	}
}
