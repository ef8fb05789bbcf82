package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/memory"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockNotifier) SendContactNotification(ctx context.Context, data email.ContactEmailData) error {
	return m.Called(ctx, data).Error(0)
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should swallow notification failures", func(t *testing.T) {
		sent := make(chan struct{})
		store := memory.NewStore()
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendContactNotification", mock.Anything, mock.MatchedBy(func(d email.ContactEmailData) bool {
			return d.SenderEmail == "visitor@example.com" && d.Subject == "Hello"
		})).Return(errors.New("smtp down")).Once().Run(func(mock.Arguments) { close(sent) })

		uc := usecase.NewContactUsecase(store.Contacts(), notifier, validation.New())
		err := uc.SubmitContact(context.Background(), &domain.ContactRequest{
			Name:    " Visitor ",
			Email:   "visitor@example.com",
			Subject: "Hello",
			Message: "Nice portfolio",
		})
		require.NoError(t, err)
		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatal("notification was never sent")
		}
		notifier.AssertExpectations(t)

		rows, err := store.Contacts().List(context.Background(), domain.ContactFilterAll)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Visitor", rows[0].Name)
	})

	t.Run("Should not hold the request while mail is sent", func(t *testing.T) {
		release := make(chan struct{})
		done := make(chan struct{})
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendContactNotification", mock.Anything, mock.Anything).Return(nil).Once().Run(func(mock.Arguments) {
			<-release
			close(done)
		})

		uc := usecase.NewContactUsecase(memory.NewStore().Contacts(), notifier, validation.New())
		returned := make(chan error, 1)
		go func() {
			returned <- uc.SubmitContact(context.Background(), &domain.ContactRequest{Name: "V", Email: "v@example.com", Message: "hi"})
		}()

		select {
		case err := <-returned:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("submit waited for the mail server")
		}
		close(release)
		<-done
	})

	t.Run("Should skip notification when mail is not configured", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(false)

		uc := usecase.NewContactUsecase(memory.NewStore().Contacts(), notifier, validation.New())
		err := uc.SubmitContact(context.Background(), &domain.ContactRequest{Name: "V", Email: "v@example.com", Message: "hi"})
		require.NoError(t, err)
		notifier.AssertNotCalled(t, "SendContactNotification", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an invalid email with a readable message", func(t *testing.T) {
		uc := usecase.NewContactUsecase(memory.NewStore().Contacts(), nil, validation.New())
		err := uc.SubmitContact(context.Background(), &domain.ContactRequest{Name: "V", Email: "not-an-email", Message: "hi"})
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
		assert.Contains(t, err.Error(), "valid email")
	})
}

func TestContactAdmin(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewContactUsecase(store.Contacts(), nil, validation.New())
	ctx := ownerCtx("owner-1")

	for _, name := range []string{"A", "B"} {
		require.NoError(t, uc.SubmitContact(context.Background(), &domain.ContactRequest{Name: name, Email: "x@example.com", Message: "m"}))
	}

	t.Run("Should require a session", func(t *testing.T) {
		_, err := uc.ListContacts(context.Background(), domain.ContactFilterAll)
		assert.True(t, apperror.HasCode(err, http.StatusUnauthorized))
	})

	t.Run("Should reject an unknown filter", func(t *testing.T) {
		_, err := uc.ListContacts(ctx, "spam")
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
	})

	t.Run("Should move archived submissions out of the all view", func(t *testing.T) {
		list, err := uc.ListContacts(ctx, "")
		require.NoError(t, err)
		require.Len(t, list.Submissions, 2)
		assert.Equal(t, domain.ContactFilterAll, list.Filter)

		target := list.Submissions[0].ID
		require.NoError(t, uc.MarkContactRead(ctx, target))
		require.NoError(t, uc.ArchiveContact(ctx, target, true))

		all, err := uc.ListContacts(ctx, domain.ContactFilterAll)
		require.NoError(t, err)
		require.Len(t, all.Submissions, 1)
		assert.NotEqual(t, target, all.Submissions[0].ID)

		archived, err := uc.ListContacts(ctx, domain.ContactFilterArchived)
		require.NoError(t, err)
		require.Len(t, archived.Submissions, 1)
		assert.Equal(t, target, archived.Submissions[0].ID)
		assert.Equal(t, 1, archived.Counts.Archived)
		assert.Equal(t, 1, archived.Counts.Unread)
	})

	t.Run("Should export csv and xlsx including archived rows", func(t *testing.T) {
		out, err := uc.ExportContacts(ctx, "csv")
		require.NoError(t, err)
		assert.Equal(t, "text/csv", out.ContentType)
		records, err := csv.NewReader(bytes.NewReader(out.Data)).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, 3)
		assert.Equal(t, "NAME", records[0][1])

		out, err = uc.ExportContacts(ctx, "xlsx")
		require.NoError(t, err)
		f, err := excelize.OpenReader(bytes.NewReader(out.Data))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Contacts")
		require.NoError(t, err)
		assert.Len(t, rows, 3)

		_, err = uc.ExportContacts(ctx, "pdf")
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
	})

	t.Run("Should neutralize formulas in the csv export", func(t *testing.T) {
		other := memory.NewStore()
		exporter := usecase.NewContactUsecase(other.Contacts(), nil, validation.New())
		require.NoError(t, exporter.SubmitContact(context.Background(), &domain.ContactRequest{
			Name:    "=HYPERLINK(\"http://evil.example\",\"x\")",
			Email:   "x@example.com",
			Subject: "+1 call me",
			Message: "@SUM(A1:A2)",
		}))

		out, err := exporter.ExportContacts(ctx, "csv")
		require.NoError(t, err)
		records, err := csv.NewReader(bytes.NewReader(out.Data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, `'=HYPERLINK("http://evil.example","x")`, records[1][1])
		assert.Equal(t, "x@example.com", records[1][2])
		assert.Equal(t, "'+1 call me", records[1][3])
		assert.Equal(t, "'@SUM(A1:A2)", records[1][4])
	})

	t.Run("Should delete a submission", func(t *testing.T) {
		list, err := uc.ListContacts(ctx, domain.ContactFilterAll)
		require.NoError(t, err)
		require.NoError(t, uc.DeleteContact(ctx, list.Submissions[0].ID))
		list, err = uc.ListContacts(ctx, domain.ContactFilterAll)
		require.NoError(t, err)
		assert.Empty(t, list.Submissions)
	})
}
