package audit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/erp-crm/internal/model"
	rpsMocks "github.com/umalmyha/erp-crm/internal/repository/mocks"
)

func TestErrorIsPersisted(t *testing.T) {
	sink := rpsMocks.NewAppLogRepository(t)

	var captured model.AppLog
	sink.On("Insert", mock.Anything, mock.AnythingOfType("model.AppLog")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(model.AppLog)
		}).
		Return(nil).Once()

	lg := New("erp-crm-api", sink)
	lg.Error("CustomerRepository.Update", "an error occurred while updating the customer", errors.New("no rows affected"))

	assert.Equal(t, "erp-crm-api", captured.AppName)
	assert.Equal(t, "error", captured.Level)
	assert.Equal(t, "CustomerRepository.Update", captured.Logger)
	assert.Equal(t, "an error occurred while updating the customer", captured.Message)
	assert.Equal(t, "no rows affected", captured.Exception)
	assert.NotEmpty(t, captured.StackTrace)
	assert.NotEmpty(t, captured.MachineName)
	assert.EqualValues(t, 0, captured.RequestID)
	assert.False(t, captured.CreatedAt.IsZero())
}

func TestInfoIsPersisted(t *testing.T) {
	sink := rpsMocks.NewAppLogRepository(t)

	var captured model.AppLog
	sink.On("Insert", mock.Anything, mock.AnythingOfType("model.AppLog")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(model.AppLog)
		}).
		Return(nil).Once()

	lg := New("erp-crm-api", sink)
	lg.Info("CustomerRepository.Create", "successfully created customer 123456")

	assert.Equal(t, "info", captured.Level)
	assert.Empty(t, captured.Exception)
	assert.Empty(t, captured.StackTrace)
}

func TestSinkFailureIsSwallowed(t *testing.T) {
	sink := rpsMocks.NewAppLogRepository(t)
	sink.On("Insert", mock.Anything, mock.AnythingOfType("model.AppLog")).
		Return(errors.New("log database unavailable")).Once()

	lg := New("erp-crm-api", sink)

	require.NotPanics(t, func() {
		lg.Error("DocumentRepository.DocumentData", "an error occurred while retrieving document data", errors.New("boom"))
	})
}
