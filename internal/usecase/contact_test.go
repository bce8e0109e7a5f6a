package usecase_test

import (
	"context"
	"testing"

	"grow-therapy-backend/internal/domain"
	"grow-therapy-backend/internal/usecase"
	"grow-therapy-backend/pkg/email"
	"grow-therapy-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const ownerAddress = "owner@growyourtherapy.com"

// MockMailer records dispatches without touching the network.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, htmlBody string) email.DispatchOutcome {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Get(0).(email.DispatchOutcome)
}

func init() {
	logger.Init()
}

func validSubmission() *domain.Submission {
	return &domain.Submission{
		Name:    "Sarah Chen",
		Email:   "sarah@example.com",
		Message: "I'm interested in a new website for my practice.",
	}
}

func TestDispatchSendsBothEmails(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, ownerAddress)

	mockMailer.On("Send", mock.Anything, ownerAddress, email.SubjectNotification, mock.AnythingOfType("string")).
		Return(email.DispatchOutcome{Succeeded: true, MessageID: "<n1@x>"}).Once()
	mockMailer.On("Send", mock.Anything, "sarah@example.com", email.SubjectAutoReply, mock.AnythingOfType("string")).
		Return(email.DispatchOutcome{Succeeded: true, MessageID: "<a1@x>"}).Once()

	result := uc.Dispatch(context.Background(), validSubmission())

	mockMailer.AssertExpectations(t)
	mockMailer.AssertNumberOfCalls(t, "Send", 2)
	assert.True(t, result.Succeeded)
	assert.Equal(t, "<n1@x>", result.Notification.MessageID)
	assert.Equal(t, "<a1@x>", result.AutoReply.MessageID)
}

func TestDispatchAggregation(t *testing.T) {
	cases := []struct {
		name         string
		notification bool
		autoReply    bool
		want         bool
	}{
		{"both succeed", true, true, true},
		{"notification fails", false, true, false},
		{"auto-reply fails", true, false, false},
		{"both fail", false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockMailer := new(MockMailer)
			uc := usecase.NewContactUsecase(mockMailer, ownerAddress)

			mockMailer.On("Send", mock.Anything, ownerAddress, email.SubjectNotification, mock.Anything).
				Return(email.DispatchOutcome{Succeeded: tc.notification, FailureReason: failReason(tc.notification)})
			mockMailer.On("Send", mock.Anything, "sarah@example.com", email.SubjectAutoReply, mock.Anything).
				Return(email.DispatchOutcome{Succeeded: tc.autoReply, FailureReason: failReason(tc.autoReply)})

			result := uc.Dispatch(context.Background(), validSubmission())

			// A fast failure of one send never prevents the other: both are
			// always attempted.
			mockMailer.AssertNumberOfCalls(t, "Send", 2)
			assert.Equal(t, tc.want, result.Succeeded)
			assert.Equal(t, tc.notification, result.Notification.Succeeded)
			assert.Equal(t, tc.autoReply, result.AutoReply.Succeeded)
		})
	}
}

func failReason(succeeded bool) string {
	if succeeded {
		return ""
	}
	return "smtp connection failed"
}

func TestDispatchBodiesContainSubmission(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, ownerAddress)

	var notificationBody, autoReplyBody string
	mockMailer.On("Send", mock.Anything, ownerAddress, email.SubjectNotification, mock.Anything).
		Return(email.DispatchOutcome{Succeeded: true}).
		Run(func(args mock.Arguments) { notificationBody = args.String(3) })
	mockMailer.On("Send", mock.Anything, "sarah@example.com", email.SubjectAutoReply, mock.Anything).
		Return(email.DispatchOutcome{Succeeded: true}).
		Run(func(args mock.Arguments) { autoReplyBody = args.String(3) })

	uc.Dispatch(context.Background(), validSubmission())

	assert.Contains(t, notificationBody, "Sarah Chen")
	assert.Contains(t, notificationBody, "sarah@example.com")
	assert.Contains(t, notificationBody, "new website for my practice")
	assert.Contains(t, autoReplyBody, "Sarah Chen")
	assert.NotContains(t, autoReplyBody, "new website for my practice")
}
