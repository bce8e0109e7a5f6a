package usecase

import (
	"context"
	"sync"

	"grow-therapy-backend/internal/domain"
	"grow-therapy-backend/pkg/email"
	"grow-therapy-backend/pkg/logger"
)

type contactUsecase struct {
	mailer       email.Mailer
	companyEmail string
}

// NewContactUsecase creates the orchestrator that turns one validated
// submission into two email sends: a notification to the company and an
// auto-reply to the submitter.
func NewContactUsecase(mailer email.Mailer, companyEmail string) domain.ContactUsecase {
	return &contactUsecase{
		mailer:       mailer,
		companyEmail: companyEmail,
	}
}

// Dispatch renders both email bodies and fires both sends concurrently,
// waiting for both to settle before aggregating. A failure of one send never
// cancels the other; the combined result succeeds only when both did.
func (uc *contactUsecase) Dispatch(ctx context.Context, sub *domain.Submission) domain.CombinedResult {
	notificationHTML, err := email.RenderNotification(sub.Name, sub.Email, sub.Message)
	if err != nil {
		logger.Log.Error("Failed to render notification email", "error", err)
		return renderFailure()
	}
	autoReplyHTML, err := email.RenderAutoReply(sub.Name)
	if err != nil {
		logger.Log.Error("Failed to render auto-reply email", "error", err)
		return renderFailure()
	}

	var (
		wg           sync.WaitGroup
		notification email.DispatchOutcome
		autoReply    email.DispatchOutcome
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		notification = uc.mailer.Send(ctx, uc.companyEmail, email.SubjectNotification, notificationHTML)
	}()
	go func() {
		defer wg.Done()
		autoReply = uc.mailer.Send(ctx, sub.Email, email.SubjectAutoReply, autoReplyHTML)
	}()
	wg.Wait()

	result := domain.CombinedResult{
		Succeeded:    notification.Succeeded && autoReply.Succeeded,
		Notification: notification,
		AutoReply:    autoReply,
	}

	if result.Succeeded {
		result.Message = "Contact form emails sent successfully"
		logger.Log.Info("Contact form emails sent",
			"notification_id", notification.MessageID,
			"auto_reply_id", autoReply.MessageID,
		)
	} else {
		// The end user sees one generic failure; the per-recipient detail is
		// for operators, who care whether the company was ever notified.
		result.Message = "Some emails failed to send"
		logger.Log.Error("Contact form email dispatch incomplete",
			"notification_succeeded", notification.Succeeded,
			"notification_error", notification.FailureReason,
			"auto_reply_succeeded", autoReply.Succeeded,
			"auto_reply_error", autoReply.FailureReason,
		)
	}

	return result
}

func renderFailure() domain.CombinedResult {
	return domain.CombinedResult{
		Succeeded: false,
		Message:   "Failed to send emails",
	}
}
