package usecase

import (
	"context"
	"errors"
	"fmt"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/notification"
	"dealer-report-srv/internal/notification/repository"
	"dealer-report-srv/internal/tenant"
	pkgErrors "dealer-report-srv/pkg/errors"
	"dealer-report-srv/pkg/metrics"
	"dealer-report-srv/pkg/ses"
)

const (
	msgNoPhone = "No phone number provided for SMS notification"
	msgNoEmail = "No email address provided for email notification"
)

func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, ip notification.SendInput) (notification.SendOutput, error) {
	if !sc.IsAuthenticated() {
		return notification.SendOutput{}, notification.ErrUnauthorized
	}
	if !ip.Channel.Valid() {
		return notification.SendOutput{}, notification.ErrUnsupportedChannel
	}

	ts, err := uc.resolveTenant(ctx, sc.UserID)
	if err != nil {
		return notification.SendOutput{}, err
	}

	uc.l.Infof(ctx, "notification.usecase.Send: Sending %s notification: %s", ip.Channel, ip.Title)

	var out notification.SendOutput
	switch ip.Channel {
	case notification.ChannelInApp:
		out = uc.sendInApp(ctx, ts, ip)
	case notification.ChannelSMS:
		out = uc.sendSMS(ctx, ts, ip)
	case notification.ChannelEmail:
		out = uc.sendEmail(ctx, ts, ip)
	}
	metrics.NotificationsSent.WithLabelValues(string(ip.Channel)).Add(float64(out.Sent))
	return out, nil
}

func (uc *implUseCase) resolveTenant(ctx context.Context, userID string) (model.TenantScope, error) {
	profile, err := uc.tenantUC.Resolve(ctx, userID)
	if err != nil {
		if !errors.Is(err, tenant.ErrProfileNotFound) {
			uc.l.Errorf(ctx, "notification.usecase.resolveTenant: Failed to resolve profile: %v", err)
		}
		return model.TenantScope{}, notification.ErrProfileNotFound
	}
	ts, err := profile.Tenant()
	if err != nil {
		return model.TenantScope{}, notification.ErrProfileNotFound
	}
	return ts, nil
}

func (uc *implUseCase) sendInApp(ctx context.Context, ts model.TenantScope, ip notification.SendInput) notification.SendOutput {
	recipients := append([]string{}, ip.Recipients...)
	if ip.ChannelData.UserID != "" {
		recipients = append(recipients, ip.ChannelData.UserID)
	}

	var out notification.SendOutput
	for _, userID := range recipients {
		if _, err := uc.repo.Create(ctx, uc.createOptions(ts, userID, ip)); err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("Failed to send in-app notification to user %s: %s", userID, pkgErrors.DatabaseMessage(err)))
			continue
		}
		out.Sent++
	}
	return out
}

func (uc *implUseCase) sendSMS(ctx context.Context, ts model.TenantScope, ip notification.SendInput) notification.SendOutput {
	phone := ip.ChannelData.Phone
	if phone == "" && len(ip.Recipients) > 0 {
		phone = ip.Recipients[0]
	}
	if phone == "" {
		return notification.SendOutput{Errors: []string{msgNoPhone}}
	}
	if uc.sms == nil {
		return notification.SendOutput{Errors: []string{"Error sending SMS: sms delivery is not configured"}}
	}

	if _, err := uc.sms.SendSMS(ctx, phone, ip.Message); err != nil {
		uc.l.Warnf(ctx, "notification.usecase.sendSMS: Failed to send SMS: %v", err)
		return notification.SendOutput{Errors: []string{fmt.Sprintf("Error sending SMS: %v", err)}}
	}

	out := notification.SendOutput{Sent: 1}
	if _, err := uc.repo.Create(ctx, uc.createOptions(ts, "", ip)); err != nil {
		out.Errors = append(out.Errors, "Failed to log SMS notification: "+pkgErrors.DatabaseMessage(err))
	}
	return out
}

func (uc *implUseCase) sendEmail(ctx context.Context, ts model.TenantScope, ip notification.SendInput) notification.SendOutput {
	email := ip.ChannelData.Email
	if email == "" && len(ip.Recipients) > 0 {
		email = ip.Recipients[0]
	}
	if email == "" {
		return notification.SendOutput{Errors: []string{msgNoEmail}}
	}
	if uc.mailer == nil {
		return notification.SendOutput{Errors: []string{"Error sending email: email delivery is not configured"}}
	}

	_, err := uc.mailer.Send(ctx, ses.Message{To: email, Subject: ip.Title, Text: ip.Message})
	if err != nil {
		uc.l.Warnf(ctx, "notification.usecase.sendEmail: Failed to send email: %v", err)
		return notification.SendOutput{Errors: []string{fmt.Sprintf("Error sending email: %v", err)}}
	}

	out := notification.SendOutput{Sent: 1}
	if _, err := uc.repo.Create(ctx, uc.createOptions(ts, "", ip)); err != nil {
		out.Errors = append(out.Errors, "Failed to log email notification: "+pkgErrors.DatabaseMessage(err))
	}
	return out
}

func (uc *implUseCase) createOptions(ts model.TenantScope, userID string, ip notification.SendInput) repository.CreateOptions {
	opt := repository.CreateOptions{
		Tenant:  ts,
		UserID:  userID,
		Title:   ip.Title,
		Message: ip.Message,
		Type:    notification.TypeInfo,
		Channel: string(ip.Channel),
		SentAt:  uc.now().UTC(),
	}
	if ip.Reference != nil {
		opt.ReferenceType = ip.Reference.Type
		opt.ReferenceID = ip.Reference.ID
	}
	return opt
}
