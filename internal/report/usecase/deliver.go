package usecase

import (
	"bytes"
	"context"
	"fmt"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
	"dealer-report-srv/internal/report/render"
	"dealer-report-srv/pkg/minio"

	"github.com/google/uuid"
)

// deliver stores the rendered artifact and, for email delivery, sends the link
// to each recipient in turn. Every failure becomes a stage error.
func (uc *implUseCase) deliver(ctx context.Context, ts model.TenantScope, ip report.GenerateInput, a report.Artifact, res render.Result) (string, []report.StageError) {
	if uc.store == nil {
		return "", []report.StageError{deliveryError("artifact storage is not configured")}
	}

	objectName := fmt.Sprintf("reports/%s/%s/%s.%s", ts.DealershipID(), ip.Kind, uuid.NewString(), ip.Format.Extension())
	_, err := uc.store.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.config.Bucket,
		ObjectName:   objectName,
		OriginalName: fmt.Sprintf("%s-report.%s", ip.Kind, ip.Format.Extension()),
		Reader:       bytes.NewReader(res.Body),
		Size:         int64(len(res.Body)),
		ContentType:  ip.Format.ContentType(),
		Metadata: map[string]string{
			"report-kind":   string(ip.Kind),
			"report-format": string(ip.Format),
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.deliver: Failed to upload artifact: %v", err)
		return "", []report.StageError{deliveryError(fmt.Sprintf("Failed to store report: %v", err))}
	}

	link, err := uc.store.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.Bucket,
		ObjectName: objectName,
		Expiry:     uc.config.PresignExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.deliver: Failed to presign artifact: %v", err)
		return "", []report.StageError{deliveryError(fmt.Sprintf("Failed to create download link: %v", err))}
	}

	if ip.Delivery.Method != report.DeliveryEmail {
		return link.URL, nil
	}
	if uc.mailer == nil {
		return link.URL, []report.StageError{deliveryError("email delivery is not configured")}
	}

	var errs []report.StageError
	msg := reportEmail(a, link.URL, link.ExpiresAt)
	for _, to := range ip.Delivery.Emails {
		msg.To = to
		if _, err := uc.mailer.Send(ctx, msg); err != nil {
			uc.l.Warnf(ctx, "report.usecase.deliver: Failed to email %s: %v", to, err)
			errs = append(errs, deliveryError(fmt.Sprintf("Failed to email report to %s: %v", to, err)))
		}
	}
	return link.URL, errs
}

func deliveryError(msg string) report.StageError {
	return report.StageError{Stage: report.StageDelivering, Error: msg}
}
