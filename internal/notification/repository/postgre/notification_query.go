package postgre

const insertNotificationQuery = `
INSERT INTO notifications
	(dealership_id, user_id, title, message, type, channel, reference_type, reference_id, sent_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`
