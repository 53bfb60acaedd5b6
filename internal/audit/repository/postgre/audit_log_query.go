package postgre

const (
	insertAuditLogQuery = `INSERT INTO audit_logs (dealership_id, user_id, table_name, action, new_values)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

	listAuditLogsQuery = `SELECT id, dealership_id, user_id, table_name, action, new_values, created_at
FROM audit_logs
WHERE dealership_id = $1 AND table_name = $2 AND action = $3
ORDER BY created_at DESC, id DESC
LIMIT $4 OFFSET $5`

	countAuditLogsQuery = `SELECT COUNT(*)
FROM audit_logs
WHERE dealership_id = $1 AND table_name = $2 AND action = $3`
)
