package postgre

const getProfileQuery = `SELECT p.user_id, p.dealership_id, COALESCE(p.role_id::text, ''), COALESCE(p.email, ''), r.permissions
FROM profiles p
LEFT JOIN roles r ON r.id = p.role_id
WHERE p.user_id = $1
LIMIT 1`
