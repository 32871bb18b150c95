package repository

import (
	"context"

	"github.com/google/uuid"
)

// candidates only; each one is recounted under the activity lock before any write
const driftedSQL = `
SELECT a.id
FROM activities a
LEFT JOIN inscriptions i ON i.activity_id = a.id AND i.status = 'approved'
WHERE a.deleted_at IS NULL
GROUP BY a.id, a.participants
HAVING a.participants <> COUNT(i.id)
ORDER BY a.id`

// DriftedActivities lists activities whose counter disagrees with the
// approved inscriptions at read time.
func (r *InscriptionRepository) DriftedActivities(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Raw(driftedSQL).Scan(&ids).Error
	return ids, err
}
