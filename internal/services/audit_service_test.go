package services

import (
	"testing"

	"targetrack/internal/models"
	"targetrack/internal/testutil"
)

func TestAuditServiceLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log("DELETE_TARGET", "target", "0190a0a0-0000-7000-8000-000000000001", "10.0.0.1",
		map[string]interface{}{"nominal": 100})

	var entry models.AuditLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("expected an audit entry: %v", err)
	}
	if entry.Action != "DELETE_TARGET" || entry.ResourceType != "target" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Changes != `{"nominal":100}` {
		t.Errorf("unexpected changes: %s", entry.Changes)
	}
}
