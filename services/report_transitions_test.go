package services

import (
	"testing"

	"github.com/aaryaa4/civic-connectt/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusResolves(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := createUser(t, db, "alice@example.com", 1)
	report, err := svc.CreateReport(owner, "pothole", "uploads/x.jpg", 1, 2, entity.CategoryInfra, false)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(entity.RoleAdmin, report.ID, entity.StatusResolved))

	reloaded, err := svc.FindByID(report.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusResolved, reloaded.Status)
}

func TestUpdateStatusNonAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := createUser(t, db, "alice@example.com", 1)
	report, err := svc.CreateReport(owner, "pothole", "uploads/x.jpg", 1, 2, entity.CategoryInfra, false)
	require.NoError(t, err)

	err = svc.UpdateStatus(entity.RoleUser, report.ID, entity.StatusResolved)
	assert.ErrorIs(t, err, ErrAdminOnly)

	reloaded, err := svc.FindByID(report.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, reloaded.Status)
}

func TestUpdateStatusUnknownReport(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)

	err := svc.UpdateStatus(entity.RoleAdmin, 999, entity.StatusResolved)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestUpdateStatusIllegalTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := createUser(t, db, "alice@example.com", 1)
	report, err := svc.CreateReport(owner, "pothole", "uploads/x.jpg", 1, 2, entity.CategoryInfra, false)
	require.NoError(t, err)

	// unknown status value
	err = svc.UpdateStatus(entity.RoleAdmin, report.ID, "escalated")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// the machine has no self-loop on pending
	err = svc.UpdateStatus(entity.RoleAdmin, report.ID, entity.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, svc.UpdateStatus(entity.RoleAdmin, report.ID, entity.StatusResolved))

	// no edge away from resolved, not even re-resolving
	err = svc.UpdateStatus(entity.RoleAdmin, report.ID, entity.StatusResolved)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = svc.UpdateStatus(entity.RoleAdmin, report.ID, entity.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
