package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "targetrack/internal/errors"
	"targetrack/internal/models"
	"targetrack/internal/services"
)

// --- mock achievement service ---

type mockAchievementService struct {
	createAchievementFn func(targetID string, nominal int64) (*models.Achievement, error)
	getAchievementsFn   func() ([]*models.Achievement, error)
	updateAchievementFn func(targetID string, nominal int64) (*models.Achievement, error)
	deleteAchievementFn func(targetID string) error
}

func (m *mockAchievementService) CreateAchievement(targetID string, nominal int64) (*models.Achievement, error) {
	if m.createAchievementFn != nil {
		return m.createAchievementFn(targetID, nominal)
	}
	return &models.Achievement{TargetID: targetID, Nominal: nominal}, nil
}

func (m *mockAchievementService) GetAchievements() ([]*models.Achievement, error) {
	if m.getAchievementsFn != nil {
		return m.getAchievementsFn()
	}
	return []*models.Achievement{}, nil
}

func (m *mockAchievementService) UpdateAchievement(targetID string, nominal int64) (*models.Achievement, error) {
	if m.updateAchievementFn != nil {
		return m.updateAchievementFn(targetID, nominal)
	}
	return &models.Achievement{TargetID: targetID, Nominal: nominal}, nil
}

func (m *mockAchievementService) DeleteAchievement(targetID string) error {
	if m.deleteAchievementFn != nil {
		return m.deleteAchievementFn(targetID)
	}
	return nil
}

var _ services.AchievementServicer = (*mockAchievementService)(nil)

func setupAchievementRouter(handler *AchievementHandler) *gin.Engine {
	r := gin.New()
	r.POST("/achievements", handler.CreateAchievement)
	r.GET("/achievements", handler.GetAchievements)
	r.GET("/achievements/view", handler.ViewAchievements)
	r.PUT("/achievements/:targetId", handler.UpdateAchievement)
	r.DELETE("/achievements/:targetId", handler.DeleteAchievement)
	return r
}

func TestAchievementHandler_CreateAchievement(t *testing.T) {
	t.Run("returns 201", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupAchievementRouter(NewAchievementHandler(&mockAchievementService{}, audit))

		rec := doRequest(r, "POST", "/achievements", `{"target_id":"`+testID+`","nominal":750}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["target_id"] != testID || result["nominal"].(float64) != 750 {
			t.Errorf("unexpected body %v", result)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "CREATE_ACHIEVEMENT" {
			t.Errorf("unexpected audit entries %+v", audit.entries)
		}
	})

	t.Run("requires target_id", func(t *testing.T) {
		r := setupAchievementRouter(NewAchievementHandler(&mockAchievementService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/achievements", `{"nominal":750}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INVALID_INPUT")
		if result["message"] != "target_id is required" {
			t.Errorf("unexpected message %v", result["message"])
		}
	})

	t.Run("second achievement for a target returns 409", func(t *testing.T) {
		svc := &mockAchievementService{
			createAchievementFn: func(string, int64) (*models.Achievement, error) { return nil, apperrors.ErrAchievementExists },
		}
		r := setupAchievementRouter(NewAchievementHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/achievements", `{"target_id":"`+testID+`","nominal":1}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACHIEVEMENT_EXISTS")
	})
}

func TestAchievementHandler_UpdateAchievement(t *testing.T) {
	t.Run("addresses by target id", func(t *testing.T) {
		var gotTarget string
		svc := &mockAchievementService{
			updateAchievementFn: func(targetID string, nominal int64) (*models.Achievement, error) {
				gotTarget = targetID
				return &models.Achievement{TargetID: targetID, Nominal: nominal}, nil
			},
		}
		r := setupAchievementRouter(NewAchievementHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/achievements/"+testID, `{"target_id":"`+testID+`","nominal":900}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotTarget != testID {
			t.Errorf("expected target %s, got %s", testID, gotTarget)
		}
	})

	t.Run("body target must match path", func(t *testing.T) {
		r := setupAchievementRouter(NewAchievementHandler(&mockAchievementService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/achievements/"+testID, `{"target_id":"`+testOtherID+`","nominal":900}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing achievement returns 404", func(t *testing.T) {
		svc := &mockAchievementService{
			updateAchievementFn: func(string, int64) (*models.Achievement, error) { return nil, apperrors.ErrAchievementNotFound },
		}
		r := setupAchievementRouter(NewAchievementHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/achievements/"+testID, `{"nominal":900}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACHIEVEMENT_NOT_FOUND")
	})
}

func TestAchievementHandler_ViewAchievements(t *testing.T) {
	achievements := []*models.Achievement{
		{
			Base: models.Base{ID: "a1"}, TargetID: "t1", Nominal: 1500,
			Target: viewTarget("t1", "Andi", "Tabungan", 4, 2024, 1000, nil),
		},
		{
			Base: models.Base{ID: "a2"}, TargetID: "t2", Nominal: 200,
			Target: viewTarget("t2", "Budi", "Tabungan", 4, 2024, 1000, nil),
		},
	}
	svc := &mockAchievementService{getAchievementsFn: func() ([]*models.Achievement, error) { return achievements, nil }}
	r := setupAchievementRouter(NewAchievementHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/achievements/view?status=achieved", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 || data[0].(map[string]interface{})["id"] != "a1" {
		t.Errorf("expected only a1, got %v", data)
	}
}

func TestAchievementHandler_DeleteAchievement(t *testing.T) {
	svc := &mockAchievementService{
		deleteAchievementFn: func(string) error { return apperrors.ErrAchievementNotFound },
	}
	r := setupAchievementRouter(NewAchievementHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "DELETE", "/achievements/"+testID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
