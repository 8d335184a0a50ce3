package grade

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/cgrader-2025.net/internal/domain"
	"gitlab.com/cgrader-2025.net/internal/handlers"
	"gitlab.com/cgrader-2025.net/internal/static/errs"
)

const testSecret = "test-secret"

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type stubGradingService struct {
	report     *domain.GradeReport
	gradeErr   error
	gotSource  string
	gotStudent string
}

func (s *stubGradingService) Grade(ctx context.Context, submission *domain.Submission) (*domain.GradeReport, error) {
	s.gotSource = submission.Source
	s.gotStudent = submission.StudentID
	if s.gradeErr != nil {
		return nil, s.gradeErr
	}
	return s.report, nil
}

func (s *stubGradingService) GetReport(ctx context.Context, id uuid.UUID) (*domain.GradeReport, error) {
	if s.report != nil && s.report.ID == id {
		return s.report, nil
	}
	return nil, errs.ReportNotFound
}

func (s *stubGradingService) ListReports(ctx context.Context, studentID string, limit int) ([]*domain.GradeReport, error) {
	if s.report == nil {
		return nil, nil
	}
	return []*domain.GradeReport{s.report}, nil
}

func newTestRouter(svc *stubGradingService) *mux.Router {
	router := mux.NewRouter()
	NewGradeHandler(svc, nopLogger{}).RegisterRoutes(router, handlers.New(testSecret))
	return router
}

func bearerToken(t *testing.T, username string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": username})
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

func TestRunGradingRequiresAuth(t *testing.T) {
	router := newTestRouter(&stubGradingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/grade", strings.NewReader(`{"source":"int main(){}"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRunGradingReturnsReport(t *testing.T) {
	svc := &stubGradingService{
		report: domain.NewGradeReport("alice", "int main(){}", 100, "well done", nil),
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/grade", strings.NewReader(`{"source":"int main(){}"}`))
	req.Header.Set("Authorization", bearerToken(t, "alice"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if svc.gotStudent != "alice" {
		t.Errorf("student = %q, want alice (from the token)", svc.gotStudent)
	}
	if svc.gotSource != "int main(){}" {
		t.Errorf("source = %q, want the posted program text", svc.gotSource)
	}

	var got domain.GradeReport
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Score != 100 {
		t.Errorf("score = %d, want 100", got.Score)
	}
}

func TestRunGradingConflictWhileInFlight(t *testing.T) {
	router := newTestRouter(&stubGradingService{gradeErr: errs.RunInFlight})

	req := httptest.NewRequest(http.MethodPost, "/api/grade", strings.NewReader(`{"source":"int main(){}"}`))
	req.Header.Set("Authorization", bearerToken(t, "alice"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestRunGradingInternalFailureCarriesScoreZero(t *testing.T) {
	router := newTestRouter(&stubGradingService{gradeErr: errs.GradingAborted})

	req := httptest.NewRequest(http.MethodPost, "/api/grade", strings.NewReader(`{"source":"int main(){}"}`))
	req.Header.Set("Authorization", bearerToken(t, "alice"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
		Score   int    `json:"score"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message == "" {
		t.Error("internal failures must carry a human-readable explanation")
	}
	if body.Score != 0 {
		t.Errorf("score = %d, want 0", body.Score)
	}
}

func TestGetReportInvalidID(t *testing.T) {
	router := newTestRouter(&stubGradingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/grade/not-a-uuid", nil)
	req.Header.Set("Authorization", bearerToken(t, "alice"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetReportNotFound(t *testing.T) {
	router := newTestRouter(&stubGradingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/grade/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", bearerToken(t, "alice"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
