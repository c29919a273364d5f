package handler_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"designmentor.app/api/internal/model"
	"designmentor.app/api/internal/service"
)

// authedRequest builds a request carrying a valid session cookie so it
// passes RequireAuth with the default mockAuthService.
func authedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: "mentor_session", Value: "42"})
	return req
}

type mockAuthService struct {
	getAuthorizationURLFn func(state string) (string, error)
	handleCallbackFn      func(ctx context.Context, code string) (*model.User, *model.Session, error)
	validateSessionFn     func(ctx context.Context, sessionID int64) (*model.User, error)
	logoutFn              func(ctx context.Context, sessionID int64) error
}

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	if m.getAuthorizationURLFn != nil {
		return m.getAuthorizationURLFn(state)
	}
	return "https://auth.example.com/authorize?state=" + state, nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	if m.handleCallbackFn != nil {
		return m.handleCallbackFn(ctx, code)
	}
	return &model.User{ID: 1, Name: "Dev", Email: "dev@example.com"}, &model.Session{ID: 42, UserID: 1}, nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	if m.validateSessionFn != nil {
		return m.validateSessionFn(ctx, sessionID)
	}
	return &model.User{ID: 1, Name: "Dev", Email: "dev@example.com"}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID int64) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sessionID)
	}
	return nil
}

type mockProjectService struct {
	createFn       func(ctx context.Context, ownerID int64, title string, description, designContent *string) (*model.Project, error)
	getFn          func(ctx context.Context, ownerID, projectID int64) (*model.Project, error)
	getFullFn      func(ctx context.Context, ownerID, projectID int64) (*service.ProjectFull, error)
	listFn         func(ctx context.Context, ownerID int64, limit, offset int32) ([]model.Project, error)
	updateFn       func(ctx context.Context, ownerID, projectID int64, title string, description *string) (*model.Project, error)
	deleteFn       func(ctx context.Context, ownerID, projectID int64) error
	getDesignFn    func(ctx context.Context, ownerID, projectID int64) (*model.DesignDetail, error)
	updateDesignFn func(ctx context.Context, ownerID, projectID int64, content string) (*model.DesignDetail, error)
}

func (m *mockProjectService) Create(ctx context.Context, ownerID int64, title string, description, designContent *string) (*model.Project, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, title, description, designContent)
	}
	return nil, nil
}

func (m *mockProjectService) GetFull(ctx context.Context, ownerID, projectID int64) (*service.ProjectFull, error) {
	if m.getFullFn != nil {
		return m.getFullFn(ctx, ownerID, projectID)
	}
	return nil, nil
}

func (m *mockProjectService) Get(ctx context.Context, ownerID, projectID int64) (*model.Project, error) {
	if m.getFn != nil {
		return m.getFn(ctx, ownerID, projectID)
	}
	return nil, nil
}

func (m *mockProjectService) List(ctx context.Context, ownerID int64, limit, offset int32) ([]model.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID, limit, offset)
	}
	return nil, nil
}

func (m *mockProjectService) Update(ctx context.Context, ownerID, projectID int64, title string, description *string) (*model.Project, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, ownerID, projectID, title, description)
	}
	return nil, nil
}

func (m *mockProjectService) Delete(ctx context.Context, ownerID, projectID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, projectID)
	}
	return nil
}

func (m *mockProjectService) GetDesign(ctx context.Context, ownerID, projectID int64) (*model.DesignDetail, error) {
	if m.getDesignFn != nil {
		return m.getDesignFn(ctx, ownerID, projectID)
	}
	return nil, nil
}

func (m *mockProjectService) UpdateDesign(ctx context.Context, ownerID, projectID int64, content string) (*model.DesignDetail, error) {
	if m.updateDesignFn != nil {
		return m.updateDesignFn(ctx, ownerID, projectID, content)
	}
	return nil, nil
}

type mockAnalysisService struct {
	runFn                    func(ctx context.Context, ownerID, projectID int64) (*service.AnalysisResult, error)
	evolutionFn              func(ctx context.Context, ownerID, projectID int64) (*service.Evolution, error)
	listSuggestionsFn        func(ctx context.Context, ownerID, projectID int64) ([]model.Suggestion, error)
	updateSuggestionStatusFn func(ctx context.Context, ownerID, suggestionID int64, status model.SuggestionStatus) (*model.Suggestion, error)
}

func (m *mockAnalysisService) Run(ctx context.Context, ownerID, projectID int64) (*service.AnalysisResult, error) {
	if m.runFn != nil {
		return m.runFn(ctx, ownerID, projectID)
	}
	return nil, nil
}

func (m *mockAnalysisService) Evolution(ctx context.Context, ownerID, projectID int64) (*service.Evolution, error) {
	if m.evolutionFn != nil {
		return m.evolutionFn(ctx, ownerID, projectID)
	}
	return nil, nil
}

func (m *mockAnalysisService) ListSuggestions(ctx context.Context, ownerID, projectID int64) ([]model.Suggestion, error) {
	if m.listSuggestionsFn != nil {
		return m.listSuggestionsFn(ctx, ownerID, projectID)
	}
	return nil, nil
}

func (m *mockAnalysisService) UpdateSuggestionStatus(ctx context.Context, ownerID, suggestionID int64, status model.SuggestionStatus) (*model.Suggestion, error) {
	if m.updateSuggestionStatusFn != nil {
		return m.updateSuggestionStatusFn(ctx, ownerID, suggestionID, status)
	}
	return nil, nil
}
