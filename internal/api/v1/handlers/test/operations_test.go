package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "file-wrangler/internal/api/errors"
	"file-wrangler/internal/api/v1/dto"
	"file-wrangler/internal/api/v1/handlers"
	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/testutil"
)

func TestOperationsHandler_Run(t *testing.T) {
	tests := []struct {
		name           string
		request        dto.RunOperationRequest
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "successful delete",
			request: dto.RunOperationRequest{
				Kind:    "delete",
				Root:    "/tmp/photos",
				Paths:   []string{"/tmp/photos/a.jpg", "/tmp/photos/b.jpg"},
				Confirm: true,
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.OperationService.On("Run", mock.Anything, mock.Anything).
					Return(&dto.ReportResponse{
						ID:        "8e2d3a7c-0b55-4a11-9c7e-2f1a6a3db901",
						Kind:      "delete",
						Root:      "/tmp/photos",
						Total:     2,
						Succeeded: 2,
						Started:   time.Now(),
						Finished:  time.Now(),
						Items: []dto.ItemResultResponse{
							{Path: "/tmp/photos/a.jpg", Status: "ok"},
							{Path: "/tmp/photos/b.jpg", Status: "ok"},
						},
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "delete", body["kind"])
				assert.Equal(t, float64(2), body["succeeded"])
				assert.Equal(t, float64(0), body["failed"])

				items := body["items"].([]interface{})
				assert.Len(t, items, 2)
			},
		},
		{
			name: "partial failure still returns the report",
			request: dto.RunOperationRequest{
				Kind:    "delete",
				Root:    "/tmp/photos",
				Paths:   []string{"/tmp/photos/a.jpg", "/tmp/photos/gone.jpg"},
				Confirm: true,
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.OperationService.On("Run", mock.Anything, mock.Anything).
					Return(&dto.ReportResponse{
						ID:        "0f6c1e4b-91aa-4f3e-8f40-55f7f6f0a2cd",
						Kind:      "delete",
						Total:     2,
						Succeeded: 1,
						Failed:    1,
						Items: []dto.ItemResultResponse{
							{Path: "/tmp/photos/a.jpg", Status: "ok"},
							{Path: "/tmp/photos/gone.jpg", Status: "failed", ErrorKind: "path_not_found"},
						},
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, float64(1), body["succeeded"])
				assert.Equal(t, float64(1), body["failed"])

				items := body["items"].([]interface{})
				second := items[1].(map[string]interface{})
				assert.Equal(t, "failed", second["status"])
				assert.Equal(t, "path_not_found", second["error_kind"])
			},
		},
		{
			name: "missing confirmation",
			request: dto.RunOperationRequest{
				Kind:  "delete",
				Root:  "/tmp/photos",
				Paths: []string{"/tmp/photos/a.jpg"},
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.OperationService.On("Run", mock.Anything, mock.Anything).
					Return(nil, apperrors.ErrNotConfirmed)
			},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "bad_request", body["kind"])
			},
		},
		{
			name: "another operation in flight",
			request: dto.RunOperationRequest{
				Kind:    "delete",
				Root:    "/tmp/photos",
				Paths:   []string{"/tmp/photos/a.jpg"},
				Confirm: true,
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.OperationService.On("Run", mock.Anything, mock.Anything).
					Return(nil, apperrors.ErrBusy)
			},
			expectedStatus: http.StatusConflict,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "busy", body["kind"])
				assert.Equal(t, "busy", body["code"])
			},
		},
		{
			name: "validation error - rename without find",
			request: dto.RunOperationRequest{
				Kind:    "rename",
				Root:    "/tmp/photos",
				Paths:   []string{"/tmp/photos/a.jpg"},
				Confirm: true,
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				details := body["details"].(map[string]interface{})
				assert.Contains(t, details["find"], "required")
			},
		},
		{
			name: "validation error - copy without destination",
			request: dto.RunOperationRequest{
				Kind:  "copy",
				Root:  "/tmp/photos",
				Paths: []string{"/tmp/photos/a.jpg"},
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				details := body["details"].(map[string]interface{})
				assert.Contains(t, details["destination"], "required")
			},
		},
		{
			name: "validation error - unknown kind",
			request: dto.RunOperationRequest{
				Kind:  "shred",
				Root:  "/tmp/photos",
				Paths: []string{"/tmp/photos/a.jpg"},
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
			},
		},
		{
			name: "invalid rename pattern",
			request: dto.RunOperationRequest{
				Kind:     "rename",
				Root:     "/tmp/photos",
				Paths:    []string{"/tmp/photos/a.jpg"},
				Find:     "[unclosed",
				UseRegex: true,
				Confirm:  true,
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.OperationService.On("Run", mock.Anything, mock.Anything).
					Return(nil, apperrors.NewKind(apperrors.KindInvalidPattern, `invalid rename pattern "[unclosed"`))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "invalid_pattern", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewOperationsHandler(mockServices.OperationService)
			router.POST("/api/v1/operations", handler.Run)

			body, err := json.Marshal(tt.request)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/v1/operations", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			err = json.Unmarshal(rec.Body.Bytes(), &responseBody)
			require.NoError(t, err)

			tt.validateBody(t, responseBody)
		})
	}
}

func TestOperationsHandler_PreviewRename(t *testing.T) {
	tests := []struct {
		name           string
		request        dto.RenamePreviewRequest
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "plan with collision",
			request: dto.RenamePreviewRequest{
				Root:     "/tmp/photos",
				Paths:    []string{"/tmp/photos/a.jpg", "/tmp/photos/b.jpg"},
				Find:     "a|b",
				Replace:  "x",
				UseRegex: true,
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.OperationService.On("PreviewRename", mock.Anything, mock.Anything).
					Return(&dto.RenamePreviewResponse{
						Items: []dto.PlanItemResponse{
							{Path: "/tmp/photos/a.jpg", NewName: "x.jpg", Status: "conflict", Reason: "duplicate target within selection"},
							{Path: "/tmp/photos/b.jpg", NewName: "x.jpg", Status: "conflict", Reason: "duplicate target within selection"},
						},
						Summary: dto.PlanSummaryResponse{Total: 2, Conflicts: 2},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				summary := body["summary"].(map[string]interface{})
				assert.Equal(t, float64(2), summary["conflicts"])
				assert.Equal(t, float64(0), summary["ok"])

				items := body["items"].([]interface{})
				first := items[0].(map[string]interface{})
				assert.Equal(t, "conflict", first["status"])
			},
		},
		{
			name: "validation error - missing find",
			request: dto.RenamePreviewRequest{
				Root:  "/tmp/photos",
				Paths: []string{"/tmp/photos/a.jpg"},
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
			},
		},
		{
			name: "invalid pattern",
			request: dto.RenamePreviewRequest{
				Root:     "/tmp/photos",
				Paths:    []string{"/tmp/photos/a.jpg"},
				Find:     "(dangling",
				UseRegex: true,
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.OperationService.On("PreviewRename", mock.Anything, mock.Anything).
					Return(nil, apperrors.NewKind(apperrors.KindInvalidPattern, `invalid rename pattern "(dangling"`))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "invalid_pattern", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewOperationsHandler(mockServices.OperationService)
			router.POST("/api/v1/operations/rename-preview", handler.PreviewRename)

			body, err := json.Marshal(tt.request)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/v1/operations/rename-preview", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			err = json.Unmarshal(rec.Body.Bytes(), &responseBody)
			require.NoError(t, err)

			tt.validateBody(t, responseBody)
		})
	}
}

func TestOperationsHandler_List(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	mockServices.OperationService.On("ListOperations", mock.Anything, mock.MatchedBy(func(query dto.ListOperationsQuery) bool {
		return query.Kind == "rename" && query.Page == 1
	})).Return(&dto.PaginatedOperationsResponse{
		Operations: []dto.OperationResponse{
			{ID: "op-1", Kind: "rename", Total: 3, Succeeded: 3},
		},
		Pagination: dto.PaginationResponse{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
	}, nil)

	handler := handlers.NewOperationsHandler(mockServices.OperationService)
	router.GET("/api/v1/operations", handler.List)

	req := httptest.NewRequest("GET", "/api/v1/operations?kind=rename", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Total-Count"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	operations := body["operations"].([]interface{})
	assert.Len(t, operations, 1)
}

func TestOperationsHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		operationID    string
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:        "successful get",
			operationID: "8e2d3a7c-0b55-4a11-9c7e-2f1a6a3db901",
			setupMocks: func(ms *testutil.MockServices) {
				ms.OperationService.On("GetOperation", mock.Anything, "8e2d3a7c-0b55-4a11-9c7e-2f1a6a3db901").
					Return(&dto.OperationDetailResponse{
						OperationResponse: dto.OperationResponse{
							ID:        "8e2d3a7c-0b55-4a11-9c7e-2f1a6a3db901",
							Kind:      "copy",
							Total:     2,
							Succeeded: 1,
							Skipped:   1,
						},
						Items: []dto.ItemResultResponse{
							{Path: "/tmp/a.txt", Target: "/backup/a.txt", Status: "ok"},
							{Path: "/tmp/b.txt", Status: "skipped"},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "copy", body["kind"])

				items := body["items"].([]interface{})
				assert.Len(t, items, 2)
			},
		},
		{
			name:        "not found",
			operationID: "00000000-0000-0000-0000-000000000000",
			setupMocks: func(ms *testutil.MockServices) {
				ms.OperationService.On("GetOperation", mock.Anything, mock.Anything).
					Return(nil, apierrors.NewNotFoundError("operation"))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "not_found", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewOperationsHandler(mockServices.OperationService)
			router.GET("/api/v1/operations/:id", handler.Get)

			req := httptest.NewRequest("GET", "/api/v1/operations/"+tt.operationID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			err := json.Unmarshal(rec.Body.Bytes(), &responseBody)
			require.NoError(t, err)

			tt.validateBody(t, responseBody)
		})
	}
}
