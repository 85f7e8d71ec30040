package response_test

import (
	"net/http/httptest"
	"testing"

	"Hirebase/internal/api/dto"
	"Hirebase/internal/pkg/response"
	"Hirebase/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

func errorBody(t *testing.T, err error) dto.Response {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	response.Error(c, err)

	var body dto.Response
	if uerr := json.Unmarshal(rec.Body.Bytes(), &body); uerr != nil {
		t.Fatalf("unmarshal response: %v", uerr)
	}
	return body
}

func TestErrorMatchesWrappedSentinel(t *testing.T) {
	body := errorBody(t, errors.Wrap(service.ErrMemberNotFound, "查询会员"))
	if body.Code != response.NotFound {
		t.Errorf("code = %d, want %d", body.Code, response.NotFound)
	}
	if body.Message != service.ErrMemberNotFound.Error() {
		t.Errorf("message = %q, want sentinel text", body.Message)
	}
}

func TestErrorHidesUnregisteredDetail(t *testing.T) {
	body := errorBody(t, errors.New("dial tcp 10.0.0.3:27017: connection refused"))
	if body.Code != response.InternalServerError {
		t.Errorf("code = %d, want %d", body.Code, response.InternalServerError)
	}
	if body.Message != service.UnExpectedError.Error() {
		t.Errorf("message = %q, want generic text", body.Message)
	}
}
