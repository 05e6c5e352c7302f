package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	registryMocks "github.com/archetype-labs/minter-suite/domain/registry/mocks"
)

var testCoreContract = domain.Address("0x1111111111111111111111111111111111111111")

func newHasMinterContext(e *echo.Echo, projectId string) (echo.Context, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(r, rec)
	c.SetPath("/registry/projects/:coreContract/:projectId/hasMinter")
	c.SetParamNames("coreContract", "projectId")
	c.SetParamValues(string(testCoreContract), projectId)
	c.Set("ctx", ctx.Background())
	return c, rec
}

func TestProjectHasMinter(t *testing.T) {
	req := require.New(t)
	e := echo.New()

	t.Run("assigned project reports true", func(t *testing.T) {
		uc := registryMocks.NewUseCase(t)
		key := domain.NewProjectKey(testCoreContract, 7)
		uc.On("ProjectHasMinter", mock.Anything, key).Return(true, nil)

		h := &handler{uc}
		c, rec := newHasMinterContext(e, "7")

		req.NoError(h.projectHasMinter(c))
		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), "true")
	})

	t.Run("unassigned project reports false", func(t *testing.T) {
		uc := registryMocks.NewUseCase(t)
		key := domain.NewProjectKey(testCoreContract, 7)
		uc.On("ProjectHasMinter", mock.Anything, key).Return(false, nil)

		h := &handler{uc}
		c, rec := newHasMinterContext(e, "7")

		req.NoError(h.projectHasMinter(c))
		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), "false")
	})

	t.Run("malformed project id rejected", func(t *testing.T) {
		h := &handler{registryMocks.NewUseCase(t)}
		c, rec := newHasMinterContext(e, "abc")

		req.NoError(h.projectHasMinter(c))
		req.Equal(http.StatusBadRequest, rec.Code)
	})
}
