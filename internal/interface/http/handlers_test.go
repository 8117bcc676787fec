package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/oksasatya/seminar-registration-api/internal/application"
	"github.com/oksasatya/seminar-registration-api/internal/infrastructure/memstore"
	handlers "github.com/oksasatya/seminar-registration-api/internal/interface/http"
	"github.com/oksasatya/seminar-registration-api/internal/router/modules"
	"github.com/oksasatya/seminar-registration-api/pkg/helpers"
	"github.com/oksasatya/seminar-registration-api/pkg/session"
	"github.com/oksasatya/seminar-registration-api/pkg/validation"
)

const (
	testUsername = "admin"
	testPassword = "couples2025"
)

type HandlersSuite struct {
	suite.Suite
	engine *gin.Engine
	store  *memstore.Store
}

func (s *HandlersSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.store = memstore.New()
	sessions := session.NewMemoryStore()
	tokens := helpers.NewTokenManager("test-secret", time.Hour)

	regSvc := application.NewRegistrationService(s.store, logger)
	adminSvc := application.NewAdminService(sessions, tokens, logger, testUsername, testPassword, "", time.Hour)

	regHandler := handlers.NewRegistrationHandler(regSvc, logger)
	authHandler := handlers.NewAuthHandler(adminSvc, tokens, logger, "localhost", false)

	s.engine = gin.New()
	api := s.engine.Group("/api")
	modules.NewAuthModule(authHandler).Register(api)
	modules.NewRegistrationModule(regHandler, sessions, tokens).Register(api)
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *HandlersSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *HandlersSuite) login() *http.Cookie {
	w := s.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"couples2025"}`)
	s.Require().Equal(http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookieName {
			return c
		}
	}
	s.FailNow("login did not set a session cookie")
	return nil
}

func (s *HandlersSuite) TestRegistrationFlow() {
	s.Run("valid payload creates a registration", func() {
		w := s.do(http.MethodPost, "/api/registrations", `{"firstName":"Ann","lastName":"Lee","email":"ann@example.com"}`)
		s.Require().Equal(http.StatusCreated, w.Code)

		body := s.decode(w)
		s.Equal(true, body["success"])
		data := body["data"].(map[string]any)
		s.NotZero(data["id"])
		s.NotEmpty(data["registeredAt"])
		s.Equal(false, data["newsletterOptIn"])
		s.Nil(data["phone"])
	})

	s.Run("duplicate email is rejected", func() {
		w := s.do(http.MethodPost, "/api/registrations", `{"firstName":"Ann","lastName":"Lee","email":"ann@example.com"}`)
		s.Require().Equal(http.StatusBadRequest, w.Code)

		body := s.decode(w)
		s.Equal(false, body["success"])
		s.Contains(body["message"], "already registered")
	})

	s.Run("missing fields report every violation", func() {
		w := s.do(http.MethodPost, "/api/registrations", `{"email":"not-an-email"}`)
		s.Require().Equal(http.StatusBadRequest, w.Code)

		body := s.decode(w)
		errs := body["errors"].(map[string]any)
		s.Contains(errs, "firstName")
		s.Contains(errs, "lastName")
		s.Contains(errs, "email")
	})

	s.Run("invalid payload writes nothing", func() {
		w := s.do(http.MethodPost, "/api/registrations", `{"firstName":"Solo"}`)
		s.Require().Equal(http.StatusBadRequest, w.Code)

		cookie := s.login()
		lw := s.do(http.MethodGet, "/api/registrations", "", cookie)
		s.Require().Equal(http.StatusOK, lw.Code)
		data := s.decode(lw)["data"].([]any)
		s.Len(data, 1) // only ann@example.com from above
	})
}

func (s *HandlersSuite) TestAuthGate() {
	s.Run("list and export are gated", func() {
		s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/registrations", "").Code)
		s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/registrations/export", "").Code)
	})

	s.Run("wrong credentials stay anonymous", func() {
		w := s.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"nope"}`)
		s.Require().Equal(http.StatusUnauthorized, w.Code)
		s.Equal(false, s.decode(w)["success"])
	})

	s.Run("login opens the gate and logout closes it", func() {
		cookie := s.login()

		s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/registrations", "", cookie).Code)

		sw := s.do(http.MethodGet, "/api/auth/status", "", cookie)
		s.Require().Equal(http.StatusOK, sw.Code)
		status := s.decode(sw)
		s.Equal(true, status["isAuthenticated"])
		s.Equal("admin", status["username"])

		lw := s.do(http.MethodPost, "/api/auth/logout", "", cookie)
		s.Require().Equal(http.StatusOK, lw.Code)

		s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/registrations", "", cookie).Code)
	})

	s.Run("status is anonymous without a cookie", func() {
		w := s.do(http.MethodGet, "/api/auth/status", "")
		s.Require().Equal(http.StatusOK, w.Code)
		status := s.decode(w)
		s.Equal(false, status["isAuthenticated"])
		s.Nil(status["username"])
	})

	s.Run("a forged cookie is rejected", func() {
		forged := &http.Cookie{Name: helpers.SessionCookieName, Value: "forged.token.value"}
		s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/registrations", "", forged).Code)
	})
}

func (s *HandlersSuite) TestExport() {
	payload := `{"firstName":"Ann","lastName":"Lee","email":"ann@example.com","expectations":"He said \"hi\"","newsletterOptIn":true}`
	w := s.do(http.MethodPost, "/api/registrations", payload)
	s.Require().Equal(http.StatusCreated, w.Code)

	cookie := s.login()
	ew := s.do(http.MethodGet, "/api/registrations/export", "", cookie)
	s.Require().Equal(http.StatusOK, ew.Code)

	s.Equal("text/csv", ew.Header().Get("Content-Type"))
	disposition := ew.Header().Get("Content-Disposition")
	s.Contains(disposition, `attachment; filename="seminar-registrations-`)
	s.Contains(disposition, `.csv"`)

	body := ew.Body.String()
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	s.Require().Len(lines, 2)
	s.Equal("ID,First Name,Last Name,Email,Phone,Expectations,Newsletter Opt-in,Registration Date", lines[0])
	s.Contains(lines[1], `"He said ""hi"""`)
	s.Contains(lines[1], "Yes")
}
